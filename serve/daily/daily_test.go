package daily

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"VitaMe/cmn"
	"VitaMe/cmn/content"
)

var form = content.BirthForm{Year: 1990, Month: 5, Day: 15, Hour: 12}

func TestTodayIsStablePerDay(t *testing.T) {
	tl, err := NewTeller(nil, nil)
	require.NoError(t, err)

	day := time.Date(2026, 3, 8, 9, 0, 0, 0, time.Local)
	a := tl.Today(form, day)
	b := tl.Today(form, day.Add(10*time.Hour))
	assert.Equal(t, a, b)
	assert.Equal(t, "2026-03-08", a.Date)
	assert.NotEmpty(t, a.Vitamin)
	assert.NotEmpty(t, a.Advice)
	assert.NotContains(t, a.Advice, "{")
}

func TestTodayScoreWithinBand(t *testing.T) {
	tl, err := NewTeller(nil, nil)
	require.NoError(t, err)

	bands := map[string]Band{}
	for _, b := range DefaultBands {
		bands[b.Label] = b
	}

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seen := map[string]bool{}
	for i := 0; i < 365; i++ {
		f := tl.Today(form, start.AddDate(0, 0, i))
		b, ok := bands[f.Band]
		require.True(t, ok, f.Band)
		assert.GreaterOrEqual(t, f.Score, b.Min)
		assert.LessOrEqual(t, f.Score, b.Max)
		seen[f.Band] = true
	}
	// 一年内各分段都应出现
	assert.Len(t, seen, len(DefaultBands))
}

func TestDaySeed(t *testing.T) {
	day := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, content.SeedOf(form)*10000+32, DaySeed(form, day))
}

func TestNewTellerRejectsBadBands(t *testing.T) {
	_, err := NewTeller([]Band{{Label: "x", Min: 90, Max: 10, Weight: 1}}, nil)
	assert.Error(t, err)

	_, err = NewTeller([]Band{{Label: "x", Min: 1, Max: 10, Weight: 0}}, nil)
	assert.Error(t, err)

	tl, err := NewTeller([]Band{{Label: "唯一", Min: 77, Max: 77, Weight: 1}}, nil)
	require.NoError(t, err)
	f := tl.Today(form, time.Now())
	assert.Equal(t, 77, f.Score)
	assert.Equal(t, "唯一", f.Band)
}

func post(t *testing.T, h Handler, body any) cmn.ReplyProto {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/daily", h.HandleDaily)

	raw, err := json.Marshal(body)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/daily", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var reply cmn.ReplyProto
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reply))
	return reply
}

func TestHandleDaily(t *testing.T) {
	tl, err := NewTeller(nil, nil)
	require.NoError(t, err)
	h := NewHandlerWithTeller(tl)

	reply := post(t, h, map[string]any{
		"action": ActionToday,
		"data":   map[string]string{"date": "1990-05-15", "time": "12:30", "day": "2026-03-08"},
	})
	require.Equal(t, cmn.StatusOK, reply.Status)

	var f Fortune
	require.NoError(t, json.Unmarshal(reply.Data, &f))
	want := tl.Today(form, time.Date(2026, 3, 8, 0, 0, 0, 0, time.Local))
	assert.Equal(t, want, f)
}

func TestHandleDailyBadRequests(t *testing.T) {
	tl, err := NewTeller(nil, nil)
	require.NoError(t, err)
	h := NewHandlerWithTeller(tl)

	cases := []map[string]any{
		{"action": "tomorrow", "data": map[string]string{"date": "1990-05-15"}},
		{"action": ActionToday},
		{"action": ActionToday, "data": map[string]string{"date": "1990-05-15", "day": "08/03/2026"}},
	}
	for _, body := range cases {
		reply := post(t, h, body)
		assert.Equal(t, cmn.StatusBadRequest, reply.Status, body)
	}
}
