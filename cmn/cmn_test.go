package cmn

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMod(t *testing.T) {
	assert.Equal(t, 3, Mod(13, 5))
	assert.Equal(t, 2, Mod(-13, 5))
	assert.Equal(t, 0, Mod(-10, 5))
	assert.Equal(t, 999, Mod(-1, 1000))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 40, Clamp(12, 40, 99))
	assert.Equal(t, 99, Clamp(140, 40, 99))
	assert.Equal(t, 55, Clamp(55, 40, 99))
}

func TestUntilNext(t *testing.T) {
	loc := time.FixedZone("CST", 8*3600)

	now := time.Date(2026, 3, 1, 1, 30, 0, 0, loc)
	assert.Equal(t, 90*time.Minute, UntilNext(now, 3, 0))

	now = time.Date(2026, 3, 1, 4, 0, 0, 0, loc)
	assert.Equal(t, 23*time.Hour, UntilNext(now, 3, 0))

	now = time.Date(2026, 3, 1, 3, 0, 0, 0, loc)
	assert.Equal(t, 24*time.Hour, UntilNext(now, 3, 0))
}

func TestDBConfig(t *testing.T) {
	cfg := DBConfig{Host: "db", Port: "5432", User: "u", Pwd: "p", DB: "vitame"}
	require.NoError(t, cfg.validate())
	assert.Equal(t, "user=u password=p dbname=vitame host=db port=5432 sslmode=disable TimeZone=Asia/Shanghai", cfg.DSN())

	cfg.TimeZone = "UTC"
	assert.Contains(t, cfg.DSN(), "TimeZone=UTC")

	assert.Error(t, DBConfig{Host: "db"}.validate())

	_, err := OpenDB(DBConfig{})
	assert.Error(t, err)
}

func TestNewReply(t *testing.T) {
	r := NewReply(StatusOK, "success", map[string]int{"a": 1})
	assert.Equal(t, StatusOK, r.Status)
	assert.JSONEq(t, `{"a":1}`, string(r.Data))

	r = NewReply(StatusBadRequest, "bad", nil)
	assert.Empty(t, r.Data)

	r = NewReply(StatusOK, "success", func() {})
	assert.Equal(t, StatusFailure, r.Status)

	raw, err := json.Marshal(NewReply(StatusOK, "success", nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":0,"msg":"success"}`, string(raw))
}
