package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sleepRecorder struct {
	delays []time.Duration
}

func (r *sleepRecorder) sleep(_ context.Context, d time.Duration) error {
	r.delays = append(r.delays, d)
	return nil
}

func newTestService(t *testing.T, url string) (*chatImpl, *sleepRecorder) {
	t.Helper()
	svc := NewServiceWithConfig(Config{
		ApiKey:      "test-key",
		Model:       "glm-4-plus",
		BaseUrl:     url,
		Temperature: 0.8,
		MaxTokens:   2500,
		Retries:     2,
		RetryDelay:  time.Second,
	}, nil).(*chatImpl)
	rec := &sleepRecorder{}
	svc.sleep = rec.sleep
	return svc, rec
}

func reply(w http.ResponseWriter, content string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	})
}

func TestChatSendsChatCompletionRequest(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		reply(w, `{"ok":true}`)
	}))
	defer srv.Close()

	svc, rec := newTestService(t, srv.URL+"/")
	content, err := svc.Chat(context.Background(), "hello", nil)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, content)
	assert.Empty(t, rec.delays)

	assert.Equal(t, "glm-4-plus", got.Model)
	assert.Equal(t, 0.8, got.Temperature)
	assert.Equal(t, 2500, got.MaxTokens)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
	assert.Equal(t, "hello", got.Messages[0].Content)
}

func TestChatWithoutKeyMakesNoRequest(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	svc := NewServiceWithConfig(Config{BaseUrl: srv.URL}, nil)
	_, err := svc.Chat(context.Background(), "hello", nil)
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Zero(t, atomic.LoadInt32(&hits))
}

func TestChatUnauthorizedFailsImmediately(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		var hits int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&hits, 1)
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"error":{"message":"invalid key"}}`))
		}))

		svc, rec := newTestService(t, srv.URL)
		_, err := svc.Chat(context.Background(), "hello", nil)
		srv.Close()

		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.NotErrorIs(t, err, ErrRetriesExhausted)
		assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
		assert.Empty(t, rec.delays)
	}
}

func TestChatMalformedContentExhaustsRetries(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		reply(w, "this is not json at all")
	}))
	defer srv.Close()

	svc, rec := newTestService(t, srv.URL)
	accept := func(content string) error {
		var v map[string]any
		return json.Unmarshal([]byte(content), &v)
	}
	_, err := svc.Chat(context.Background(), "hello", accept)

	assert.ErrorIs(t, err, ErrRetriesExhausted)
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, rec.delays)
}

func TestChatPermanentRejectionStopsRetrying(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		reply(w, `{"personality":""}`)
	}))
	defer srv.Close()

	schemaErr := errors.New("missing career")
	svc, rec := newTestService(t, srv.URL)
	_, err := svc.Chat(context.Background(), "hello", func(string) error {
		return Permanent(schemaErr)
	})

	assert.ErrorIs(t, err, schemaErr)
	assert.NotErrorIs(t, err, ErrRetriesExhausted)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
	assert.Empty(t, rec.delays)
}

func TestChatRecoversFromServerError(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		reply(w, `{"ok":true}`)
	}))
	defer srv.Close()

	svc, rec := newTestService(t, srv.URL)
	content, err := svc.Chat(context.Background(), "hello", nil)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, content)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
	assert.Equal(t, []time.Duration{time.Second}, rec.delays)
}

func TestChatPerAttemptTimeout(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	svc, _ := newTestService(t, srv.URL)
	svc.cfg.Timeout = 50 * time.Millisecond
	svc.cfg.Retries = 1

	_, err := svc.Chat(context.Background(), "hello", nil)
	assert.ErrorIs(t, err, ErrRetriesExhausted)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestPermanentNil(t *testing.T) {
	assert.NoError(t, Permanent(nil))
	assert.True(t, IsPermanent(Permanent(errors.New("x"))))
	assert.False(t, IsPermanent(errors.New("x")))
}
