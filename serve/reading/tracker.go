package reading

import (
	"sync"

	"github.com/google/uuid"
)

// Tracker 记录每个客户端最新的请求键，新请求使旧请求的结果失效
type Tracker struct {
	mu     sync.Mutex
	latest map[string]string
}

func NewTracker() *Tracker {
	return &Tracker{latest: make(map[string]string)}
}

// Issue 为客户端签发新的请求键；clientId 为空时不跟踪
func (t *Tracker) Issue(clientId string) string {
	key := uuid.NewString()
	if clientId == "" {
		return key
	}

	t.mu.Lock()
	t.latest[clientId] = key
	t.mu.Unlock()
	return key
}

// IsLatest 结果返回前检查，非最新的结果应丢弃
func (t *Tracker) IsLatest(clientId, key string) bool {
	if clientId == "" {
		return true
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	return t.latest[clientId] == key
}

// Release 请求结束后清理，只有最新键能清理
func (t *Tracker) Release(clientId, key string) {
	if clientId == "" {
		return
	}

	t.mu.Lock()
	if t.latest[clientId] == key {
		delete(t.latest, clientId)
	}
	t.mu.Unlock()
}

func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.latest)
}
