package reading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackerSupersedesOlderKeys(t *testing.T) {
	tr := NewTracker()

	first := tr.Issue("client-a")
	assert.True(t, tr.IsLatest("client-a", first))

	second := tr.Issue("client-a")
	assert.NotEqual(t, first, second)
	assert.False(t, tr.IsLatest("client-a", first))
	assert.True(t, tr.IsLatest("client-a", second))

	other := tr.Issue("client-b")
	assert.True(t, tr.IsLatest("client-b", other))
	assert.True(t, tr.IsLatest("client-a", second))
}

func TestTrackerRelease(t *testing.T) {
	tr := NewTracker()
	first := tr.Issue("c")
	second := tr.Issue("c")

	// 旧请求结束不影响新请求
	tr.Release("c", first)
	assert.True(t, tr.IsLatest("c", second))
	assert.Equal(t, 1, tr.Len())

	tr.Release("c", second)
	assert.Zero(t, tr.Len())
	assert.False(t, tr.IsLatest("c", first))
}

func TestTrackerAnonymousClientNeverSuperseded(t *testing.T) {
	tr := NewTracker()
	a := tr.Issue("")
	b := tr.Issue("")
	assert.NotEqual(t, a, b)
	assert.True(t, tr.IsLatest("", a))
	assert.Zero(t, tr.Len())
}
