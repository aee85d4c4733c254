package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMemoryStore()
	m.now = func() time.Time { return now }

	require.NoError(t, m.Set(ctx, "a", []byte("1"), time.Minute))
	require.NoError(t, m.Set(ctx, "b", []byte("2"), 0))

	v, err := m.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), v)

	now = now.Add(time.Minute)
	_, err = m.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrMiss)
	assert.Equal(t, 1, m.Len())

	v, err = m.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), v)

	require.NoError(t, m.Delete(ctx, "b"))
	_, err = m.Get(ctx, "b")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	in := []byte("abc")
	require.NoError(t, m.Set(ctx, "k", in, time.Minute))
	in[0] = 'x'

	out, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(out))
}

func TestGetOrLoadCachesResult(t *testing.T) {
	ctx := context.Background()
	c := New(NewMemoryStore(), "test:", nil)

	var calls int32
	loader := func(context.Context) ([]byte, error) {
		atomic.AddInt32(&calls, 1)
		return []byte("value"), nil
	}

	v, hit, err := c.GetOrLoad(ctx, "k", time.Minute, loader)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "value", string(v))

	v, hit, err = c.GetOrLoad(ctx, "k", time.Minute, loader)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "value", string(v))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	require.NoError(t, c.Invalidate(ctx, "k"))
	_, hit, err = c.GetOrLoad(ctx, "k", time.Minute, loader)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestGetOrLoadDoesNotCacheErrors(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	c := New(store, "", nil)

	boom := errors.New("boom")
	_, _, err := c.GetOrLoad(ctx, "k", time.Minute, func(context.Context) ([]byte, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, store.Len())
}

func TestGetOrLoadCollapsesConcurrentLoads(t *testing.T) {
	ctx := context.Background()
	c := New(NewMemoryStore(), "", nil)

	var calls int32
	release := make(chan struct{})
	loader := func(context.Context) ([]byte, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return []byte("v"), nil
	}

	const n = 8
	var wg sync.WaitGroup
	results := make([]string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, _, err := c.GetOrLoad(ctx, "same", time.Minute, loader)
			assert.NoError(t, err)
			results[i] = string(v)
		}(i)
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, "v", r)
	}
	assert.LessOrEqual(t, atomic.LoadInt32(&calls), int32(2))
}

func TestGetOrLoadSurvivesLeaderCancel(t *testing.T) {
	c := New(NewMemoryStore(), "", nil)

	started := make(chan struct{})
	release := make(chan struct{})
	loader := func(ctx context.Context) ([]byte, error) {
		close(started)
		select {
		case <-release:
			return []byte("v"), nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	leaderCtx, cancel := context.WithCancel(context.Background())
	leaderErr := make(chan error, 1)
	go func() {
		_, _, err := c.GetOrLoad(leaderCtx, "same", time.Minute, loader)
		leaderErr <- err
	}()
	<-started

	type result struct {
		val string
		err error
	}
	follower := make(chan result, 1)
	go func() {
		v, _, err := c.GetOrLoad(context.Background(), "same", time.Minute, loader)
		follower <- result{string(v), err}
	}()

	// 发起者断开，只影响它自己
	cancel()
	assert.ErrorIs(t, <-leaderErr, context.Canceled)

	close(release)
	got := <-follower
	require.NoError(t, got.err)
	assert.Equal(t, "v", got.val)

	// 加载结果照常写入缓存
	v, hit, err := c.GetOrLoad(context.Background(), "same", time.Minute, loader)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "v", string(v))
}

func TestGetOrLoadTimeout(t *testing.T) {
	c := New(NewMemoryStore(), "", nil)
	c.loadTimeout = 20 * time.Millisecond

	_, _, err := c.GetOrLoad(context.Background(), "slow", time.Minute, func(ctx context.Context) ([]byte, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRedisStoreUnreachable(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond, MaxRetries: -1})
	s := NewRedisStoreWithClient(rdb)
	defer s.Close()

	_, err := s.Get(context.Background(), "k")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrMiss)

	// 存储不可用时 GetOrLoad 仍返回加载结果
	c := New(s, "", nil)
	v, hit, err := c.GetOrLoad(context.Background(), "k", time.Minute, func(context.Context) ([]byte, error) {
		return []byte("fresh"), nil
	})
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "fresh", string(v))
}
