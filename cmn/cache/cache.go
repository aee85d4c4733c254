// Package cache 解读结果的短期缓存，支持内存与 Redis 两种存储
package cache

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"VitaMe/cmn/metrics"
)

// ErrMiss 键不存在或已过期
var ErrMiss = errors.New("cache miss")

// Store 字节级存储
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Loader 未命中时加载数据
type Loader func(ctx context.Context) ([]byte, error)

// defaultLoadTimeout 共享加载的上限，与单个调用方的 ctx 无关
const defaultLoadTimeout = 3 * time.Minute

// Cache 在 Store 之上合并同键的并发加载
type Cache struct {
	store       Store
	prefix      string
	group       singleflight.Group
	logger      *zap.Logger
	loadTimeout time.Duration
}

func New(store Store, prefix string, logger *zap.Logger) *Cache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{store: store, prefix: prefix, logger: logger, loadTimeout: defaultLoadTimeout}
}

func (c *Cache) key(k string) string {
	return c.prefix + k
}

// GetOrLoad Read-Through，hit 表示结果来自缓存。存储读写失败只记录日志，不影响返回。
func (c *Cache) GetOrLoad(ctx context.Context, key string, ttl time.Duration, loader Loader) (val []byte, hit bool, err error) {
	full := c.key(key)

	val, err = c.store.Get(ctx, full)
	if err == nil {
		metrics.CacheLookups.WithLabelValues("hit").Inc()
		return val, true, nil
	}
	if !errors.Is(err, ErrMiss) {
		metrics.CacheLookups.WithLabelValues("error").Inc()
		c.logger.Warn("cache get failed", zap.String("key", full), zap.Error(err))
	} else {
		metrics.CacheLookups.WithLabelValues("miss").Inc()
	}

	// 加载由多个调用方共享，不随发起者的 ctx 取消；每个调用方只按自己的 ctx 放弃等待
	ch := c.group.DoChan(full, func() (interface{}, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.loadTimeout)
		defer cancel()

		// 再次检查，可能已被其他请求填充
		if v, err := c.store.Get(loadCtx, full); err == nil {
			return v, nil
		}

		data, err := loader(loadCtx)
		if err != nil {
			return nil, err
		}

		if err := c.store.Set(loadCtx, full, data, ttl); err != nil {
			c.logger.Warn("cache set failed", zap.String("key", full), zap.Error(err))
		}
		return data, nil
	})

	select {
	case <-ctx.Done():
		return nil, false, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, false, res.Err
		}
		if res.Shared {
			c.logger.Debug("cache load shared", zap.String("key", full))
		}
		return res.Val.([]byte), false, nil
	}
}

// Invalidate 删除缓存
func (c *Cache) Invalidate(ctx context.Context, key string) error {
	return c.store.Delete(ctx, c.key(key))
}
