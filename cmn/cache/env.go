package cache

import (
	"context"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"VitaMe/cmn"
)

const keyPrefix = "vitame:"

// FromConfig 按 cache.driver 选择存储；redis 不可用时退回内存存储
func FromConfig(ctx context.Context) *Cache {
	z := cmn.GetLogger()

	driver := viper.GetString("cache.driver")
	switch driver {
	case "redis":
		var cfg RedisConfig
		if err := viper.UnmarshalKey("cache.redis", &cfg); err != nil {
			z.Error("failed to unmarshal cache.redis, falling back to memory", zap.Error(err))
			break
		}
		store, err := NewRedisStore(ctx, cfg)
		if err != nil {
			z.Error("redis unavailable, falling back to memory", zap.String("addr", cfg.Addr()), zap.Error(err))
			break
		}
		cmn.MiniLogger.Info("[ OK ] cache module initialed", zap.String("driver", "redis"), zap.String("addr", cfg.Addr()))
		return New(store, keyPrefix, z)
	case "", "memory":
	default:
		z.Warn("unknown cache driver, using memory", zap.String("driver", driver))
	}

	cmn.MiniLogger.Info("[ OK ] cache module initialed", zap.String("driver", "memory"))
	return New(NewMemoryStore(), keyPrefix, z)
}
