package reading

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"VitaMe/cmn"
)

const (
	// limiterIdle 超过该时长未访问的客户端限流器会被清理
	limiterIdle   = 10 * time.Minute
	// sweepInterval 两次清理的最小间隔
	sweepInterval = time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter 按客户端 IP 的令牌桶限流
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	now      func() time.Time

	lastSweep time.Time
}

// NewRateLimiter perMinute <= 0 时不限流
func NewRateLimiter(perMinute, burst int) *RateLimiter {
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Limit(float64(perMinute) / 60.0)
	}
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		burst:    burst,
		now:      time.Now,
	}
}

func (l *RateLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now

	if now.Sub(l.lastSweep) >= sweepInterval {
		l.sweep(now)
	}

	return v.limiter.AllowN(now, 1)
}

// sweep 调用方需持有锁
func (l *RateLimiter) sweep(now time.Time) {
	for k, v := range l.visitors {
		if now.Sub(v.lastSeen) > limiterIdle {
			delete(l.visitors, k)
		}
	}
	l.lastSweep = now
}

// Middleware 超限时返回 429
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !l.allow(ip) {
			z.Warn("rate limited", zap.String("ip", ip), zap.String("path", c.FullPath()))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, cmn.ReplyProto{
				Status: cmn.StatusLimited,
				Msg:    "请求过于频繁，请稍后再试",
			})
			return
		}
		c.Next()
	}
}

// RateLimit 使用 reading.rateLimit.* 配置
func RateLimit() gin.HandlerFunc {
	return NewRateLimiter(rateLimitPerMinute, rateLimitBurst).Middleware()
}
