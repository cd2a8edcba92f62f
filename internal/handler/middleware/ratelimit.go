package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/aljonb/sched/internal/handler/httperr"
	"github.com/aljonb/sched/internal/pkg/clock"
	"github.com/aljonb/sched/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

const (
	defaultPerMinute = 30
	rateLimitWindow  = time.Minute
	rateLimitPrefix  = "rl:booking"
)

// RateLimiter reports whether one more request for key fits the budget.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RedisRateLimiter is a fixed window shared by every instance.
type RedisRateLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
	prefix string
}

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

func NewRedisRateLimiter(rdb *redis.Client, limit int, window time.Duration, prefix string) *RedisRateLimiter {
	if limit <= 0 {
		limit = defaultPerMinute
	}
	if window <= 0 {
		window = rateLimitWindow
	}
	return &RedisRateLimiter{rdb: rdb, limit: limit, window: window, prefix: prefix}
}

func (r *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	res, err := fixedWindowScript.Run(ctx, r.rdb, []string{r.prefix + ":" + key}, r.window.Milliseconds()).Result()
	if err != nil {
		return false, err
	}
	var count int64
	switch v := res.(type) {
	case int64:
		count = v
	case string:
		if count, err = strconv.ParseInt(v, 10, 64); err != nil {
			return false, err
		}
	default:
		return false, fmt.Errorf("unexpected rate limit script result %T", res)
	}
	return count <= int64(r.limit), nil
}

// LocalRateLimiter keeps a token bucket per key in process memory. Used when
// Redis is not configured. A bucket idle for a full window has refilled, so
// it is dropped on the next sweep and the map stays bounded by active keys.
type LocalRateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*localBucket
	limit     rate.Limit
	burst     int
	clock     clock.Clock
	lastSweep time.Time
}

type localBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewLocalRateLimiter(perMinute int) *LocalRateLimiter {
	return NewLocalRateLimiterWithClock(perMinute, clock.NewRealClock())
}

func NewLocalRateLimiterWithClock(perMinute int, clk clock.Clock) *LocalRateLimiter {
	if perMinute <= 0 {
		perMinute = defaultPerMinute
	}
	return &LocalRateLimiter{
		limiters:  make(map[string]*localBucket),
		limit:     rate.Every(rateLimitWindow / time.Duration(perMinute)),
		burst:     perMinute,
		clock:     clk,
		lastSweep: clk.Now(),
	}
}

func (l *LocalRateLimiter) Allow(_ context.Context, key string) (bool, error) {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) >= rateLimitWindow {
		l.sweep(now)
	}
	b, ok := l.limiters[key]
	if !ok {
		b = &localBucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[key] = b
	}
	b.lastSeen = now
	return b.limiter.AllowN(now, 1), nil
}

// Len reports how many keys currently hold a bucket.
func (l *LocalRateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

func (l *LocalRateLimiter) sweep(now time.Time) {
	for key, b := range l.limiters {
		if now.Sub(b.lastSeen) >= rateLimitWindow {
			delete(l.limiters, key)
		}
	}
	l.lastSweep = now
}

func NewRateLimiter(rdb *redis.Client, cfg config.RateLimitConfig) RateLimiter {
	if rdb != nil {
		slog.Info("rate limiting enabled (redis)", "per_minute", cfg.PerMinute)
		return NewRedisRateLimiter(rdb, cfg.PerMinute, rateLimitWindow, rateLimitPrefix)
	}
	slog.Info("rate limiting enabled (in-memory)", "per_minute", cfg.PerMinute)
	return NewLocalRateLimiter(cfg.PerMinute)
}

// RateLimit keys requests by client IP. With failOpen a limiter error lets
// the request through.
func RateLimit(limiter RateLimiter, failOpen bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		allowed, err := limiter.Allow(c.Request.Context(), ip)
		if err != nil {
			slog.Warn("rate limiter error", "client_ip", ip, "error", err.Error())
			if failOpen {
				c.Next()
				return
			}
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Rate limiter unavailable", nil)
			return
		}
		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(rateLimitWindow.Seconds())))
			httperr.AbortWithCode(c, http.StatusTooManyRequests, nil, "rate_limited", "Rate limit exceeded", nil)
			return
		}
		c.Next()
	}
}
