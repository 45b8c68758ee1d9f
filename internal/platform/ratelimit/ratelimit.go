// Package ratelimit provides a Redis backed fixed-window rate limiting middleware.
package ratelimit

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"wealth_backend/internal/platform/apperror"
	"wealth_backend/internal/platform/env"
	"wealth_backend/internal/platform/http/response"
)

// ErrRateLimited is returned to clients that exceeded their window.
var ErrRateLimited = apperror.New(apperror.KindRateLimited, "", "rate limit exceeded")

// Config は固定ウィンドウの上限とウィンドウ長です。
type Config struct {
	Max    int
	Window time.Duration
}

// LoadConfigFromEnv reads RATE_LIMIT_MAX (default 10) and RATE_LIMIT_WINDOW (default 1m).
func LoadConfigFromEnv() Config {
	return Config{
		Max:    env.Int("RATE_LIMIT_MAX", 10),
		Window: env.Duration("RATE_LIMIT_WINDOW", time.Minute),
	}
}

// KeyFunc builds a rate-limit key from the request.
type KeyFunc func(c *gin.Context) string

// KeyByIPAndPath limits each client IP separately on each route.
func KeyByIPAndPath() KeyFunc {
	return func(c *gin.Context) string {
		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		return "rl:path:" + path + ":ip:" + ip
	}
}

// incrScript atomically increments the counter, starts the window on the first hit
// and returns {count, remaining ttl in ms}.
var incrScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return {current, redis.call("PTTL", KEYS[1])}
`)

// Middleware returns a gin handler that allows cfg.Max requests per cfg.Window per key.
// A nil client or a non-positive config disables limiting. Redis errors fail open.
func Middleware(rdb *redis.Client, cfg Config, keyFn KeyFunc) gin.HandlerFunc {
	if rdb == nil || cfg.Max <= 0 || cfg.Window <= 0 || keyFn == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, http.MethodOptions) {
			c.Next()
			return
		}

		key := keyFn(c)
		count, ttl, err := hit(c, rdb, key, cfg.Window)
		if err != nil {
			slog.Warn("rate limiter unavailable, allowing request", "error", err, "key", key)
			c.Next()
			return
		}

		resetSec := int((ttl + time.Second - 1) / time.Second)
		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Max))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(max(0, cfg.Max-count)))
		c.Header("X-RateLimit-Reset", strconv.Itoa(resetSec))

		if count > cfg.Max {
			if resetSec > 0 {
				c.Header("Retry-After", strconv.Itoa(resetSec))
			}
			slog.Warn("rate limit exceeded", "key", key, "remote_addr", c.ClientIP())
			response.Error(c, ErrRateLimited)
			return
		}
		c.Next()
	}
}

func hit(c *gin.Context, rdb *redis.Client, key string, window time.Duration) (int, time.Duration, error) {
	res, err := incrScript.Run(c.Request.Context(), rdb, []string{key}, window.Milliseconds()).Result()
	if err != nil {
		return 0, 0, err
	}
	vals, ok := res.([]interface{})
	if !ok || len(vals) != 2 {
		return 0, 0, fmt.Errorf("unexpected script result %v", res)
	}
	count, ok1 := vals[0].(int64)
	pttl, ok2 := vals[1].(int64)
	if !ok1 || !ok2 {
		return 0, 0, fmt.Errorf("unexpected script result %v", res)
	}
	return int(count), time.Duration(max(pttl, 0)) * time.Millisecond, nil
}
