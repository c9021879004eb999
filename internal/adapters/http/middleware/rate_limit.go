// Package middleware - Rate Limiting middleware.
//
// Fixed window counter keyed by client IP (or a custom key). The counter
// lives either in process memory or in Redis; Redis makes the limit hold
// across replicas.
package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitConfig configures the rate limiting middleware.
type RateLimitConfig struct {
	// Limit is the number of requests allowed per window.
	Limit int
	// Window is the counting window.
	Window time.Duration
	// KeyFunc derives the limiting key. Defaults to the client IP.
	KeyFunc func(*gin.Context) string
	// Store holds the counters. Defaults to an in-memory store.
	Store RateLimitStore
	// OnLimitReached is called when a request is rejected.
	OnLimitReached func(*gin.Context)
}

// DefaultRateLimitConfig allows 100 requests per minute per client IP.
func DefaultRateLimitConfig() *RateLimitConfig {
	return &RateLimitConfig{
		Limit:  100,
		Window: time.Minute,
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
}

// ============================================
// Stores
// ============================================

// RateLimitStore counts requests per key within a fixed window.
type RateLimitStore interface {
	// Incr bumps the counter for key and returns its value together with
	// the time left until the window resets.
	Incr(ctx context.Context, key string, window time.Duration) (int, time.Duration, error)
}

// memoryStore keeps the counters in process memory.
type memoryStore struct {
	mu      sync.Mutex
	windows map[string]*window
}

type window struct {
	count   int
	started time.Time
}

// NewMemoryStore builds an in-memory rate limit store. Stale windows are
// evicted by a background goroutine.
func NewMemoryStore(windowSize time.Duration) RateLimitStore {
	s := &memoryStore{windows: make(map[string]*window)}
	go s.cleanup(windowSize)
	return s
}

func (s *memoryStore) Incr(_ context.Context, key string, windowSize time.Duration) (int, time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	w, exists := s.windows[key]
	if !exists || now.Sub(w.started) >= windowSize {
		s.windows[key] = &window{count: 1, started: now}
		return 1, windowSize, nil
	}

	w.count++
	return w.count, windowSize - now.Sub(w.started), nil
}

func (s *memoryStore) cleanup(windowSize time.Duration) {
	ticker := time.NewTicker(windowSize * 2)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		now := time.Now()
		for key, w := range s.windows {
			if now.Sub(w.started) > windowSize*2 {
				delete(s.windows, key)
			}
		}
		s.mu.Unlock()
	}
}

// redisStore keeps the counters in Redis so that all replicas share them.
type redisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore builds a Redis-backed rate limit store.
func NewRedisStore(client *redis.Client) RateLimitStore {
	return &redisStore{client: client, prefix: "ratelimit:"}
}

func (s *redisStore) Incr(ctx context.Context, key string, windowSize time.Duration) (int, time.Duration, error) {
	redisKey := s.prefix + key

	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.ExpireNX(ctx, redisKey, windowSize)
	ttl := pipe.TTL(ctx, redisKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, 0, err
	}

	retryAfter := ttl.Val()
	if retryAfter < 0 {
		retryAfter = windowSize
	}
	return int(incr.Val()), retryAfter, nil
}

// ============================================
// Middleware
// ============================================

// RateLimit rejects requests above the configured rate with 429.
//
// Headers:
// - X-RateLimit-Limit: requests allowed per window
// - X-RateLimit-Remaining: requests left in the current window
// - X-RateLimit-Reset: window reset time (Unix timestamp)
// - Retry-After: seconds until reset (on 429)
func RateLimit(config *RateLimitConfig) gin.HandlerFunc {
	if config == nil {
		config = DefaultRateLimitConfig()
	}
	if config.KeyFunc == nil {
		config.KeyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}
	if config.Store == nil {
		config.Store = NewMemoryStore(config.Window)
	}

	return func(c *gin.Context) {
		key := config.KeyFunc(c)

		count, retryAfter, err := config.Store.Incr(c.Request.Context(), key, config.Window)
		if err != nil {
			// A broken store must not take the API down
			c.Next()
			return
		}

		remaining := config.Limit - count
		if remaining < 0 {
			remaining = 0
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(retryAfter).Unix(), 10))

		if count > config.Limit {
			retrySeconds := int(retryAfter.Seconds())
			if retrySeconds < 1 {
				retrySeconds = 1
			}
			c.Header("Retry-After", strconv.Itoa(retrySeconds))

			if config.OnLimitReached != nil {
				config.OnLimitReached(c)
			}

			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error": gin.H{
					"code":        "TOO_MANY_REQUESTS",
					"message":     "Rate limit exceeded, please try again later",
					"retry_after": retrySeconds,
				},
				"request_id": GetRequestID(c),
				"timestamp":  time.Now().UTC(),
			})
			return
		}

		c.Next()
	}
}

// ============================================
// Endpoint-specific rate limiters
// ============================================

// LoginRateLimit applies a stricter limit to the credential endpoints,
// keyed by IP and path so that login attempts do not consume the quota
// of other endpoints.
func LoginRateLimit(store RateLimitStore) gin.HandlerFunc {
	return RateLimit(&RateLimitConfig{
		Limit:  10,
		Window: time.Minute,
		Store:  store,
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP() + ":" + c.Request.URL.Path
		},
	})
}
