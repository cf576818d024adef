package middleware

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"
)

// RateLimitConfig defines the limit for a specific route or group.
type RateLimitConfig struct {
	Max    int                      // Maximum requests allowed in the window
	Window time.Duration            // Time window for the limit
	KeyFn  func(c fiber.Ctx) string // Returns the key to rate limit on (IP, etc.)
}

// entry tracks request count and window start for a single key.
type entry struct {
	count     int
	windowEnd time.Time
}

// RateLimiter is a sliding-window rate limiter. With a Redis client the
// counters live in Redis so limits hold across replicas; without one (or
// when Redis is unreachable) counting falls back to in-memory per process.
type RateLimiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	config  RateLimitConfig
	rdb     *redis.Client
}

// NewRateLimiter creates a rate limiter with the given config. rdb may be nil.
func NewRateLimiter(cfg RateLimitConfig, rdb *redis.Client) *RateLimiter {
	rl := &RateLimiter{
		entries: make(map[string]*entry),
		config:  cfg,
		rdb:     rdb,
	}
	// Background cleanup every 5 minutes
	go rl.cleanup()
	return rl
}

// Handler returns a Fiber middleware handler that enforces the rate limit.
func (rl *RateLimiter) Handler() fiber.Handler {
	return func(c fiber.Ctx) error {
		key := rl.config.KeyFn(c)
		count, windowEnd := rl.hit(c.Context(), key)
		remaining := rl.config.Max - count

		setRateLimitHeaders(c, rl.config.Max, max(remaining, 0), windowEnd)

		if remaining < 0 {
			retryAfter := int(time.Until(windowEnd).Seconds()) + 1
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": fiber.Map{
					"code":       "RATE_LIMITED",
					"message":    fmt.Sprintf("Too many requests. Try again in %d seconds.", retryAfter),
					"retryAfter": retryAfter,
				},
			})
		}

		return c.Next()
	}
}

func (rl *RateLimiter) hit(ctx context.Context, key string) (int, time.Time) {
	if rl.rdb != nil {
		if count, windowEnd, err := rl.hitRedis(ctx, key); err == nil {
			return count, windowEnd
		}
	}
	return rl.hitLocal(key)
}

func (rl *RateLimiter) hitRedis(ctx context.Context, key string) (int, time.Time, error) {
	rkey := "ratelimit:" + key
	n, err := rl.rdb.Incr(ctx, rkey).Result()
	if err != nil {
		return 0, time.Time{}, err
	}
	if n == 1 {
		rl.rdb.Expire(ctx, rkey, rl.config.Window)
	}
	ttl, err := rl.rdb.TTL(ctx, rkey).Result()
	if err != nil || ttl < 0 {
		ttl = rl.config.Window
	}
	return int(n), time.Now().Add(ttl), nil
}

func (rl *RateLimiter) hitLocal(key string) (int, time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	e, exists := rl.entries[key]
	if !exists || now.After(e.windowEnd) {
		e = &entry{count: 1, windowEnd: now.Add(rl.config.Window)}
		rl.entries[key] = e
		return e.count, e.windowEnd
	}

	e.count++
	return e.count, e.windowEnd
}

// Allow checks if a request with the given key is allowed (for testing).
func (rl *RateLimiter) Allow(key string) bool {
	count, _ := rl.hitLocal(key)
	return count <= rl.config.Max
}

func setRateLimitHeaders(c fiber.Ctx, limit, remaining int, resetAt time.Time) {
	c.Set("X-RateLimit-Limit", fmt.Sprintf("%d", limit))
	c.Set("X-RateLimit-Remaining", fmt.Sprintf("%d", max(remaining, 0)))
	c.Set("X-RateLimit-Reset", fmt.Sprintf("%d", resetAt.Unix()))
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for key, e := range rl.entries {
			if now.After(e.windowEnd) {
				delete(rl.entries, key)
			}
		}
		rl.mu.Unlock()
	}
}

// KeyByIP returns the client IP as the rate limit key.
func KeyByIP(c fiber.Ctx) string {
	return "ip:" + c.IP()
}

// NewRedisClient connects to Redis for distributed rate limiting. Returns
// nil when redisURL is empty or the connection fails; limiters then count
// in-memory.
func NewRedisClient(redisURL string) *redis.Client {
	if redisURL == "" {
		log.Println("redis: no URL configured, rate limits are per-process")
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis: invalid URL %q, rate limits are per-process: %v", redisURL, err)
		return nil
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: connection failed, rate limits are per-process: %v", err)
		return nil
	}

	log.Println("redis: connected, rate limits are shared")
	return rdb
}

// --- Pre-configured rate limiters matching the API surface ---

// NewVideoInfoRateLimiter: 60 req/min per IP
func NewVideoInfoRateLimiter(rdb *redis.Client) *RateLimiter {
	return NewRateLimiter(RateLimitConfig{
		Max:    60,
		Window: time.Minute,
		KeyFn:  KeyByIP,
	}, rdb)
}

// NewChannelAnalysisRateLimiter: 10 req/min per IP. Channel analysis fans
// out into several upstream calls, so this is the tightest limit.
func NewChannelAnalysisRateLimiter(rdb *redis.Client) *RateLimiter {
	return NewRateLimiter(RateLimitConfig{
		Max:    10,
		Window: time.Minute,
		KeyFn:  KeyByIP,
	}, rdb)
}

// NewSearchRateLimiter: 30 req/min per IP
func NewSearchRateLimiter(rdb *redis.Client) *RateLimiter {
	return NewRateLimiter(RateLimitConfig{
		Max:    30,
		Window: time.Minute,
		KeyFn:  KeyByIP,
	}, rdb)
}
