package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/Modeva-Ecommerce/marketplace-storefront/models"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateStore counts requests per key in fixed windows.
type RateStore interface {
	// Hit records one request and returns the count so far in the current
	// window together with the moment the window resets.
	Hit(ctx context.Context, key string, window time.Duration) (count int64, resetAt time.Time, err error)
}

// ════════════════════════════════════════════════════════════
// Redis store
// ════════════════════════════════════════════════════════════

type RedisRateStore struct {
	client *redis.Client
}

func NewRedisRateStore(client *redis.Client) *RedisRateStore {
	return &RedisRateStore{client: client}
}

func (s *RedisRateStore) Hit(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	resetKey := key + ":resetAt"

	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("incr %s: %w", key, err)
	}

	// First request → set expiry and stable resetAt
	if count == 1 {
		resetAt := time.Now().Add(window)
		pipe := s.client.TxPipeline()
		pipe.Expire(ctx, key, window)
		pipe.Set(ctx, resetKey, resetAt.Unix(), window)
		if _, err := pipe.Exec(ctx); err != nil {
			return 0, time.Time{}, fmt.Errorf("start window %s: %w", key, err)
		}
		return count, resetAt, nil
	}

	resetAtUnix, err := s.client.Get(ctx, resetKey).Int64()
	if err != nil {
		return count, time.Now().Add(window), nil
	}
	return count, time.Unix(resetAtUnix, 0), nil
}

// ════════════════════════════════════════════════════════════
// In-memory store
// ════════════════════════════════════════════════════════════

const memorySweepThreshold = 10_000

type rateWindow struct {
	count   int64
	resetAt time.Time
}

// MemoryRateStore is the single-process fallback used without Redis.
type MemoryRateStore struct {
	mu      sync.Mutex
	windows map[string]*rateWindow
	now     func() time.Time
}

func NewMemoryRateStore() *MemoryRateStore {
	return &MemoryRateStore{windows: make(map[string]*rateWindow), now: time.Now}
}

func (s *MemoryRateStore) Hit(_ context.Context, key string, window time.Duration) (int64, time.Time, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.windows) >= memorySweepThreshold {
		for k, w := range s.windows {
			if !now.Before(w.resetAt) {
				delete(s.windows, k)
			}
		}
	}

	w, ok := s.windows[key]
	if !ok || !now.Before(w.resetAt) {
		w = &rateWindow{resetAt: now.Add(window)}
		s.windows[key] = w
	}
	w.count++
	return w.count, w.resetAt, nil
}

// ════════════════════════════════════════════════════════════
// Middleware
// ════════════════════════════════════════════════════════════

// RateLimiter allows maxRequests per client IP, method and route in each window.
func RateLimiter(store RateStore, maxRequests int, window time.Duration, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Key is per-IP, per-method, per-endpoint
		key := "rl:" + c.ClientIP() + ":" + c.Request.Method + ":" + c.FullPath()

		count, resetAt, err := store.Hit(c.Request.Context(), key, window)
		if err != nil {
			log.Error("rate limiter store failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Rate limiter unavailable"))
			c.Abort()
			return
		}

		remaining := max(maxRequests-int(count), 0)
		resetInSeconds := max(int(time.Until(resetAt).Seconds()), 0)

		rate := &models.RateLimiter{
			Limit:          maxRequests,
			Remaining:      remaining,
			ResetAt:        resetAt,
			ResetInSeconds: resetInSeconds,
		}
		c.Set(models.ContextKeyRateLimiter, rate)

		if int(count) > maxRequests {
			c.Header("Retry-After", fmt.Sprint(resetInSeconds))
			c.JSON(http.StatusTooManyRequests, models.ApiResponse{
				Message: "Too many requests",
				Error:   true,
				Rate:    rate,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
