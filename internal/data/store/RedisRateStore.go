package store

import (
	"context"
	"fmt"
	"time"

	"github.com/akolanti/DocBridgeAPI/internal/config"
	"github.com/akolanti/DocBridgeAPI/internal/data/redisStore"
	"github.com/akolanti/DocBridgeAPI/pkg/logger_i"
)

const rateKeyPrefix = "ratelimit:"

// RedisRateStore is a fixed window request counter shared by every instance
// behind the same redis. Each key may make limit requests per window.
type RedisRateStore struct {
	store  *redisStore.Store
	limit  int64
	window time.Duration
	now    func() time.Time
	logger *logger_i.Logger
}

// GetRedisRateStore returns nil when redis is offline; callers fall back to the in-memory limiter.
func GetRedisRateStore(ctx context.Context, addr string, limit int, window time.Duration) *RedisRateStore {
	s := redisStore.GetRedisStore(ctx, addr, config.RedisRateStore)
	if s == nil {
		return nil
	}
	return newRedisRateStore(s, limit, window, time.Now)
}

func newRedisRateStore(s *redisStore.Store, limit int, window time.Duration, now func() time.Time) *RedisRateStore {
	if window <= 0 {
		window = config.RateLimitWindow
	}
	return &RedisRateStore{
		store:  s,
		limit:  int64(limit),
		window: window,
		now:    now,
		logger: logger_i.NewLogger("RateStore"),
	}
}

func (s *RedisRateStore) Allow(ctx context.Context, key string) (bool, error) {
	windowKey := s.windowKey(key)
	count, err := s.store.IncrWithExpiry(ctx, windowKey, 2*s.window)
	if err != nil {
		return false, err
	}
	if count > s.limit {
		s.logger.ForContext(ctx).Debug("rate limit hit", "key", key, "count", count)
		return false, nil
	}
	return true, nil
}

func (s *RedisRateStore) windowKey(key string) string {
	return fmt.Sprintf("%s%s:%d", rateKeyPrefix, key, s.now().UnixNano()/int64(s.window))
}

// TestRateStore builds a store over an existing redis connection with a controllable clock.
func TestRateStore(s *redisStore.Store, limit int, window time.Duration, now func() time.Time) *RedisRateStore {
	return newRedisRateStore(s, limit, window, now)
}
