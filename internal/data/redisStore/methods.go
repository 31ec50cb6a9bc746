package redisStore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// IncrWithExpiry increments key and (re)sets its ttl in one MULTI, so a
// counter never outlives ttl after its last hit.
func (s *Store) IncrWithExpiry(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	var incr *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return incr.Val(), nil
}
