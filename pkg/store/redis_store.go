package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medisearch-be/pkg/fedsearch"

	"github.com/redis/go-redis/v9"
)

// RedisStore backs CacheStore with a shared Redis instance. Concurrent
// requests for the same key may both miss and both recompute; no
// single-flight guarantee is made or needed.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

// Backend failures are wrapped in ErrCacheUnavailable so callers can match
// the degrade path with errors.Is.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", fedsearch.ErrCacheUnavailable, err)
	}
	return val, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", fedsearch.ErrCacheUnavailable, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("%w: %v", fedsearch.ErrCacheUnavailable, err)
	}
	return nil
}
