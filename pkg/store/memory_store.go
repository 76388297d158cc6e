package store

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore backs CacheStore with an in-process go-cache instance. Used
// when Redis is unreachable at boot and in tests; entries are lost on
// restart, which the cache-aside pattern tolerates by recomputing.
type MemoryStore struct {
	cache *gocache.Cache
}

func NewMemoryStore() *MemoryStore {
	// Default expiration is overridden per Set; purge sweep every 10 min.
	return &MemoryStore{cache: gocache.New(1*time.Hour, 10*time.Minute)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	if v, found := s.cache.Get(key); found {
		return v.([]byte), nil
	}
	return nil, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.cache.Set(key, value, ttl)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.cache.Delete(key)
	return nil
}
