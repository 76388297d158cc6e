// Package store provides the cache-aside backends for assembled search
// responses. The cache holds frozen, already-merged response payloads
// keyed by the full filter-inclusive query key, never intermediate
// per-source results.
package store

import (
	"context"
	"time"
)

// CacheStore is the key-value contract the search pipeline consumes.
// Get returns (nil, nil) on a miss. A backend error is reported so the
// caller can log and degrade; a broken cache must behave like an
// always-miss cache, not fail the request.
type CacheStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// TTLs per result kind. Trial and publication listings change slowly;
// researcher listings fold in connection state and expire faster.
const (
	TrialTTL       = 6 * time.Hour
	PublicationTTL = 6 * time.Hour
	ResearcherTTL  = 1 * time.Hour
)
