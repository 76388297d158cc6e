package fedsearch

import "errors"

// ErrInvalidQuery is the only error surfaced to the caller (as a 400).
// Every other failure in the pipeline degrades to fewer results.
var ErrInvalidQuery = errors.New("a condition or keyword is required")

// ErrSourceUnavailable marks a single adapter failure. It is swallowed by
// the orchestrator, logged with the source name, and never propagated.
var ErrSourceUnavailable = errors.New("source unavailable")

// ErrCacheUnavailable marks a cache backend failure. Reads degrade to a
// miss and writes are skipped; the request itself must not fail.
var ErrCacheUnavailable = errors.New("cache unavailable")
