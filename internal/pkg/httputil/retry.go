// Package httputil provides HTTP helpers shared by the provider adapters.
package httputil

import (
	"context"
	"io"
	"math"
	"net/http"
	"time"
)

// RetryBaseDelay is the base duration for exponential backoff on HTTP 429.
// A var so tests can shrink it to avoid real sleeps.
var RetryBaseDelay = 250 * time.Millisecond

const defaultMaxRetries = 2

// DoWithRetry executes a request and retries on HTTP 429 with exponential
// backoff. Retries are deliberately few: provider calls run inside one
// search request's latency budget, and a source that stays rate limited
// simply fails its fan-out leg. When maxRetries is 0 the default (2) is
// used. If the context is cancelled during a backoff wait, ctx.Err() is
// returned. After exhausting retries the last 429 response is returned so
// the caller can inspect it.
func DoWithRetry(ctx context.Context, client *http.Client, req *http.Request, maxRetries int) (*http.Response, error) {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	for attempt := 0; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}
		if attempt >= maxRetries {
			return resp, nil
		}

		// Drain and close the body before retrying.
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		backoff := time.Duration(math.Pow(2, float64(attempt))) * RetryBaseDelay
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}
