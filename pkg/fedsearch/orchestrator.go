package fedsearch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sony/gobreaker"
)

// Source fetches canonical records from exactly one upstream provider or
// the local store. Implementations must honor ctx cancellation and return
// an error instead of partial garbage; the orchestrator turns any error
// into an empty contribution.
type Source[T any] interface {
	Name() string
	Fetch(ctx context.Context, q Query) ([]T, error)
}

// DefaultFanOutTimeout bounds how long one request waits for its slowest
// source before settling with whatever has returned.
const DefaultFanOutTimeout = 10 * time.Second

// FanOutResult is what one request's fan-out settles to: the merged record
// list plus one warning per failed source. A failed source contributes
// zero records and never voids the batch.
type FanOutResult[T any] struct {
	Records  []T
	Warnings []string
}

// FanOut invokes every applicable source concurrently and waits for all of
// them to settle (success or failure) within timeout. Ordering between
// sources is not guaranteed; determinism is restored by the ranker.
func FanOut[T any](ctx context.Context, q Query, sources []Source[T], timeout time.Duration) FanOutResult[T] {
	if timeout <= 0 {
		timeout = DefaultFanOutTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type settled struct {
		name    string
		records []T
		err     error
	}

	ch := make(chan settled, len(sources))
	var wg sync.WaitGroup
	for _, src := range sources {
		wg.Add(1)
		go func(src Source[T]) {
			defer wg.Done()
			records, err := src.Fetch(ctx, q)
			ch <- settled{name: src.Name(), records: records, err: err}
		}(src)
	}

	go func() {
		wg.Wait()
		close(ch)
	}()

	var out FanOutResult[T]
	for s := range ch {
		if s.err != nil {
			out.Warnings = append(out.Warnings, fmt.Sprintf("%s: %v", s.name, s.err))
			continue
		}
		out.Records = append(out.Records, s.records...)
	}
	return out
}

// failoverSource tries a primary source and, only when it errors, falls
// back to a secondary answering the identical query. The two run
// sequentially inside one fan-out leg: fanning both out in parallel would
// burn a connection for no benefit. A circuit breaker around the primary
// skips a registry that is known to be down.
type failoverSource[T any] struct {
	primary   Source[T]
	secondary Source[T]
	breaker   *gobreaker.CircuitBreaker
}

// NewFailoverSource wraps primary with a sequential fallback to secondary.
func NewFailoverSource[T any](primary, secondary Source[T]) Source[T] {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    primary.Name(),
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})
	return &failoverSource[T]{primary: primary, secondary: secondary, breaker: breaker}
}

func (s *failoverSource[T]) Name() string {
	return s.primary.Name()
}

func (s *failoverSource[T]) Fetch(ctx context.Context, q Query) ([]T, error) {
	records, err := s.breaker.Execute(func() (interface{}, error) {
		return s.primary.Fetch(ctx, q)
	})
	if err == nil {
		return records.([]T), nil
	}
	fallback, ferr := s.secondary.Fetch(ctx, q)
	if ferr != nil {
		return nil, fmt.Errorf("primary: %v; fallback %s: %w", err, s.secondary.Name(), ferr)
	}
	return fallback, nil
}
