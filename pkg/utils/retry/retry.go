package retry

import (
	"context"
	"errors"
	"time"
)

// ErrRetry marks an error as retryable.
//
// Wrap it into errors returned from functions passed to Blocking.
var ErrRetry = errors.New("retry")

// Backoff waits before the next attempt.
//
// It returns ctx.Err() when the context is done before the wait ends.
type Backoff func(context.Context) error

// StaticBackoff waits for interval on each call.
func StaticBackoff(interval time.Duration) Backoff {
	return ExponentialBackoff(interval, 1, interval)
}

// ExponentialBackoff waits for initial at first, and then multiplies the interval by r.
//
// The interval never exceeds max.
func ExponentialBackoff(initial time.Duration, r float64, max time.Duration) Backoff {
	interval := initial
	return func(ctx context.Context) error {
		timer := time.NewTimer(interval)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}

		next := time.Duration(float64(interval) * r)
		if max < next {
			next = max
		}
		interval = next
		return nil
	}
}

// Blocking calls f until it succeeds or returns an error not wrapping ErrRetry.
//
// The first call is made immediately, and b is waited between calls.
// When b fails, Blocking returns the last error of f joined with the error of b.
func Blocking[T any](ctx context.Context, b Backoff, f func() (T, error)) (T, error) {
	for {
		v, err := f()
		if err == nil {
			return v, nil
		}
		if !errors.Is(err, ErrRetry) {
			return v, err
		}
		if berr := b(ctx); berr != nil {
			return v, errors.Join(err, berr)
		}
	}
}
