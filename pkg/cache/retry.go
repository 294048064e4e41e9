package cache

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable marks a backend that could not be reached. Redis calls
// that fail with it were retried before giving up.
var ErrUnavailable = errors.New("cache backend unavailable")

// transient marks an error worth another attempt.
type transient struct{ err error }

func (t transient) Error() string { return t.err.Error() }
func (t transient) Unwrap() error { return t.err }

func retryable(err error) error {
	if err == nil {
		return nil
	}
	return transient{err}
}

func isTransient(err error) bool {
	var t transient
	return errors.As(err, &t)
}

const retryAttempts = 3

// retryBase is the first backoff step; tests shorten it.
var retryBase = 200 * time.Millisecond

// withRetry runs fn until it succeeds, fails with a non-transient error, or
// retryAttempts runs are used. The wait doubles after each failure.
func withRetry(ctx context.Context, fn func() error) error {
	wait := retryBase
	var err error
	for attempt := 1; ; attempt++ {
		if err = fn(); err == nil || !isTransient(err) || attempt == retryAttempts {
			return err
		}
		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
		wait *= 2
	}
}
