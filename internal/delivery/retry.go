package delivery

import (
	"context"
	"errors"
	"time"
)

// BackoffPolicy bounds a retryable unit of work: at most MaxAttempts calls,
// with the delay doubling from BaseDelay between consecutive attempts.
type BackoffPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	CallTimeout time.Duration
}

// PermanentError marks a failure that must not be retried, e.g. an explicit
// rejection by the remote gateway.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string {
	return e.Err.Error()
}

func (e *PermanentError) Unwrap() error {
	return e.Err
}

func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &PermanentError{Err: err}
}

func IsPermanent(err error) bool {
	var pe *PermanentError
	return errors.As(err, &pe)
}

// Retry runs op until it succeeds, returns a permanent error, or the attempt
// budget is exhausted. Each call gets its own timeout so a hung channel
// cannot stall a worker indefinitely. The number of attempts actually made is
// returned alongside the final error.
func Retry(ctx context.Context, policy BackoffPolicy, op func(ctx context.Context) error) (int, error) {
	maxAttempts := policy.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 1
	}

	delay := policy.BaseDelay
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		lastErr = runWithTimeout(ctx, policy.CallTimeout, op)
		if lastErr == nil {
			return attempt, nil
		}
		if IsPermanent(lastErr) {
			return attempt, lastErr
		}
		if attempt == maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return attempt, ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}

	return maxAttempts, lastErr
}

func runWithTimeout(ctx context.Context, timeout time.Duration, op func(ctx context.Context) error) error {
	if timeout <= 0 {
		return op(ctx)
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return op(callCtx)
}
