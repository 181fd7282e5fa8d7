package httputil

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// RetryableError wraps an error to indicate it should trigger a retry.
// Wrap transient failures (network timeouts, retryable status codes) with
// this type so that [Retry] knows to attempt the operation again.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// StatusRetryable reports whether an HTTP status code from the clip
// backend is worth retrying: server-side failures and rate limiting.
// Client errors (4xx other than 429) indicate a bad request and must not
// be resubmitted.
func StatusRetryable(code int) bool {
	return code >= http.StatusInternalServerError || code == http.StatusTooManyRequests
}

// backoffCap bounds the doubling delay. Clip generation requests are slow
// already; an uncapped backoff would push the final attempt out by minutes.
const backoffCap = 15 * time.Second

// Retry executes fn up to attempts times, doubling the delay after each
// failed attempt up to backoffCap. Only errors wrapped in [RetryableError]
// are retried; anything else is returned immediately. Returns the last
// error when all attempts fail, or ctx.Err() on cancellation.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		if !errors.As(err, new(*RetryableError)) {
			return err
		}
		lastErr = err

		if attempt == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay = min(delay*2, backoffCap)
	}
	return lastErr
}

// RetryWithBackoff wraps [Retry] with the defaults used for clip backend
// calls: 3 attempts starting at a 1 second delay.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	return Retry(ctx, 3, time.Second, fn)
}
