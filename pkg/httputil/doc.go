// Package httputil provides HTTP utilities for external service clients.
//
// The clip-generation backend is an external HTTP service; calls to it can
// fail transiently (network errors, 5xx responses, rate limits). [Retry]
// wraps such calls with exponential backoff so callers distinguish
// transient failures from permanent ones:
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    resp, err := client.Do(req)
//	    if err != nil {
//	        return &httputil.RetryableError{Err: err}
//	    }
//	    defer resp.Body.Close()
//	    if httputil.StatusRetryable(resp.StatusCode) {
//	        return &httputil.RetryableError{Err: fmt.Errorf("status %d", resp.StatusCode)}
//	    }
//	    return handle(resp)
//	})
//
// Errors not wrapped in [RetryableError] abort immediately.
package httputil
