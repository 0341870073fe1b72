package scrape

import (
	"context"
	"time"

	"github.com/fwojciec/contacts"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetry calls fetch once and then once more per delay, sleeping
// delays[i] before retry i. Only transient failures (timeouts and
// connection errors) are retried; HTTP status and request errors are
// returned immediately.
func FetchWithRetry(ctx context.Context, url string, fetch FetchFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if !contacts.IsTransient(err) || attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return "", contacts.Errorf(contacts.EREQUEST, "fetch of %s canceled: %v", url, ctx.Err())
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
