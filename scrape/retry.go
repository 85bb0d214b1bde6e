package scrape

import (
	"context"
	"time"

	"github.com/apatil/ratewatch"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (*ratewatch.Document, error)

// DefaultRetryDelays returns the backoff delays for connection-level fetch
// retries: 500ms, 1s, 2s. HTTP error statuses never reach this path; the
// fetcher reports them on the document, not as errors.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{500 * time.Millisecond, 1 * time.Second, 2 * time.Second}
}

// FetchWithRetryDelays attempts to fetch a URL, retrying transport
// failures once per delay with the given backoff schedule.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, delays []time.Duration) (*ratewatch.Document, error) {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		doc, err := fetch(ctx, url)
		if err == nil {
			return doc, nil
		}
		lastErr = err

		// Don't retry after the last attempt
		if attempt >= maxAttempts-1 {
			break
		}

		// Wait before next attempt
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}
