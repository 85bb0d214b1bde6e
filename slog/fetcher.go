// Package slog provides logging decorators for pipeline components.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/apatil/ratewatch"
)

// Ensure LoggingFetcher implements ratewatch.Fetcher.
var _ ratewatch.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with request outcome logging: status,
// byte length, and duration per request. Diagnostic only; it changes no
// behavior of the wrapped fetcher.
type LoggingFetcher struct {
	next   ratewatch.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next ratewatch.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (*ratewatch.Document, error) {
	begin := time.Now()
	doc, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Warn("request failed",
			"url", url,
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}

	f.logger.Debug("request",
		"url", url,
		"status", doc.StatusCode,
		"bytes", len(doc.Body),
		"content_type", doc.ContentType,
		"duration", time.Since(begin),
	)
	return doc, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
