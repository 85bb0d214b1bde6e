// Package scrape orchestrates the rate extraction pipeline: it fetches
// each categorized URL entry, dispatches the fetched document to the
// extractor for its format, and collects typed per-entry outcomes.
package scrape

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/apatil/ratewatch"
	"golang.org/x/sync/errgroup"
)

// Scraper runs the fetch-and-extract pipeline over URL entries.
//
// Entries are processed sequentially unless Concurrency raises the limit;
// the registries shared by the extractors are immutable, so any
// concurrency setting is safe. No exception to either rule may escape an
// entry: a single bad source yields a failed Outcome, never an aborted run.
type Scraper struct {
	Fetcher    ratewatch.Fetcher
	Extractors map[ratewatch.Kind]ratewatch.Extractor

	// Limiter, when set, bounds the request rate per host.
	Limiter *HostLimiter

	// Concurrency bounds parallel entries. Zero or negative means
	// sequential processing.
	Concurrency int

	// RetryDelays overrides the connection-retry backoff schedule.
	RetryDelays []time.Duration

	// Snapshots and Converter, when both set, store a markdown snapshot
	// of every fetched HTML page. Snapshot failures are logged, never
	// fatal.
	Snapshots ratewatch.SnapshotService
	Converter ratewatch.Converter

	Logger *slog.Logger
}

// Run scans all entries and returns one Outcome per entry, in entry order.
// A canceled context stops scheduling new entries; entries already in
// flight finish or fail with the context error.
func (s *Scraper) Run(ctx context.Context, entries []ratewatch.Entry) []Outcome {
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	outcomes := make([]Outcome, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, entry := range entries {
		g.Go(func() error {
			outcomes[i] = s.processEntry(gctx, entry)
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

// processEntry fetches and extracts a single entry.
func (s *Scraper) processEntry(ctx context.Context, entry ratewatch.Entry) Outcome {
	outcome := Outcome{Entry: entry}

	if s.Limiter != nil {
		if err := s.Limiter.Wait(ctx, hostOf(entry.URL)); err != nil {
			outcome.Status = StatusFailed
			outcome.Err = err
			return outcome
		}
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	doc, err := FetchWithRetryDelays(ctx, entry.URL, s.Fetcher.Fetch, delays)
	if err != nil {
		s.logger().Warn("fetch failed", "url", entry.URL, "error", err)
		outcome.Status = StatusFailed
		outcome.Err = err
		return outcome
	}

	kind := doc.Kind()
	s.logger().Info("fetched",
		"url", entry.URL,
		"status", doc.StatusCode,
		"bytes", len(doc.Body),
		"kind", kind,
	)

	extractor, ok := s.Extractors[kind]
	if !ok {
		// No extractor for the format is a no-op, not a failure.
		outcome.Status = StatusNoSignal
		return outcome
	}

	records, err := extractor.Extract(doc, entry)
	if err != nil {
		s.logger().Warn("extraction failed", "url", entry.URL, "kind", kind, "error", err)
		outcome.Status = StatusFailed
		outcome.Err = err
		return outcome
	}

	if kind == ratewatch.KindHTML {
		s.snapshot(ctx, doc)
	}

	s.logger().Info("extracted", "url", entry.URL, "records", len(records))

	if len(records) == 0 {
		outcome.Status = StatusNoSignal
		return outcome
	}

	outcome.Status = StatusExtracted
	outcome.Records = records
	return outcome
}

// snapshot stores a markdown rendering of a fetched HTML page.
func (s *Scraper) snapshot(ctx context.Context, doc *ratewatch.Document) {
	if s.Snapshots == nil || s.Converter == nil {
		return
	}

	markdown, err := s.Converter.Convert(string(doc.Body))
	if err != nil {
		s.logger().Warn("snapshot conversion failed", "url", doc.URL, "error", err)
		return
	}

	snap := &ratewatch.Snapshot{URL: doc.URL, Markdown: markdown}
	if err := s.Snapshots.SaveSnapshot(ctx, snap); err != nil {
		s.logger().Warn("snapshot save failed", "url", doc.URL, "error", err)
	}
}

func (s *Scraper) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// hostOf extracts the host of a URL for rate limiting. Unparseable URLs
// share one bucket; they will fail at fetch time anyway.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
