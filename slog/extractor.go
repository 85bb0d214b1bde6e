package slog

import (
	"log/slog"
	"time"

	"github.com/apatil/ratewatch"
)

// Ensure LoggingExtractor implements ratewatch.Extractor.
var _ ratewatch.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with per-document extraction logging.
type LoggingExtractor struct {
	next   ratewatch.Extractor
	kind   ratewatch.Kind
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor. The kind labels log
// lines so the three extractors are distinguishable in output.
func NewLoggingExtractor(next ratewatch.Extractor, kind ratewatch.Kind, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, kind: kind, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(doc *ratewatch.Document, entry ratewatch.Entry) ([]ratewatch.Record, error) {
	begin := time.Now()
	records, err := e.next.Extract(doc, entry)
	if err != nil {
		e.logger.Warn("extraction failed",
			"kind", e.kind,
			"url", doc.URL,
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}

	e.logger.Debug("extraction",
		"kind", e.kind,
		"url", doc.URL,
		"records", len(records),
		"duration", time.Since(begin),
	)
	return records, nil
}
