package ratewatch

import "context"

// Entry is one categorized URL to scan, produced by a URL source.
type Entry struct {
	Category string
	URL      string
}

// URLSource yields the categorized URL entries to scan. When categories is
// non-empty only entries in those categories are returned.
type URLSource interface {
	ReadEntries(ctx context.Context, categories []string) ([]Entry, error)
}

// RecordWriter persists a final result set.
type RecordWriter interface {
	WriteRecords(ctx context.Context, records []Record) error
}
