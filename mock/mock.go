// Package mock provides mock implementations of ratewatch interfaces for
// testing.
package mock

import (
	"context"

	"github.com/apatil/ratewatch"
)

// Compile-time interface verification.
var (
	_ ratewatch.Fetcher         = (*Fetcher)(nil)
	_ ratewatch.Extractor       = (*Extractor)(nil)
	_ ratewatch.TextExtractor   = (*TextExtractor)(nil)
	_ ratewatch.Converter       = (*Converter)(nil)
	_ ratewatch.URLSource       = (*URLSource)(nil)
	_ ratewatch.RecordWriter    = (*RecordWriter)(nil)
	_ ratewatch.RunService      = (*RunService)(nil)
	_ ratewatch.SnapshotService = (*SnapshotService)(nil)
)

// Fetcher is a mock implementation of ratewatch.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*ratewatch.Document, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*ratewatch.Document, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}

// Extractor is a mock implementation of ratewatch.Extractor.
type Extractor struct {
	ExtractFn func(doc *ratewatch.Document, entry ratewatch.Entry) ([]ratewatch.Record, error)
}

func (e *Extractor) Extract(doc *ratewatch.Document, entry ratewatch.Entry) ([]ratewatch.Record, error) {
	return e.ExtractFn(doc, entry)
}

// TextExtractor is a mock implementation of ratewatch.TextExtractor.
type TextExtractor struct {
	TextFn func(html string) (string, error)
}

func (e *TextExtractor) Text(html string) (string, error) {
	return e.TextFn(html)
}

// Converter is a mock implementation of ratewatch.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

// URLSource is a mock implementation of ratewatch.URLSource.
type URLSource struct {
	ReadEntriesFn func(ctx context.Context, categories []string) ([]ratewatch.Entry, error)
}

func (s *URLSource) ReadEntries(ctx context.Context, categories []string) ([]ratewatch.Entry, error) {
	return s.ReadEntriesFn(ctx, categories)
}

// RecordWriter is a mock implementation of ratewatch.RecordWriter.
type RecordWriter struct {
	WriteRecordsFn func(ctx context.Context, records []ratewatch.Record) error
}

func (w *RecordWriter) WriteRecords(ctx context.Context, records []ratewatch.Record) error {
	return w.WriteRecordsFn(ctx, records)
}

// RunService is a mock implementation of ratewatch.RunService.
type RunService struct {
	CreateRunFn   func(ctx context.Context, run *ratewatch.Run, records []ratewatch.Record) error
	FindRunsFn    func(ctx context.Context) ([]*ratewatch.Run, error)
	FindRecordsFn func(ctx context.Context, filter ratewatch.RecordFilter) ([]ratewatch.Record, error)
}

func (s *RunService) CreateRun(ctx context.Context, run *ratewatch.Run, records []ratewatch.Record) error {
	return s.CreateRunFn(ctx, run, records)
}

func (s *RunService) FindRuns(ctx context.Context) ([]*ratewatch.Run, error) {
	return s.FindRunsFn(ctx)
}

func (s *RunService) FindRecords(ctx context.Context, filter ratewatch.RecordFilter) ([]ratewatch.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

// SnapshotService is a mock implementation of ratewatch.SnapshotService.
type SnapshotService struct {
	SaveSnapshotFn func(ctx context.Context, snap *ratewatch.Snapshot) error
}

func (s *SnapshotService) SaveSnapshot(ctx context.Context, snap *ratewatch.Snapshot) error {
	return s.SaveSnapshotFn(ctx, snap)
}
