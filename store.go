package ratewatch

import (
	"context"
	"time"
)

// Run represents one completed scan persisted for batch-run history.
type Run struct {
	ID          string    `json:"id"`
	Query       string    `json:"query"`
	EntryCount  int       `json:"entryCount"`
	RecordCount int       `json:"recordCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// RecordFilter selects persisted records.
type RecordFilter struct {
	RunID        *string
	LoanCategory *string
	Bank         *string

	Limit int
}

// RunService persists scan runs and their records.
type RunService interface {
	// CreateRun stores a run together with its records.
	CreateRun(ctx context.Context, run *Run, records []Record) error

	// FindRuns returns all runs, most recent first.
	FindRuns(ctx context.Context) ([]*Run, error)

	// FindRecords returns persisted records matching the filter.
	FindRecords(ctx context.Context, filter RecordFilter) ([]Record, error)
}

// Snapshot is a markdown rendering of a fetched page, stored so a record's
// supporting evidence survives the source page changing.
type Snapshot struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	ContentHash string    `json:"contentHash"`
	Markdown    string    `json:"markdown"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the snapshot is missing required fields.
func (s *Snapshot) Validate() error {
	if s.URL == "" {
		return Errorf(EINVALID, "snapshot URL required")
	}
	if s.Markdown == "" {
		return Errorf(EINVALID, "snapshot content required")
	}
	return nil
}

// SnapshotService persists page snapshots, deduplicated by content hash.
type SnapshotService interface {
	// SaveSnapshot stores a snapshot unless an identical rendering of the
	// same URL already exists.
	SaveSnapshot(ctx context.Context, snap *Snapshot) error
}
