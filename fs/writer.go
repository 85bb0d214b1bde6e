package fs

import (
	"context"
	"encoding/json"
	"os"

	"github.com/apatil/ratewatch"
)

// Ensure Writer implements ratewatch.RecordWriter at compile time.
var _ ratewatch.RecordWriter = (*Writer)(nil)

// Writer persists a result set as an indented JSON array of records, the
// batch-run output format existing consumers read.
type Writer struct {
	path string
}

// NewWriter creates a Writer that writes to path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// WriteRecords writes the result set. An empty result set writes an empty
// JSON array, not nothing: a run that found no rates is still a run.
func (w *Writer) WriteRecords(ctx context.Context, records []ratewatch.Record) error {
	if records == nil {
		records = []ratewatch.Record{}
	}

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return err
	}

	return os.WriteFile(w.path, data, 0644)
}
