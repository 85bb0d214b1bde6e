package scrape

import "github.com/apatil/ratewatch"

// Status classifies how an entry's extraction ended.
type Status int

// Entry outcome statuses.
const (
	// StatusExtracted means the entry produced at least one record.
	StatusExtracted Status = iota
	// StatusNoSignal means fetch and extraction succeeded but the document
	// held nothing extractable. Not a failure.
	StatusNoSignal
	// StatusFailed means fetch or extraction failed; Err holds the cause.
	StatusFailed
)

// Outcome is the typed result of scanning one URL entry. Failures carry
// their cause instead of being silently discarded, so operators and tests
// can see why an entry produced nothing without the failure aborting the
// batch.
type Outcome struct {
	Entry   ratewatch.Entry
	Status  Status
	Records []ratewatch.Record
	Err     error
}

// Records flattens the extracted records of all outcomes.
func Records(outcomes []Outcome) []ratewatch.Record {
	var records []ratewatch.Record
	for _, o := range outcomes {
		records = append(records, o.Records...)
	}
	return records
}
