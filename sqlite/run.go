package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/apatil/ratewatch"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ ratewatch.RunService = (*RunService)(nil)

// RunService implements ratewatch.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun stores a run together with its records in one transaction.
func (s *RunService) CreateRun(ctx context.Context, run *ratewatch.Run, records []ratewatch.Record) error {
	run.ID = uuid.New().String()
	run.RecordCount = len(records)
	run.CreatedAt = time.Now().UTC()

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, query, entry_count, record_count, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, run.ID, run.Query, run.EntryCount, run.RecordCount, run.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO records (id, run_id, bank, bank_type, loan_category, sub_category, interest_rate, details, source)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), run.ID, rec.Bank, string(rec.BankType), rec.LoanCategory,
			rec.SubCategory, rec.InterestRate, rec.Details, rec.Source)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindRuns returns all runs, most recent first.
func (s *RunService) FindRuns(ctx context.Context) ([]*ratewatch.Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, query, entry_count, record_count, created_at
		FROM runs
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*ratewatch.Run
	for rows.Next() {
		var run ratewatch.Run
		var createdAt string
		if err := rows.Scan(&run.ID, &run.Query, &run.EntryCount, &run.RecordCount, &createdAt); err != nil {
			return nil, err
		}
		run.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}
		runs = append(runs, &run)
	}
	return runs, rows.Err()
}

// FindRecords returns persisted records matching the filter, ordered the
// way the aggregator orders live results.
func (s *RunService) FindRecords(ctx context.Context, filter ratewatch.RecordFilter) ([]ratewatch.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT bank, bank_type, loan_category, sub_category, interest_rate, details, source FROM records WHERE 1=1")

	if filter.RunID != nil {
		query.WriteString(" AND run_id = ?")
		args = append(args, *filter.RunID)
	}
	if filter.LoanCategory != nil {
		query.WriteString(" AND loan_category = ?")
		args = append(args, *filter.LoanCategory)
	}
	if filter.Bank != nil {
		query.WriteString(" AND bank = ?")
		args = append(args, *filter.Bank)
	}

	query.WriteString(" ORDER BY loan_category, sub_category, bank")
	appendLimit(&query, &args, filter.Limit)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []ratewatch.Record
	for rows.Next() {
		var rec ratewatch.Record
		var bankType string
		if err := rows.Scan(&rec.Bank, &bankType, &rec.LoanCategory, &rec.SubCategory,
			&rec.InterestRate, &rec.Details, &rec.Source); err != nil {
			return nil, err
		}
		rec.BankType = ratewatch.BankType(bankType)
		records = append(records, rec)
	}
	return records, rows.Err()
}
