package sqlite_test

import (
	"context"
	"testing"

	"github.com/apatil/ratewatch"
	"github.com/apatil/ratewatch/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})
	return db
}

func testRecord(bank, category, subCategory string) ratewatch.Record {
	return ratewatch.Record{
		Bank:         bank,
		BankType:     ratewatch.BankTypePublic,
		LoanCategory: category,
		SubCategory:  subCategory,
		InterestRate: "8.50%",
		Details:      bank + " 8.50%",
		Source:       "https://bank.example/rates",
	}
}

func TestRunService_CreateRun(t *testing.T) {
	t.Parallel()

	t.Run("stores the run with its records", func(t *testing.T) {
		t.Parallel()

		db := openDB(t)
		s := sqlite.NewRunService(db)
		ctx := context.Background()

		run := &ratewatch.Run{Query: "home sbi", EntryCount: 3}
		records := []ratewatch.Record{
			testRecord("SBI", "Home", "General"),
			testRecord("PNB", "Home", "Construction"),
		}
		require.NoError(t, s.CreateRun(ctx, run, records))

		assert.NotEmpty(t, run.ID)
		assert.Equal(t, 2, run.RecordCount)
		assert.False(t, run.CreatedAt.IsZero())

		runs, err := s.FindRuns(ctx)
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, run.ID, runs[0].ID)
		assert.Equal(t, "home sbi", runs[0].Query)
		assert.Equal(t, 3, runs[0].EntryCount)
		assert.Equal(t, 2, runs[0].RecordCount)

		got, err := s.FindRecords(ctx, ratewatch.RecordFilter{RunID: &run.ID})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("rejects invalid records and stores nothing", func(t *testing.T) {
		t.Parallel()

		db := openDB(t)
		s := sqlite.NewRunService(db)
		ctx := context.Background()

		records := []ratewatch.Record{
			testRecord("SBI", "Home", "General"),
			{Bank: "", LoanCategory: "Home"},
		}
		err := s.CreateRun(ctx, &ratewatch.Run{}, records)
		require.Error(t, err)
		assert.Equal(t, ratewatch.EINVALID, ratewatch.ErrorCode(err))

		runs, err := s.FindRuns(ctx)
		require.NoError(t, err)
		assert.Empty(t, runs)
	})

	t.Run("a run with no records is still a run", func(t *testing.T) {
		t.Parallel()

		db := openDB(t)
		s := sqlite.NewRunService(db)
		ctx := context.Background()

		run := &ratewatch.Run{Query: "education"}
		require.NoError(t, s.CreateRun(ctx, run, nil))

		runs, err := s.FindRuns(ctx)
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, 0, runs[0].RecordCount)
	})
}

func TestRunService_FindRecords(t *testing.T) {
	t.Parallel()

	db := openDB(t)
	s := sqlite.NewRunService(db)
	ctx := context.Background()

	first := &ratewatch.Run{Query: "home"}
	require.NoError(t, s.CreateRun(ctx, first, []ratewatch.Record{
		testRecord("SBI", "Home", "General"),
		testRecord("HDFC", "Home", "Construction"),
	}))

	second := &ratewatch.Run{Query: "education"}
	require.NoError(t, s.CreateRun(ctx, second, []ratewatch.Record{
		testRecord("SBI", "Education", "Medical"),
	}))

	t.Run("filters by run", func(t *testing.T) {
		records, err := s.FindRecords(ctx, ratewatch.RecordFilter{RunID: &second.ID})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Education", records[0].LoanCategory)
	})

	t.Run("filters by loan category", func(t *testing.T) {
		category := "Home"
		records, err := s.FindRecords(ctx, ratewatch.RecordFilter{LoanCategory: &category})
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("filters by bank", func(t *testing.T) {
		bank := "SBI"
		records, err := s.FindRecords(ctx, ratewatch.RecordFilter{Bank: &bank})
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("orders by category, sub-category, bank", func(t *testing.T) {
		records, err := s.FindRecords(ctx, ratewatch.RecordFilter{})
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "Education", records[0].LoanCategory)
		assert.Equal(t, "Construction", records[1].SubCategory)
		assert.Equal(t, "General", records[2].SubCategory)
	})

	t.Run("applies the limit", func(t *testing.T) {
		records, err := s.FindRecords(ctx, ratewatch.RecordFilter{Limit: 1})
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("round-trips all record fields", func(t *testing.T) {
		bank := "HDFC"
		records, err := s.FindRecords(ctx, ratewatch.RecordFilter{Bank: &bank})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, testRecord("HDFC", "Home", "Construction"), records[0])
	})
}
