package ratewatch_test

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/apatil/ratewatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateRate(t *testing.T) {
	t.Parallel()

	t.Run("passes short values through unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "8.50%", ratewatch.TruncateRate("8.50%"))
	})

	t.Run("passes values at the limit through unchanged", func(t *testing.T) {
		t.Parallel()

		exact := strings.Repeat("x", ratewatch.MaxRateLength)
		assert.Equal(t, exact, ratewatch.TruncateRate(exact))
	})

	t.Run("truncates long values with a marker", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("x", ratewatch.MaxRateLength+10)
		got := ratewatch.TruncateRate(long)
		assert.Equal(t, strings.Repeat("x", ratewatch.MaxRateLength)+"...", got)
	})

	t.Run("counts characters, not bytes", func(t *testing.T) {
		t.Parallel()

		// 30 characters but 90 bytes; within the limit either way it is
		// measured in characters.
		short := strings.Repeat("₹", 30)
		assert.Equal(t, short, ratewatch.TruncateRate(short))

		withDash := "8.50%–9.75% for salaried applicants"
		assert.Equal(t, withDash, ratewatch.TruncateRate(withDash))
	})

	t.Run("never cuts mid-character", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("₹", ratewatch.MaxRateLength+10)
		got := ratewatch.TruncateRate(long)
		assert.Equal(t, strings.Repeat("₹", ratewatch.MaxRateLength)+"...", got)
		assert.True(t, utf8.ValidString(got))
	})
}

func TestCapitalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Home", ratewatch.Capitalize("home"))
	assert.Equal(t, "Agriculture", ratewatch.Capitalize("AGRICULTURE"))
	assert.Equal(t, "", ratewatch.Capitalize(""))
}

func TestRecord_Validate(t *testing.T) {
	t.Parallel()

	valid := ratewatch.Record{
		Bank:         "HDFC",
		BankType:     ratewatch.BankTypePrivate,
		LoanCategory: "Home",
		SubCategory:  "Regular",
		InterestRate: "8.50%",
		Source:       "https://example.com",
	}

	t.Run("accepts a complete record", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, valid.Validate())
	})

	t.Run("accepts an empty interest rate", func(t *testing.T) {
		t.Parallel()

		rec := valid
		rec.InterestRate = ""
		assert.NoError(t, rec.Validate())
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		t.Parallel()

		for _, mutate := range []func(*ratewatch.Record){
			func(r *ratewatch.Record) { r.Bank = "" },
			func(r *ratewatch.Record) { r.BankType = "" },
			func(r *ratewatch.Record) { r.LoanCategory = "" },
			func(r *ratewatch.Record) { r.SubCategory = "" },
			func(r *ratewatch.Record) { r.Source = "" },
		} {
			rec := valid
			mutate(&rec)
			err := rec.Validate()
			require.Error(t, err)
			assert.Equal(t, ratewatch.EINVALID, ratewatch.ErrorCode(err))
		}
	})
}

func TestRecord_JSONFieldNames(t *testing.T) {
	t.Parallel()

	rec := ratewatch.Record{
		Bank:         "SBI",
		BankType:     ratewatch.BankTypePublic,
		LoanCategory: "Home",
		SubCategory:  "Regular",
		InterestRate: "8.40%",
		Details:      "row text",
		Source:       "https://example.com",
	}

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))

	// Consumer-facing field names are a compatibility contract.
	for _, name := range []string{
		"Bank", "Bank Type", "Loan Category", "Sub-Category",
		"Interest Rate", "Details", "Source",
	} {
		assert.Contains(t, fields, name)
	}
}
