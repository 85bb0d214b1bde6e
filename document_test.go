package ratewatch_test

import (
	"strings"
	"testing"

	"github.com/apatil/ratewatch"
	"github.com/stretchr/testify/assert"
)

func TestDetectKind(t *testing.T) {
	t.Parallel()

	t.Run("pdf by content type", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, ratewatch.KindPDF, ratewatch.DetectKind("application/pdf", "https://bank.example/rates"))
	})

	t.Run("pdf by URL suffix despite wrong content type", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, ratewatch.KindPDF, ratewatch.DetectKind("application/octet-stream", "https://bank.example/rates.PDF"))
	})

	t.Run("image by content type", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, ratewatch.KindImage, ratewatch.DetectKind("image/png", "https://bank.example/rates"))
		assert.Equal(t, ratewatch.KindImage, ratewatch.DetectKind("application/jpg", "https://bank.example/card"))
	})

	t.Run("html otherwise", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, ratewatch.KindHTML, ratewatch.DetectKind("text/html; charset=utf-8", "https://bank.example/rates"))
		assert.Equal(t, ratewatch.KindHTML, ratewatch.DetectKind("", "https://bank.example/rates"))
	})

	t.Run("pdf wins over image when both signals present", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, ratewatch.KindPDF, ratewatch.DetectKind("image/png", "https://bank.example/scan.pdf"))
	})

	t.Run("declared binary types are unsupported, not html", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, ratewatch.KindUnsupported, ratewatch.DetectKind("application/octet-stream", "https://bank.example/rates"))
		assert.Equal(t, ratewatch.KindUnsupported, ratewatch.DetectKind("application/zip", "https://bank.example/rates-archive"))
		assert.Equal(t, ratewatch.KindUnsupported, ratewatch.DetectKind("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "https://bank.example/rates"))
	})

	t.Run("pdf suffix wins over a binary content type", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, ratewatch.KindPDF, ratewatch.DetectKind("application/zip", "https://bank.example/rates.pdf"))
	})
}

func TestExtractUnstructured(t *testing.T) {
	t.Parallel()

	reg := ratewatch.DefaultRegistry()
	tax := ratewatch.DefaultTaxonomy()
	entry := ratewatch.Entry{Category: "home", URL: "https://bank.example/rates.pdf"}

	t.Run("returns nil without a rate token", func(t *testing.T) {
		t.Parallel()

		got := ratewatch.ExtractUnstructured(reg, tax, "no rates in this document", entry, "Unknown Bank (PDF)", "Extracted from PDF")
		assert.Nil(t, got)
	})

	t.Run("emits a single record with found bank identity", func(t *testing.T) {
		t.Parallel()

		text := "HDFC home loan interest starts at 8.50% and goes to 9.10%"
		got := ratewatch.ExtractUnstructured(reg, tax, text, entry, "Unknown Bank (PDF)", "Extracted from PDF")

		assert.Len(t, got, 1)
		assert.Equal(t, "HDFC", got[0].Bank)
		assert.Equal(t, ratewatch.BankTypePrivate, got[0].BankType)
		assert.Equal(t, "Home", got[0].LoanCategory)
		assert.Equal(t, "8.50%, 9.10%", got[0].InterestRate)
		assert.Equal(t, "Extracted from PDF", got[0].Details)
		assert.Equal(t, entry.URL, got[0].Source)
	})

	t.Run("falls back to the placeholder identity", func(t *testing.T) {
		t.Parallel()

		got := ratewatch.ExtractUnstructured(reg, tax, "some bank offers 7.75%", entry, "Unknown Bank (PDF)", "Extracted from PDF")

		assert.Len(t, got, 1)
		assert.Equal(t, "Unknown Bank (PDF)", got[0].Bank)
		assert.Equal(t, ratewatch.BankTypeOther, got[0].BankType)
	})

	t.Run("classifies over the leading text window only", func(t *testing.T) {
		t.Parallel()

		// The construction keyword sits beyond the classification window.
		text := "rate 8.00% " + strings.Repeat("x ", 600) + " construction"
		got := ratewatch.ExtractUnstructured(reg, tax, text, entry, "Unknown Bank (PDF)", "Extracted from PDF")

		assert.Len(t, got, 1)
		assert.Equal(t, "General", got[0].SubCategory)
	})
}
