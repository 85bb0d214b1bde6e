package pdf_test

import (
	"testing"

	"github.com/apatil/ratewatch"
	"github.com/apatil/ratewatch/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	entry := ratewatch.Entry{Category: "home", URL: "https://bank.example/rates.pdf"}
	extractor := pdf.NewExtractor(ratewatch.DefaultRegistry(), ratewatch.DefaultTaxonomy())

	t.Run("malformed PDF is an error, not records", func(t *testing.T) {
		t.Parallel()

		doc := &ratewatch.Document{
			URL:         entry.URL,
			ContentType: "application/pdf",
			StatusCode:  200,
			Body:        []byte("this is not a PDF 8.50%"),
		}

		records, err := extractor.Extract(doc, entry)
		require.Error(t, err)
		assert.Equal(t, ratewatch.EINVALID, ratewatch.ErrorCode(err))
		assert.Empty(t, records)
	})

	t.Run("empty body is an error", func(t *testing.T) {
		t.Parallel()

		doc := &ratewatch.Document{
			URL:         entry.URL,
			ContentType: "application/pdf",
			StatusCode:  200,
		}

		_, err := extractor.Extract(doc, entry)
		require.Error(t, err)
		assert.Equal(t, ratewatch.EINVALID, ratewatch.ErrorCode(err))
	})

	t.Run("truncated header is an error", func(t *testing.T) {
		t.Parallel()

		doc := &ratewatch.Document{
			URL:         entry.URL,
			ContentType: "application/pdf",
			StatusCode:  200,
			Body:        []byte("%PDF-1.4\n"),
		}

		_, err := extractor.Extract(doc, entry)
		require.Error(t, err)
		assert.Equal(t, ratewatch.EINVALID, ratewatch.ErrorCode(err))
	})
}
