// Package pdf extracts rate records from PDF documents.
package pdf

import (
	"bytes"
	"io"

	"github.com/apatil/ratewatch"
	"github.com/ledongthuc/pdf"
)

// Ensure Extractor implements ratewatch.Extractor at compile time.
var _ ratewatch.Extractor = (*Extractor)(nil)

// placeholderBank identifies PDFs that mention no registered bank.
const placeholderBank = "Unknown Bank (PDF)"

// Extractor extracts rate records from PDF documents by scanning the
// concatenated text of all pages for percentage-shaped tokens.
type Extractor struct {
	banks    *ratewatch.Registry
	taxonomy *ratewatch.Taxonomy
}

// NewExtractor creates an Extractor.
func NewExtractor(banks *ratewatch.Registry, taxonomy *ratewatch.Taxonomy) *Extractor {
	return &Extractor{banks: banks, taxonomy: taxonomy}
}

// Extract parses the document as a PDF and applies the unstructured-text
// extraction rules. A malformed PDF yields an error and no records, never
// partial output.
func (e *Extractor) Extract(doc *ratewatch.Document, entry ratewatch.Entry) ([]ratewatch.Record, error) {
	text, err := plainText(doc.Body)
	if err != nil {
		return nil, ratewatch.Errorf(ratewatch.EINVALID, "parse PDF for %s: %v", doc.URL, err)
	}

	return ratewatch.ExtractUnstructured(e.banks, e.taxonomy, text, entry, placeholderBank, "Extracted from PDF"), nil
}

// plainText extracts the concatenated text of all pages. The underlying
// reader panics on some malformed inputs, so panics are converted to
// errors here.
func plainText(body []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = ratewatch.Errorf(ratewatch.EINVALID, "malformed PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return "", err
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}

	raw, err := io.ReadAll(plain)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
