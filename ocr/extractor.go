// Package ocr extracts rate records from raster images via Tesseract.
package ocr

import (
	"github.com/apatil/ratewatch"
	"github.com/otiai10/gosseract/v2"
)

// Ensure Extractor implements ratewatch.Extractor at compile time.
var _ ratewatch.Extractor = (*Extractor)(nil)

// placeholderBank identifies images that mention no registered bank.
const placeholderBank = "Unknown Bank (Img)"

// Extractor extracts rate records from scanned rate cards and other raster
// images by running optical character recognition over the image bytes and
// applying the same unstructured-text rules as the PDF extractor.
type Extractor struct {
	banks    *ratewatch.Registry
	taxonomy *ratewatch.Taxonomy
	language string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLanguage sets the Tesseract language model. Defaults to "eng".
func WithLanguage(lang string) Option {
	return func(e *Extractor) {
		e.language = lang
	}
}

// NewExtractor creates an Extractor.
func NewExtractor(banks *ratewatch.Registry, taxonomy *ratewatch.Taxonomy, opts ...Option) *Extractor {
	e := &Extractor{banks: banks, taxonomy: taxonomy, language: "eng"}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract runs OCR over the image and applies the unstructured-text
// extraction rules. An undecodable image or a missing Tesseract runtime
// yields an error and no records; the pipeline treats either as an empty
// result for the entry.
func (e *Extractor) Extract(doc *ratewatch.Document, entry ratewatch.Entry) ([]ratewatch.Record, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(e.language); err != nil {
		return nil, ratewatch.Errorf(ratewatch.EUNAVAILABLE, "OCR language %q: %v", e.language, err)
	}
	if err := client.SetImageFromBytes(doc.Body); err != nil {
		return nil, ratewatch.Errorf(ratewatch.EINVALID, "decode image for %s: %v", doc.URL, err)
	}

	text, err := client.Text()
	if err != nil {
		return nil, ratewatch.Errorf(ratewatch.EUNAVAILABLE, "OCR for %s: %v", doc.URL, err)
	}

	return ratewatch.ExtractUnstructured(e.banks, e.taxonomy, text, entry, placeholderBank, "Extracted from Image"), nil
}
