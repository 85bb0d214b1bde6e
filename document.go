package ratewatch

import (
	"context"
	"strings"
)

// Document is one fetched web document. It is owned transiently by the
// pipeline for the duration of a single extraction and not retained.
type Document struct {
	URL         string
	ContentType string
	StatusCode  int
	Body        []byte
}

// Kind classifies a document by the extractor capable of handling it.
type Kind string

// Document kinds.
const (
	KindHTML        Kind = "html"
	KindPDF         Kind = "pdf"
	KindImage       Kind = "image"
	KindUnsupported Kind = "unsupported"
)

// Kind resolves the document's kind from its declared content type, with
// the URL's file-extension suffix as a secondary signal.
func (d *Document) Kind() Kind {
	return DetectKind(d.ContentType, d.URL)
}

// DetectKind resolves a document kind from a declared content type and URL.
// PDF wins over image when both signals are present, mirroring dispatch
// order: misdeclared content types are common on bank sites, and the .pdf
// suffix is the more reliable of the two signals. Declared archive and
// generic binary types are unsupported rather than handed to the HTML
// extractor; an absent or unrecognized content type still defaults to HTML,
// since that is what bank sites misdeclare most.
func DetectKind(contentType, url string) Kind {
	ctype := strings.ToLower(contentType)

	if strings.HasSuffix(strings.ToLower(url), ".pdf") || strings.Contains(ctype, "pdf") {
		return KindPDF
	}
	for _, marker := range []string{"image", "jpg", "png"} {
		if strings.Contains(ctype, marker) {
			return KindImage
		}
	}
	for _, marker := range []string{"octet-stream", "zip", "msword", "ms-excel", "openxmlformats"} {
		if strings.Contains(ctype, marker) {
			return KindUnsupported
		}
	}
	return KindHTML
}

// Fetcher retrieves documents from URLs. Implementations own transport
// concerns: timeouts, TLS posture, and identifying request headers.
// HTTP error statuses are reported on the Document, not as errors; a
// returned error always means the transport itself failed.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*Document, error)

	// Close releases transport resources.
	Close() error
}

// Extractor produces candidate records from a fetched document using
// format-specific heuristics. Zero records with a nil error means the
// document held no signal, which is not a failure.
type Extractor interface {
	Extract(doc *Document, entry Entry) ([]Record, error)
}

// TextExtractor extracts readable page text from raw HTML, with
// boilerplate (nav, footer, ads) removed where the implementation can.
type TextExtractor interface {
	Text(html string) (string, error)
}

// Converter transforms HTML content into Markdown for page snapshots.
type Converter interface {
	Convert(html string) (string, error)
}
