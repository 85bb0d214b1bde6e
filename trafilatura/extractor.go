// Package trafilatura provides readable page text extraction for the
// whole-page fallback scan.
package trafilatura

import (
	"errors"
	"strings"

	"github.com/apatil/ratewatch"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements ratewatch.TextExtractor at compile time.
var _ ratewatch.TextExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract readable text from HTML with
// boilerplate (nav, footer, sidebar, ads) removed.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Text extracts the main readable text of the page.
func (e *Extractor) Text(rawHTML string) (string, error) {
	if rawHTML == "" {
		return "", errors.New("empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", err
	}

	if result.ContentText != "" {
		return result.ContentText, nil
	}
	if result.ContentNode != nil {
		return nodeText(result.ContentNode), nil
	}
	return "", nil
}

// nodeText collects the text content of a node tree.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}
