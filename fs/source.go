// Package fs provides file-based URL sources and result sinks.
package fs

import (
	"bufio"
	"context"
	"os"
	"strings"

	"github.com/apatil/ratewatch"
	"github.com/apatil/ratewatch/bloom"
)

// expectedURLs sizes the duplicate filter. Curated URL lists are small;
// sitemap fan-out is what pushes the count up.
const expectedURLs = 4096

// Ensure Source implements ratewatch.URLSource at compile time.
var _ ratewatch.URLSource = (*Source)(nil)

// SitemapExpander fans a sitemap URL out into per-page entries.
type SitemapExpander interface {
	Expand(ctx context.Context, sitemapURL, category string) ([]ratewatch.Entry, error)
}

// Source reads categorized URL entries from a line-oriented list file.
//
// The format:
//
//	home:
//	https://bank.example/home-loan-rates
//	agriculture,https://bank.example/kisan-rates
//	education,sitemap:https://bank.example/sitemap.xml
//
// A line ending in ":" sets the current category for the bare URL lines
// that follow. A "category,url" line carries its own category. A URL with
// the "sitemap:" prefix expands into one entry per page in the sitemap.
// Duplicate URLs are yielded once.
type Source struct {
	path     string
	expander SitemapExpander
}

// NewSource creates a Source reading from path. The expander may be nil,
// in which case sitemap lines are ignored.
func NewSource(path string, expander SitemapExpander) *Source {
	return &Source{path: path, expander: expander}
}

// ReadEntries parses the URL list. When categories is non-empty, only
// entries in those categories are returned. An unreadable file is a
// boundary error and fails the run.
func (s *Source) ReadEntries(ctx context.Context, categories []string) ([]ratewatch.Entry, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, ratewatch.Errorf(ratewatch.EINVALID, "open URL list %s: %v", s.path, err)
	}
	defer f.Close()

	wanted := make(map[string]bool, len(categories))
	for _, c := range categories {
		wanted[strings.ToLower(c)] = true
	}

	dedup := bloom.NewFilter(expectedURLs, 0.01)
	currentCategory := "general"
	var entries []ratewatch.Entry

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasSuffix(line, ":") && !strings.Contains(line, ",") && !strings.HasPrefix(line, "http") {
			currentCategory = strings.ToLower(strings.TrimSuffix(line, ":"))
			continue
		}

		category := currentCategory
		target := line
		if i := strings.Index(line, ","); i >= 0 && !strings.HasPrefix(line, "http") {
			category = strings.ToLower(strings.TrimSpace(line[:i]))
			target = strings.TrimSpace(line[i+1:])
		}

		if len(wanted) > 0 && !wanted[category] {
			continue
		}

		switch {
		case strings.HasPrefix(target, "sitemap:"):
			if s.expander == nil {
				continue
			}
			expanded, err := s.expander.Expand(ctx, strings.TrimPrefix(target, "sitemap:"), category)
			if err != nil {
				return nil, err
			}
			for _, e := range expanded {
				if !dedup.Seen(e.URL) {
					entries = append(entries, e)
				}
			}
		case strings.HasPrefix(target, "http"):
			if !dedup.Seen(target) {
				entries = append(entries, ratewatch.Entry{Category: category, URL: target})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, ratewatch.Errorf(ratewatch.EINVALID, "read URL list %s: %v", s.path, err)
	}

	return entries, nil
}
