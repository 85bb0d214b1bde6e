package http

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/apatil/ratewatch"
	"github.com/beevik/etree"
)

// maxSitemapDepth bounds sitemapindex recursion. Bank sitemaps nest at
// most one index level in practice.
const maxSitemapDepth = 2

// SitemapExpander fans a sitemap URL out into per-page entries sharing one
// loan category, so banks that publish their rate pages under a sitemap
// can be listed with a single line in the URL file.
type SitemapExpander struct {
	client *http.Client
}

// NewSitemapExpander creates a SitemapExpander with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapExpander(client *http.Client) *SitemapExpander {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapExpander{client: client}
}

// Expand fetches and parses the sitemap at sitemapURL and returns one
// entry per page URL, each tagged with category. Nested sitemap indexes
// are followed up to maxSitemapDepth levels.
func (s *SitemapExpander) Expand(ctx context.Context, sitemapURL, category string) ([]ratewatch.Entry, error) {
	urls, err := s.collect(ctx, sitemapURL, maxSitemapDepth, map[string]bool{})
	if err != nil {
		return nil, err
	}

	entries := make([]ratewatch.Entry, 0, len(urls))
	for _, u := range urls {
		entries = append(entries, ratewatch.Entry{Category: category, URL: u})
	}
	return entries, nil
}

// collect parses one sitemap document, recursing into sitemapindex children.
func (s *SitemapExpander) collect(ctx context.Context, sitemapURL string, depth int, seen map[string]bool) ([]string, error) {
	if depth <= 0 || seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := s.get(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return nil, ratewatch.Errorf(ratewatch.EINVALID, "parse sitemap %s: %v", sitemapURL, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, ratewatch.Errorf(ratewatch.EINVALID, "empty sitemap %s", sitemapURL)
	}

	var urls []string
	switch root.Tag {
	case "urlset":
		for _, el := range root.SelectElements("url") {
			if loc := el.SelectElement("loc"); loc != nil && loc.Text() != "" {
				urls = append(urls, loc.Text())
			}
		}
	case "sitemapindex":
		for _, el := range root.SelectElements("sitemap") {
			loc := el.SelectElement("loc")
			if loc == nil || loc.Text() == "" {
				continue
			}
			children, err := s.collect(ctx, loc.Text(), depth-1, seen)
			if err != nil {
				return nil, err
			}
			urls = append(urls, children...)
		}
	default:
		return nil, ratewatch.Errorf(ratewatch.EINVALID, "unexpected sitemap root <%s> in %s", root.Tag, sitemapURL)
	}

	return urls, nil
}

// get fetches a sitemap document body.
func (s *SitemapExpander) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}
