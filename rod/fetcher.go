// Package rod provides a browser-based fetcher for bank portals that draw
// their rate tables with JavaScript.
package rod

import (
	"context"
	"fmt"
	"net/http"

	"github.com/apatil/ratewatch"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Fetcher implements ratewatch.Fetcher at compile time.
var _ ratewatch.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser
// automation. The rendered page is returned as an HTML document, so
// downstream dispatch and extraction are unchanged. PDF and image URLs
// should not be routed here.
//
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser *rod.Browser
}

// NewFetcher creates a new Fetcher that launches a headless Chrome
// browser. Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher() (*Fetcher, error) {
	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &Fetcher{browser: browser}, nil
}

// Fetch navigates to the URL, waits for the page to load, and returns the
// rendered HTML as a document.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*ratewatch.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return nil, err
	}
	if err := page.WaitLoad(); err != nil {
		return nil, err
	}

	html, err := page.HTML()
	if err != nil {
		return nil, err
	}

	return &ratewatch.Document{
		URL:         url,
		ContentType: "text/html",
		StatusCode:  http.StatusOK,
		Body:        []byte(html),
	}, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.browser.Close()
}
