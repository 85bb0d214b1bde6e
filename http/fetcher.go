// Package http provides the HTTP transport for fetching rate documents
// and sitemap-based URL expansion.
package http

import (
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"time"

	"github.com/apatil/ratewatch"
)

// DefaultFetchTimeout is the default per-request timeout.
const DefaultFetchTimeout = 15 * time.Second

// DefaultUserAgent is the identifying request header sent with every
// request. Several bank sites serve empty pages to unknown agents.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Ensure Fetcher implements ratewatch.Fetcher at compile time.
var _ ratewatch.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves documents over HTTP. TLS verification is disabled:
// regional bank sites routinely serve misconfigured certificate chains and
// a failed handshake would silently drop their rates from every run.
//
// HTTP error statuses are not errors; the document is returned with its
// status code and whatever body the server sent. A returned error always
// means the transport failed (DNS, connect, timeout).
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
// Defaults to DefaultFetchTimeout (15s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent request header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec
		},
	}

	return f
}

// Fetch performs a single GET request and returns the fetched document.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*ratewatch.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, ratewatch.Errorf(ratewatch.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &ratewatch.Document{
		URL:         url,
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
		Body:        body,
	}, nil
}

// Close releases resources. The HTTP client needs no explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
