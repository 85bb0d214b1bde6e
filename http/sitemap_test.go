package http_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/apatil/ratewatch"
	rwhttp "github.com/apatil/ratewatch/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapExpander_Expand(t *testing.T) {
	t.Parallel()

	t.Run("expands a urlset into categorized entries", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `<?xml version="1.0" encoding="UTF-8"?>
				<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
					<url><loc>https://bank.example/home-loan</loc></url>
					<url><loc>https://bank.example/plot-loan</loc></url>
				</urlset>`)
		}))
		defer srv.Close()

		entries, err := rwhttp.NewSitemapExpander(srv.Client()).Expand(context.Background(), srv.URL+"/sitemap.xml", "home")
		require.NoError(t, err)
		assert.Equal(t, []ratewatch.Entry{
			{Category: "home", URL: "https://bank.example/home-loan"},
			{Category: "home", URL: "https://bank.example/plot-loan"},
		}, entries)
	})

	t.Run("follows a sitemap index one level down", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `<sitemapindex>
				<sitemap><loc>%s/loans.xml</loc></sitemap>
			</sitemapindex>`, srv.URL)
		})
		mux.HandleFunc("/loans.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `<urlset>
				<url><loc>https://bank.example/education-loan</loc></url>
			</urlset>`)
		})

		entries, err := rwhttp.NewSitemapExpander(srv.Client()).Expand(context.Background(), srv.URL+"/sitemap.xml", "education")
		require.NoError(t, err)
		assert.Equal(t, []ratewatch.Entry{
			{Category: "education", URL: "https://bank.example/education-loan"},
		}, entries)
	})

	t.Run("stops recursing past the depth limit", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		// Index pointing at itself: the seen set and depth bound both cap it.
		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `<sitemapindex>
				<sitemap><loc>%s/sitemap.xml</loc></sitemap>
			</sitemapindex>`, srv.URL)
		})

		entries, err := rwhttp.NewSitemapExpander(srv.Client()).Expand(context.Background(), srv.URL+"/sitemap.xml", "home")
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("rejects non-sitemap XML", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `<rss><channel></channel></rss>`)
		}))
		defer srv.Close()

		_, err := rwhttp.NewSitemapExpander(srv.Client()).Expand(context.Background(), srv.URL, "home")
		require.Error(t, err)
		assert.Equal(t, ratewatch.EINVALID, ratewatch.ErrorCode(err))
	})

	t.Run("propagates HTTP errors", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "gone", http.StatusGone)
		}))
		defer srv.Close()

		_, err := rwhttp.NewSitemapExpander(srv.Client()).Expand(context.Background(), srv.URL, "home")
		assert.Error(t, err)
	})
}
