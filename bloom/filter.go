// Package bloom provides duplicate-URL suppression for URL sources.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter tracks URLs already yielded by a source so the same rate page is
// not fetched twice when it appears under several categories or sitemaps.
// False positives are possible (a new URL may be skipped); false negatives
// are not.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a Filter sized for n expected URLs with the given
// false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen reports whether the URL was marked before, then marks it. The first
// call for a URL returns false, subsequent calls return true.
func (f *Filter) Seen(url string) bool {
	return f.f.TestAndAddString(url)
}

// EstimatedCount returns the approximate number of marked URLs.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
