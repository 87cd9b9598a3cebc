// Package bloom provides seen-URL tracking for the corpus crawler using
// Bloom filters.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter for URL deduplication during crawls.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected URLs with the given
// false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a URL as seen.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// Test returns true if the URL has probably been seen.
// False positives are possible; false negatives are not. For a crawler
// this means a page may rarely be skipped, never fetched twice.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(url)
}
