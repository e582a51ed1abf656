// Package bloom provides probabilistic URI membership tracking.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"

	"github.com/fwojciec/ccqa"
)

// Ensure Filter implements ccqa.SeenFilter at compile time.
var _ ccqa.SeenFilter = (*Filter)(nil)

// Filter wraps a Bloom filter for URI deduplication.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Filter sized for n expected URIs with the
// given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds a URI to the filter.
func (f *Filter) Add(uri string) {
	f.f.AddString(uri)
}

// Test returns true if the URI might have been added before.
// False positives are possible; false negatives are not.
func (f *Filter) Test(uri string) bool {
	return f.f.TestString(uri)
}

// EstimatedCount returns the approximate number of URIs in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
