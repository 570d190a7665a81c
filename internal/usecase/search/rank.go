package search

import (
	"sort"

	"github.com/ishaan-jha021/ecomatch/internal/domain"
)

// Rank total-orders venues by the given sort key. The sort is stable: venues
// with equal keys keep their relative catalog order, which is the only
// tie-break. The input slice is not modified.
func Rank(venues []domain.Venue, key domain.SortKey) []domain.Venue {
	out := make([]domain.Venue, len(venues))
	copy(out, venues)

	switch key {
	case domain.SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Pricing.Amount < out[j].Pricing.Amount
		})
	case domain.SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Pricing.Amount > out[j].Pricing.Amount
		})
	default: // SortTrust
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].TrustScore > out[j].TrustScore
		})
	}
	return out
}
