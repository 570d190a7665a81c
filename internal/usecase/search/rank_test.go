package search

import (
	"testing"

	"github.com/ishaan-jha021/ecomatch/internal/domain"
)

func TestRank_TrustDescending(t *testing.T) {
	got := Rank(testCatalog(), domain.SortTrust)
	assertIDs(t, got, "inc-1", "inc-3", "cw-1", "cw-2", "inc-2")
}

func TestRank_PriceAscending(t *testing.T) {
	got := Rank(testCatalog(), domain.SortPriceLow)
	assertIDs(t, got, "inc-1", "inc-3", "inc-2", "cw-2", "cw-1")
}

func TestRank_PriceDescending(t *testing.T) {
	got := Rank(testCatalog(), domain.SortPriceHigh)
	assertIDs(t, got, "cw-1", "cw-2", "inc-2", "inc-3", "inc-1")
}

func TestRank_StableOnTies(t *testing.T) {
	venues := []domain.Venue{
		{ID: "a", TrustScore: 5, Pricing: domain.Pricing{Amount: 1000}},
		{ID: "b", TrustScore: 5, Pricing: domain.Pricing{Amount: 1000}},
		{ID: "c", TrustScore: 5, Pricing: domain.Pricing{Amount: 1000}},
	}

	for _, key := range []domain.SortKey{domain.SortTrust, domain.SortPriceLow, domain.SortPriceHigh} {
		got := Rank(venues, key)
		assertIDs(t, got, "a", "b", "c")
	}
}

func TestRank_Idempotent(t *testing.T) {
	once := Rank(testCatalog(), domain.SortTrust)
	twice := Rank(once, domain.SortTrust)
	assertIDs(t, twice, ids(once)...)
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	catalog := testCatalog()
	Rank(catalog, domain.SortPriceHigh)
	assertIDs(t, catalog, "cw-1", "cw-2", "inc-1", "inc-2", "inc-3")
}
