package search

import (
	"strings"

	"github.com/ishaan-jha021/ecomatch/internal/domain"
)

// Filter applies the resolved filters as an ordered conjunction over the
// catalog snapshot. A venue is kept only if it satisfies every active
// predicate; absent fields are vacuously true, so empty filters return the
// whole catalog in catalog order. Pure conjunction: predicate order does not
// change the result, only where evaluation short-circuits.
func Filter(venues []domain.Venue, f domain.SearchFilters) []domain.Venue {
	raw := strings.ToLower(f.RawQuery)
	text := strings.ToLower(f.TextSearch)

	out := make([]domain.Venue, 0, len(venues))
	for _, v := range venues {
		if matches(v, f, raw, text) {
			out = append(out, v)
		}
	}
	return out
}

func matches(v domain.Venue, f domain.SearchFilters, raw, text string) bool {
	// 1. Raw free-text: name, area, city, address.
	if raw != "" && !matchesQueryText(v, raw) {
		return false
	}

	// 2. Kind equality.
	if f.Kind != "" && v.Kind != f.Kind {
		return false
	}

	// 3. City: case-insensitive exact match, not a substring test.
	if f.City != "" && !strings.EqualFold(v.Location.City, f.City) {
		return false
	}

	// 4-5. Amenity-name substring features. Fragile against spelling
	// variants ("WiFi" vs "Wi-Fi") but deliberately preserved: switching to
	// a closed tag set would change search results.
	if f.WiFi && !hasAmenity(v, "wifi") {
		return false
	}
	if f.MeetingRooms && !hasAmenity(v, "meeting") {
		return false
	}

	// 6. Zero equity: terms must be present and explicitly equity-free.
	if f.ZeroEquity && (v.EquityTerms == nil || v.EquityTerms.TakesEquity) {
		return false
	}

	// 7. Capacity floor: venues without published capacity are excluded.
	if f.MinCapacity > 0 && (v.Capacity == nil || v.Capacity.Total < f.MinCapacity) {
		return false
	}

	// 8. Price ceiling.
	if f.MaxPrice > 0 && v.Pricing.Amount > f.MaxPrice {
		return false
	}

	// 9. Government scheme, via the shared category-synonym table.
	if f.GovernmentScheme != "" && !domain.SchemeMatches(f.GovernmentScheme, v.GovernmentScheme) {
		return false
	}

	// 10. Residual keyword: name, area, equity description, address.
	if text != "" && text != raw && !matchesResidual(v, text) {
		return false
	}

	return true
}

func matchesQueryText(v domain.Venue, q string) bool {
	return strings.Contains(strings.ToLower(v.Name), q) ||
		strings.Contains(strings.ToLower(v.Location.Area), q) ||
		strings.Contains(strings.ToLower(v.Location.City), q) ||
		strings.Contains(strings.ToLower(v.Location.Address), q)
}

func matchesResidual(v domain.Venue, q string) bool {
	if strings.Contains(strings.ToLower(v.Name), q) ||
		strings.Contains(strings.ToLower(v.Location.Area), q) ||
		strings.Contains(strings.ToLower(v.Location.Address), q) {
		return true
	}
	return v.EquityTerms != nil && strings.Contains(strings.ToLower(v.EquityTerms.Description), q)
}

func hasAmenity(v domain.Venue, name string) bool {
	for _, a := range v.Amenities {
		if strings.Contains(strings.ToLower(a.Name), name) {
			return true
		}
	}
	return false
}
