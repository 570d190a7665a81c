package search

import (
	"github.com/ishaan-jha021/ecomatch/internal/domain"
	"github.com/ishaan-jha021/ecomatch/internal/query"
)

// Resolve merges explicit caller filters with parsed filters into the one
// canonical filter set the engine consumes. Precedence per field: explicit
// always wins, parsed fills the gaps; boolean flags follow "true wins".
//
// The raw query is carried as a free-text predicate only when parsing
// extracted no structured facet at all. Otherwise the words of the query
// were already consumed structurally and reapplying them as a substring
// match would double-constrain (a parsed city name would also have to
// appear in the venue name or address). The residual keyword text, when
// present, is carried independently.
//
// Malformed explicit values are the one caller-visible error of the core:
// the returned error names the offending field and unwraps to
// domain.ErrValidation.
func Resolve(explicit domain.SearchFilters, parsed domain.ParsedFilters, rawQuery string) (domain.SearchFilters, error) {
	if err := validateExplicit(explicit); err != nil {
		return domain.SearchFilters{}, err
	}

	resolved := domain.SearchFilters{
		Kind:             explicit.Kind,
		City:             explicit.City,
		MinCapacity:      explicit.MinCapacity,
		MaxPrice:         explicit.MaxPrice,
		ZeroEquity:       explicit.ZeroEquity || parsed.ZeroEquity,
		WiFi:             explicit.WiFi || parsed.WiFi,
		MeetingRooms:     explicit.MeetingRooms || parsed.MeetingRooms,
		GovernmentScheme: explicit.GovernmentScheme,
		TextSearch:       explicit.TextSearch,
	}

	if resolved.Kind == "" {
		resolved.Kind = parsed.Kind
	}
	if resolved.City == "" {
		resolved.City = parsed.City
	}
	if resolved.MinCapacity == 0 {
		resolved.MinCapacity = parsed.MinCapacity
	}
	if resolved.MaxPrice == 0 {
		resolved.MaxPrice = parsed.MaxPrice
	}
	if resolved.GovernmentScheme == "" {
		resolved.GovernmentScheme = parsed.GovernmentScheme
	}
	if resolved.TextSearch == "" {
		resolved.TextSearch = parsed.FreeTextResidual
	}

	if !parsed.HasStructured() {
		resolved.RawQuery = query.Normalize(rawQuery)
	}

	return resolved, nil
}

func validateExplicit(explicit domain.SearchFilters) error {
	if explicit.Kind != "" && !explicit.Kind.IsValid() {
		return domain.NewValidationError("kind", "must be coworking or incubator")
	}
	if explicit.MinCapacity < 0 {
		return domain.NewValidationError("minCapacity", "must be non-negative")
	}
	if explicit.MaxPrice < 0 {
		return domain.NewValidationError("maxPrice", "must be non-negative")
	}
	return nil
}
