package domain

// ParsedFilters is the structured output of query understanding. Every field
// is optional: a nil/zero field imposes no constraint. A ParsedFilters value
// is created fresh per query and never mutated after construction.
type ParsedFilters struct {
	Kind             Kind   `json:"type,omitempty"`
	City             string `json:"city,omitempty"` // canonical name, e.g. "Mumbai"
	MinCapacity      int    `json:"minCapacity,omitempty"`
	MaxPrice         int    `json:"maxPrice,omitempty"`
	ZeroEquity       bool   `json:"zeroEquity,omitempty"`
	WiFi             bool   `json:"wifi,omitempty"`
	MeetingRooms     bool   `json:"meeting,omitempty"`
	GovernmentScheme string `json:"governmentScheme,omitempty"`
	FreeTextResidual string `json:"textSearch,omitempty"`
}

// HasStructured reports whether parsing extracted at least one structured
// field. The residual keyword text does not count: it only decides whether
// the raw query is reused as a text predicate during resolution.
func (p ParsedFilters) HasStructured() bool {
	return p.Kind != "" || p.City != "" || p.MinCapacity > 0 || p.MaxPrice > 0 ||
		p.ZeroEquity || p.WiFi || p.MeetingRooms || p.GovernmentScheme != ""
}

// IsEmpty reports whether parsing extracted nothing at all.
func (p ParsedFilters) IsEmpty() bool {
	return !p.HasStructured() && p.FreeTextResidual == ""
}

// SearchFilters is the canonical resolved filter set the search engine
// consumes. It carries the same facets as ParsedFilters plus RawQuery, the
// full query text applied as a free-text predicate only when no structured
// facet was extracted. Built once per request by the resolver, immutable
// afterwards; the engine has no knowledge of where fields came from.
type SearchFilters struct {
	Kind             Kind   `json:"type,omitempty"`
	City             string `json:"city,omitempty"`
	MinCapacity      int    `json:"minCapacity,omitempty"`
	MaxPrice         int    `json:"maxPrice,omitempty"`
	ZeroEquity       bool   `json:"zeroEquity,omitempty"`
	WiFi             bool   `json:"wifi,omitempty"`
	MeetingRooms     bool   `json:"meetingRooms,omitempty"`
	GovernmentScheme string `json:"governmentScheme,omitempty"`
	TextSearch       string `json:"textSearch,omitempty"`
	RawQuery         string `json:"rawQuery,omitempty"`
}

// SortKey selects the result ordering.
type SortKey string

// Sort keys. Trust is the default.
const (
	SortTrust     SortKey = "trust"      // descending trust score
	SortPriceLow  SortKey = "price_low"  // ascending price
	SortPriceHigh SortKey = "price_high" // descending price
)

// IsValid reports whether k is a known sort key.
func (k SortKey) IsValid() bool {
	return k == SortTrust || k == SortPriceLow || k == SortPriceHigh
}
