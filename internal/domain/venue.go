// Package domain holds the core types of the venue directory.
package domain

// Kind classifies a venue listing.
type Kind string

// Venue kinds.
const (
	KindCoworking Kind = "coworking"
	KindIncubator Kind = "incubator"
)

// IsValid reports whether k is a known venue kind.
func (k Kind) IsValid() bool {
	return k == KindCoworking || k == KindIncubator
}

// OfficialStatus is the verification state of a listing.
type OfficialStatus string

// Verification states.
const (
	StatusVerified   OfficialStatus = "Verified"
	StatusUnverified OfficialStatus = "Unverified"
	StatusPartner    OfficialStatus = "Partner"
)

// Location places a venue within a city.
type Location struct {
	Area    string `json:"area"`
	City    string `json:"city"`
	Address string `json:"address,omitempty"`
}

// Pricing is the listed price of a venue.
type Pricing struct {
	Amount   int    `json:"amount"` // non-negative, in minor-free units (e.g. INR/month)
	Period   string `json:"period"` // month, day, seat
	Currency string `json:"currency"`
}

// Capacity describes seating, when the venue publishes it.
type Capacity struct {
	Total        int `json:"total"`
	Available    int `json:"available"` // upstream guarantees Available <= Total; not enforced here
	MeetingRooms int `json:"meetingRooms,omitempty"`
}

// Amenity is a single listed facility.
type Amenity struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Verified bool   `json:"verified"`
}

// EquityTerms describe what an incubator takes in exchange for space.
type EquityTerms struct {
	TakesEquity bool    `json:"takesEquity"`
	Percentage  float64 `json:"percentage,omitempty"`
	Description string  `json:"description,omitempty"`
}

// Review is a user-submitted rating.
type Review struct {
	ID     string  `json:"id"`
	User   string  `json:"user"`
	Rating float64 `json:"rating"`
	Text   string  `json:"text"`
	Date   string  `json:"date"`
}

// Venue is a single coworking space or incubator listing. Venues are
// read-only to the search engine; lifecycle belongs to the catalog.
type Venue struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Kind             Kind         `json:"type"`
	Location         Location     `json:"location"`
	Pricing          Pricing      `json:"pricing"`
	Capacity         *Capacity    `json:"capacity,omitempty"`
	Amenities        []Amenity    `json:"amenities"`
	EquityTerms      *EquityTerms `json:"equityTerms,omitempty"`
	TrustScore       float64      `json:"trustScore"` // 0-10
	OfficialStatus   OfficialStatus `json:"officialStatus"`
	Images           []string     `json:"images"`
	Reviews          []Review     `json:"reviews"`
	GovernmentScheme string       `json:"governmentScheme,omitempty"`
	Website          string       `json:"website,omitempty"`
}
