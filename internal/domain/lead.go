package domain

import (
	"strings"
	"time"
)

// Lead is an enquiry submitted for a venue.
type Lead struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	VenueName   string    `json:"venueName"`
	VenueType   string    `json:"venueType"`
	City        string    `json:"city"`
	Message     string    `json:"message,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Validate checks the required lead fields.
func (l Lead) Validate() error {
	for _, f := range []struct {
		name, val string
	}{
		{"name", l.Name},
		{"email", l.Email},
		{"phone", l.Phone},
		{"venueName", l.VenueName},
		{"city", l.City},
	} {
		if strings.TrimSpace(f.val) == "" {
			return NewValidationError(f.name, "is required")
		}
	}
	return nil
}
