package domain

import "testing"

func TestSchemeMatches(t *testing.T) {
	tests := []struct {
		category string
		tag      string
		want     bool
	}{
		{SchemeAIM, "Atal Innovation Mission (AIM)", true},
		{SchemeAIM, "NITI Aayog AIC", true},
		{SchemeAIM, "DST-NIDHI TBI", false},
		{SchemeSISFS, "Startup India Seed Fund Scheme", true},
		{SchemeDST, "DST-NIDHI TBI", true},
		{SchemeDST, "NSTEDB supported", true},
		{SchemeState, "Govt of Karnataka", true},
		{SchemeState, "State Startup Mission", true},
		{SchemeState, "Private", false},

		// Case-insensitive on both sides.
		{"aim", "ATAL incubation centre", true},

		// Unknown category falls back to a plain substring test.
		{"karnataka", "Govt of Karnataka", true},
		{"karnataka", "Telangana T-Hub", false},

		// Empty tag never matches.
		{SchemeAIM, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.category+"/"+tt.tag, func(t *testing.T) {
			if got := SchemeMatches(tt.category, tt.tag); got != tt.want {
				t.Errorf("SchemeMatches(%q, %q) = %v, want %v", tt.category, tt.tag, got, tt.want)
			}
		})
	}
}
