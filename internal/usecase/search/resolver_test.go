package search

import (
	"errors"
	"testing"

	"github.com/ishaan-jha021/ecomatch/internal/domain"
)

func TestResolve_ExplicitWins(t *testing.T) {
	explicit := domain.SearchFilters{City: "Pune"}
	parsed := domain.ParsedFilters{Kind: domain.KindCoworking, City: "Mumbai"}

	resolved, err := Resolve(explicit, parsed, "coworking in mumbai")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved.City != "Pune" {
		t.Errorf("City = %q, want Pune (explicit wins over parsed)", resolved.City)
	}
	if resolved.Kind != domain.KindCoworking {
		t.Errorf("Kind = %q, want coworking (parsed fills the gap)", resolved.Kind)
	}
}

func TestResolve_ParsedFillsGaps(t *testing.T) {
	parsed := domain.ParsedFilters{
		Kind:             domain.KindIncubator,
		City:             "Delhi",
		MinCapacity:      20,
		MaxPrice:         5000,
		GovernmentScheme: "AIM",
		FreeTextResidual: "atal",
	}

	resolved, err := Resolve(domain.SearchFilters{}, parsed, "ignored")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := domain.SearchFilters{
		Kind:             domain.KindIncubator,
		City:             "Delhi",
		MinCapacity:      20,
		MaxPrice:         5000,
		GovernmentScheme: "AIM",
		TextSearch:       "atal",
	}
	if resolved != want {
		t.Errorf("Resolve() = %+v, want %+v", resolved, want)
	}
}

func TestResolve_BooleansTrueWins(t *testing.T) {
	tests := []struct {
		name     string
		explicit domain.SearchFilters
		parsed   domain.ParsedFilters
	}{
		{"explicit true", domain.SearchFilters{WiFi: true, ZeroEquity: true, MeetingRooms: true}, domain.ParsedFilters{}},
		{"parsed true", domain.SearchFilters{}, domain.ParsedFilters{WiFi: true, ZeroEquity: true, MeetingRooms: true}},
		{"both true", domain.SearchFilters{WiFi: true}, domain.ParsedFilters{WiFi: true, ZeroEquity: true, MeetingRooms: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, err := Resolve(tt.explicit, tt.parsed, "")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !resolved.WiFi || !resolved.ZeroEquity || !resolved.MeetingRooms {
				t.Errorf("booleans = %v/%v/%v, want all true", resolved.WiFi, resolved.ZeroEquity, resolved.MeetingRooms)
			}
		})
	}
}

func TestResolve_RawQueryOnlyWhenUnstructured(t *testing.T) {
	// No structured facet parsed: the normalized raw query becomes a text
	// predicate.
	resolved, err := Resolve(domain.SearchFilters{}, domain.ParsedFilters{}, "  Awfis   BKC ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved.RawQuery != "awfis bkc" {
		t.Errorf("RawQuery = %q, want %q", resolved.RawQuery, "awfis bkc")
	}

	// A structured facet was parsed: the query words are already consumed,
	// reapplying them would double-constrain.
	resolved, err = Resolve(domain.SearchFilters{}, domain.ParsedFilters{City: "Mumbai"}, "coworking in mumbai")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved.RawQuery != "" {
		t.Errorf("RawQuery = %q, want empty when a structured facet parsed", resolved.RawQuery)
	}
}

func TestResolve_ResidualDoesNotBlockRawQuery(t *testing.T) {
	// A residual alone is not a structured facet.
	parsed := domain.ParsedFilters{FreeTextResidual: "iit"}

	resolved, err := Resolve(domain.SearchFilters{}, parsed, "iit")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved.RawQuery != "iit" {
		t.Errorf("RawQuery = %q, want %q", resolved.RawQuery, "iit")
	}
	if resolved.TextSearch != "iit" {
		t.Errorf("TextSearch = %q, want %q", resolved.TextSearch, "iit")
	}
}

func TestResolve_ValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		explicit domain.SearchFilters
		field    string
	}{
		{"bad kind", domain.SearchFilters{Kind: "warehouse"}, "kind"},
		{"negative capacity", domain.SearchFilters{MinCapacity: -1}, "minCapacity"},
		{"negative price", domain.SearchFilters{MaxPrice: -500}, "maxPrice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.explicit, domain.ParsedFilters{}, "")
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("error = %v, want wrapped ErrValidation", err)
			}
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error = %v, want *ValidationError", err)
			}
			if verr.Field != tt.field {
				t.Errorf("Field = %q, want %q", verr.Field, tt.field)
			}
		})
	}
}

func TestResolve_Deterministic(t *testing.T) {
	explicit := domain.SearchFilters{City: "Pune", WiFi: true}
	parsed := domain.ParsedFilters{Kind: domain.KindCoworking, MaxPrice: 8000}

	first, err := Resolve(explicit, parsed, "cheap coworking")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Resolve(explicit, parsed, "cheap coworking")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again != first {
			t.Errorf("iteration %d: Resolve() = %+v, want %+v", i, again, first)
		}
	}
}
