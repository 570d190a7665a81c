package directory

import (
	"context"
	"errors"
	"testing"

	"github.com/ishaan-jha021/ecomatch/internal/domain"
)

type mockCatalog struct {
	venues map[string]domain.Venue
	cities []string
	err    error
}

func (m *mockCatalog) Get(_ context.Context, id string) (domain.Venue, error) {
	if m.err != nil {
		return domain.Venue{}, m.err
	}
	v, ok := m.venues[id]
	if !ok {
		return domain.Venue{}, domain.ErrNotFound
	}
	return v, nil
}

func (m *mockCatalog) Cities(_ context.Context) ([]string, error) {
	return m.cities, m.err
}

func TestGet(t *testing.T) {
	svc := New(&mockCatalog{venues: map[string]domain.Venue{
		"v1": {ID: "v1", Name: "Awfis BKC"},
	}})

	v, err := svc.Get(context.Background(), "v1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v.Name != "Awfis BKC" {
		t.Errorf("Name = %q, want Awfis BKC", v.Name)
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := New(&mockCatalog{venues: map[string]domain.Venue{}})

	_, err := svc.Get(context.Background(), "nope")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound passed through unwrapped", err)
	}
}

func TestGet_CatalogError(t *testing.T) {
	wantErr := errors.New("store unreachable")
	svc := New(&mockCatalog{err: wantErr})

	_, err := svc.Get(context.Background(), "v1")
	if !errors.Is(err, wantErr) {
		t.Errorf("error = %v, want wrapped %v", err, wantErr)
	}
	if errors.Is(err, domain.ErrNotFound) {
		t.Error("store error must not map to ErrNotFound")
	}
}

func TestCities(t *testing.T) {
	svc := New(&mockCatalog{cities: []string{"Mumbai", "Pune"}})

	cities, err := svc.Cities(context.Background())
	if err != nil {
		t.Fatalf("Cities: %v", err)
	}
	if len(cities) != 2 {
		t.Errorf("Cities = %v, want 2 entries", cities)
	}
}
