// Package directory exposes catalog lookups that are not searches: venue
// detail and the city list.
package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/ishaan-jha021/ecomatch/internal/domain"
)

// Catalog is the read contract the directory needs.
type Catalog interface {
	Get(ctx context.Context, id string) (domain.Venue, error)
	Cities(ctx context.Context) ([]string, error)
}

// Service answers venue detail and city listing requests.
type Service struct {
	catalog Catalog
}

// New creates a directory service.
func New(catalog Catalog) *Service {
	return &Service{catalog: catalog}
}

// Get returns a venue by ID. Unknown IDs yield domain.ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (domain.Venue, error) {
	v, err := s.catalog.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Venue{}, err
		}
		return domain.Venue{}, fmt.Errorf("get venue %s: %w", id, err)
	}
	return v, nil
}

// Cities returns the sorted unique cities with at least one listing.
func (s *Service) Cities(ctx context.Context) ([]string, error) {
	cities, err := s.catalog.Cities(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}
	return cities, nil
}
