// Package catalog supplies the venue collection the search engine reads.
// Two backends: a JSON file (with a built-in fixture fallback) and Redis.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/ishaan-jha021/ecomatch/internal/domain"
)

// FileCatalog serves venues from a JSON file loaded into memory. The loaded
// slice sits behind an atomic pointer: Reload swaps in a fresh snapshot
// while in-flight searches keep filtering the one they started with, so no
// search ever sees a partially updated collection.
type FileCatalog struct {
	path     string
	snapshot atomic.Pointer[[]domain.Venue]
	logger   *zap.Logger
}

// NewFileCatalog loads the catalog from path. A missing or empty file is not
// an error: the embedded fixture venues are served instead, matching how the
// directory behaves before any scraped data exists.
func NewFileCatalog(path string, logger *zap.Logger) (*FileCatalog, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &FileCatalog{path: path, logger: logger}
	if err := c.Reload(context.Background()); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload re-reads the file and atomically swaps the snapshot.
func (c *FileCatalog) Reload(_ context.Context) error {
	venues, err := c.load()
	if err != nil {
		return err
	}
	c.snapshot.Store(&venues)
	return nil
}

func (c *FileCatalog) load() ([]domain.Venue, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			c.logger.Warn("catalog file missing, serving fixture venues",
				zap.String("path", c.path),
			)
			return fixtureVenues(), nil
		}
		return nil, fmt.Errorf("read catalog %s: %w", c.path, err)
	}

	var venues []domain.Venue
	if err := json.Unmarshal(data, &venues); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", c.path, err)
	}
	if len(venues) == 0 {
		c.logger.Warn("catalog file empty, serving fixture venues",
			zap.String("path", c.path),
		)
		return fixtureVenues(), nil
	}
	return venues, nil
}

// All returns the current snapshot. Callers must not mutate it.
func (c *FileCatalog) All(_ context.Context) ([]domain.Venue, error) {
	return *c.snapshot.Load(), nil
}

// Get returns a venue by ID.
func (c *FileCatalog) Get(_ context.Context, id string) (domain.Venue, error) {
	for _, v := range *c.snapshot.Load() {
		if v.ID == id {
			return v, nil
		}
	}
	return domain.Venue{}, domain.ErrNotFound
}

// Cities returns the sorted unique city names in the catalog.
func (c *FileCatalog) Cities(_ context.Context) ([]string, error) {
	return uniqueCities(*c.snapshot.Load()), nil
}

func uniqueCities(venues []domain.Venue) []string {
	seen := make(map[string]struct{}, len(venues))
	var cities []string
	for _, v := range venues {
		if _, ok := seen[v.Location.City]; ok {
			continue
		}
		seen[v.Location.City] = struct{}{}
		cities = append(cities, v.Location.City)
	}
	sort.Strings(cities)
	return cities
}
