package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ishaan-jha021/ecomatch/internal/db"
	"github.com/ishaan-jha021/ecomatch/internal/domain"
)

// store is the consumer interface for the redis catalog (ISP).
type store interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// RedisCatalog serves venues stored as JSON documents under a key prefix.
// Each All call materializes a fresh slice, so searches filter their own
// collection regardless of concurrent writes.
type RedisCatalog struct {
	store     store
	keyPrefix string
}

// NewRedisCatalog creates a redis-backed catalog.
func NewRedisCatalog(s store, keyPrefix string) *RedisCatalog {
	if keyPrefix == "" {
		keyPrefix = "ecomatch:"
	}
	return &RedisCatalog{store: s, keyPrefix: keyPrefix}
}

func (c *RedisCatalog) venueKey(id string) string {
	return c.keyPrefix + "venue:" + id
}

// Seed stores venues, one JSON document per venue.
func (c *RedisCatalog) Seed(ctx context.Context, venues []domain.Venue) error {
	for _, v := range venues {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal venue %s: %w", v.ID, err)
		}
		if err := c.store.JSONSet(ctx, c.venueKey(v.ID), "$", data); err != nil {
			return fmt.Errorf("json.set venue %s: %w", v.ID, err)
		}
	}
	return nil
}

// All loads every venue under the key prefix, ordered by key for a stable
// catalog order.
func (c *RedisCatalog) All(ctx context.Context) ([]domain.Venue, error) {
	keys, err := c.store.Scan(ctx, c.keyPrefix+"venue:*")
	if err != nil {
		return nil, fmt.Errorf("scan venues: %w", err)
	}
	sort.Strings(keys)

	venues := make([]domain.Venue, 0, len(keys))
	for _, key := range keys {
		v, err := c.get(ctx, key)
		if err != nil {
			if errors.Is(err, db.ErrKeyNotFound) {
				continue // deleted between SCAN and GET
			}
			return nil, err
		}
		venues = append(venues, v)
	}
	return venues, nil
}

// Get returns a venue by ID.
func (c *RedisCatalog) Get(ctx context.Context, id string) (domain.Venue, error) {
	v, err := c.get(ctx, c.venueKey(id))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domain.Venue{}, domain.ErrNotFound
		}
		return domain.Venue{}, err
	}
	return v, nil
}

// Cities returns the sorted unique city names in the catalog.
func (c *RedisCatalog) Cities(ctx context.Context) ([]string, error) {
	venues, err := c.All(ctx)
	if err != nil {
		return nil, err
	}
	return uniqueCities(venues), nil
}

func (c *RedisCatalog) get(ctx context.Context, key string) (domain.Venue, error) {
	raw, err := c.store.JSONGet(ctx, key, "$")
	if err != nil {
		return domain.Venue{}, fmt.Errorf("json.get %s: %w", key, err)
	}

	// JSON.GET with a $ path returns a one-element array.
	trimmed := strings.TrimSpace(string(raw))
	var v domain.Venue
	if strings.HasPrefix(trimmed, "[") {
		var arr []domain.Venue
		if err := json.Unmarshal([]byte(trimmed), &arr); err != nil {
			return domain.Venue{}, fmt.Errorf("decode venue %s: %w", key, err)
		}
		if len(arr) == 0 {
			return domain.Venue{}, db.ErrKeyNotFound
		}
		return arr[0], nil
	}
	if err := json.Unmarshal([]byte(trimmed), &v); err != nil {
		return domain.Venue{}, fmt.Errorf("decode venue %s: %w", key, err)
	}
	return v, nil
}
