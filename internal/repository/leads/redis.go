package leads

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

// store is the consumer interface for the redis lead store (ISP).
type store interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// RedisStore keeps each lead as a JSON document under a key prefix.
type RedisStore struct {
	store     store
	keyPrefix string
}

// NewRedisStore creates a redis-backed lead store.
func NewRedisStore(s store, keyPrefix string) *RedisStore {
	if keyPrefix == "" {
		keyPrefix = "ecomatch:"
	}
	return &RedisStore{store: s, keyPrefix: keyPrefix}
}

func (s *RedisStore) leadKey(id string) string {
	return s.keyPrefix + "lead:" + id
}

// Append stores a lead.
func (s *RedisStore) Append(ctx context.Context, lead domain.Lead) error {
	data, err := json.Marshal(lead)
	if err != nil {
		return fmt.Errorf("marshal lead %s: %w", lead.ID, err)
	}
	if err := s.store.JSONSet(ctx, s.leadKey(lead.ID), "$", data); err != nil {
		return fmt.Errorf("json.set lead %s: %w", lead.ID, err)
	}
	return nil
}

// List returns all stored leads ordered by submission time.
func (s *RedisStore) List(ctx context.Context) ([]domain.Lead, error) {
	keys, err := s.store.Scan(ctx, s.keyPrefix+"lead:*")
	if err != nil {
		return nil, fmt.Errorf("scan leads: %w", err)
	}

	all := make([]domain.Lead, 0, len(keys))
	for _, key := range keys {
		raw, err := s.store.JSONGet(ctx, key, "$")
		if err != nil {
			if errors.Is(err, db.ErrKeyNotFound) {
				continue
			}
			return nil, fmt.Errorf("json.get %s: %w", key, err)
		}
		lead, err := decodeLead(raw)
		if err != nil {
			return nil, fmt.Errorf("decode lead %s: %w", key, err)
		}
		all = append(all, lead)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].SubmittedAt.Before(all[j].SubmittedAt)
	})
	return all, nil
}

func decodeLead(raw []byte) (domain.Lead, error) {
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "[") {
		var arr []domain.Lead
		if err := json.Unmarshal([]byte(trimmed), &arr); err != nil {
			return domain.Lead{}, err
		}
		if len(arr) == 0 {
			return domain.Lead{}, db.ErrKeyNotFound
		}
		return arr[0], nil
	}
	var lead domain.Lead
	if err := json.Unmarshal([]byte(trimmed), &lead); err != nil {
		return domain.Lead{}, err
	}
	return lead, nil
}
