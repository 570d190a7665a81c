package leads

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ishaan-jha021/ecomatch/internal/db"
)

type memStore struct {
	docs map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{docs: make(map[string][]byte)}
}

func (m *memStore) JSONSet(_ context.Context, key, _ string, data []byte) error {
	m.docs[key] = data
	return nil
}

func (m *memStore) JSONGet(_ context.Context, key string, _ ...string) ([]byte, error) {
	data, ok := m.docs[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return []byte("[" + string(data) + "]"), nil
}

func (m *memStore) Scan(_ context.Context, pattern string) ([]string, error) {
	prefix := strings.TrimSuffix(pattern, "*")
	var keys []string
	for k := range m.docs {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func TestRedisStore_AppendAndList(t *testing.T) {
	store := NewRedisStore(newMemStore(), "test:")
	ctx := context.Background()

	second := testLead("lead-2")
	second.SubmittedAt = second.SubmittedAt.Add(time.Hour)

	// Append out of order; List sorts by submission time.
	if err := store.Append(ctx, second); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := store.Append(ctx, testLead("lead-1")); err != nil {
		t.Fatalf("Append: %v", err)
	}

	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("len(List) = %d, want 2", len(all))
	}
	if all[0].ID != "lead-1" || all[1].ID != "lead-2" {
		t.Errorf("order = %s, %s; want lead-1 first", all[0].ID, all[1].ID)
	}
}

func TestRedisStore_ListEmpty(t *testing.T) {
	store := NewRedisStore(newMemStore(), "test:")

	all, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("len(List) = %d, want 0", len(all))
	}
}
