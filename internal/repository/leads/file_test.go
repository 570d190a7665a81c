package leads

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/ishaan-jha021/ecomatch/internal/domain"
)

func testLead(id string) domain.Lead {
	return domain.Lead{
		ID:          id,
		Name:        "Asha Rao",
		Email:       "asha@example.com",
		Phone:       "+91-9800000000",
		VenueName:   "Awfis BKC",
		VenueType:   "coworking",
		City:        "Mumbai",
		SubmittedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestFileStore_AppendAndList(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "leads.json"))
	ctx := context.Background()

	if err := store.Append(ctx, testLead("lead-1")); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := store.Append(ctx, testLead("lead-2")); err != nil {
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
		t.Errorf("unexpected order: %s, %s", all[0].ID, all[1].ID)
	}
	if all[0].Email != "asha@example.com" {
		t.Errorf("Email = %q, want roundtripped value", all[0].Email)
	}
}

func TestFileStore_ListMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "leads.json"))

	all, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("len(List) = %d, want 0 before any append", len(all))
	}
}

func TestFileStore_ConcurrentAppends(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "leads.json"))
	ctx := context.Background()

	done := make(chan error, 10)
	for i := 0; i < 10; i++ {
		go func(id string) {
			done <- store.Append(ctx, testLead(id))
		}("lead-" + string(rune('a'+i)))
	}
	for i := 0; i < 10; i++ {
		if err := <-done; err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 10 {
		t.Errorf("len(List) = %d, want 10", len(all))
	}
}
