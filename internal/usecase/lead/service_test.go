package lead

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ishaan-jha021/ecomatch/internal/domain"
)

type mockStore struct {
	appended []domain.Lead
	err      error
}

func (m *mockStore) Append(_ context.Context, lead domain.Lead) error {
	if m.err != nil {
		return m.err
	}
	m.appended = append(m.appended, lead)
	return nil
}

func (m *mockStore) List(_ context.Context) ([]domain.Lead, error) {
	return m.appended, m.err
}

func validSubmission() Submission {
	return Submission{
		Name:      "Asha Rao",
		Email:     "asha@example.com",
		Phone:     "+91-9800000000",
		VenueName: "Awfis BKC",
		City:      "Mumbai",
		Message:   "Looking for 5 desks",
	}
}

func TestCreate(t *testing.T) {
	store := &mockStore{}
	svc := New(store)
	svc.now = func() time.Time {
		return time.Date(2026, 8, 1, 12, 0, 0, 0, time.FixedZone("IST", 5*3600+1800))
	}

	lead, err := svc.Create(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if !strings.HasPrefix(lead.ID, "lead-") {
		t.Errorf("ID = %q, want lead- prefix", lead.ID)
	}
	if lead.VenueType != string(domain.KindCoworking) {
		t.Errorf("VenueType = %q, want coworking default", lead.VenueType)
	}
	if lead.SubmittedAt.Location() != time.UTC {
		t.Errorf("SubmittedAt zone = %v, want UTC", lead.SubmittedAt.Location())
	}
	if len(store.appended) != 1 || store.appended[0].ID != lead.ID {
		t.Errorf("stored leads = %+v, want the created lead", store.appended)
	}
}

func TestCreate_ExplicitVenueType(t *testing.T) {
	svc := New(&mockStore{})

	sub := validSubmission()
	sub.VenueType = string(domain.KindIncubator)

	lead, err := svc.Create(context.Background(), sub)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if lead.VenueType != string(domain.KindIncubator) {
		t.Errorf("VenueType = %q, want incubator", lead.VenueType)
	}
}

func TestCreate_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		field  string
		mutate func(*Submission)
	}{
		{"name", func(s *Submission) { s.Name = "" }},
		{"email", func(s *Submission) { s.Email = "  " }},
		{"phone", func(s *Submission) { s.Phone = "" }},
		{"venueName", func(s *Submission) { s.VenueName = "" }},
		{"city", func(s *Submission) { s.City = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			store := &mockStore{}
			svc := New(store)

			sub := validSubmission()
			tt.mutate(&sub)

			_, err := svc.Create(context.Background(), sub)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("error = %v, want wrapped ErrValidation", err)
			}
			var verr *domain.ValidationError
			if !errors.As(err, &verr) || verr.Field != tt.field {
				t.Errorf("error = %v, want ValidationError on %q", err, tt.field)
			}
			if len(store.appended) != 0 {
				t.Errorf("invalid lead was stored: %+v", store.appended)
			}
		})
	}
}

func TestCreate_StoreError(t *testing.T) {
	wantErr := errors.New("disk full")
	svc := New(&mockStore{err: wantErr})

	_, err := svc.Create(context.Background(), validSubmission())
	if !errors.Is(err, wantErr) {
		t.Errorf("error = %v, want wrapped %v", err, wantErr)
	}
}

func TestList(t *testing.T) {
	store := &mockStore{appended: []domain.Lead{{ID: "lead-1"}, {ID: "lead-2"}}}
	svc := New(store)

	all, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("len(List) = %d, want 2", len(all))
	}
}
