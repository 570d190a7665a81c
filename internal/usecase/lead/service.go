// Package lead handles venue enquiry capture.
package lead

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ishaan-jha021/ecomatch/internal/domain"
)

// Service validates and stores venue enquiries.
type Service struct {
	store Store
	now   func() time.Time
}

// New creates a lead service.
func New(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Submission is a caller-supplied enquiry.
type Submission struct {
	Name      string
	Email     string
	Phone     string
	VenueName string
	VenueType string
	City      string
	Message   string
}

// Create validates a submission and persists it. Returns the stored lead.
func (s *Service) Create(ctx context.Context, sub Submission) (domain.Lead, error) {
	lead := domain.Lead{
		ID:          "lead-" + uuid.NewString(),
		Name:        sub.Name,
		Email:       sub.Email,
		Phone:       sub.Phone,
		VenueName:   sub.VenueName,
		VenueType:   sub.VenueType,
		City:        sub.City,
		Message:     sub.Message,
		SubmittedAt: s.now().UTC(),
	}
	if lead.VenueType == "" {
		lead.VenueType = string(domain.KindCoworking)
	}

	if err := lead.Validate(); err != nil {
		return domain.Lead{}, err
	}

	if err := s.store.Append(ctx, lead); err != nil {
		return domain.Lead{}, fmt.Errorf("store lead: %w", err)
	}
	return lead, nil
}

// List returns all captured leads.
func (s *Service) List(ctx context.Context) ([]domain.Lead, error) {
	all, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	return all, nil
}
