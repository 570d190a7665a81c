// Package search wires query understanding, filter resolution, predicate
// filtering, and ranking into one synchronous search pipeline.
package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ishaan-jha021/ecomatch/internal/domain"
	"github.com/ishaan-jha021/ecomatch/internal/metrics"
)

// Service executes venue searches. Stateless between requests: every call
// parses, resolves, filters, and ranks against a single catalog snapshot, so
// concurrent searches need no locking.
type Service struct {
	catalog     Catalog
	parser      Parser
	maxResults  int
	defaultSort domain.SortKey
}

// New creates a search service.
func New(catalog Catalog, parser Parser) *Service {
	return &Service{catalog: catalog, parser: parser, defaultSort: domain.SortTrust}
}

// WithMaxResults caps the number of venues returned per search. 0 means
// unlimited.
func (s *Service) WithMaxResults(n int) *Service {
	s.maxResults = n
	return s
}

// WithDefaultSort sets the sort key used when a request supplies none.
func (s *Service) WithDefaultSort(key domain.SortKey) *Service {
	if key.IsValid() {
		s.defaultSort = key
	}
	return s
}

// Request is one caller-facing search.
type Request struct {
	Query    string
	Explicit domain.SearchFilters
	Sort     domain.SortKey
}

// Result carries the ordered venues plus the canonical filters they were
// selected by, so callers can show what the query was understood as.
type Result struct {
	Filters domain.SearchFilters
	Venues  []domain.Venue
}

// Search runs the full pipeline: parse free text, resolve against explicit
// filters, filter the catalog, rank. An empty result is a valid outcome, not
// an error; the only caller-visible error classes are malformed explicit
// filters and catalog failures.
func (s *Service) Search(ctx context.Context, req Request) (Result, error) {
	start := time.Now()

	sortKey := req.Sort
	if sortKey == "" {
		sortKey = s.defaultSort
	}
	if !sortKey.IsValid() {
		return Result{}, domain.NewValidationError("sort", "must be trust, price_low or price_high")
	}

	rawQuery := strings.TrimSpace(req.Query)

	var parsed domain.ParsedFilters
	if rawQuery != "" {
		var err error
		parsed, err = s.parser.Parse(ctx, rawQuery)
		if err != nil {
			// The fallback composite swallows strategy failures; an error
			// here means even the deterministic parser was replaced by
			// something fallible. Degrade to a raw text search.
			parsed = domain.ParsedFilters{}
		}
	}

	resolved, err := Resolve(req.Explicit, parsed, rawQuery)
	if err != nil {
		return Result{}, err
	}

	venues, err := s.catalog.All(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("load catalog: %w", err)
	}

	filtered := Filter(venues, resolved)
	ranked := Rank(filtered, sortKey)

	if s.maxResults > 0 && len(ranked) > s.maxResults {
		ranked = ranked[:s.maxResults]
	}

	metrics.SearchDuration.Observe(time.Since(start).Seconds())
	metrics.SearchResults.Observe(float64(len(ranked)))

	return Result{Filters: resolved, Venues: ranked}, nil
}
