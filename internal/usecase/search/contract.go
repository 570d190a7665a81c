package search

import (
	"context"

	"github.com/ishaan-jha021/ecomatch/internal/domain"
)

// Catalog supplies the venue collection. The engine only reads it: each call
// to All must return a single consistent snapshot, safe to filter while the
// underlying data is being reloaded.
type Catalog interface {
	All(ctx context.Context) ([]domain.Venue, error)
}

// Parser converts free text into structured filters. Satisfied by the
// rule-based parser, the LLM strategy, and their fallback composite; the
// service never knows which produced the result.
type Parser interface {
	Parse(ctx context.Context, text string) (domain.ParsedFilters, error)
}
