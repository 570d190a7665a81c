package health

import "context"

// CatalogChecker checks that the venue catalog is readable.
type CatalogChecker interface {
	HealthCheck(ctx context.Context) error
}

// ParserChecker checks language-model parser availability.
type ParserChecker interface {
	HealthCheck(ctx context.Context) error
}
