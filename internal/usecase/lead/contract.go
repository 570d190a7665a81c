package lead

import (
	"context"

	"github.com/ishaan-jha021/ecomatch/internal/domain"
)

// Store defines the persistence contract for leads.
type Store interface {
	Append(ctx context.Context, lead domain.Lead) error
	List(ctx context.Context) ([]domain.Lead, error)
}
