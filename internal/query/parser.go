package query

import (
	"context"

	"go.uber.org/zap"

	"github.com/ishaan-jha021/ecomatch/internal/domain"
	"github.com/ishaan-jha021/ecomatch/internal/metrics"
)

// Parser converts a free-text query into structured filters. Implementations
// must not mutate the result after returning it.
type Parser interface {
	Parse(ctx context.Context, text string) (domain.ParsedFilters, error)
}

// Fallback composes a primary parser with a deterministic fallback. Any
// primary error is swallowed: the same input is re-parsed by the fallback, so
// a caller never sees a parse failure. This is what keeps the language-model
// strategy from ever becoming a single point of failure.
type Fallback struct {
	primary  Parser
	fallback Parser
	logger   *zap.Logger
}

// NewFallback creates the composite strategy. primary may be nil, in which
// case every query goes straight to the fallback.
func NewFallback(primary, fallback Parser, logger *zap.Logger) *Fallback {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fallback{primary: primary, fallback: fallback, logger: logger}
}

// Parse tries the primary parser and falls back on any error. No retries:
// one failed attempt trades parse precision for bounded latency.
func (f *Fallback) Parse(ctx context.Context, text string) (domain.ParsedFilters, error) {
	if f.primary != nil {
		parsed, err := f.primary.Parse(ctx, text)
		if err == nil {
			metrics.ParseTotal.WithLabelValues("llm", "success").Inc()
			return parsed, nil
		}
		metrics.ParseTotal.WithLabelValues("llm", "error").Inc()
		metrics.ParseFallbacksTotal.Inc()
		f.logger.Debug("primary query parser failed, using rule-based fallback",
			zap.Error(err),
		)
	}

	parsed, err := f.fallback.Parse(ctx, text)
	if err != nil {
		// The rule parser is total; this branch exists only for foreign
		// fallback implementations.
		metrics.ParseTotal.WithLabelValues("rules", "error").Inc()
		return domain.ParsedFilters{}, err
	}
	metrics.ParseTotal.WithLabelValues("rules", "success").Inc()
	return parsed, nil
}
