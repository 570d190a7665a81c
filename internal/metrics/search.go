package metrics

import "github.com/prometheus/client_golang/prometheus"

// Query-understanding and search Prometheus metrics.
var (
	ParseTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ecomatch",
			Name:      "query_parse_total",
			Help:      "Query parses by strategy and outcome",
		},
		[]string{"strategy", "outcome"}, // strategy: llm/rules, outcome: success/error
	)

	ParseFallbacksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ecomatch",
			Name:      "query_parse_fallbacks_total",
			Help:      "Times the LLM parser failed and the rule parser took over",
		},
	)

	SearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "ecomatch",
			Name:      "search_duration_seconds",
			Help:      "End-to-end search duration (parse, resolve, filter, rank)",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5},
		},
	)

	SearchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "ecomatch",
			Name:      "search_results",
			Help:      "Number of venues returned per search",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
		},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(ParseTotal)
	prometheus.MustRegister(ParseFallbacksTotal)
	prometheus.MustRegister(SearchDuration)
	prometheus.MustRegister(SearchResults)
	searchMetricsRegistered = true
}
