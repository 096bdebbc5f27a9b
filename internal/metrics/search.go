package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search Prometheus metrics.
var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lawsearch",
			Name:      "search_requests_total",
			Help:      "Total number of search requests",
		},
		[]string{"scope", "mode"}, // mode: "citation" / "keyword"
	)

	IndexSearchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "lawsearch",
			Name:      "index_search_duration_seconds",
			Help:      "Backing index search call duration in seconds",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"index"},
	)

	IndexSearchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lawsearch",
			Name:      "index_search_total",
			Help:      "Total backing index search calls",
		},
		[]string{"index", "status"}, // "success" / "error"
	)

	IndexFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lawsearch",
			Name:      "index_failures_total",
			Help:      "Search calls absorbed as partial failures",
		},
		[]string{"index"},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers Prometheus search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchRequestsTotal)
	prometheus.MustRegister(IndexSearchDuration)
	prometheus.MustRegister(IndexSearchTotal)
	prometheus.MustRegister(IndexFailuresTotal)
	searchMetricsRegistered = true
}
