package metrics

import "github.com/prometheus/client_golang/prometheus"

// Matching engine Prometheus metrics.
var (
	MatchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "affinity",
			Name:      "match_requests_total",
			Help:      "Total number of match computations",
		},
		[]string{"target", "status"}, // target: "people" / "jobs"
	)

	MatchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "affinity",
			Name:      "match_duration_seconds",
			Help:      "Full match computation duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"target"},
	)

	MatchCandidatePoolSize = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "affinity",
			Name:      "match_candidate_pool_size",
			Help:      "Number of candidates retrieved before ranking",
			Buckets:   []float64{0, 10, 25, 50, 100, 250, 500, 1000},
		},
		[]string{"target"},
	)

	MatchCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "affinity",
			Name:      "match_cache_total",
			Help:      "Response cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)
)

var matchMetricsRegistered bool

// RegisterMatchMetrics registers Prometheus matching metrics. Must be called once from main.
func RegisterMatchMetrics() {
	if matchMetricsRegistered {
		return
	}
	prometheus.MustRegister(MatchRequestsTotal)
	prometheus.MustRegister(MatchDuration)
	prometheus.MustRegister(MatchCandidatePoolSize)
	prometheus.MustRegister(MatchCacheTotal)
	matchMetricsRegistered = true
}
