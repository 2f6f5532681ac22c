package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for batch orchestration.
type Metrics struct {
	// End-to-end batch generation latency
	BatchLatency prometheus.Histogram

	// Per-category results by status (generated, no_template, no_requirements, error)
	CategoryResults *prometheus.CounterVec

	// Generated-result cache effectiveness
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter
}

// New creates a new Metrics instance with all orchestrator metrics registered.
func New() *Metrics {
	return &Metrics{
		BatchLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "unify_batch_duration_seconds",
			Help:    "Duration of full batch unified requirement generation",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),

		CategoryResults: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "unify_batch_category_results_total",
			Help: "Total per-category batch results by status",
		}, []string{"status"}),

		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "unify_result_cache_hits_total",
			Help: "Total generated-result cache hits",
		}),

		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "unify_result_cache_misses_total",
			Help: "Total generated-result cache misses",
		}),
	}
}

// ObserveBatchLatency records the duration of one batch run.
func (m *Metrics) ObserveBatchLatency(d time.Duration) {
	if m != nil {
		m.BatchLatency.Observe(d.Seconds())
	}
}

// IncrementCategoryResult records one per-category outcome.
func (m *Metrics) IncrementCategoryResult(status string) {
	if m != nil {
		m.CategoryResults.WithLabelValues(status).Inc()
	}
}

// IncrementCacheHit records a result served from cache.
func (m *Metrics) IncrementCacheHit() {
	if m != nil {
		m.CacheHits.Inc()
	}
}

// IncrementCacheMiss records a cache lookup that found nothing.
func (m *Metrics) IncrementCacheMiss() {
	if m != nil {
		m.CacheMisses.Inc()
	}
}
