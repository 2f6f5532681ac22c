package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the synthesis module.
type Metrics struct {
	// Synthesis latency per category
	SynthesizeLatency *prometheus.HistogramVec

	// Synthesis outcomes (generated, no_template, no_requirements)
	Outcomes *prometheus.CounterVec

	// Controls that matched no slot and were dropped from synthesis
	UnmatchedControls prometheus.Counter
}

// New creates a new Metrics instance with all synthesis metrics registered.
func New() *Metrics {
	return &Metrics{
		SynthesizeLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "unify_synthesis_duration_seconds",
			Help:    "Duration of per-category requirement synthesis",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		}, []string{"category"}),

		Outcomes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "unify_synthesis_outcomes_total",
			Help: "Total synthesis outcomes by kind",
		}, []string{"outcome"}),

		UnmatchedControls: promauto.NewCounter(prometheus.CounterOpts{
			Name: "unify_synthesis_unmatched_controls_total",
			Help: "Total source controls that matched no template slot",
		}),
	}
}

// ObserveSynthesizeLatency records the duration of one category synthesis.
func (m *Metrics) ObserveSynthesizeLatency(category string, d time.Duration) {
	if m != nil {
		m.SynthesizeLatency.WithLabelValues(category).Observe(d.Seconds())
	}
}

// IncrementOutcome records a synthesis outcome.
func (m *Metrics) IncrementOutcome(outcome string) {
	if m != nil {
		m.Outcomes.WithLabelValues(outcome).Inc()
	}
}

// AddUnmatchedControls records controls dropped for matching no slot.
func (m *Metrics) AddUnmatchedControls(n int) {
	if m != nil && n > 0 {
		m.UnmatchedControls.Add(float64(n))
	}
}
