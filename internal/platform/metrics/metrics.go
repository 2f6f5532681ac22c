package metrics

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds process-wide Prometheus metrics. Domain modules register
// their own metrics in their local metrics packages.
type Metrics struct {
	RequestsServed *prometheus.CounterVec
	ControlsLoaded prometheus.Gauge
}

// New creates and registers all application-level Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		RequestsServed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "unify_http_requests_total",
			Help: "Total HTTP requests served by route and status class",
		}, []string{"route", "class"}),

		ControlsLoaded: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "unify_source_controls_loaded",
			Help: "Number of source controls in the loaded library",
		}),
	}
}

// IncrementRequest records one served request.
func (m *Metrics) IncrementRequest(route, class string) {
	if m != nil {
		m.RequestsServed.WithLabelValues(route, class).Inc()
	}
}

// Middleware counts every served request by matched chi route pattern and
// status class. Route patterns keep the label cardinality bounded; raw paths
// would not.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		m.IncrementRequest(route, statusClass(rec.status))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func statusClass(code int) string {
	return strconv.Itoa(code/100) + "xx"
}

// SetControlsLoaded records the size of the loaded control library.
func (m *Metrics) SetControlsLoaded(n int) {
	if m != nil {
		m.ControlsLoaded.Set(float64(n))
	}
}
