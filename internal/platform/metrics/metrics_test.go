package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_CountsByRouteAndClass(t *testing.T) {
	// Single New() per test binary: promauto registers with the default
	// registry and duplicate registration panics.
	m := New()

	router := chi.NewRouter()
	router.Use(m.Middleware)
	router.Get("/things/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, path := range []string{"/things/1", "/things/2", "/missing"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsServed.WithLabelValues("/things/{id}", "2xx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsServed.WithLabelValues("unmatched", "4xx")))

	m.SetControlsLoaded(42)
	assert.Equal(t, 42.0, testutil.ToFloat64(m.ControlsLoaded))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	m.IncrementRequest("/healthz", "2xx")
	m.SetControlsLoaded(3)
}

func TestStatusClass(t *testing.T) {
	assert.Equal(t, "2xx", statusClass(http.StatusOK))
	assert.Equal(t, "4xx", statusClass(http.StatusNotFound))
	assert.Equal(t, "5xx", statusClass(http.StatusInternalServerError))
}
