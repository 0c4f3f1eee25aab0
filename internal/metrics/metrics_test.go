package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest(t *testing.T) {
	m := New()
	m.ObserveRequest("GET", "/random_zone", 200, 3*time.Millisecond)
	m.ObserveRequest("GET", "/random_zone", 200, time.Millisecond)
	m.ObserveRequest("GET", "/random_zone", 404, time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/random_zone", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/random_zone", "404")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.RequestDuration))
}

func TestObserveSelection(t *testing.T) {
	m := New()
	m.ObserveSelection("zone", true)
	m.ObserveSelection("zone", false)
	m.ObserveSelection("zone", false)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.SelectionsTotal.WithLabelValues("zone", "hit")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.SelectionsTotal.WithLabelValues("zone", "miss")))
}

func TestObserveReload(t *testing.T) {
	m := New()
	m.ObserveReload(nil, 12, 3)
	m.ObserveReload(errors.New("boom"), 0, 0)

	assert.Equal(t, float64(12), testutil.ToFloat64(m.SnapshotRecords.WithLabelValues("zone")))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.SnapshotRecords.WithLabelValues("instance")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ReloadsTotal.WithLabelValues("ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ReloadsTotal.WithLabelValues("error")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest("GET", "/", 200, 0)
		m.ObserveSelection("zone", true)
		m.ObserveRating("accepted")
		m.ObserveReload(nil, 1, 1)
	})
}

func TestHandler_Exposition(t *testing.T) {
	m := New()
	m.ObserveRating("accepted")

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `eqrng_ratings_total{outcome="accepted"} 1`)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestNew_IndependentRegistries(t *testing.T) {
	a, b := New(), New()
	a.ObserveRating("accepted")
	assert.Equal(t, float64(0), testutil.ToFloat64(b.RatingsTotal.WithLabelValues("accepted")))
}
