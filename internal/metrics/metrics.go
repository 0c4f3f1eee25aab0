// Package metrics exposes Prometheus instrumentation for eqrng.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "eqrng"

// Metrics holds every collector on its own registry so tests and multiple
// servers in one process never collide.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	SelectionsTotal *prometheus.CounterVec
	RatingsTotal    *prometheus.CounterVec
	SnapshotRecords *prometheus.GaugeVec
	ReloadsTotal    *prometheus.CounterVec
}

// New creates a Metrics with Go runtime and process collectors registered.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		SelectionsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "selections_total",
				Help:      "Random selections by kind (zone, instance) and outcome (hit, miss)",
			},
			[]string{"kind", "outcome"},
		),
		RatingsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ratings_total",
				Help:      "Rating submissions by outcome",
			},
			[]string{"outcome"},
		),
		SnapshotRecords: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "snapshot_records",
				Help:      "Records in the active selection snapshot",
			},
			[]string{"kind"},
		),
		ReloadsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "snapshot_reloads_total",
				Help:      "Selection snapshot rebuilds by outcome",
			},
			[]string{"outcome"},
		),
	}
}

// Registry returns the registry backing m.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRequest records one finished HTTP request. route is the matched
// route template, never the raw path.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveSelection records a random selection.
func (m *Metrics) ObserveSelection(kind string, found bool) {
	if m == nil {
		return
	}
	outcome := "miss"
	if found {
		outcome = "hit"
	}
	m.SelectionsTotal.WithLabelValues(kind, outcome).Inc()
}

// ObserveRating records a rating submission outcome such as "accepted",
// "invalid", "not_found", "limited" or "error".
func (m *Metrics) ObserveRating(outcome string) {
	if m == nil {
		return
	}
	m.RatingsTotal.WithLabelValues(outcome).Inc()
}

// ObserveReload records a snapshot rebuild and the resulting sizes.
func (m *Metrics) ObserveReload(err error, zones, instances int) {
	if m == nil {
		return
	}
	if err != nil {
		m.ReloadsTotal.WithLabelValues("error").Inc()
		return
	}
	m.ReloadsTotal.WithLabelValues("ok").Inc()
	m.SnapshotRecords.WithLabelValues("zone").Set(float64(zones))
	m.SnapshotRecords.WithLabelValues("instance").Set(float64(instances))
}
