// Package metrics holds the Prometheus collectors of the service.
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

const namespace = "studyhabit"

// Metrics is a set of collectors registered on their own registry.
type Metrics struct {
	reg *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	httpInFlight prometheus.Gauge

	sessionsRecorded  prometheus.Counter
	sessionMinutes    prometheus.Histogram
	reconcileFailures *prometheus.CounterVec
	recalculations    prometheus.Counter

	cacheLookups *prometheus.CounterVec
	recalcJobs   *prometheus.CounterVec
}

// New creates and registers all collectors, including the Go runtime and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		reg: reg,

		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),

		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "route"}),

		httpInFlight: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "HTTP requests currently being served.",
		}),

		sessionsRecorded: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "study_sessions_recorded_total",
			Help:      "Study sessions appended to the ledger.",
		}),

		sessionMinutes: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "study_session_minutes",
			Help:      "Duration of recorded study sessions in minutes.",
			Buckets:   []float64{5, 15, 25, 45, 60, 90, 120, 180, 240},
		}),

		reconcileFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "study_reconcile_failures_total",
			Help:      "Failed derived-data updates after a session write, by step.",
		}, []string{"step"}),

		recalculations: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "study_recalculations_total",
			Help:      "Completed full recalculations of a user's derived data.",
		}),

		cacheLookups: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Progress cache lookups by kind and result.",
		}, []string{"kind", "result"}),

		recalcJobs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recalc_jobs_total",
			Help:      "Recalculation requests consumed from the queue, by outcome.",
		}, []string{"outcome"}),
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// InFlight adjusts the in-flight gauge by delta.
func (m *Metrics) InFlight(delta float64) {
	m.httpInFlight.Add(delta)
}

// SessionRecorded counts a stored session.
func (m *Metrics) SessionRecorded(minutes int) {
	m.sessionsRecorded.Inc()
	m.sessionMinutes.Observe(float64(minutes))
}

// ReconcileFailed counts a failed reconciliation step.
func (m *Metrics) ReconcileFailed(step string) {
	m.reconcileFailures.WithLabelValues(step).Inc()
}

// Recalculated counts a finished recalculation.
func (m *Metrics) Recalculated() {
	m.recalculations.Inc()
}

// CacheHit counts a cache hit for kind ("stats", "weekly").
func (m *Metrics) CacheHit(kind string) {
	m.cacheLookups.WithLabelValues(kind, "hit").Inc()
}

// CacheMiss counts a cache miss for kind.
func (m *Metrics) CacheMiss(kind string) {
	m.cacheLookups.WithLabelValues(kind, "miss").Inc()
}

// RecalcJob counts a consumed queue message; outcome is "ok", "requeued"
// or "dropped".
func (m *Metrics) RecalcJob(outcome string) {
	m.recalcJobs.WithLabelValues(outcome).Inc()
}
