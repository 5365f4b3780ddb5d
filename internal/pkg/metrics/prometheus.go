package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	registry *prometheus.Registry

	// Request metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RateLimited     prometheus.Counter

	// Query metrics
	SearchesTotal    *prometheus.CounterVec
	SearchResults    *prometheus.HistogramVec
	IgnoredBounds    *prometheus.CounterVec
	CategorySwitches *prometheus.CounterVec

	// Dataset metrics
	DatasetRecords *prometheus.GaugeVec

	// Session metrics
	SessionErrors *prometheus.CounterVec
}

// NewMetrics creates the metrics on their own registry, together with the
// Go runtime and process collectors
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "unibrowser_http_requests_total",
				Help: "Total number of HTTP requests processed",
			},
			[]string{"method", "route", "status"},
		),

		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "unibrowser_http_request_duration_seconds",
				Help:    "Duration of HTTP request processing",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),

		RateLimited: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "unibrowser_http_rate_limited_total",
				Help: "Total number of requests rejected by the rate limiter",
			},
		),

		SearchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "unibrowser_searches_total",
				Help: "Total number of searches evaluated",
			},
			[]string{"category"},
		),

		SearchResults: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "unibrowser_search_results",
				Help:    "Number of records returned per search",
				Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
			},
			[]string{"category"},
		),

		IgnoredBounds: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "unibrowser_ignored_bounds_total",
				Help: "Total number of range bounds ignored because they were not numeric",
			},
			[]string{"category"},
		),

		CategorySwitches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "unibrowser_category_switches_total",
				Help: "Total number of category switches in browser sessions",
			},
			[]string{"category"},
		),

		DatasetRecords: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "unibrowser_dataset_records",
				Help: "Number of records loaded per category",
			},
			[]string{"category"},
		),

		SessionErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "unibrowser_session_errors_total",
				Help: "Total number of session store failures",
			},
			[]string{"operation"},
		),
	}
}

// Registry returns the registry the metrics are registered on
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveSearch records one evaluated search. A nil receiver is a no-op so
// services can run without metrics in tests.
func (m *Metrics) ObserveSearch(category string, results, ignoredBounds int) {
	if m == nil {
		return
	}
	m.SearchesTotal.WithLabelValues(category).Inc()
	m.SearchResults.WithLabelValues(category).Observe(float64(results))
	if ignoredBounds > 0 {
		m.IgnoredBounds.WithLabelValues(category).Add(float64(ignoredBounds))
	}
}

// ObserveCategorySwitch records a session switching to a category
func (m *Metrics) ObserveCategorySwitch(category string) {
	if m == nil {
		return
	}
	m.CategorySwitches.WithLabelValues(category).Inc()
}

// ObserveSessionError records a failed session store operation
func (m *Metrics) ObserveSessionError(operation string) {
	if m == nil {
		return
	}
	m.SessionErrors.WithLabelValues(operation).Inc()
}

// SetDatasetRecords publishes the loaded record count of a category
func (m *Metrics) SetDatasetRecords(category string, n int) {
	if m == nil {
		return
	}
	m.DatasetRecords.WithLabelValues(category).Set(float64(n))
}
