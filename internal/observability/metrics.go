// Package observability provides Prometheus metrics for the service.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all metric collectors, registered on a private registry so
// tests can create isolated instances.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal     *prometheus.CounterVec
	PhotosFetched     prometheus.Counter
	FetchFailures     prometheus.Counter
	DetectionsTotal   prometheus.Counter
	InferenceDuration prometheus.Histogram
}

// NewMetrics creates a Metrics instance with its own registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "detection_service_requests_total",
			Help: "HTTP requests by route and status code.",
		}, []string{"route", "status"}),
		PhotosFetched: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "detection_service_photos_fetched_total",
			Help: "Photos downloaded and decoded successfully.",
		}),
		FetchFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "detection_service_fetch_failures_total",
			Help: "Photo downloads that failed or did not decode.",
		}),
		DetectionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "detection_service_detections_total",
			Help: "Objects detected across all photos.",
		}),
		InferenceDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "detection_service_inference_duration_seconds",
			Help:    "Wall time of a single model inference call.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	registry.MustRegister(
		m.RequestsTotal,
		m.PhotosFetched,
		m.FetchFailures,
		m.DetectionsTotal,
		m.InferenceDuration,
	)
	return m
}

// Handler returns the Prometheus exposition handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
