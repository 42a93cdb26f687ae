package service

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the HTTP
// surface and the store's snapshot writes.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	snapshotWrites  *prometheus.CounterVec
	assistCalls     *prometheus.CounterVec
}

// NewMetricsService registers the core collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	snapshotWrites := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_snapshot_writes_total",
		Help: "Snapshot slot writes grouped by slot name",
	}, []string{"slot"})

	assistCalls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "assist_requests_total",
		Help: "Generative-text collaborator calls grouped by operation",
	}, []string{"operation"})

	registry.MustRegister(requestDuration, requestTotal, snapshotWrites, assistCalls)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		snapshotWrites:  snapshotWrites,
		assistCalls:     assistCalls,
	}
}

// Handler exposes the /metrics scrape endpoint.
func (m *MetricsService) Handler() http.Handler {
	return m.handler
}

// ObserveHTTPRequest records one request outcome.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	labels := []string{method, path, strconv.Itoa(status)}
	m.requestDuration.WithLabelValues(labels...).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(labels...).Inc()
}

// ObserveSnapshotWrite counts one persisted slot write.
func (m *MetricsService) ObserveSnapshotWrite(slot string) {
	m.snapshotWrites.WithLabelValues(slot).Inc()
}

// ObserveAssistCall counts one collaborator invocation.
func (m *MetricsService) ObserveAssistCall(operation string) {
	m.assistCalls.WithLabelValues(operation).Inc()
}
