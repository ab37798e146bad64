package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taxiops_http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "taxiops_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Upstream (backend endpoint) metrics
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taxiops_upstream_requests_total",
			Help: "Total number of calls to backend endpoints",
		},
		[]string{"endpoint", "method", "status"},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "taxiops_upstream_request_duration_seconds",
			Help:    "Backend endpoint call duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method"},
	)

	// Business metrics
	DocumentsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taxiops_documents_generated_total",
			Help: "PDF documents generated by template",
		},
		[]string{"template"},
	)

	DashboardRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taxiops_dashboard_refreshes_total",
			Help: "Dashboard snapshot refreshes by result",
		},
		[]string{"result"},
	)

	LiveSubscribers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "taxiops_dashboard_subscribers",
			Help: "Open dashboard websocket subscribers",
		},
	)
)

// ObserveHTTP records one served request.
func ObserveHTTP(method, path string, status int, elapsed time.Duration) {
	HttpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	HttpRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// ObserveUpstream records one backend call. status 0 means no response.
func ObserveUpstream(endpoint, method string, status int, elapsed time.Duration) {
	label := strconv.Itoa(status)
	if status == 0 {
		label = "error"
	}
	UpstreamRequestsTotal.WithLabelValues(endpoint, method, label).Inc()
	UpstreamRequestDuration.WithLabelValues(endpoint, method).Observe(elapsed.Seconds())
}
