// Package metrics holds the Prometheus collectors for the service. Exposure
// is gated by config; the collectors themselves are always registered.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "laganbus_http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "laganbus_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// CloudSyncFailures counts fire-and-forget store writes that eventually
	// failed. The user flow never sees these; this counter is how they stay
	// visible.
	CloudSyncFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "laganbus_cloud_sync_failures_total",
		Help: "Background booking syncs to the record store that failed.",
	})

	AssistantFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "laganbus_assistant_fallbacks_total",
		Help: "Assistant queries answered with the canned fallback reply.",
	})
)
