// Package observability provides Prometheus metrics and tracing setup.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "medium_redis_error_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "medium_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// TokensIssued counts JWTs issued by flow (signup or signin).
	TokensIssued = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "medium_tokens_issued_total",
		Help: "Total number of JWTs issued",
	}, []string{"flow"})

	// AuthFailures counts rejected requests at the auth middleware by reason.
	AuthFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "medium_auth_failures_total",
		Help: "Total number of requests rejected by the auth middleware",
	}, []string{"reason"})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
