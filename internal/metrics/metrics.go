// Package metrics defines the Prometheus instruments exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts handled HTTP requests by method, path, and status.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hackfest_http_requests_total",
			Help: "Total HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPDuration observes request latency by method and path.
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hackfest_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// RateLimited counts requests rejected by the rate guard, by reason.
	RateLimited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hackfest_rate_limited_total",
			Help: "Requests rejected by the rate guard.",
		},
		[]string{"reason"},
	)

	// Registrations counts accepted team registrations.
	Registrations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hackfest_registrations_total",
			Help: "Accepted team registrations.",
		},
	)

	// Submissions counts accepted final submissions.
	Submissions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hackfest_submissions_total",
			Help: "Accepted final submissions.",
		},
	)
)
