// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SubmissionsAccepted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "submissions_accepted_total",
			Help: "Total number of submissions accepted per form",
		},
		[]string{"form"},
	)

	SubmissionsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "submissions_rejected_total",
			Help: "Total number of submissions rejected per form and reason",
		},
		[]string{"form", "reason"},
	)

	SubmissionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "submission_duration_seconds",
			Help: "Duration of submission processing in seconds",
		},
		[]string{"form"},
	)

	StoreAppendFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_append_failures_total",
			Help: "Total number of failed sheet append calls per form",
		},
		[]string{"form"},
	)

	StoreAppendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "store_append_duration_seconds",
			Help: "Duration of sheet append calls in seconds",
		},
		[]string{"form"},
	)

	RateLimitedRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limited_requests_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
		[]string{"path"},
	)
)
