package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FormSubmissions counts finished submissions by form and outcome
	// (accepted, invalid, malformed, notify_failed)
	FormSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "form_submissions_total",
			Help: "Total number of form submissions by outcome",
		},
		[]string{"form", "outcome"},
	)

	FormRateLimited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "form_rate_limited_total",
			Help: "Total number of submissions rejected by the rate limiter",
		},
		[]string{"form"},
	)

	NotificationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "notification_send_duration_seconds",
			Help:    "Duration of a single notification send in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"provider", "result"},
	)
)

// Submission outcomes
const (
	OutcomeAccepted     = "accepted"
	OutcomeInvalid      = "invalid"
	OutcomeMalformed    = "malformed"
	OutcomeNotifyFailed = "notify_failed"
)
