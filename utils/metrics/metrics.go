// Package metrics provides Prometheus metrics for news-fetcher.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FetchTotal counts outbound fetch attempts by purpose and outcome.
	FetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "newsfetcher",
			Name:      "outbound_fetch_total",
			Help:      "Total number of outbound fetch attempts",
		},
		[]string{"purpose", "outcome"},
	)

	// FetchDuration measures outbound fetch duration.
	FetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "newsfetcher",
			Name:      "outbound_fetch_duration_seconds",
			Help:      "Duration of outbound fetch operations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"purpose"},
	)

	// ValidationRejections counts rejected candidate URLs by reason.
	ValidationRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "newsfetcher",
			Name:      "url_validation_rejections_total",
			Help:      "Total number of candidate URLs rejected by validation",
		},
		[]string{"reason"},
	)

	// ResponseBytes observes fetched response sizes.
	ResponseBytes = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "newsfetcher",
			Name:      "outbound_response_bytes",
			Help:      "Distribution of fetched response sizes in bytes",
			Buckets:   []float64{1024, 10240, 65536, 262144, 1048576, 2097152, 5242880},
		},
		[]string{"purpose"},
	)

	// RedirectHops observes redirect chain lengths for followed fetches.
	RedirectHops = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "newsfetcher",
			Name:      "outbound_redirect_hops",
			Help:      "Distribution of redirect chain lengths",
			Buckets:   []float64{0, 1, 2, 3, 5},
		},
	)
)

// Fetch outcomes.
const (
	OutcomeSuccess   = "success"
	OutcomeRejected  = "rejected"
	OutcomeHTTPError = "http_error"
	OutcomeTooLarge  = "too_large"
)

// RecordFetch records a completed fetch attempt.
func RecordFetch(purpose, outcome string, duration float64) {
	FetchTotal.WithLabelValues(purpose, outcome).Inc()
	FetchDuration.WithLabelValues(purpose).Observe(duration)
}

// RecordRejection records a validation rejection.
func RecordRejection(reason string) {
	ValidationRejections.WithLabelValues(reason).Inc()
}

// RecordResponseSize records the byte size of a successful fetch.
func RecordResponseSize(purpose string, size int) {
	ResponseBytes.WithLabelValues(purpose).Observe(float64(size))
}
