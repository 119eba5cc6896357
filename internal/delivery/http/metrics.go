package http

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/smartcoffeehub/backend/internal/domain"
)

const (
	chatStatusOK          = "ok"
	chatStatusFallback    = "fallback"
	chatStatusInvalid     = "invalid"
	chatStatusConfigError = "config_error"
	chatStatusError       = "error"
)

var (
	// ChatRequestsTotal counts chat requests by outcome.
	ChatRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "smartcoffee",
			Name:      "chat_requests_total",
			Help:      "Total number of chat requests by outcome",
		},
		[]string{"status"},
	)

	// ContentMatchesTotal counts content matches by type.
	ContentMatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "smartcoffee",
			Name:      "content_matches_total",
			Help:      "Total number of content matches by type",
		},
		[]string{"type"},
	)

	// GenerationDuration measures text generation latency.
	GenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "smartcoffee",
			Name:      "generation_duration_seconds",
			Help:      "Duration of text generation calls in seconds",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		},
	)

	// RateLimitedTotal counts requests rejected by the per-client limiter.
	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "smartcoffee",
			Name:      "rate_limited_total",
			Help:      "Total number of requests rejected by rate limiting",
		},
	)
)

// RecordChatRequest records a chat request outcome.
func RecordChatRequest(status string) {
	ChatRequestsTotal.WithLabelValues(status).Inc()
}

// RecordContentMatch records the type of a content match.
func RecordContentMatch(match domain.ContentMatch) {
	ContentMatchesTotal.WithLabelValues(string(match.Type)).Inc()
}

// RecordGeneration records a completed generation call.
func RecordGeneration(d time.Duration) {
	GenerationDuration.Observe(d.Seconds())
}
