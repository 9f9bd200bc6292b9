package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request latency in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// Like notification relay attempts
	LikeNotificationCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "like_notification_count",
			Help: "Total number of like notification deliveries attempted",
		},
		[]string{"status"}, // status: success, failed, unconfigured
	)
)

// RecordHTTPRequestDuration records one served request.
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// IncrementLikeNotification counts one relay attempt by outcome.
func IncrementLikeNotification(status string) {
	LikeNotificationCount.WithLabelValues(status).Inc()
}
