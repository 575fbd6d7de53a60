// Package metrics provides Prometheus metrics collection for the cart service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// CartMutationsTotal counts add/adjust/delete actions by normalized outcome.
	CartMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_mutations_total",
			Help: "Total number of cart mutations by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	// UpstreamRequestDuration tracks round trips to the upstream cart server.
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Upstream cart server request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		},
		[]string{"operation", "status_code"},
	)

	// SupersededResponsesTotal counts responses discarded because a newer mutation was issued.
	SupersededResponsesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "superseded_responses_total",
			Help: "Total number of stale upstream responses discarded",
		},
		[]string{"operation"},
	)

	// DeliveryConfirmationsTotal counts delivery confirm attempts by outcome.
	DeliveryConfirmationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delivery_confirmations_total",
			Help: "Total number of delivery confirmations by outcome",
		},
		[]string{"outcome"},
	)

	// CheckoutSubmissionsTotal counts checkout submissions by outcome.
	CheckoutSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_submissions_total",
			Help: "Total number of checkout submissions by outcome",
		},
		[]string{"outcome"},
	)

	// SessionCacheOperationsTotal tracks session cache lookups.
	SessionCacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_cache_operations_total",
			Help: "Total number of session cache operations",
		},
		[]string{"operation", "result"},
	)

	// RateLimitedTotal counts requests refused by a rate limiter.
	RateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limited_requests_total",
			Help: "Total number of requests rejected with 429",
		},
		[]string{"scope"},
	)

	// AuditEntriesTotal counts audit entries by what became of them.
	AuditEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "audit_log_entries_total",
			Help: "Total number of audit log entries by result (written, failed, dropped)",
		},
		[]string{"result"},
	)

	// SessionsActive tracks the number of live cart sessions.
	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sessions_active",
			Help: "Current number of cart sessions held in memory",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordCartMutation records the outcome of an add, adjust or delete action.
func RecordCartMutation(operation, outcome string) {
	CartMutationsTotal.WithLabelValues(operation, outcome).Inc()
	if outcome == "superseded" {
		SupersededResponsesTotal.WithLabelValues(operation).Inc()
	}
}

// RecordUpstreamRequest records an upstream round trip. statusCode is 0 on transport errors.
func RecordUpstreamRequest(operation string, statusCode int, duration time.Duration) {
	UpstreamRequestDuration.WithLabelValues(operation, strconv.Itoa(statusCode)).Observe(duration.Seconds())
}

// RecordDeliveryConfirmation records a delivery confirm attempt.
func RecordDeliveryConfirmation(outcome string) {
	DeliveryConfirmationsTotal.WithLabelValues(outcome).Inc()
}

// RecordCheckoutSubmission records a checkout submission.
func RecordCheckoutSubmission(outcome string) {
	CheckoutSubmissionsTotal.WithLabelValues(outcome).Inc()
}

// RecordSessionCacheOperation records a session cache hit, miss or eviction.
func RecordSessionCacheOperation(operation, result string) {
	SessionCacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// RecordRateLimited records a request refused by the limiter named scope.
func RecordRateLimited(scope string) {
	RateLimitedTotal.WithLabelValues(scope).Inc()
}

// RecordAuditEntries adds n entries under result.
func RecordAuditEntries(result string, n int) {
	AuditEntriesTotal.WithLabelValues(result).Add(float64(n))
}

// UpdateSessionsActive sets the live session gauge.
func UpdateSessionsActive(count int) {
	SessionsActive.Set(float64(count))
}
