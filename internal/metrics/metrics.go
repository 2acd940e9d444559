// Package metrics provides Prometheus metrics collection for the delivery service.
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

	// ZoneLookupsTotal counts postal code lookups by result.
	ZoneLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zone_lookups_total",
			Help: "Total number of delivery zone lookups",
		},
		[]string{"result"},
	)

	// ZoneLookupDuration tracks time spent waiting on the postal directory.
	ZoneLookupDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "zone_lookup_duration_seconds",
			Help:    "Delivery zone lookup duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	// CartChangesTotal counts quantity changes by direction.
	CartChangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_changes_total",
			Help: "Total number of cart quantity changes",
		},
		[]string{"direction"},
	)

	// OrdersSubmittedTotal counts order submissions by status.
	OrdersSubmittedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_submitted_total",
			Help: "Total number of order submissions",
		},
		[]string{"status"},
	)

	// CacheOperationsTotal tracks address cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "address_cache_operations_total",
			Help: "Total number of address cache operations",
		},
		[]string{"operation", "result"},
	)

	// ActiveSessions tracks sessions held in memory.
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_sessions",
			Help: "Number of visitor sessions in memory",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordZoneLookup records the result and duration of a postal code lookup.
func RecordZoneLookup(duration time.Duration, result string) {
	ZoneLookupDuration.Observe(duration.Seconds())
	ZoneLookupsTotal.WithLabelValues(result).Inc()
}

// RecordCartChange records one quantity change.
func RecordCartChange(delta int) {
	direction := "add"
	if delta < 0 {
		direction = "remove"
	}
	CartChangesTotal.WithLabelValues(direction).Inc()
}

// RecordOrderSubmission records an order outcome: "dispatched" or a validation code.
func RecordOrderSubmission(status string) {
	OrdersSubmittedTotal.WithLabelValues(status).Inc()
}

// RecordCacheOperation records metrics for an address cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// SetActiveSessions updates the in-memory session gauge.
func SetActiveSessions(n int) {
	ActiveSessions.Set(float64(n))
}
