// Package metrics provides Prometheus metrics collection for the pressure drop service.
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

	// CalculationsTotal counts pressure drop calculations by flow regime and outcome.
	CalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pressure_drop_calculations_total",
			Help: "Total number of pressure drop calculations",
		},
		[]string{"regime", "status"},
	)

	// CalculationDuration tracks calculation duration, cache lookups included.
	CalculationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pressure_drop_calculation_duration_seconds",
			Help:    "Pressure drop calculation duration in seconds",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
	)

	// ReportExportsTotal counts report exports by format and outcome.
	ReportExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "report_exports_total",
			Help: "Total number of report exports",
		},
		[]string{"format", "status"},
	)

	// SettingsUpdatesTotal counts calculation settings updates by outcome.
	SettingsUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculation_settings_updates_total",
			Help: "Total number of calculation settings updates",
		},
		[]string{"status"},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// AuditLogEntriesTotal counts audit log entries by outcome: queued,
	// dropped, written or failed.
	AuditLogEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "audit_log_entries_total",
			Help: "Total number of audit log entries by outcome",
		},
		[]string{"result"},
	)

	// RateLimitedTotal counts requests rejected by a rate limiter, by scope
	// (ip or client).
	RateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limited_requests_total",
			Help: "Total number of requests rejected by rate limiting",
		},
		[]string{"scope"},
	)

	// CircuitBreakerState reports 0 closed, 1 open, 2 half-open per breaker.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
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

// RecordCalculation records metrics for one calculation. regime is empty when
// the calculation failed before the Reynolds number was known.
func RecordCalculation(duration time.Duration, regime, status string) {
	if regime == "" {
		regime = "unknown"
	}
	CalculationDuration.Observe(duration.Seconds())
	CalculationsTotal.WithLabelValues(regime, status).Inc()
}

// RecordReportExport records metrics for a report export.
func RecordReportExport(format, status string) {
	ReportExportsTotal.WithLabelValues(format, status).Inc()
}

// RecordSettingsUpdate records metrics for a settings update.
func RecordSettingsUpdate(status string) {
	SettingsUpdatesTotal.WithLabelValues(status).Inc()
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}

// SetCircuitBreakerState publishes the state of a named circuit breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordAuditLogEntries adds n audit log entries with the given outcome.
func RecordAuditLogEntries(result string, n int) {
	AuditLogEntriesTotal.WithLabelValues(result).Add(float64(n))
}

// RecordRateLimited counts one rejected request.
func RecordRateLimited(scope string) {
	RateLimitedTotal.WithLabelValues(scope).Inc()
}
