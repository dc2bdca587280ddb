// Package metrics provides Prometheus metrics collection for the packaging service.
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

	// PackagingCalculationsTotal tracks total packaging breakdown calculations.
	PackagingCalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "packaging_calculations_total",
			Help: "Total number of packaging breakdown calculations",
		},
		[]string{"status"},
	)

	// PackagingCalculationDuration tracks packaging calculation duration.
	PackagingCalculationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "packaging_calculation_duration_seconds",
			Help:    "Packaging breakdown calculation duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
	)

	// OrdersCreatedTotal tracks orders created, by outcome.
	OrdersCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Total number of order creation attempts",
		},
		[]string{"status"},
	)

	// OrderItemsPerOrder tracks how many distinct lines each order carries.
	OrderItemsPerOrder = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "order_lines_per_order",
			Help:    "Number of order lines per created order",
			Buckets: []float64{1, 2, 3, 5, 10, 20, 50},
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

// RecordPackagingCalculation records metrics for a packaging calculation.
func RecordPackagingCalculation(duration time.Duration, status string) {
	PackagingCalculationDuration.Observe(duration.Seconds())
	PackagingCalculationsTotal.WithLabelValues(status).Inc()
}

// RecordOrderCreated records metrics for an order creation attempt.
func RecordOrderCreated(status string, lines int) {
	OrdersCreatedTotal.WithLabelValues(status).Inc()
	if lines > 0 {
		OrderItemsPerOrder.Observe(float64(lines))
	}
}
