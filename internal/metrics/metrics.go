// Package metrics provides Prometheus metrics collection for the pizzeria service.
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

	// OrdersCreatedTotal tracks successfully placed orders.
	OrdersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Total number of orders placed",
		},
	)

	// OrderPrice tracks the distribution of computed order prices.
	OrderPrice = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "order_price",
			Help:    "Computed total price of placed orders",
			Buckets: []float64{5, 10, 20, 40, 80, 160, 320},
		},
	)

	// OrderLines tracks the distribution of line counts per order.
	OrderLines = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "order_lines",
			Help:    "Number of lines per placed order",
			Buckets: []float64{1, 2, 3, 5, 8, 13},
		},
	)

	// CatalogMutationsTotal tracks catalog writes by entity and operation.
	CatalogMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_mutations_total",
			Help: "Total number of catalog mutations",
		},
		[]string{"entity", "operation"},
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

// RecordOrderCreated records metrics for a successfully placed order.
func RecordOrderCreated(lines int, price float64) {
	OrdersCreatedTotal.Inc()
	OrderPrice.Observe(price)
	OrderLines.Observe(float64(lines))
}

// RecordCatalogMutation records a catalog write.
func RecordCatalogMutation(entity, operation string) {
	CatalogMutationsTotal.WithLabelValues(entity, operation).Inc()
}
