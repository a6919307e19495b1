package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"code", "method", "path"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"code", "method", "path"},
	)
)

// MetricsFiber collects Prometheus metrics per request. The matched route
// pattern keeps label cardinality bounded.
func MetricsFiber() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		statusCode := c.Response().StatusCode()
		if err != nil {
			var fiberError *fiber.Error
			if errors.As(err, &fiberError) {
				statusCode = fiberError.Code
			} else if statusCode == http.StatusOK {
				statusCode = http.StatusInternalServerError
			}
		}

		path := c.Path()
		if routePath := c.Route().Path; routePath != "" && routePath != "/" {
			path = routePath
		}

		duration := time.Since(start).Seconds()
		httpRequestsTotal.WithLabelValues(strconv.Itoa(statusCode), c.Method(), path).Inc()
		httpRequestDuration.WithLabelValues(strconv.Itoa(statusCode), c.Method(), path).Observe(duration)

		return err
	}
}

// MetricsGin collects Prometheus metrics per request.
func MetricsGin() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		statusCode := c.Writer.Status()
		path := c.Request.URL.Path
		if c.FullPath() != "" {
			path = c.FullPath()
		}

		duration := time.Since(start).Seconds()
		httpRequestsTotal.WithLabelValues(strconv.Itoa(statusCode), c.Request.Method, path).Inc()
		httpRequestDuration.WithLabelValues(strconv.Itoa(statusCode), c.Request.Method, path).Observe(duration)
	}
}
