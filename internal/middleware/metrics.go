package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records a request counter and a latency histogram per route, method
// and status on reg.
func Metrics(reg prometheus.Registerer) gin.HandlerFunc {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "invoicing",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests processed, by route, method and status.",
	}, []string{"route", "method", "status"})

	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "invoicing",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency, by route and method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	reg.MustRegister(requests, latency)

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		latency.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
