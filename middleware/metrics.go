package middleware

import (
	"strconv"
	"time"

	"main/utils"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request counts, latency, and response sizes.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		method := c.Request.Method

		utils.ActiveRequests.Inc()
		defer utils.ActiveRequests.Dec()

		c.Next()

		status := c.Writer.Status()
		duration := time.Since(start).Seconds()
		responseSize := float64(c.Writer.Size())

		utils.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		utils.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
		utils.HTTPResponseSize.WithLabelValues(method, path).Observe(responseSize)
	}
}
