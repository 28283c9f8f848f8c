package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"inventaris-lab-backend/internal/platform/metrics"
)

// Metrics records every request under its route template so ids do not
// explode the label set.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if m == nil {
			return
		}
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveHTTP(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
