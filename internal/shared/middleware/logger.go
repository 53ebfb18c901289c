package middleware

import (
	"time"

	"blog-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Logger emits one structured line per request, tagged with the
// correlation id set by RequestID. The query string is kept on the path
// because list filtering lives entirely in query parameters here.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		logger.Info("request completed", map[string]interface{}{
			"request_id": c.GetString("request_id"),
			"method":     c.Request.Method,
			"path":       path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"ip":         c.ClientIP(),
		})
	}
}
