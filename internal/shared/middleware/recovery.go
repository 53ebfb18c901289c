package middleware

import (
	"fmt"

	"blog-backend/internal/shared/response"
	"blog-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Recovery converts a handler panic into the standard 500 envelope so
// clients never see a half-written response or a bare stack trace.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("panic recovered",
					fmt.Errorf("request %s: %v", c.GetString("request_id"), rec))

				response.InternalServerError(c, "Internal server error")
				c.Abort()
			}
		}()

		c.Next()
	}
}
