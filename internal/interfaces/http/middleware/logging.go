package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"thali/internal/shared/constants"
	"thali/internal/shared/logger"
)

// Logger logs one structured line per completed request, leveled by the
// response status.
func Logger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
			"body_size", c.Writer.Size(),
		}
		if query := c.Request.URL.RawQuery; query != "" {
			args = append(args, "query", query)
		}
		if userID, exists := c.Get(constants.ContextKeyUserID); exists {
			args = append(args, "user_id", userID)
		}
		if len(c.Errors) > 0 {
			args = append(args, "errors", c.Errors.String())
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			log.Errorw("request completed", args...)
		case status >= 400:
			log.Warnw("request completed", args...)
		default:
			log.Debugw("request completed", args...)
		}
	}
}
