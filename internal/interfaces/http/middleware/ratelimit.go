package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"thali/internal/infrastructure/ratelimit"
	"thali/internal/shared/logger"
	"thali/internal/shared/utils"
)

type RateLimitMiddleware struct {
	limiter ratelimit.RateLimiter
	logger  logger.Interface
}

func NewRateLimitMiddleware(limiter ratelimit.RateLimiter, log logger.Interface) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter, logger: log}
}

// Limit throttles the route per authenticated user, falling back to the
// client IP for anonymous calls. A limiter outage lets requests through
// rather than taking the endpoint down with it.
func (m *RateLimitMiddleware) Limit(scope string, config ratelimit.RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:ip:%s", scope, c.ClientIP())
		if userID, ok := CurrentUserID(c); ok {
			key = fmt.Sprintf("%s:user:%d", scope, userID)
		}

		allowed, err := m.limiter.Allow(key, config)
		if err != nil {
			m.logger.Warnw("rate limiter unavailable", "error", err, "key", key)
			c.Next()
			return
		}
		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
