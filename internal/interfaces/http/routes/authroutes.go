// Package routes provides HTTP route configurations.
package routes

import (
	"github.com/gin-gonic/gin"

	"thali/internal/infrastructure/ratelimit"
	"thali/internal/interfaces/http/handlers"
	"thali/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds the dependencies for the public auth routes.
type AuthRouteConfig struct {
	Handler             *handlers.AuthHandler
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// SetupAuthRoutes configures registration and login. Both are public and
// rate limited per IP to slow down credential stuffing.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/api/v1/auth")
	if cfg.RateLimitMiddleware != nil {
		auth.Use(cfg.RateLimitMiddleware.Limit("auth", ratelimit.RateLimitConfig{
			RequestsPerMinute: 10,
			RequestsPerHour:   100,
		}))
	}
	{
		auth.POST("/register", cfg.Handler.Register)
		auth.POST("/login", cfg.Handler.Login)
	}
}
