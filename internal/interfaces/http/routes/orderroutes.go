package routes

import (
	"github.com/gin-gonic/gin"

	"thali/internal/infrastructure/ratelimit"
	"thali/internal/interfaces/http/handlers"
	"thali/internal/interfaces/http/middleware"
)

// OrderRouteConfig holds the dependencies for order routes.
type OrderRouteConfig struct {
	Handler              *handlers.OrderHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	RateLimitMiddleware  *middleware.RateLimitMiddleware
	OrderRateLimit       ratelimit.RateLimitConfig
}

// SetupOrderRoutes configures order placement and retrieval. The price
// preview is public so the storefront can quote before signup.
func SetupOrderRoutes(engine *gin.Engine, cfg *OrderRouteConfig) {
	engine.POST("/api/v1/pricing/preview", cfg.Handler.ComputePrice)

	orders := engine.Group("/api/v1/orders")
	orders.Use(cfg.AuthMiddleware.RequireAuth())
	{
		createHandlers := []gin.HandlerFunc{cfg.PermissionMiddleware.RequirePermission("order", "create")}
		if cfg.RateLimitMiddleware != nil {
			createHandlers = append(createHandlers, cfg.RateLimitMiddleware.Limit("order_create", cfg.OrderRateLimit))
		}
		createHandlers = append(createHandlers, cfg.Handler.Create)
		orders.POST("", createHandlers...)

		orders.GET("", cfg.PermissionMiddleware.RequirePermission("order", "read"), cfg.Handler.List)
		orders.GET("/:id", cfg.PermissionMiddleware.RequirePermission("order", "read"), cfg.Handler.Get)
	}
}
