package routes

import (
	"github.com/gin-gonic/gin"

	"thali/internal/domain/user"
	"thali/internal/interfaces/http/handlers"
	"thali/internal/interfaces/http/middleware"
	"thali/internal/shared/authorization"
)

// DeliveryRouteConfig holds the dependencies for delivery routes.
type DeliveryRouteConfig struct {
	Handler              *handlers.DeliveryHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupDeliveryRoutes configures the kitchen/dispatch admin surface and the
// agent route surface. The day rollup is admin-only; agents see only their
// own route.
func SetupDeliveryRoutes(engine *gin.Engine, cfg *DeliveryRouteConfig) {
	deliveries := engine.Group("/api/v1/deliveries")
	deliveries.Use(cfg.AuthMiddleware.RequireAuth())
	{
		deliveries.GET("",
			authorization.RequireAdmin(),
			cfg.PermissionMiddleware.RequirePermission("delivery_log", "read"),
			cfg.Handler.ListForDay,
		)
		deliveries.POST("/assign",
			cfg.PermissionMiddleware.RequirePermission("delivery_log", "assign"),
			cfg.Handler.Assign,
		)
		deliveries.POST("/mark-ready",
			cfg.PermissionMiddleware.RequirePermission("delivery_log", "mark_ready"),
			cfg.Handler.MarkReady,
		)

		deliveries.GET("/route",
			authorization.RequireRoles(user.RoleDelivery),
			cfg.PermissionMiddleware.RequirePermission("delivery_log", "read"),
			cfg.Handler.AgentRoute,
		)
		deliveries.POST("/start",
			cfg.PermissionMiddleware.RequirePermission("delivery_log", "start"),
			cfg.Handler.Start,
		)
		deliveries.POST("/confirm",
			cfg.PermissionMiddleware.RequirePermission("delivery_log", "confirm"),
			cfg.Handler.Confirm,
		)
	}
}
