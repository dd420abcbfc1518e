package routes

import (
	"github.com/gin-gonic/gin"

	"thali/internal/interfaces/http/handlers"
	"thali/internal/interfaces/http/middleware"
)

// SubscriptionRouteConfig holds the dependencies for subscription routes.
type SubscriptionRouteConfig struct {
	SubscriptionHandler  *handlers.SubscriptionHandler
	DeliveryHandler      *handlers.DeliveryHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupSubscriptionRoutes configures subscription lifecycle routes.
// Ownership is enforced inside the use cases; permissions gate the verbs.
func SetupSubscriptionRoutes(engine *gin.Engine, cfg *SubscriptionRouteConfig) {
	subscriptions := engine.Group("/api/v1/subscriptions")
	subscriptions.Use(cfg.AuthMiddleware.RequireAuth())
	{
		subscriptions.GET("", cfg.PermissionMiddleware.RequirePermission("subscription", "read"), cfg.SubscriptionHandler.List)
		subscriptions.GET("/:id", cfg.PermissionMiddleware.RequirePermission("subscription", "read"), cfg.SubscriptionHandler.Get)
		subscriptions.POST("/:id/toggle", cfg.PermissionMiddleware.RequirePermission("subscription", "toggle"), cfg.SubscriptionHandler.Toggle)
		subscriptions.POST("/:id/cancel", cfg.PermissionMiddleware.RequirePermission("subscription", "cancel"), cfg.SubscriptionHandler.Cancel)

		subscriptions.GET("/:id/deliveries", cfg.PermissionMiddleware.RequirePermission("delivery_log", "read"), cfg.DeliveryHandler.History)
	}
}
