package routes

import (
	"github.com/gin-gonic/gin"

	"thali/internal/interfaces/http/handlers"
	"thali/internal/interfaces/http/middleware"
)

// NotificationRouteConfig holds the dependencies for notification routes.
type NotificationRouteConfig struct {
	Handler              *handlers.NotificationHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupNotificationRoutes configures the per-user notification feed.
func SetupNotificationRoutes(engine *gin.Engine, cfg *NotificationRouteConfig) {
	notifications := engine.Group("/api/v1/notifications")
	notifications.Use(cfg.AuthMiddleware.RequireAuth())
	notifications.Use(cfg.PermissionMiddleware.RequirePermission("notification", "read"))
	{
		notifications.GET("", cfg.Handler.List)
		notifications.GET("/unread-count", cfg.Handler.UnreadCount)
		notifications.POST("/:id/read", cfg.Handler.MarkAsRead)
	}
}
