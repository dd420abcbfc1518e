package routes

import (
	"github.com/gin-gonic/gin"

	"thali/internal/interfaces/http/handlers"
	"thali/internal/interfaces/http/middleware"
	"thali/internal/shared/authorization"
)

// SettingRouteConfig holds the dependencies for setting admin routes.
type SettingRouteConfig struct {
	Handler              *handlers.SettingHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupSettingRoutes configures system setting admin routes.
func SetupSettingRoutes(engine *gin.Engine, cfg *SettingRouteConfig) {
	settings := engine.Group("/api/v1/admin/settings")
	settings.Use(cfg.AuthMiddleware.RequireAuth())
	settings.Use(authorization.RequireAdmin())
	{
		settings.GET("", cfg.PermissionMiddleware.RequirePermission("setting", "read"), cfg.Handler.List)
		settings.PUT("", cfg.PermissionMiddleware.RequirePermission("setting", "update"), cfg.Handler.Update)
	}
}
