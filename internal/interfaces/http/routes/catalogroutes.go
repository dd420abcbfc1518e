package routes

import (
	"github.com/gin-gonic/gin"

	"thali/internal/interfaces/http/handlers"
	"thali/internal/interfaces/http/middleware"
)

// CatalogRouteConfig holds the dependencies for catalog routes.
type CatalogRouteConfig struct {
	Handler              *handlers.CatalogHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupCatalogRoutes configures the menu and addon catalog. Listings are
// public so the storefront can render without a session; everything else
// goes through permissions.
func SetupCatalogRoutes(engine *gin.Engine, cfg *CatalogRouteConfig) {
	engine.GET("/api/v1/menu-items", cfg.Handler.ListMenuItems)
	engine.GET("/api/v1/add-ons", cfg.Handler.ListAddOns)

	menuItems := engine.Group("/api/v1/menu-items")
	menuItems.Use(cfg.AuthMiddleware.RequireAuth())
	{
		menuItems.GET("/:id", cfg.PermissionMiddleware.RequirePermission("menu_item", "read"), cfg.Handler.GetMenuItem)
		menuItems.POST("", cfg.PermissionMiddleware.RequirePermission("menu_item", "create"), cfg.Handler.CreateMenuItem)
		menuItems.PUT("/:id", cfg.PermissionMiddleware.RequirePermission("menu_item", "update"), cfg.Handler.UpdateMenuItem)
		menuItems.DELETE("/:id", cfg.PermissionMiddleware.RequirePermission("menu_item", "delete"), cfg.Handler.DeleteMenuItem)
	}

	addOns := engine.Group("/api/v1/add-ons")
	addOns.Use(cfg.AuthMiddleware.RequireAuth())
	{
		addOns.GET("/:id", cfg.PermissionMiddleware.RequirePermission("add_on", "read"), cfg.Handler.GetAddOn)
		addOns.POST("", cfg.PermissionMiddleware.RequirePermission("add_on", "create"), cfg.Handler.CreateAddOn)
		addOns.PUT("/:id", cfg.PermissionMiddleware.RequirePermission("add_on", "update"), cfg.Handler.UpdateAddOn)
		addOns.DELETE("/:id", cfg.PermissionMiddleware.RequirePermission("add_on", "delete"), cfg.Handler.DeleteAddOn)
	}
}
