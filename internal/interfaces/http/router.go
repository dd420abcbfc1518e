// Package http assembles the gin engine from handlers, middleware and routes.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"thali/internal/infrastructure/config"
	"thali/internal/infrastructure/ratelimit"
	"thali/internal/interfaces/http/handlers"
	"thali/internal/interfaces/http/middleware"
	"thali/internal/interfaces/http/routes"
	"thali/internal/shared/logger"
	"thali/internal/shared/version"
)

type routerDeps struct {
	authHandler         *handlers.AuthHandler
	orderHandler        *handlers.OrderHandler
	subscriptionHandler *handlers.SubscriptionHandler
	deliveryHandler     *handlers.DeliveryHandler
	catalogHandler      *handlers.CatalogHandler
	notificationHandler *handlers.NotificationHandler
	settingHandler      *handlers.SettingHandler

	authMiddleware *middleware.AuthMiddleware
	permissionMW   *middleware.PermissionMiddleware
	rateLimitMW    *middleware.RateLimitMiddleware
}

func newEngine(cfg *config.Config, log logger.Interface, deps *routerDeps) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": version.Version,
		})
	})

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		Handler:             deps.authHandler,
		RateLimitMiddleware: deps.rateLimitMW,
	})
	routes.SetupOrderRoutes(engine, &routes.OrderRouteConfig{
		Handler:              deps.orderHandler,
		AuthMiddleware:       deps.authMiddleware,
		PermissionMiddleware: deps.permissionMW,
		RateLimitMiddleware:  deps.rateLimitMW,
		OrderRateLimit: ratelimit.RateLimitConfig{
			RequestsPerMinute: cfg.Business.Order.RateLimitPerMinute,
			RequestsPerHour:   cfg.Business.Order.RateLimitPerMinute * 60,
		},
	})
	routes.SetupSubscriptionRoutes(engine, &routes.SubscriptionRouteConfig{
		SubscriptionHandler:  deps.subscriptionHandler,
		DeliveryHandler:      deps.deliveryHandler,
		AuthMiddleware:       deps.authMiddleware,
		PermissionMiddleware: deps.permissionMW,
	})
	routes.SetupDeliveryRoutes(engine, &routes.DeliveryRouteConfig{
		Handler:              deps.deliveryHandler,
		AuthMiddleware:       deps.authMiddleware,
		PermissionMiddleware: deps.permissionMW,
	})
	routes.SetupCatalogRoutes(engine, &routes.CatalogRouteConfig{
		Handler:              deps.catalogHandler,
		AuthMiddleware:       deps.authMiddleware,
		PermissionMiddleware: deps.permissionMW,
	})
	routes.SetupNotificationRoutes(engine, &routes.NotificationRouteConfig{
		Handler:              deps.notificationHandler,
		AuthMiddleware:       deps.authMiddleware,
		PermissionMiddleware: deps.permissionMW,
	})
	routes.SetupSettingRoutes(engine, &routes.SettingRouteConfig{
		Handler:              deps.settingHandler,
		AuthMiddleware:       deps.authMiddleware,
		PermissionMiddleware: deps.permissionMW,
	})

	return engine
}
