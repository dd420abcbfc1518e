package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	settingApp "thali/internal/application/setting"

	catalogUC "thali/internal/application/catalog/usecases"
	deliveryUC "thali/internal/application/delivery/usecases"
	notificationUC "thali/internal/application/notification/usecases"
	orderUC "thali/internal/application/order/usecases"
	settingUC "thali/internal/application/setting/usecases"
	subscriptionUC "thali/internal/application/subscription/usecases"
	userUC "thali/internal/application/user/usecases"

	domainCatalog "thali/internal/domain/catalog"
	domainDelivery "thali/internal/domain/delivery"
	domainNotification "thali/internal/domain/notification"
	domainOrder "thali/internal/domain/order"
	domainSetting "thali/internal/domain/setting"
	domainSubscription "thali/internal/domain/subscription"
	domainUser "thali/internal/domain/user"

	"thali/internal/infrastructure/auth"
	"thali/internal/infrastructure/cache"
	"thali/internal/infrastructure/config"
	"thali/internal/infrastructure/database"
	"thali/internal/infrastructure/migration"
	"thali/internal/infrastructure/permission"
	"thali/internal/infrastructure/ratelimit"
	"thali/internal/infrastructure/repository"
	"thali/internal/infrastructure/scheduler"
	"thali/internal/interfaces/http/handlers"
	"thali/internal/interfaces/http/middleware"
	"thali/internal/shared/db"
	"thali/internal/shared/logger"
)

type repositories struct {
	user         domainUser.Repository
	order        domainOrder.Repository
	subscription domainSubscription.Repository
	pause        domainSubscription.PauseRepository
	delivery     domainDelivery.Repository
	menuItem     domainCatalog.MenuItemRepository
	addOn        domainCatalog.AddOnRepository
	notification domainNotification.Repository
	setting      domainSetting.Repository
}

// Container wires repositories, use cases, handlers and middleware into a
// runnable gin engine, and owns shutdown of the shared clients.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos     *repositories
	enforcer  *permission.Enforcer
	jwtSvc    *auth.JWTService
	scheduler *scheduler.SubscriptionScheduler
}

// NewContainer connects the database and redis, migrates the schema, seeds
// the role policies, and assembles the full HTTP surface.
func NewContainer(cfg *config.Config, log logger.Interface) (*Container, error) {
	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	gormDB := database.Get()

	migrator := migration.NewManager(cfg.Server.Mode)
	if err := migrator.Migrate(gormDB, migration.AutoMigrateModels()...); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	c := &Container{
		db:    gormDB,
		cfg:   cfg,
		log:   log,
		redis: redisClient,
	}

	c.repos = &repositories{
		user:         repository.NewUserRepository(gormDB, log),
		order:        repository.NewOrderRepository(gormDB, log),
		subscription: repository.NewSubscriptionRepository(gormDB, log),
		pause:        repository.NewPauseRepository(gormDB, log),
		delivery:     repository.NewDeliveryLogRepository(gormDB, log),
		menuItem:     repository.NewMenuItemRepository(gormDB, log),
		addOn:        repository.NewAddOnRepository(gormDB, log),
		notification: repository.NewNotificationRepository(gormDB, log),
		setting:      repository.NewSystemSettingRepository(gormDB, log),
	}

	enforcer, err := permission.NewEnforcer(gormDB, "configs/rbac_model.conf", log)
	if err != nil {
		return nil, fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	c.enforcer = enforcer
	if err := permission.InitDefaultPolicies(enforcer, log); err != nil {
		return nil, fmt.Errorf("failed to seed permission policies: %w", err)
	}
	if err := permission.NewPermissionSync(gormDB, log).SyncToCasbin(); err != nil {
		return nil, fmt.Errorf("failed to sync user roles: %w", err)
	}

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	expireSubs := subscriptionUC.NewExpireSubscriptionsUseCase(c.repos.subscription, log)
	c.scheduler = scheduler.NewSubscriptionScheduler(expireSubs, log)

	c.engine = c.buildEngine()
	return c, nil
}

// StartBackgroundJobs launches the periodic maintenance jobs.
func (c *Container) StartBackgroundJobs(ctx context.Context) {
	c.scheduler.Start(ctx)
}

func (c *Container) buildEngine() *gin.Engine {
	cfg := c.cfg
	log := c.log

	txManager := db.NewTransactionManager(c.db)
	settingsCache := cache.NewRedisSettingsCache(c.redis, log)
	settingsProvider := settingApp.NewProvider(c.repos.setting, settingsCache, cfg.Business, log)

	createOrder := orderUC.NewCreateOrderUseCase(txManager, c.repos.order, c.repos.subscription,
		c.repos.menuItem, c.repos.addOn, c.repos.user, c.repos.notification, settingsProvider, log)
	computePrice := orderUC.NewComputePriceUseCase(c.repos.menuItem, c.repos.addOn, log)
	getOrder := orderUC.NewGetOrderUseCase(c.repos.order, log)
	listOrders := orderUC.NewListOrdersUseCase(c.repos.order, log)

	toggleSub := subscriptionUC.NewToggleSubscriptionUseCase(txManager, c.repos.subscription, c.repos.pause, log)
	cancelSub := subscriptionUC.NewCancelSubscriptionUseCase(txManager, c.repos.subscription, log)
	getSub := subscriptionUC.NewGetSubscriptionUseCase(c.repos.subscription, c.repos.pause, log)
	listSubs := subscriptionUC.NewListSubscriptionsUseCase(c.repos.subscription, log)

	assignDelivery := deliveryUC.NewAssignDeliveryUseCase(txManager, c.repos.delivery, c.repos.subscription, c.repos.user, log)
	markReady := deliveryUC.NewMarkReadyUseCase(txManager, c.repos.delivery, c.repos.subscription, log)
	startDelivery := deliveryUC.NewStartDeliveryUseCase(txManager, c.repos.delivery, log)
	confirmDelivered := deliveryUC.NewConfirmDeliveredUseCase(txManager, c.repos.delivery, log)
	listDeliveries := deliveryUC.NewListDeliveriesUseCase(c.repos.delivery, c.repos.subscription, log)

	menuItems := catalogUC.NewMenuItemUseCase(c.repos.menuItem, log)
	addOns := catalogUC.NewAddOnUseCase(c.repos.addOn, log)

	register := userUC.NewRegisterUseCase(c.repos.user, c.enforcer, cfg.Auth.Bcrypt.BcryptCost, log)
	login := userUC.NewLoginUseCase(c.repos.user, c.jwtSvc, log)

	notifications := notificationUC.NewNotificationUseCase(c.repos.notification, log)

	getSettings := settingUC.NewGetSettingsUseCase(c.repos.setting, log)
	updateSetting := settingUC.NewUpdateSettingUseCase(c.repos.setting, settingsCache, log)

	authHandler := handlers.NewAuthHandler(register, login, log)
	orderHandler := handlers.NewOrderHandler(createOrder, computePrice, getOrder, listOrders, log)
	subscriptionHandler := handlers.NewSubscriptionHandler(toggleSub, cancelSub, getSub, listSubs, log)
	deliveryHandler := handlers.NewDeliveryHandler(assignDelivery, markReady, startDelivery, confirmDelivered, listDeliveries, log)
	catalogHandler := handlers.NewCatalogHandler(menuItems, addOns)
	notificationHandler := handlers.NewNotificationHandler(notifications)
	settingHandler := handlers.NewSettingHandler(getSettings, updateSetting)

	authMW := middleware.NewAuthMiddleware(c.jwtSvc, log)
	permissionMW := middleware.NewPermissionMiddleware(c.enforcer, log)
	rateLimitMW := middleware.NewRateLimitMiddleware(ratelimit.NewRedisRateLimiter(c.redis), log)

	return newEngine(cfg, log, &routerDeps{
		authHandler:         authHandler,
		orderHandler:        orderHandler,
		subscriptionHandler: subscriptionHandler,
		deliveryHandler:     deliveryHandler,
		catalogHandler:      catalogHandler,
		notificationHandler: notificationHandler,
		settingHandler:      settingHandler,
		authMiddleware:      authMW,
		permissionMW:        permissionMW,
		rateLimitMW:         rateLimitMW,
	})
}

// Engine returns the assembled gin engine.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown stops background jobs and closes the shared clients.
func (c *Container) Shutdown(ctx context.Context) error {
	c.scheduler.Stop()
	if err := c.redis.Close(); err != nil {
		c.log.Warnw("failed to close redis client", "error", err)
	}
	sqlDB, err := c.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}
