package migration

import (
	"fmt"

	"gorm.io/gorm"

	"thali/internal/infrastructure/persistence/models"
	"thali/internal/shared/logger"
)

// GormAutoMigrateStrategy migrates the schema straight from the model
// structs. Development only; production environments use versioned scripts.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

// NewGormAutoMigrateStrategy creates a new GORM AutoMigrate strategy
func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.automigrate"),
	}
}

// Migrate runs GORM AutoMigrate over the given models
func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, migrateModels ...interface{}) error {
	if len(migrateModels) == 0 {
		migrateModels = AutoMigrateModels()
	}

	s.logger.Infow("starting gorm auto-migration", "models_count", len(migrateModels))

	if err := db.AutoMigrate(migrateModels...); err != nil {
		s.logger.Errorw("auto-migration failed", "error", err)
		return fmt.Errorf("failed to auto-migrate: %w", err)
	}

	s.logger.Infow("auto-migration completed successfully")
	return nil
}

// GetName returns the strategy name
func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

// AutoMigrateModels lists every persistence model in migration order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.MenuItemModel{},
		&models.AddOnModel{},
		&models.OrderModel{},
		&models.SubscriptionModel{},
		&models.SubscriptionPauseModel{},
		&models.DeliveryLogModel{},
		&models.NotificationModel{},
		&models.SystemSettingModel{},
	}
}
