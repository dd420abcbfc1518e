package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"thali/internal/domain/subscription"
	"thali/internal/infrastructure/persistence/mappers"
	"thali/internal/infrastructure/persistence/models"
	"thali/internal/shared/db"
	"thali/internal/shared/logger"
)

type PauseRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PauseMapper
	logger logger.Interface
}

func NewPauseRepository(database *gorm.DB, log logger.Interface) subscription.PauseRepository {
	return &PauseRepositoryImpl{
		db:     database,
		mapper: mappers.NewPauseMapper(),
		logger: log,
	}
}

func (r *PauseRepositoryImpl) Create(ctx context.Context, p *subscription.Pause) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		r.logger.Errorw("failed to convert pause to model", "error", err)
		return fmt.Errorf("failed to convert pause to model: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create pause record", "error", err, "subscription_id", p.SubscriptionID())
		return fmt.Errorf("failed to create pause record: %w", err)
	}

	p.SetID(model.ID)
	return nil
}

func (r *PauseRepositoryImpl) GetBySubscriptionID(ctx context.Context, subscriptionID uint) ([]*subscription.Pause, error) {
	var modelList []*models.SubscriptionPauseModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("subscription_id = ?", subscriptionID).
		Order("created_at ASC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list pause records", "error", err, "subscription_id", subscriptionID)
		return nil, fmt.Errorf("failed to list pause records: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}
