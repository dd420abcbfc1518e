package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"thali/internal/domain/delivery"
	"thali/internal/infrastructure/persistence/mappers"
	"thali/internal/infrastructure/persistence/models"
	"thali/internal/shared/biztime"
	"thali/internal/shared/db"
	"thali/internal/shared/logger"
)

type DeliveryLogRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.DeliveryLogMapper
	logger logger.Interface
}

func NewDeliveryLogRepository(database *gorm.DB, log logger.Interface) delivery.Repository {
	return &DeliveryLogRepositoryImpl{
		db:     database,
		mapper: mappers.NewDeliveryLogMapper(),
		logger: log,
	}
}

func (r *DeliveryLogRepositoryImpl) Create(ctx context.Context, l *delivery.Log) error {
	model, err := r.mapper.ToModel(l)
	if err != nil {
		r.logger.Errorw("failed to convert delivery log to model", "error", err)
		return fmt.Errorf("failed to convert delivery log to model: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create delivery log", "error", err,
			"subscription_id", l.SubscriptionID(), "delivery_date", l.DeliveryDate())
		return fmt.Errorf("failed to create delivery log: %w", err)
	}

	return l.SetID(model.ID)
}

func (r *DeliveryLogRepositoryImpl) GetByID(ctx context.Context, id uint) (*delivery.Log, error) {
	var model models.DeliveryLogModel
	err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get delivery log", "error", err, "delivery_log_id", id)
		return nil, fmt.Errorf("failed to get delivery log: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *DeliveryLogRepositoryImpl) GetForDay(ctx context.Context, subscriptionID uint, day time.Time) (*delivery.Log, error) {
	var model models.DeliveryLogModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("subscription_id = ? AND delivery_date = ?", subscriptionID, biztime.DateOf(day)).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get delivery log for day", "error", err,
			"subscription_id", subscriptionID, "day", day)
		return nil, fmt.Errorf("failed to get delivery log for day: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *DeliveryLogRepositoryImpl) ListForDay(ctx context.Context, day time.Time) ([]*delivery.Log, error) {
	var modelList []*models.DeliveryLogModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("delivery_date = ?", biztime.DateOf(day)).
		Order("subscription_id ASC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list delivery logs for day", "error", err, "day", day)
		return nil, fmt.Errorf("failed to list delivery logs for day: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *DeliveryLogRepositoryImpl) ListByAgentForDay(ctx context.Context, agentID uint, day time.Time) ([]*delivery.Log, error) {
	var modelList []*models.DeliveryLogModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("agent_id = ? AND delivery_date = ?", agentID, biztime.DateOf(day)).
		Order("subscription_id ASC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list delivery logs for agent", "error", err,
			"agent_id", agentID, "day", day)
		return nil, fmt.Errorf("failed to list delivery logs for agent: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *DeliveryLogRepositoryImpl) ListBySubscription(ctx context.Context, subscriptionID uint) ([]*delivery.Log, error) {
	var modelList []*models.DeliveryLogModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("subscription_id = ?", subscriptionID).
		Order("delivery_date DESC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list delivery logs for subscription", "error", err,
			"subscription_id", subscriptionID)
		return nil, fmt.Errorf("failed to list delivery logs for subscription: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *DeliveryLogRepositoryImpl) Update(ctx context.Context, l *delivery.Log) error {
	model, err := r.mapper.ToModel(l)
	if err != nil {
		r.logger.Errorw("failed to convert delivery log to model", "error", err)
		return fmt.Errorf("failed to convert delivery log to model: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.DeliveryLogModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"agent_id":      model.AgentID,
			"status":        model.Status,
			"delivery_time": model.DeliveryTime,
			"latitude":      model.Latitude,
			"longitude":     model.Longitude,
			"updated_at":    model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update delivery log", "error", result.Error, "delivery_log_id", l.ID())
		return fmt.Errorf("failed to update delivery log: %w", result.Error)
	}

	return nil
}
