package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"thali/internal/domain/subscription"
	vo "thali/internal/domain/subscription/valueobjects"
	"thali/internal/infrastructure/persistence/mappers"
	"thali/internal/infrastructure/persistence/models"
	"thali/internal/shared/biztime"
	"thali/internal/shared/constants"
	"thali/internal/shared/db"
	"thali/internal/shared/logger"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SubscriptionMapper
	logger logger.Interface
}

func NewSubscriptionRepository(database *gorm.DB, log logger.Interface) subscription.Repository {
	return &SubscriptionRepositoryImpl{
		db:     database,
		mapper: mappers.NewSubscriptionMapper(),
		logger: log,
	}
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, s *subscription.Subscription) error {
	model, err := r.mapper.ToModel(s)
	if err != nil {
		r.logger.Errorw("failed to convert subscription to model", "error", err)
		return fmt.Errorf("failed to convert subscription to model: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create subscription", "error", err, "order_id", s.OrderID())
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	return s.SetID(model.ID)
}

func (r *SubscriptionRepositoryImpl) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel
	err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription", "error", err, "subscription_id", id)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *SubscriptionRepositoryImpl) GetByIDForUpdate(ctx context.Context, id uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel
	err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForUpdate()).
		First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription for update", "error", err, "subscription_id", id)
		return nil, fmt.Errorf("failed to get subscription for update: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *SubscriptionRepositoryImpl) GetByOrderID(ctx context.Context, orderID uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel
	err := db.GetTxFromContext(ctx, r.db).Where("order_id = ?", orderID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription by order", "error", err, "order_id", orderID)
		return nil, fmt.Errorf("failed to get subscription by order: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *SubscriptionRepositoryImpl) GetByUserID(ctx context.Context, userID uint) ([]*subscription.Subscription, error) {
	var modelList []*models.SubscriptionModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to get subscriptions by user", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to get subscriptions by user: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *SubscriptionRepositoryImpl) List(ctx context.Context, filter subscription.Filter) ([]*subscription.Subscription, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.SubscriptionModel{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count subscriptions", "error", err)
		return nil, 0, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}

	var modelList []*models.SubscriptionModel
	err := query.
		Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list subscriptions", "error", err)
		return nil, 0, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}

func (r *SubscriptionRepositoryImpl) FindExpiredSubscriptions(ctx context.Context) ([]*subscription.Subscription, error) {
	var modelList []*models.SubscriptionModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("status = ?", vo.StatusActive.String()).
		Where("end_date < ?", biztime.NowUTC()).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to find expired subscriptions", "error", err)
		return nil, fmt.Errorf("failed to find expired subscriptions: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, s *subscription.Subscription) error {
	model, err := r.mapper.ToModel(s)
	if err != nil {
		r.logger.Errorw("failed to convert subscription to model", "error", err)
		return fmt.Errorf("failed to convert subscription to model: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SubscriptionModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"status":              model.Status,
			"end_date":            model.EndDate,
			"days_remaining":      model.DaysRemaining,
			"pauses_remaining":    model.PausesRemaining,
			"last_paused_at":      model.LastPausedAt,
			"cancellation_reason": model.CancellationReason,
			"version":             model.Version,
			"updated_at":          model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update subscription", "error", result.Error, "subscription_id", s.ID())
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}

	return nil
}
