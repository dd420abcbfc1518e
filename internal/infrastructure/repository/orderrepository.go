package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"thali/internal/domain/order"
	"thali/internal/infrastructure/persistence/mappers"
	"thali/internal/infrastructure/persistence/models"
	"thali/internal/shared/constants"
	"thali/internal/shared/db"
	"thali/internal/shared/logger"
)

type OrderRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.OrderMapper
	logger logger.Interface
}

func NewOrderRepository(database *gorm.DB, log logger.Interface) order.Repository {
	return &OrderRepositoryImpl{
		db:     database,
		mapper: mappers.NewOrderMapper(),
		logger: log,
	}
}

func (r *OrderRepositoryImpl) Create(ctx context.Context, o *order.Order) error {
	model, err := r.mapper.ToModel(o)
	if err != nil {
		r.logger.Errorw("failed to convert order to model", "error", err)
		return fmt.Errorf("failed to convert order to model: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create order", "error", err, "user_id", o.UserID())
		return fmt.Errorf("failed to create order: %w", err)
	}

	return o.SetID(model.ID)
}

func (r *OrderRepositoryImpl) GetByID(ctx context.Context, id uint) (*order.Order, error) {
	var model models.OrderModel
	err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get order", "error", err, "order_id", id)
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *OrderRepositoryImpl) GetByUserID(ctx context.Context, userID uint) ([]*order.Order, error) {
	var modelList []*models.OrderModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to get orders by user", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to get orders by user: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *OrderRepositoryImpl) List(ctx context.Context, filter order.Filter) ([]*order.Order, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.OrderModel{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count orders", "error", err)
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}

	var modelList []*models.OrderModel
	err := query.
		Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list orders", "error", err)
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}

func (r *OrderRepositoryImpl) HasRecentDuplicate(ctx context.Context, userID uint, protein string, days int, since time.Time) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.OrderModel{}).
		Where("user_id = ? AND protein = ? AND days = ? AND created_at >= ?", userID, protein, days, since).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to check duplicate order", "error", err, "user_id", userID)
		return false, fmt.Errorf("failed to check duplicate order: %w", err)
	}

	return count > 0, nil
}
