package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"thali/internal/domain/notification"
	vo "thali/internal/domain/notification/valueobjects"
	"thali/internal/infrastructure/persistence/mappers"
	"thali/internal/infrastructure/persistence/models"
	"thali/internal/shared/biztime"
	"thali/internal/shared/constants"
	"thali/internal/shared/db"
	"thali/internal/shared/logger"
)

type NotificationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
	logger logger.Interface
}

func NewNotificationRepository(database *gorm.DB, log logger.Interface) notification.Repository {
	return &NotificationRepositoryImpl{
		db:     database,
		mapper: mappers.NewNotificationMapper(),
		logger: log,
	}
}

func (r *NotificationRepositoryImpl) Create(ctx context.Context, n *notification.Notification) error {
	model, err := r.mapper.ToModel(n)
	if err != nil {
		r.logger.Errorw("failed to convert notification to model", "error", err)
		return fmt.Errorf("failed to convert notification to model: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create notification", "error", err, "user_id", n.UserID())
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return n.SetID(model.ID)
}

func (r *NotificationRepositoryImpl) BulkCreate(ctx context.Context, notifications []*notification.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	modelList, err := r.mapper.ToModels(notifications)
	if err != nil {
		r.logger.Errorw("failed to convert notifications to models", "error", err)
		return fmt.Errorf("failed to convert notifications to models: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(&modelList).Error; err != nil {
		r.logger.Errorw("failed to bulk create notifications", "error", err, "count", len(modelList))
		return fmt.Errorf("failed to bulk create notifications: %w", err)
	}

	for i, model := range modelList {
		if notifications[i].ID() == 0 && model.ID > 0 {
			if err := notifications[i].SetID(model.ID); err != nil {
				return err
			}
		}
	}

	return nil
}

func (r *NotificationRepositoryImpl) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	var model models.NotificationModel
	err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get notification", "error", err, "notification_id", id)
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *NotificationRepositoryImpl) ListByUserID(ctx context.Context, userID uint, limit, offset int) ([]*notification.Notification, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.NotificationModel{}).
		Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count notifications", "error", err, "user_id", userID)
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	if limit < 1 {
		limit = constants.DefaultPageSize
	}

	var modelList []*models.NotificationModel
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list notifications", "error", err, "user_id", userID)
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}

func (r *NotificationRepositoryImpl) CountUnread(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.NotificationModel{}).
		Where("user_id = ? AND status = ?", userID, vo.ReadStatusUnread.String()).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to count unread notifications", "error", err, "user_id", userID)
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

func (r *NotificationRepositoryImpl) MarkAsRead(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.NotificationModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     vo.ReadStatusRead.String(),
			"updated_at": biztime.NowUTC(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to mark notification as read", "error", result.Error, "notification_id", id)
		return fmt.Errorf("failed to mark notification as read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("notification not found")
	}

	return nil
}
