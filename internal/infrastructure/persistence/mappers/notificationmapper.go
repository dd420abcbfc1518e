package mappers

import (
	"fmt"

	"thali/internal/domain/notification"
	vo "thali/internal/domain/notification/valueobjects"
	"thali/internal/infrastructure/persistence/models"
	"thali/internal/shared/mapper"
)

type NotificationMapper interface {
	ToEntity(model *models.NotificationModel) (*notification.Notification, error)
	ToModel(entity *notification.Notification) (*models.NotificationModel, error)
	ToEntities(models []*models.NotificationModel) ([]*notification.Notification, error)
	ToModels(entities []*notification.Notification) ([]*models.NotificationModel, error)
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToEntity(model *models.NotificationModel) (*notification.Notification, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := notification.ReconstructNotification(
		model.ID,
		model.UserID,
		vo.NotificationType(model.Type),
		model.Title,
		model.Content,
		model.RelatedID,
		vo.ReadStatus(model.Status),
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct notification entity: %w", err)
	}

	return entity, nil
}

func (m *NotificationMapperImpl) ToModel(entity *notification.Notification) (*models.NotificationModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.NotificationModel{
		ID:        entity.ID(),
		UserID:    entity.UserID(),
		Type:      entity.Type().String(),
		Title:     entity.Title(),
		Content:   entity.Content(),
		RelatedID: entity.RelatedID(),
		Status:    entity.ReadStatus().String(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}

func (m *NotificationMapperImpl) ToEntities(modelList []*models.NotificationModel) ([]*notification.Notification, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.NotificationModel) uint { return model.ID })
}

func (m *NotificationMapperImpl) ToModels(entities []*notification.Notification) ([]*models.NotificationModel, error) {
	return mapper.MapSlicePtrWithID(entities, m.ToModel, func(entity *notification.Notification) uint { return entity.ID() })
}
