package mappers

import (
	"thali/internal/domain/subscription"
	"thali/internal/infrastructure/persistence/models"
	"thali/internal/shared/mapper"
)

type PauseMapper interface {
	ToEntity(model *models.SubscriptionPauseModel) (*subscription.Pause, error)
	ToModel(entity *subscription.Pause) (*models.SubscriptionPauseModel, error)
	ToEntities(models []*models.SubscriptionPauseModel) ([]*subscription.Pause, error)
}

type PauseMapperImpl struct{}

func NewPauseMapper() PauseMapper {
	return &PauseMapperImpl{}
}

func (m *PauseMapperImpl) ToEntity(model *models.SubscriptionPauseModel) (*subscription.Pause, error) {
	if model == nil {
		return nil, nil
	}

	return subscription.ReconstructPause(
		model.ID,
		model.SubscriptionID,
		model.StartDate,
		model.EndDate,
		model.CreatedAt,
	), nil
}

func (m *PauseMapperImpl) ToModel(entity *subscription.Pause) (*models.SubscriptionPauseModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.SubscriptionPauseModel{
		ID:             entity.ID(),
		SubscriptionID: entity.SubscriptionID(),
		StartDate:      entity.StartDate(),
		EndDate:        entity.EndDate(),
		CreatedAt:      entity.CreatedAt(),
	}, nil
}

func (m *PauseMapperImpl) ToEntities(modelList []*models.SubscriptionPauseModel) ([]*subscription.Pause, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.SubscriptionPauseModel) uint { return model.ID })
}
