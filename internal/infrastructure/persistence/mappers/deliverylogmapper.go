package mappers

import (
	"fmt"

	"thali/internal/domain/delivery"
	vo "thali/internal/domain/delivery/valueobjects"
	"thali/internal/infrastructure/persistence/models"
	"thali/internal/shared/mapper"
)

type DeliveryLogMapper interface {
	ToEntity(model *models.DeliveryLogModel) (*delivery.Log, error)
	ToModel(entity *delivery.Log) (*models.DeliveryLogModel, error)
	ToEntities(models []*models.DeliveryLogModel) ([]*delivery.Log, error)
}

type DeliveryLogMapperImpl struct{}

func NewDeliveryLogMapper() DeliveryLogMapper {
	return &DeliveryLogMapperImpl{}
}

func (m *DeliveryLogMapperImpl) ToEntity(model *models.DeliveryLogModel) (*delivery.Log, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := delivery.ReconstructLog(
		model.ID,
		model.SubscriptionID,
		model.AgentID,
		vo.DeliveryStatus(model.Status),
		model.DeliveryDate,
		model.DeliveryTime,
		model.Latitude,
		model.Longitude,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct delivery log entity: %w", err)
	}

	return entity, nil
}

func (m *DeliveryLogMapperImpl) ToModel(entity *delivery.Log) (*models.DeliveryLogModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.DeliveryLogModel{
		ID:             entity.ID(),
		SubscriptionID: entity.SubscriptionID(),
		AgentID:        entity.AgentID(),
		Status:         entity.Status().String(),
		DeliveryDate:   entity.DeliveryDate(),
		DeliveryTime:   entity.DeliveryTime(),
		Latitude:       entity.Latitude(),
		Longitude:      entity.Longitude(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}, nil
}

func (m *DeliveryLogMapperImpl) ToEntities(modelList []*models.DeliveryLogModel) ([]*delivery.Log, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.DeliveryLogModel) uint { return model.ID })
}
