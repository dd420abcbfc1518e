package mappers

import (
	"fmt"

	"thali/internal/domain/catalog"
	"thali/internal/infrastructure/persistence/models"
	"thali/internal/shared/mapper"
)

type AddOnMapper interface {
	ToEntity(model *models.AddOnModel) (*catalog.AddOn, error)
	ToModel(entity *catalog.AddOn) (*models.AddOnModel, error)
	ToEntities(models []*models.AddOnModel) ([]*catalog.AddOn, error)
}

type AddOnMapperImpl struct{}

func NewAddOnMapper() AddOnMapper {
	return &AddOnMapperImpl{}
}

func (m *AddOnMapperImpl) ToEntity(model *models.AddOnModel) (*catalog.AddOn, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := catalog.ReconstructAddOn(
		model.ID,
		model.Name,
		model.Price,
		model.AllowSubscription,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct add-on entity: %w", err)
	}

	return entity, nil
}

func (m *AddOnMapperImpl) ToModel(entity *catalog.AddOn) (*models.AddOnModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.AddOnModel{
		ID:                entity.ID(),
		Name:              entity.Name(),
		Price:             entity.Price(),
		AllowSubscription: entity.AllowSubscription(),
		CreatedAt:         entity.CreatedAt(),
		UpdatedAt:         entity.UpdatedAt(),
	}, nil
}

func (m *AddOnMapperImpl) ToEntities(modelList []*models.AddOnModel) ([]*catalog.AddOn, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.AddOnModel) uint { return model.ID })
}
