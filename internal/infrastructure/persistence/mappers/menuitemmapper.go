package mappers

import (
	"fmt"

	"thali/internal/domain/catalog"
	"thali/internal/infrastructure/persistence/models"
	"thali/internal/shared/mapper"
)

type MenuItemMapper interface {
	ToEntity(model *models.MenuItemModel) (*catalog.MenuItem, error)
	ToModel(entity *catalog.MenuItem) (*models.MenuItemModel, error)
	ToEntities(models []*models.MenuItemModel) ([]*catalog.MenuItem, error)
}

type MenuItemMapperImpl struct{}

func NewMenuItemMapper() MenuItemMapper {
	return &MenuItemMapperImpl{}
}

func (m *MenuItemMapperImpl) ToEntity(model *models.MenuItemModel) (*catalog.MenuItem, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := catalog.ReconstructMenuItem(
		model.ID,
		model.Name,
		model.Price,
		model.ProteinAmount,
		model.Calories,
		model.Available,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct menu item entity: %w", err)
	}

	return entity, nil
}

func (m *MenuItemMapperImpl) ToModel(entity *catalog.MenuItem) (*models.MenuItemModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.MenuItemModel{
		ID:            entity.ID(),
		Name:          entity.Name(),
		Price:         entity.Price(),
		ProteinAmount: entity.ProteinAmount(),
		Calories:      entity.Calories(),
		Available:     entity.Available(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}, nil
}

func (m *MenuItemMapperImpl) ToEntities(modelList []*models.MenuItemModel) ([]*catalog.MenuItem, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.MenuItemModel) uint { return model.ID })
}
