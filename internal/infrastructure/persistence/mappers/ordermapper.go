package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"thali/internal/domain/order"
	vo "thali/internal/domain/order/valueobjects"
	"thali/internal/domain/pricing"
	"thali/internal/infrastructure/persistence/models"
	"thali/internal/shared/mapper"
)

type OrderMapper interface {
	ToEntity(model *models.OrderModel) (*order.Order, error)
	ToModel(entity *order.Order) (*models.OrderModel, error)
	ToEntities(models []*models.OrderModel) ([]*order.Order, error)
}

type OrderMapperImpl struct{}

func NewOrderMapper() OrderMapper {
	return &OrderMapperImpl{}
}

func (m *OrderMapperImpl) ToEntity(model *models.OrderModel) (*order.Order, error) {
	if model == nil {
		return nil, nil
	}

	status := vo.OrderStatus(model.Status)
	if !vo.ValidStatuses[status] {
		return nil, fmt.Errorf("invalid order status: %s", model.Status)
	}

	var addons map[uint]pricing.AddonSelection
	if model.Addons != nil {
		if err := json.Unmarshal(model.Addons, &addons); err != nil {
			return nil, fmt.Errorf("failed to unmarshal addons: %w", err)
		}
	}

	var mealTypes []vo.MealType
	if model.MealTypes != nil {
		if err := json.Unmarshal(model.MealTypes, &mealTypes); err != nil {
			return nil, fmt.Errorf("failed to unmarshal meal types: %w", err)
		}
	}

	entity, err := order.ReconstructOrder(
		model.ID,
		model.UserID,
		model.Protein,
		model.Days,
		model.MealsPerDay,
		model.TotalPrice,
		model.StartDate,
		status,
		addons,
		mealTypes,
		model.Notes,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct order entity: %w", err)
	}

	return entity, nil
}

func (m *OrderMapperImpl) ToModel(entity *order.Order) (*models.OrderModel, error) {
	if entity == nil {
		return nil, nil
	}

	var addonsJSON datatypes.JSON
	if addons := entity.Addons(); len(addons) > 0 {
		data, err := json.Marshal(addons)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal addons: %w", err)
		}
		addonsJSON = data
	}

	var mealTypesJSON datatypes.JSON
	if mealTypes := entity.MealTypes(); len(mealTypes) > 0 {
		data, err := json.Marshal(mealTypes)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal meal types: %w", err)
		}
		mealTypesJSON = data
	}

	return &models.OrderModel{
		ID:          entity.ID(),
		UserID:      entity.UserID(),
		Protein:     entity.Protein(),
		Days:        entity.Days(),
		MealsPerDay: entity.MealsPerDay(),
		TotalPrice:  entity.TotalPrice(),
		StartDate:   entity.StartDate(),
		Status:      entity.Status().String(),
		Addons:      addonsJSON,
		MealTypes:   mealTypesJSON,
		Notes:       entity.Notes(),
		CreatedAt:   entity.CreatedAt(),
	}, nil
}

func (m *OrderMapperImpl) ToEntities(modelList []*models.OrderModel) ([]*order.Order, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.OrderModel) uint { return model.ID })
}
