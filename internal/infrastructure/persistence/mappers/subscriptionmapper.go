package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	ordervo "thali/internal/domain/order/valueobjects"
	"thali/internal/domain/pricing"
	"thali/internal/domain/subscription"
	vo "thali/internal/domain/subscription/valueobjects"
	"thali/internal/infrastructure/persistence/models"
	"thali/internal/shared/mapper"
)

type SubscriptionMapper interface {
	ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error)
	ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error)
	ToEntities(models []*models.SubscriptionModel) ([]*subscription.Subscription, error)
}

type SubscriptionMapperImpl struct{}

func NewSubscriptionMapper() SubscriptionMapper {
	return &SubscriptionMapperImpl{}
}

func (m *SubscriptionMapperImpl) ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	if model == nil {
		return nil, nil
	}

	status := vo.SubscriptionStatus(model.Status)
	if !vo.ValidStatuses[status] {
		return nil, fmt.Errorf("invalid subscription status: %s", model.Status)
	}

	var mealTypes []ordervo.MealType
	if model.MealTypes != nil {
		if err := json.Unmarshal(model.MealTypes, &mealTypes); err != nil {
			return nil, fmt.Errorf("failed to unmarshal meal types: %w", err)
		}
	}

	var addons map[uint]pricing.AddonSelection
	if model.Addons != nil {
		if err := json.Unmarshal(model.Addons, &addons); err != nil {
			return nil, fmt.Errorf("failed to unmarshal addons: %w", err)
		}
	}

	entity, err := subscription.Reconstruct(subscription.ReconstructParams{
		ID:                 model.ID,
		OrderID:            model.OrderID,
		UserID:             model.UserID,
		Status:             status,
		Protein:            model.Protein,
		MealsPerDay:        model.MealsPerDay,
		MealTypes:          mealTypes,
		Addons:             addons,
		StartDate:          model.StartDate,
		EndDate:            model.EndDate,
		DaysRemaining:      model.DaysRemaining,
		PausesRemaining:    model.PausesRemaining,
		LastPausedAt:       model.LastPausedAt,
		CancellationReason: model.CancellationReason,
		Version:            model.Version,
		CreatedAt:          model.CreatedAt,
		UpdatedAt:          model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct subscription entity: %w", err)
	}

	return entity, nil
}

func (m *SubscriptionMapperImpl) ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error) {
	if entity == nil {
		return nil, nil
	}

	var mealTypesJSON datatypes.JSON
	if mealTypes := entity.MealTypes(); len(mealTypes) > 0 {
		data, err := json.Marshal(mealTypes)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal meal types: %w", err)
		}
		mealTypesJSON = data
	}

	var addonsJSON datatypes.JSON
	if addons := entity.Addons(); len(addons) > 0 {
		data, err := json.Marshal(addons)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal addons: %w", err)
		}
		addonsJSON = data
	}

	return &models.SubscriptionModel{
		ID:                 entity.ID(),
		OrderID:            entity.OrderID(),
		UserID:             entity.UserID(),
		Status:             entity.Status().String(),
		Protein:            entity.Protein(),
		MealsPerDay:        entity.MealsPerDay(),
		MealTypes:          mealTypesJSON,
		Addons:             addonsJSON,
		StartDate:          entity.StartDate(),
		EndDate:            entity.EndDate(),
		DaysRemaining:      entity.DaysRemaining(),
		PausesRemaining:    entity.PausesRemaining(),
		LastPausedAt:       entity.LastPausedAt(),
		CancellationReason: entity.CancellationReason(),
		Version:            entity.Version(),
		CreatedAt:          entity.CreatedAt(),
		UpdatedAt:          entity.UpdatedAt(),
	}, nil
}

func (m *SubscriptionMapperImpl) ToEntities(modelList []*models.SubscriptionModel) ([]*subscription.Subscription, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.SubscriptionModel) uint { return model.ID })
}
