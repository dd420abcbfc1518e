package usecases

import (
	"context"
	"fmt"

	"thali/internal/domain/catalog"
	vo "thali/internal/domain/order/valueobjects"
	"thali/internal/domain/pricing"
	"thali/internal/shared/errors"
	"thali/internal/shared/logger"
)

// ComputePriceCommand requests a quote without placing an order.
type ComputePriceCommand struct {
	Protein     string
	Days        int
	MealsPerDay int
	MealTypes   []string
	Addons      map[uint]pricing.AddonSelection
}

// ComputePriceUseCase prices a plan against the live catalog. It is the
// read-only twin of order creation and must produce the exact total the
// order would be charged.
type ComputePriceUseCase struct {
	menuItemRepo catalog.MenuItemRepository
	addOnRepo    catalog.AddOnRepository
	logger       logger.Interface
}

func NewComputePriceUseCase(
	menuItemRepo catalog.MenuItemRepository,
	addOnRepo catalog.AddOnRepository,
	log logger.Interface,
) *ComputePriceUseCase {
	return &ComputePriceUseCase{
		menuItemRepo: menuItemRepo,
		addOnRepo:    addOnRepo,
		logger:       log,
	}
}

func (uc *ComputePriceUseCase) Execute(ctx context.Context, cmd ComputePriceCommand) (*pricing.Quote, error) {
	if cmd.Days <= 0 {
		return nil, errors.NewValidationError("days must be positive")
	}

	mealsPerDay := cmd.MealsPerDay
	if len(cmd.MealTypes) > 0 {
		mealTypes, err := vo.ParseMealTypes(cmd.MealTypes)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		mealsPerDay = len(mealTypes)
	}
	if mealsPerDay < 1 || mealsPerDay > 2 {
		return nil, errors.NewValidationError("meals_per_day must be 1 or 2")
	}

	item, err := uc.menuItemRepo.GetByName(ctx, cmd.Protein)
	if err != nil {
		uc.logger.Errorw("failed to look up menu item for quote", "error", err, "protein", cmd.Protein)
		return nil, fmt.Errorf("failed to look up menu item: %w", err)
	}
	if item == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("menu item %q not found", cmd.Protein))
	}

	rates := map[uint]pricing.AddonRate{}
	if len(cmd.Addons) > 0 {
		ids := make([]uint, 0, len(cmd.Addons))
		for id := range cmd.Addons {
			ids = append(ids, id)
		}
		addons, err := uc.addOnRepo.GetByIDs(ctx, ids)
		if err != nil {
			uc.logger.Errorw("failed to load add-ons for quote", "error", err)
			return nil, fmt.Errorf("failed to load add-ons: %w", err)
		}
		for _, a := range addons {
			rates[a.ID()] = pricing.AddonRate{Name: a.Name(), UnitPrice: a.Price()}
		}
	}

	quote := pricing.ComputeQuote(item.Price(), cmd.Days, mealsPerDay, cmd.Addons, rates)
	return &quote, nil
}
