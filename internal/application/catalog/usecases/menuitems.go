package usecases

import (
	"context"
	"fmt"

	"thali/internal/domain/catalog"
	"thali/internal/shared/errors"
	"thali/internal/shared/logger"
)

// CreateMenuItemCommand adds a protein to the catalog.
type CreateMenuItemCommand struct {
	Name          string
	Price         int
	ProteinAmount int
	Calories      int
}

// UpdateMenuItemCommand edits a catalog protein. Nil fields are left
// untouched; existing orders keep their captured price regardless.
type UpdateMenuItemCommand struct {
	ID            uint
	Price         *int
	ProteinAmount *int
	Calories      *int
	Available     *bool
}

// MenuItemUseCase is the admin CRUD surface over the protein catalog.
type MenuItemUseCase struct {
	menuItemRepo catalog.MenuItemRepository
	logger       logger.Interface
}

func NewMenuItemUseCase(menuItemRepo catalog.MenuItemRepository, log logger.Interface) *MenuItemUseCase {
	return &MenuItemUseCase{menuItemRepo: menuItemRepo, logger: log}
}

func (uc *MenuItemUseCase) Create(ctx context.Context, cmd CreateMenuItemCommand) (*catalog.MenuItem, error) {
	item, err := catalog.NewMenuItem(cmd.Name, cmd.Price, cmd.ProteinAmount, cmd.Calories)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := uc.menuItemRepo.GetByName(ctx, item.Name())
	if err != nil {
		return nil, fmt.Errorf("failed to check menu item name: %w", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError(fmt.Sprintf("menu item %q already exists", item.Name()))
	}

	if err := uc.menuItemRepo.Create(ctx, item); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError(fmt.Sprintf("menu item %q already exists", item.Name()))
		}
		uc.logger.Errorw("failed to create menu item", "error", err, "name", item.Name())
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}

	uc.logger.Infow("menu item created", "menu_item_id", item.ID(), "name", item.Name(), "price", item.Price())
	return item, nil
}

func (uc *MenuItemUseCase) Update(ctx context.Context, cmd UpdateMenuItemCommand) (*catalog.MenuItem, error) {
	item, err := uc.menuItemRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}
	if item == nil {
		return nil, errors.NewNotFoundError("menu item not found")
	}

	if cmd.Price != nil {
		if err := item.UpdatePricing(*cmd.Price); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.ProteinAmount != nil || cmd.Calories != nil {
		protein := item.ProteinAmount()
		calories := item.Calories()
		if cmd.ProteinAmount != nil {
			protein = *cmd.ProteinAmount
		}
		if cmd.Calories != nil {
			calories = *cmd.Calories
		}
		if err := item.UpdateNutrition(protein, calories); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Available != nil {
		item.SetAvailable(*cmd.Available)
	}

	if err := uc.menuItemRepo.Update(ctx, item); err != nil {
		uc.logger.Errorw("failed to update menu item", "error", err, "menu_item_id", cmd.ID)
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}

	uc.logger.Infow("menu item updated", "menu_item_id", item.ID(), "name", item.Name())
	return item, nil
}

func (uc *MenuItemUseCase) Get(ctx context.Context, id uint) (*catalog.MenuItem, error) {
	item, err := uc.menuItemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}
	if item == nil {
		return nil, errors.NewNotFoundError("menu item not found")
	}
	return item, nil
}

func (uc *MenuItemUseCase) List(ctx context.Context) ([]*catalog.MenuItem, error) {
	items, err := uc.menuItemRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list menu items", "error", err)
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	return items, nil
}

func (uc *MenuItemUseCase) Delete(ctx context.Context, id uint) error {
	item, err := uc.menuItemRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get menu item: %w", err)
	}
	if item == nil {
		return errors.NewNotFoundError("menu item not found")
	}
	if err := uc.menuItemRepo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete menu item", "error", err, "menu_item_id", id)
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	uc.logger.Infow("menu item deleted", "menu_item_id", id, "name", item.Name())
	return nil
}
