package usecases

import (
	"context"
	"fmt"

	"thali/internal/domain/catalog"
	"thali/internal/shared/errors"
	"thali/internal/shared/logger"
)

// CreateAddOnCommand adds an optional extra to the catalog.
type CreateAddOnCommand struct {
	Name              string
	Price             int
	AllowSubscription bool
}

// UpdateAddOnCommand edits an addon. Nil fields are left untouched.
type UpdateAddOnCommand struct {
	ID                uint
	Price             *int
	AllowSubscription *bool
}

// AddOnUseCase is the admin CRUD surface over addons.
type AddOnUseCase struct {
	addOnRepo catalog.AddOnRepository
	logger    logger.Interface
}

func NewAddOnUseCase(addOnRepo catalog.AddOnRepository, log logger.Interface) *AddOnUseCase {
	return &AddOnUseCase{addOnRepo: addOnRepo, logger: log}
}

func (uc *AddOnUseCase) Create(ctx context.Context, cmd CreateAddOnCommand) (*catalog.AddOn, error) {
	addon, err := catalog.NewAddOn(cmd.Name, cmd.Price, cmd.AllowSubscription)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.addOnRepo.Create(ctx, addon); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError(fmt.Sprintf("addon %q already exists", addon.Name()))
		}
		uc.logger.Errorw("failed to create addon", "error", err, "name", addon.Name())
		return nil, fmt.Errorf("failed to create addon: %w", err)
	}

	uc.logger.Infow("addon created", "addon_id", addon.ID(), "name", addon.Name(), "price", addon.Price())
	return addon, nil
}

func (uc *AddOnUseCase) Update(ctx context.Context, cmd UpdateAddOnCommand) (*catalog.AddOn, error) {
	addon, err := uc.addOnRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get addon: %w", err)
	}
	if addon == nil {
		return nil, errors.NewNotFoundError("addon not found")
	}

	if cmd.Price != nil {
		if err := addon.UpdatePricing(*cmd.Price); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.AllowSubscription != nil {
		addon.SetAllowSubscription(*cmd.AllowSubscription)
	}

	if err := uc.addOnRepo.Update(ctx, addon); err != nil {
		uc.logger.Errorw("failed to update addon", "error", err, "addon_id", cmd.ID)
		return nil, fmt.Errorf("failed to update addon: %w", err)
	}

	uc.logger.Infow("addon updated", "addon_id", addon.ID(), "name", addon.Name())
	return addon, nil
}

func (uc *AddOnUseCase) Get(ctx context.Context, id uint) (*catalog.AddOn, error) {
	addon, err := uc.addOnRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get addon: %w", err)
	}
	if addon == nil {
		return nil, errors.NewNotFoundError("addon not found")
	}
	return addon, nil
}

func (uc *AddOnUseCase) List(ctx context.Context) ([]*catalog.AddOn, error) {
	addons, err := uc.addOnRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list addons", "error", err)
		return nil, fmt.Errorf("failed to list addons: %w", err)
	}
	return addons, nil
}

func (uc *AddOnUseCase) Delete(ctx context.Context, id uint) error {
	addon, err := uc.addOnRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get addon: %w", err)
	}
	if addon == nil {
		return errors.NewNotFoundError("addon not found")
	}
	if err := uc.addOnRepo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete addon", "error", err, "addon_id", id)
		return fmt.Errorf("failed to delete addon: %w", err)
	}
	uc.logger.Infow("addon deleted", "addon_id", id, "name", addon.Name())
	return nil
}
