package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"thali/internal/domain/catalog"
	"thali/internal/infrastructure/persistence/mappers"
	"thali/internal/infrastructure/persistence/models"
	"thali/internal/shared/db"
	"thali/internal/shared/logger"
)

type MenuItemRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.MenuItemMapper
	logger logger.Interface
}

func NewMenuItemRepository(database *gorm.DB, log logger.Interface) catalog.MenuItemRepository {
	return &MenuItemRepositoryImpl{
		db:     database,
		mapper: mappers.NewMenuItemMapper(),
		logger: log,
	}
}

func (r *MenuItemRepositoryImpl) Create(ctx context.Context, item *catalog.MenuItem) error {
	model, err := r.mapper.ToModel(item)
	if err != nil {
		r.logger.Errorw("failed to convert menu item to model", "error", err)
		return fmt.Errorf("failed to convert menu item to model: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create menu item", "error", err, "name", item.Name())
		return fmt.Errorf("failed to create menu item: %w", err)
	}

	return item.SetID(model.ID)
}

func (r *MenuItemRepositoryImpl) GetByID(ctx context.Context, id uint) (*catalog.MenuItem, error) {
	var model models.MenuItemModel
	err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get menu item", "error", err, "menu_item_id", id)
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *MenuItemRepositoryImpl) GetByName(ctx context.Context, name string) (*catalog.MenuItem, error) {
	var model models.MenuItemModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("name = ?", strings.ToUpper(strings.TrimSpace(name))).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get menu item by name", "error", err, "name", name)
		return nil, fmt.Errorf("failed to get menu item by name: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *MenuItemRepositoryImpl) List(ctx context.Context) ([]*catalog.MenuItem, error) {
	var modelList []*models.MenuItemModel
	err := db.GetTxFromContext(ctx, r.db).Order("name ASC").Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list menu items", "error", err)
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *MenuItemRepositoryImpl) Update(ctx context.Context, item *catalog.MenuItem) error {
	model, err := r.mapper.ToModel(item)
	if err != nil {
		r.logger.Errorw("failed to convert menu item to model", "error", err)
		return fmt.Errorf("failed to convert menu item to model: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.MenuItemModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"price":          model.Price,
			"protein_amount": model.ProteinAmount,
			"calories":       model.Calories,
			"available":      model.Available,
			"updated_at":     model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update menu item", "error", result.Error, "menu_item_id", item.ID())
		return fmt.Errorf("failed to update menu item: %w", result.Error)
	}

	return nil
}

func (r *MenuItemRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.MenuItemModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete menu item", "error", result.Error, "menu_item_id", id)
		return fmt.Errorf("failed to delete menu item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("menu item not found")
	}

	return nil
}
