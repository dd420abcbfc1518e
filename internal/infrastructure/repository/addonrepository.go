package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"thali/internal/domain/catalog"
	"thali/internal/infrastructure/persistence/mappers"
	"thali/internal/infrastructure/persistence/models"
	"thali/internal/shared/db"
	"thali/internal/shared/logger"
)

type AddOnRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AddOnMapper
	logger logger.Interface
}

func NewAddOnRepository(database *gorm.DB, log logger.Interface) catalog.AddOnRepository {
	return &AddOnRepositoryImpl{
		db:     database,
		mapper: mappers.NewAddOnMapper(),
		logger: log,
	}
}

func (r *AddOnRepositoryImpl) Create(ctx context.Context, addon *catalog.AddOn) error {
	model, err := r.mapper.ToModel(addon)
	if err != nil {
		r.logger.Errorw("failed to convert add-on to model", "error", err)
		return fmt.Errorf("failed to convert add-on to model: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create add-on", "error", err, "name", addon.Name())
		return fmt.Errorf("failed to create add-on: %w", err)
	}

	return addon.SetID(model.ID)
}

func (r *AddOnRepositoryImpl) GetByID(ctx context.Context, id uint) (*catalog.AddOn, error) {
	var model models.AddOnModel
	err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get add-on", "error", err, "add_on_id", id)
		return nil, fmt.Errorf("failed to get add-on: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *AddOnRepositoryImpl) GetByIDs(ctx context.Context, ids []uint) ([]*catalog.AddOn, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var modelList []*models.AddOnModel
	err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to get add-ons by ids", "error", err, "add_on_ids", ids)
		return nil, fmt.Errorf("failed to get add-ons by ids: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *AddOnRepositoryImpl) List(ctx context.Context) ([]*catalog.AddOn, error) {
	var modelList []*models.AddOnModel
	err := db.GetTxFromContext(ctx, r.db).Order("name ASC").Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list add-ons", "error", err)
		return nil, fmt.Errorf("failed to list add-ons: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *AddOnRepositoryImpl) Update(ctx context.Context, addon *catalog.AddOn) error {
	model, err := r.mapper.ToModel(addon)
	if err != nil {
		r.logger.Errorw("failed to convert add-on to model", "error", err)
		return fmt.Errorf("failed to convert add-on to model: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.AddOnModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"price":              model.Price,
			"allow_subscription": model.AllowSubscription,
			"updated_at":         model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update add-on", "error", result.Error, "add_on_id", addon.ID())
		return fmt.Errorf("failed to update add-on: %w", result.Error)
	}

	return nil
}

func (r *AddOnRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.AddOnModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete add-on", "error", result.Error, "add_on_id", id)
		return fmt.Errorf("failed to delete add-on: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("add-on not found")
	}

	return nil
}
