package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"thali/internal/domain/setting"
	"thali/internal/infrastructure/persistence/mappers"
	"thali/internal/infrastructure/persistence/models"
	"thali/internal/shared/db"
	"thali/internal/shared/logger"
)

type SystemSettingRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SystemSettingMapper
	logger logger.Interface
}

func NewSystemSettingRepository(database *gorm.DB, log logger.Interface) setting.Repository {
	return &SystemSettingRepositoryImpl{
		db:     database,
		mapper: mappers.NewSystemSettingMapper(),
		logger: log,
	}
}

func (r *SystemSettingRepositoryImpl) GetByKey(ctx context.Context, category, key string) (*setting.SystemSetting, error) {
	var model models.SystemSettingModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("category = ? AND setting_key = ?", category, key).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, setting.ErrSettingNotFound
		}
		r.logger.Errorw("failed to get setting", "error", err, "category", category, "key", key)
		return nil, fmt.Errorf("failed to get setting: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *SystemSettingRepositoryImpl) GetByCategory(ctx context.Context, category string) ([]*setting.SystemSetting, error) {
	var modelList []*models.SystemSettingModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("category = ?", category).
		Order("setting_key ASC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to get settings by category", "error", err, "category", category)
		return nil, fmt.Errorf("failed to get settings by category: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *SystemSettingRepositoryImpl) GetAll(ctx context.Context) ([]*setting.SystemSetting, error) {
	var modelList []*models.SystemSettingModel
	err := db.GetTxFromContext(ctx, r.db).
		Order("category ASC, setting_key ASC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to get all settings", "error", err)
		return nil, fmt.Errorf("failed to get all settings: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *SystemSettingRepositoryImpl) Upsert(ctx context.Context, s *setting.SystemSetting) error {
	model, err := r.mapper.ToModel(s)
	if err != nil {
		r.logger.Errorw("failed to convert setting to model", "error", err)
		return fmt.Errorf("failed to convert setting to model: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "category"}, {Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"value",
			"value_type",
			"description",
			"updated_by",
			"version",
			"updated_at",
		}),
	}).Create(model)
	if result.Error != nil {
		r.logger.Errorw("failed to upsert setting", "error", result.Error,
			"category", s.Category(), "key", s.Key())
		return fmt.Errorf("failed to upsert setting: %w", result.Error)
	}

	if s.ID() == 0 && model.ID > 0 {
		s.SetID(model.ID)
	}

	return nil
}

func (r *SystemSettingRepositoryImpl) Delete(ctx context.Context, category, key string) error {
	result := db.GetTxFromContext(ctx, r.db).
		Where("category = ? AND setting_key = ?", category, key).
		Delete(&models.SystemSettingModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete setting", "error", result.Error, "category", category, "key", key)
		return fmt.Errorf("failed to delete setting: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return setting.ErrSettingNotFound
	}

	return nil
}
