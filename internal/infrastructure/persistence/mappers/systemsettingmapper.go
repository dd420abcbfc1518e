package mappers

import (
	"thali/internal/domain/setting"
	"thali/internal/infrastructure/persistence/models"
	"thali/internal/shared/mapper"
)

type SystemSettingMapper interface {
	ToEntity(model *models.SystemSettingModel) (*setting.SystemSetting, error)
	ToModel(entity *setting.SystemSetting) (*models.SystemSettingModel, error)
	ToEntities(models []*models.SystemSettingModel) ([]*setting.SystemSetting, error)
}

type SystemSettingMapperImpl struct{}

func NewSystemSettingMapper() SystemSettingMapper {
	return &SystemSettingMapperImpl{}
}

func (m *SystemSettingMapperImpl) ToEntity(model *models.SystemSettingModel) (*setting.SystemSetting, error) {
	if model == nil {
		return nil, nil
	}

	return setting.ReconstructSystemSetting(
		model.ID,
		model.Category,
		model.SettingKey,
		model.Value,
		setting.ValueType(model.ValueType),
		model.Description,
		model.UpdatedBy,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func (m *SystemSettingMapperImpl) ToModel(entity *setting.SystemSetting) (*models.SystemSettingModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.SystemSettingModel{
		ID:          entity.ID(),
		Category:    entity.Category(),
		SettingKey:  entity.Key(),
		Value:       entity.Value(),
		ValueType:   string(entity.ValueType()),
		Description: entity.Description(),
		UpdatedBy:   entity.UpdatedBy(),
		Version:     entity.Version(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

func (m *SystemSettingMapperImpl) ToEntities(modelList []*models.SystemSettingModel) ([]*setting.SystemSetting, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.SystemSettingModel) uint { return model.ID })
}
