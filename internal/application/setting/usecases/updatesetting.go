package usecases

import (
	"context"
	"fmt"

	"thali/internal/domain/setting"
	"thali/internal/infrastructure/cache"
	"thali/internal/shared/errors"
	"thali/internal/shared/logger"
)

type UpdateSettingCommand struct {
	Category    string
	Key         string
	Value       string
	ValueType   string
	Description string
	UpdatedBy   uint
}

// UpdateSettingUseCase upserts a setting and invalidates its cache entry so
// the next provider read sees the new value.
type UpdateSettingUseCase struct {
	repo   setting.Repository
	cache  cache.SettingsCache
	logger logger.Interface
}

func NewUpdateSettingUseCase(
	repo setting.Repository,
	settingsCache cache.SettingsCache,
	log logger.Interface,
) *UpdateSettingUseCase {
	return &UpdateSettingUseCase{
		repo:   repo,
		cache:  settingsCache,
		logger: log,
	}
}

func (uc *UpdateSettingUseCase) Execute(ctx context.Context, cmd UpdateSettingCommand) (*setting.SystemSetting, error) {
	existing, err := uc.repo.GetByKey(ctx, cmd.Category, cmd.Key)
	if err != nil && err != setting.ErrSettingNotFound {
		uc.logger.Errorw("failed to load setting", "error", err, "category", cmd.Category, "key", cmd.Key)
		return nil, fmt.Errorf("failed to load setting: %w", err)
	}

	s := existing
	if s == nil {
		s, err = setting.NewSystemSetting(cmd.Category, cmd.Key, setting.ValueType(cmd.ValueType), cmd.Description)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := applyValue(s, cmd); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Upsert(ctx, s); err != nil {
		uc.logger.Errorw("failed to upsert setting", "error", err, "category", cmd.Category, "key", cmd.Key)
		return nil, fmt.Errorf("failed to upsert setting: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, cmd.Category, cmd.Key); err != nil {
			uc.logger.Warnw("failed to invalidate settings cache", "error", err,
				"category", cmd.Category, "key", cmd.Key)
		}
	}

	uc.logger.Infow("setting updated",
		"category", cmd.Category,
		"key", cmd.Key,
		"updated_by", cmd.UpdatedBy)

	return s, nil
}

func applyValue(s *setting.SystemSetting, cmd UpdateSettingCommand) error {
	switch s.ValueType() {
	case setting.ValueTypeString:
		return s.SetStringValue(cmd.Value, cmd.UpdatedBy)
	case setting.ValueTypeInt:
		v, err := parseInt(cmd.Value)
		if err != nil {
			return err
		}
		return s.SetIntValue(v, cmd.UpdatedBy)
	case setting.ValueTypeFloat:
		v, err := parseFloat(cmd.Value)
		if err != nil {
			return err
		}
		return s.SetFloatValue(v, cmd.UpdatedBy)
	case setting.ValueTypeBool:
		v, err := parseBool(cmd.Value)
		if err != nil {
			return err
		}
		return s.SetBoolValue(v, cmd.UpdatedBy)
	default:
		return fmt.Errorf("unsupported value type: %s", s.ValueType())
	}
}
