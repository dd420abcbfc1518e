package usecases

import (
	"context"
	"fmt"
	"strconv"

	"thali/internal/domain/setting"
	"thali/internal/shared/logger"
)

func parseInt(v string) (int, error) {
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("value %q is not an integer", v)
	}
	return i, nil
}

func parseFloat(v string) (float64, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("value %q is not a number", v)
	}
	return f, nil
}

func parseBool(v string) (bool, error) {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("value %q is not a boolean", v)
	}
	return b, nil
}

// GetSettingsUseCase lists settings, optionally scoped to a category.
type GetSettingsUseCase struct {
	repo   setting.Repository
	logger logger.Interface
}

func NewGetSettingsUseCase(repo setting.Repository, log logger.Interface) *GetSettingsUseCase {
	return &GetSettingsUseCase{repo: repo, logger: log}
}

func (uc *GetSettingsUseCase) Execute(ctx context.Context, category string) ([]*setting.SystemSetting, error) {
	var (
		settings []*setting.SystemSetting
		err      error
	)

	if category != "" {
		settings, err = uc.repo.GetByCategory(ctx, category)
	} else {
		settings, err = uc.repo.GetAll(ctx)
	}
	if err != nil {
		uc.logger.Errorw("failed to list settings", "error", err, "category", category)
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}

	return settings, nil
}
