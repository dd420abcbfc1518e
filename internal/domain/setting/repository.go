package setting

import (
	"context"
)

// Repository persists operational settings keyed by (category, key).
type Repository interface {
	// GetByKey loads a single setting. Returns ErrSettingNotFound when absent.
	GetByKey(ctx context.Context, category, key string) (*SystemSetting, error)

	// GetByCategory loads every setting under one category.
	GetByCategory(ctx context.Context, category string) ([]*SystemSetting, error)

	// GetAll loads the full settings table.
	GetAll(ctx context.Context) ([]*SystemSetting, error)

	// Upsert inserts the setting or overwrites the row with the same
	// (category, key), bumping the stored version.
	Upsert(ctx context.Context, setting *SystemSetting) error

	// Delete removes a setting. Missing rows are not an error.
	Delete(ctx context.Context, category, key string) error
}
