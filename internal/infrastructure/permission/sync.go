package permission

import (
	"fmt"

	"gorm.io/gorm"

	"thali/internal/shared/logger"
)

// PermissionSync bulk-loads role grants from the users table into casbin.
// Registration grants roles one by one; this backfills after imports or a
// wiped casbin_rule table.
type PermissionSync struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewPermissionSync(db *gorm.DB, log logger.Interface) *PermissionSync {
	return &PermissionSync{
		db:     db,
		logger: log,
	}
}

func (s *PermissionSync) SyncToCasbin() error {
	s.logger.Infow("syncing user roles to Casbin...")

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := s.syncUserRoles(tx); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to sync user roles: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.Infow("user roles synced to Casbin successfully")
	return nil
}

func (s *PermissionSync) syncUserRoles(tx *gorm.DB) error {
	query := `
		INSERT INTO casbin_rule (ptype, v0, v1, v2)
		SELECT DISTINCT
			'g',
			CAST(u.id AS CHAR),
			u.role,
			''
		FROM users u
		WHERE u.deleted_at IS NULL
		AND NOT EXISTS (
			SELECT 1 FROM casbin_rule cr
			WHERE cr.ptype = 'g'
			AND cr.v0 = CAST(u.id AS CHAR)
			AND cr.v1 = u.role
		)
	`

	result := tx.Exec(query)
	if result.Error != nil {
		return fmt.Errorf("failed to sync user roles: %w", result.Error)
	}

	if result.RowsAffected > 0 {
		s.logger.Infow("synced user roles to Casbin", "count", result.RowsAffected)
	}

	return nil
}
