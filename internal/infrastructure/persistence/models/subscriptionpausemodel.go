package models

import (
	"time"

	"thali/internal/shared/constants"
)

// SubscriptionPauseModel is the append-only audit row for completed
// pause/resume cycles.
type SubscriptionPauseModel struct {
	ID             uint      `gorm:"primarykey"`
	SubscriptionID uint      `gorm:"not null;index:idx_pause_subscription"`
	StartDate      time.Time `gorm:"not null"`
	EndDate        time.Time `gorm:"not null"`
	CreatedAt      time.Time
}

// TableName specifies the table name for GORM
func (SubscriptionPauseModel) TableName() string {
	return constants.TableSubscriptionPauses
}
