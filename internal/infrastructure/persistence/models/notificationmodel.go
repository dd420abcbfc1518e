package models

import (
	"time"

	"thali/internal/shared/constants"
)

// NotificationModel represents the database persistence model for notifications
type NotificationModel struct {
	ID        uint   `gorm:"primarykey"`
	UserID    uint   `gorm:"not null;index:idx_user_notification"`
	Type      string `gorm:"not null;size:50"`
	Title     string `gorm:"not null;size:200"`
	Content   string `gorm:"not null;size:5000"`
	RelatedID *uint
	Status    string `gorm:"not null;size:20;default:unread;index:idx_read_status"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (NotificationModel) TableName() string {
	return constants.TableNotifications
}
