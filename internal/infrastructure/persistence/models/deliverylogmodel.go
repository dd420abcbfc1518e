package models

import (
	"time"

	"thali/internal/shared/constants"
)

// DeliveryLogModel represents the database persistence model for delivery logs.
// The composite unique index on (subscription_id, delivery_date) guarantees
// at most one row per subscription per business day.
type DeliveryLogModel struct {
	ID             uint      `gorm:"primarykey"`
	SubscriptionID uint      `gorm:"not null;uniqueIndex:idx_subscription_day,priority:1"`
	AgentID        *uint     `gorm:"index:idx_agent_day,priority:1"`
	Status         string    `gorm:"not null;size:20;index:idx_delivery_status"`
	DeliveryDate   time.Time `gorm:"not null;uniqueIndex:idx_subscription_day,priority:2;index:idx_agent_day,priority:2"`
	DeliveryTime   *time.Time
	Latitude       *float64
	Longitude      *float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (DeliveryLogModel) TableName() string {
	return constants.TableDeliveryLogs
}
