package models

import (
	"time"

	"gorm.io/gorm"

	"thali/internal/shared/constants"
)

// MenuItemModel represents the database persistence model for menu items.
// The name is the natural key used by order creation, stored upper-cased.
type MenuItemModel struct {
	ID            uint   `gorm:"primarykey"`
	Name          string `gorm:"uniqueIndex;not null;size:100"`
	Price         int    `gorm:"not null"`
	ProteinAmount int    `gorm:"not null;default:0"`
	Calories      int    `gorm:"not null;default:0"`
	Available     bool   `gorm:"not null;default:true;index:idx_available"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (MenuItemModel) TableName() string {
	return constants.TableMenuItems
}
