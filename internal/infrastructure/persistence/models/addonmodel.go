package models

import (
	"time"

	"gorm.io/gorm"

	"thali/internal/shared/constants"
)

// AddOnModel represents the database persistence model for add-ons
type AddOnModel struct {
	ID                uint   `gorm:"primarykey"`
	Name              string `gorm:"uniqueIndex;not null;size:100"`
	Price             int    `gorm:"not null"`
	AllowSubscription bool   `gorm:"not null;default:true"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (AddOnModel) TableName() string {
	return constants.TableAddOns
}
