package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"thali/internal/shared/constants"
)

// SubscriptionModel represents the database persistence model for subscriptions
// This is the anti-corruption layer between domain and database
type SubscriptionModel struct {
	ID                 uint   `gorm:"primarykey"`
	OrderID            uint   `gorm:"uniqueIndex;not null"`
	UserID             uint   `gorm:"not null;index:idx_user_subscription"`
	Status             string `gorm:"not null;size:20;index:idx_sub_status"`
	Protein            string `gorm:"not null;size:100"`
	MealsPerDay        int    `gorm:"not null"`
	MealTypes          datatypes.JSON
	Addons             datatypes.JSON
	StartDate          time.Time `gorm:"not null"`
	EndDate            time.Time `gorm:"not null;index:idx_end_date"`
	DaysRemaining      int       `gorm:"not null"`
	PausesRemaining    int       `gorm:"not null;default:0"`
	LastPausedAt       *time.Time
	CancellationReason *string `gorm:"size:500"`
	Version            int     `gorm:"not null;default:1"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}

// BeforeCreate hook for GORM
func (s *SubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if s.Version == 0 {
		s.Version = 1
	}
	return nil
}
