package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"thali/internal/shared/constants"
)

// OrderModel represents the database persistence model for orders
// This is the anti-corruption layer between domain and database
type OrderModel struct {
	ID          uint      `gorm:"primarykey"`
	UserID      uint      `gorm:"not null;index:idx_user_order"`
	Protein     string    `gorm:"not null;size:100"`
	Days        int       `gorm:"not null"`
	MealsPerDay int       `gorm:"not null"`
	TotalPrice  int       `gorm:"not null"`
	StartDate   time.Time `gorm:"not null"`
	Status      string    `gorm:"not null;size:20;index:idx_order_status"`
	// Addons is a JSON object keyed by add-on ID:
	// {"3": {"quantity": 2, "frequency": "daily"}}
	Addons    datatypes.JSON
	MealTypes datatypes.JSON
	Notes     string `gorm:"size:500"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (OrderModel) TableName() string {
	return constants.TableOrders
}
