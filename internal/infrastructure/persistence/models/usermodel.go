package models

import (
	"time"

	"gorm.io/gorm"

	"thali/internal/shared/constants"
)

// UserModel represents the database persistence model for users
// This is the anti-corruption layer between domain and database
type UserModel struct {
	ID           uint   `gorm:"primarykey"`
	Name         string `gorm:"not null;size:100"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string `gorm:"not null;size:100"`
	Role         string `gorm:"not null;size:20;default:customer;index:idx_role"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}
