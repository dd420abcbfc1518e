package db

import (
	"time"

	"gorm.io/gorm"
)

// NotDeleted filters out soft-deleted records. Needed with Table()/Count()
// patterns where GORM does not apply soft-delete filtering automatically.
func NotDeleted() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("deleted_at IS NULL")
	}
}

// CreatedBetween filters rows created within [from, to].
func CreatedBetween(from, to time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("created_at BETWEEN ? AND ?", from, to)
	}
}
