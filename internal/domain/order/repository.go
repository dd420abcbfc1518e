package order

import (
	"context"
	"time"
)

// Filter narrows order listings.
type Filter struct {
	UserID   *uint
	Status   *string
	Page     int
	PageSize int
}

// Repository persists orders.
type Repository interface {
	Create(ctx context.Context, o *Order) error
	// GetByID returns (nil, nil) when absent.
	GetByID(ctx context.Context, id uint) (*Order, error)
	GetByUserID(ctx context.Context, userID uint) ([]*Order, error)
	List(ctx context.Context, filter Filter) ([]*Order, int64, error)
	// HasRecentDuplicate reports whether userID placed an order for the
	// same protein and day count since the given instant. Backs the
	// double-submit guard; must run inside the creation transaction.
	HasRecentDuplicate(ctx context.Context, userID uint, protein string, days int, since time.Time) (bool, error)
}
