package subscription

import "context"

// Filter narrows subscription listings.
type Filter struct {
	UserID   *uint
	Status   *string
	Page     int
	PageSize int
}

// Repository persists subscriptions.
type Repository interface {
	Create(ctx context.Context, s *Subscription) error
	// GetByID returns (nil, nil) when absent.
	GetByID(ctx context.Context, id uint) (*Subscription, error)
	// GetByIDForUpdate reads the row under a write lock. Must be called
	// inside a transaction; backs the read-modify-write transitions.
	GetByIDForUpdate(ctx context.Context, id uint) (*Subscription, error)
	GetByOrderID(ctx context.Context, orderID uint) (*Subscription, error)
	GetByUserID(ctx context.Context, userID uint) ([]*Subscription, error)
	List(ctx context.Context, filter Filter) ([]*Subscription, int64, error)
	// FindExpiredSubscriptions returns active subscriptions whose end date
	// has passed. Backs the daily expiry job.
	FindExpiredSubscriptions(ctx context.Context) ([]*Subscription, error)
	Update(ctx context.Context, s *Subscription) error
}

// PauseRepository persists the append-only pause audit log.
type PauseRepository interface {
	Create(ctx context.Context, p *Pause) error
	GetBySubscriptionID(ctx context.Context, subscriptionID uint) ([]*Pause, error)
}
