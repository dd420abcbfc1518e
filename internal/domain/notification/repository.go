package notification

import "context"

// Repository persists notifications.
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	// BulkCreate inserts a batch in one statement, used when notifying
	// every admin about a new order.
	BulkCreate(ctx context.Context, notifications []*Notification) error
	// GetByID returns nil, nil when the notification does not exist.
	GetByID(ctx context.Context, id uint) (*Notification, error)
	ListByUserID(ctx context.Context, userID uint, limit, offset int) ([]*Notification, int64, error)
	CountUnread(ctx context.Context, userID uint) (int64, error)
	MarkAsRead(ctx context.Context, id uint) error
}
