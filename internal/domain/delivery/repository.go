package delivery

import (
	"context"
	"time"
)

// Repository persists delivery logs.
type Repository interface {
	Create(ctx context.Context, l *Log) error
	// GetByID returns (nil, nil) when absent.
	GetByID(ctx context.Context, id uint) (*Log, error)
	// GetForDay returns the subscription's log for the given business
	// day, or (nil, nil). Callers upsert through this plus Create; the
	// composite unique index resolves concurrent creates.
	GetForDay(ctx context.Context, subscriptionID uint, day time.Time) (*Log, error)
	ListForDay(ctx context.Context, day time.Time) ([]*Log, error)
	ListByAgentForDay(ctx context.Context, agentID uint, day time.Time) ([]*Log, error)
	ListBySubscription(ctx context.Context, subscriptionID uint) ([]*Log, error)
	Update(ctx context.Context, l *Log) error
}
