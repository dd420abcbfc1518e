package user

import "context"

// Repository persists user aggregates.
type Repository interface {
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	// GetByID returns nil, nil when the user does not exist.
	GetByID(ctx context.Context, id uint) (*User, error)
	// GetByEmail returns nil, nil when no account uses the email.
	GetByEmail(ctx context.Context, email string) (*User, error)
	ListByRole(ctx context.Context, role Role) ([]*User, error)
}
