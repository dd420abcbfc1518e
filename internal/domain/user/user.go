// Package user holds the user aggregate: customers, admins and delivery
// agents share one account type distinguished by role.
package user

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"thali/internal/shared/biztime"
)

// Role partitions accounts by what they may do.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
	RoleDelivery Role = "delivery"
)

func (r Role) String() string { return string(r) }

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin, RoleDelivery:
		return true
	}
	return false
}

// User is an account aggregate.
type User struct {
	id           uint
	name         string
	email        string
	passwordHash string
	role         Role
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates an account, hashing the password with bcrypt.
func NewUser(name, email, password string, role Role, bcryptCost int) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := biztime.NowUTC()
	return &User{
		name:         name,
		email:        email,
		passwordHash: string(hash),
		role:         role,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser rebuilds a user from persistence.
func ReconstructUser(id uint, name, email, passwordHash string, role Role, createdAt, updatedAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint             { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// SetID sets the ID after insertion. Persistence layer use only.
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// CheckPassword verifies a login attempt.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)) == nil
}

// IsAdmin reports whether the account has the admin role.
func (u *User) IsAdmin() bool { return u.role == RoleAdmin }

// IsDeliveryAgent reports whether the account has the delivery role.
func (u *User) IsDeliveryAgent() bool { return u.role == RoleDelivery }
