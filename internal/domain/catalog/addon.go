package catalog

import (
	"fmt"
	"strings"
	"time"

	"thali/internal/shared/biztime"
)

// AddOn is an optional extra attachable to a plan, priced per unit either
// once or daily for the plan duration.
type AddOn struct {
	id                uint
	name              string
	price             int
	allowSubscription bool
	createdAt         time.Time
	updatedAt         time.Time
}

// NewAddOn creates an addon. allowSubscription controls whether the
// daily-for-remaining-days pricing mode may be selected.
func NewAddOn(name string, price int, allowSubscription bool) (*AddOn, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("addon name is required")
	}
	if price <= 0 {
		return nil, fmt.Errorf("addon price must be positive")
	}
	now := biztime.NowUTC()
	return &AddOn{
		name:              name,
		price:             price,
		allowSubscription: allowSubscription,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

// ReconstructAddOn rebuilds an addon from persistence.
func ReconstructAddOn(id uint, name string, price int, allowSubscription bool, createdAt, updatedAt time.Time) (*AddOn, error) {
	if id == 0 {
		return nil, fmt.Errorf("addon ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("addon name is required")
	}
	return &AddOn{
		id:                id,
		name:              name,
		price:             price,
		allowSubscription: allowSubscription,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func (a *AddOn) ID() uint                { return a.id }
func (a *AddOn) Name() string            { return a.name }
func (a *AddOn) Price() int              { return a.price }
func (a *AddOn) AllowSubscription() bool { return a.allowSubscription }
func (a *AddOn) CreatedAt() time.Time    { return a.createdAt }
func (a *AddOn) UpdatedAt() time.Time    { return a.updatedAt }

// SetID sets the ID after insertion. Persistence layer use only.
func (a *AddOn) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("addon ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("addon ID cannot be zero")
	}
	a.id = id
	return nil
}

// UpdatePricing changes the per-unit price going forward.
func (a *AddOn) UpdatePricing(price int) error {
	if price <= 0 {
		return fmt.Errorf("addon price must be positive")
	}
	a.price = price
	a.updatedAt = biztime.NowUTC()
	return nil
}

// SetAllowSubscription toggles the daily pricing mode.
func (a *AddOn) SetAllowSubscription(allow bool) {
	if a.allowSubscription == allow {
		return
	}
	a.allowSubscription = allow
	a.updatedAt = biztime.NowUTC()
}
