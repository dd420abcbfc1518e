// Package order holds the Order aggregate: the immutable record of a meal
// plan purchase. An order's price is computed once at creation and never
// recalculated; exactly one subscription is derived from each order.
package order

import (
	"fmt"
	"time"

	"thali/internal/domain/order/valueobjects"
	"thali/internal/domain/pricing"
	"thali/internal/shared/biztime"
)

// Order is an immutable purchase record.
type Order struct {
	id          uint
	userID      uint
	protein     string
	days        int
	mealsPerDay int
	totalPrice  int
	startDate   time.Time
	status      valueobjects.OrderStatus
	addons      map[uint]pricing.AddonSelection
	mealTypes   []valueobjects.MealType
	notes       string
	createdAt   time.Time
}

// NewOrder creates an order record. The total price is the caller's
// responsibility (computed by the pricing engine) and is captured verbatim.
func NewOrder(
	userID uint,
	protein string,
	days int,
	mealTypes []valueobjects.MealType,
	totalPrice int,
	startDate time.Time,
	addons map[uint]pricing.AddonSelection,
	notes string,
) (*Order, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if protein == "" {
		return nil, fmt.Errorf("protein is required")
	}
	if days < 1 {
		return nil, fmt.Errorf("days must be at least 1")
	}
	if len(mealTypes) == 0 {
		return nil, fmt.Errorf("at least one meal type is required")
	}
	for _, mt := range mealTypes {
		if !mt.IsValid() {
			return nil, fmt.Errorf("invalid meal type: %s", mt)
		}
	}
	if totalPrice < 0 {
		return nil, fmt.Errorf("total price cannot be negative")
	}
	for id, sel := range addons {
		if sel.Quantity < 0 {
			return nil, fmt.Errorf("addon %d quantity cannot be negative", id)
		}
		if !sel.Frequency.IsValid() {
			return nil, fmt.Errorf("addon %d has invalid frequency %q", id, sel.Frequency)
		}
	}
	if addons == nil {
		addons = make(map[uint]pricing.AddonSelection)
	}

	return &Order{
		userID:      userID,
		protein:     protein,
		days:        days,
		mealsPerDay: len(mealTypes),
		totalPrice:  totalPrice,
		startDate:   startDate,
		status:      valueobjects.StatusPaid, // payment stub: no gateway in this system
		addons:      addons,
		mealTypes:   mealTypes,
		notes:       notes,
		createdAt:   biztime.NowUTC(),
	}, nil
}

// ReconstructOrder rebuilds an order from persistence.
func ReconstructOrder(
	id, userID uint,
	protein string,
	days, mealsPerDay, totalPrice int,
	startDate time.Time,
	status valueobjects.OrderStatus,
	addons map[uint]pricing.AddonSelection,
	mealTypes []valueobjects.MealType,
	notes string,
	createdAt time.Time,
) (*Order, error) {
	if id == 0 {
		return nil, fmt.Errorf("order ID cannot be zero")
	}
	if !valueobjects.ValidStatuses[status] {
		return nil, fmt.Errorf("invalid order status: %s", status)
	}
	if addons == nil {
		addons = make(map[uint]pricing.AddonSelection)
	}
	return &Order{
		id:          id,
		userID:      userID,
		protein:     protein,
		days:        days,
		mealsPerDay: mealsPerDay,
		totalPrice:  totalPrice,
		startDate:   startDate,
		status:      status,
		addons:      addons,
		mealTypes:   mealTypes,
		notes:       notes,
		createdAt:   createdAt,
	}, nil
}

func (o *Order) ID() uint                                { return o.id }
func (o *Order) UserID() uint                            { return o.userID }
func (o *Order) Protein() string                         { return o.protein }
func (o *Order) Days() int                               { return o.days }
func (o *Order) MealsPerDay() int                        { return o.mealsPerDay }
func (o *Order) TotalPrice() int                         { return o.totalPrice }
func (o *Order) StartDate() time.Time                    { return o.startDate }
func (o *Order) Status() valueobjects.OrderStatus        { return o.status }
func (o *Order) Addons() map[uint]pricing.AddonSelection { return o.addons }
func (o *Order) MealTypes() []valueobjects.MealType      { return o.mealTypes }
func (o *Order) Notes() string                           { return o.notes }
func (o *Order) CreatedAt() time.Time                    { return o.createdAt }

// SetID sets the ID after insertion. Persistence layer use only.
func (o *Order) SetID(id uint) error {
	if o.id != 0 {
		return fmt.Errorf("order ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("order ID cannot be zero")
	}
	o.id = id
	return nil
}
