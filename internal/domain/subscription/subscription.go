// Package subscription holds the live entitlement derived from an order:
// the pause/resume/cancel state machine with its entitlement counters and
// end-date drift arithmetic.
package subscription

import (
	"fmt"
	"time"

	"thali/internal/domain/order"
	"thali/internal/domain/order/valueobjects"
	"thali/internal/domain/pricing"
	"thali/internal/shared/biztime"
	vo "thali/internal/domain/subscription/valueobjects"
)

const (
	// minCancellableDays is the plan length (exclusive) below which
	// cancellation is refused.
	minCancellableDays = 6
	// pauseEntitlementThreshold: plans longer than this many days get
	// pause credits.
	pauseEntitlementThreshold = 7
	// pauseEntitlement is the number of pause credits for eligible plans.
	pauseEntitlement = 2
)

// DefaultCancellationReason is recorded when the customer gives none.
const DefaultCancellationReason = "No reason provided"

// Subscription is the aggregate root for a customer's live meal plan.
// endDate only ever moves forward: resume extends it by the drift days and
// nothing else mutates it.
type Subscription struct {
	id                 uint
	orderID            uint
	userID             uint
	status             vo.SubscriptionStatus
	protein            string
	mealsPerDay        int
	mealTypes          []valueobjects.MealType
	addons             map[uint]pricing.AddonSelection
	startDate          time.Time
	endDate            time.Time
	daysRemaining      int
	pausesRemaining    int
	lastPausedAt       *time.Time
	cancellationReason *string
	version            int
	createdAt          time.Time
	updatedAt          time.Time
}

// NewFromOrder derives the subscription an order entitles the customer to.
// Plans longer than seven days carry two pause credits, shorter plans none.
func NewFromOrder(o *order.Order) (*Subscription, error) {
	if o == nil {
		return nil, fmt.Errorf("order is required")
	}
	if o.UserID() == 0 {
		return nil, fmt.Errorf("order has no user")
	}

	pauses := 0
	if o.Days() > pauseEntitlementThreshold {
		pauses = pauseEntitlement
	}

	now := biztime.NowUTC()
	return &Subscription{
		orderID:         o.ID(),
		userID:          o.UserID(),
		status:          vo.StatusActive,
		protein:         o.Protein(),
		mealsPerDay:     o.MealsPerDay(),
		mealTypes:       o.MealTypes(),
		addons:          o.Addons(),
		startDate:       o.StartDate(),
		endDate:         o.StartDate().AddDate(0, 0, o.Days()),
		daysRemaining:   o.Days(),
		pausesRemaining: pauses,
		version:         1,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// ReconstructParams carries a persisted subscription's state.
type ReconstructParams struct {
	ID                 uint
	OrderID            uint
	UserID             uint
	Status             vo.SubscriptionStatus
	Protein            string
	MealsPerDay        int
	MealTypes          []valueobjects.MealType
	Addons             map[uint]pricing.AddonSelection
	StartDate          time.Time
	EndDate            time.Time
	DaysRemaining      int
	PausesRemaining    int
	LastPausedAt       *time.Time
	CancellationReason *string
	Version            int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Reconstruct rebuilds a subscription from persistence, enforcing the
// structural invariants.
func Reconstruct(p ReconstructParams) (*Subscription, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if p.OrderID == 0 {
		return nil, fmt.Errorf("order ID is required")
	}
	if p.UserID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !vo.ValidStatuses[p.Status] {
		return nil, fmt.Errorf("invalid subscription status: %s", p.Status)
	}
	if p.PausesRemaining < 0 {
		return nil, fmt.Errorf("pauses remaining cannot be negative")
	}
	if (p.Status == vo.StatusPaused) != (p.LastPausedAt != nil) {
		return nil, fmt.Errorf("lastPausedAt must be set exactly when status is PAUSED")
	}
	if p.Addons == nil {
		p.Addons = make(map[uint]pricing.AddonSelection)
	}

	return &Subscription{
		id:                 p.ID,
		orderID:            p.OrderID,
		userID:             p.UserID,
		status:             p.Status,
		protein:            p.Protein,
		mealsPerDay:        p.MealsPerDay,
		mealTypes:          p.MealTypes,
		addons:             p.Addons,
		startDate:          p.StartDate,
		endDate:            p.EndDate,
		daysRemaining:      p.DaysRemaining,
		pausesRemaining:    p.PausesRemaining,
		lastPausedAt:       p.LastPausedAt,
		cancellationReason: p.CancellationReason,
		version:            p.Version,
		createdAt:          p.CreatedAt,
		updatedAt:          p.UpdatedAt,
	}, nil
}

func (s *Subscription) ID() uint                                { return s.id }
func (s *Subscription) OrderID() uint                           { return s.orderID }
func (s *Subscription) UserID() uint                            { return s.userID }
func (s *Subscription) Status() vo.SubscriptionStatus           { return s.status }
func (s *Subscription) Protein() string                         { return s.protein }
func (s *Subscription) MealsPerDay() int                        { return s.mealsPerDay }
func (s *Subscription) MealTypes() []valueobjects.MealType      { return s.mealTypes }
func (s *Subscription) Addons() map[uint]pricing.AddonSelection { return s.addons }
func (s *Subscription) StartDate() time.Time                    { return s.startDate }
func (s *Subscription) EndDate() time.Time                      { return s.endDate }
func (s *Subscription) DaysRemaining() int                      { return s.daysRemaining }
func (s *Subscription) PausesRemaining() int                    { return s.pausesRemaining }
func (s *Subscription) LastPausedAt() *time.Time                { return s.lastPausedAt }
func (s *Subscription) CancellationReason() *string             { return s.cancellationReason }
func (s *Subscription) Version() int                            { return s.version }
func (s *Subscription) CreatedAt() time.Time                    { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time                    { return s.updatedAt }

// SetID sets the ID after insertion. Persistence layer use only.
func (s *Subscription) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = id
	return nil
}

// PlanDurationDays is the total plan length in whole days, partial days
// rounded up. Grows as resumes extend the end date.
func (s *Subscription) PlanDurationDays() int {
	return biztime.WholeDaysCeil(s.endDate.Sub(s.startDate))
}

// Pause suspends an active subscription, spending one pause credit.
func (s *Subscription) Pause(now time.Time) error {
	if !s.status.IsToggleable() {
		return fmt.Errorf("%w: status is %s", ErrNotToggleable, s.status)
	}
	if s.status == vo.StatusPaused {
		return fmt.Errorf("subscription is already paused")
	}
	if s.pausesRemaining <= 0 {
		return ErrNoPausesRemaining
	}
	if !s.status.CanTransitionTo(vo.StatusPaused) {
		return fmt.Errorf("invalid status transition from %s to paused", s.status)
	}

	s.status = vo.StatusPaused
	s.lastPausedAt = &now
	s.pausesRemaining--
	s.touch(now)
	return nil
}

// PauseRecord is the audit slice of one completed pause/resume cycle.
type PauseRecord struct {
	SubscriptionID uint
	StartDate      time.Time
	EndDate        time.Time
}

// Resume reactivates a paused subscription. The time spent paused is
// converted to whole days (partial days round up) and added to the end
// date, so paused days are never charged against the entitlement. Returns
// the audit record of the completed pause cycle.
func (s *Subscription) Resume(now time.Time) (PauseRecord, error) {
	if !s.status.IsToggleable() {
		return PauseRecord{}, fmt.Errorf("%w: status is %s", ErrNotToggleable, s.status)
	}
	if s.status != vo.StatusPaused || s.lastPausedAt == nil {
		return PauseRecord{}, fmt.Errorf("subscription is not paused")
	}

	pausedAt := *s.lastPausedAt
	driftDays := biztime.WholeDaysCeil(now.Sub(pausedAt))

	s.endDate = s.endDate.AddDate(0, 0, driftDays)
	s.status = vo.StatusActive
	s.lastPausedAt = nil
	s.touch(now)

	return PauseRecord{
		SubscriptionID: s.id,
		StartDate:      pausedAt,
		EndDate:        now,
	}, nil
}

// Cancel terminates the subscription. Only plans longer than six days may
// be cancelled; the transition is irreversible.
func (s *Subscription) Cancel(reason string, now time.Time) error {
	if s.status == vo.StatusCancelled {
		return ErrAlreadyCancelled
	}
	if !s.status.CanTransitionTo(vo.StatusCancelled) {
		return fmt.Errorf("cannot cancel subscription with status %s", s.status)
	}
	if s.PlanDurationDays() <= minCancellableDays {
		return fmt.Errorf("%w: plan duration is %d days", ErrCancelTooShort, s.PlanDurationDays())
	}

	if reason == "" {
		reason = DefaultCancellationReason
	}
	s.status = vo.StatusCancelled
	s.cancellationReason = &reason
	s.touch(now)
	return nil
}

// MarkAsExpired flags a lapsed subscription. Reserved for a scheduled
// expiry job; idempotent.
func (s *Subscription) MarkAsExpired(now time.Time) error {
	if s.status == vo.StatusExpired {
		return nil
	}
	if !s.status.CanTransitionTo(vo.StatusExpired) {
		return fmt.Errorf("cannot expire subscription with status %s", s.status)
	}
	s.status = vo.StatusExpired
	s.touch(now)
	return nil
}

// BelongsTo reports whether the subscription is owned by userID.
func (s *Subscription) BelongsTo(userID uint) bool {
	return s.userID == userID
}

func (s *Subscription) touch(now time.Time) {
	s.updatedAt = now
	s.version++
}
