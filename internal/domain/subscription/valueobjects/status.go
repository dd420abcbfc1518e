// Package valueobjects holds the subscription context's value types.
package valueobjects

// SubscriptionStatus is the lifecycle state of a subscription.
type SubscriptionStatus string

const (
	StatusActive    SubscriptionStatus = "ACTIVE"
	StatusPaused    SubscriptionStatus = "PAUSED"
	StatusCancelled SubscriptionStatus = "CANCELLED"
	// StatusExpired is reserved for a time-based expiry job; no customer
	// or admin action reaches it.
	StatusExpired SubscriptionStatus = "EXPIRED"
)

func (s SubscriptionStatus) String() string { return string(s) }

// CanTransitionTo consults the transition table. CANCELLED and EXPIRED are
// terminal.
func (s SubscriptionStatus) CanTransitionTo(target SubscriptionStatus) bool {
	transitions := map[SubscriptionStatus][]SubscriptionStatus{
		StatusActive:    {StatusPaused, StatusCancelled, StatusExpired},
		StatusPaused:    {StatusActive, StatusCancelled},
		StatusCancelled: {},
		StatusExpired:   {},
	}

	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsToggleable reports whether the pause/resume toggle applies.
func (s SubscriptionStatus) IsToggleable() bool {
	return s == StatusActive || s == StatusPaused
}

// ValidStatuses enumerates the valid subscription statuses.
var ValidStatuses = map[SubscriptionStatus]bool{
	StatusActive:    true,
	StatusPaused:    true,
	StatusCancelled: true,
	StatusExpired:   true,
}
