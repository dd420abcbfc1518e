package subscription

import "errors"

var (
	// ErrNoPausesRemaining rejects a pause once the entitlement is spent.
	ErrNoPausesRemaining = errors.New("no pauses remaining")
	// ErrNotToggleable rejects pause/resume on cancelled or expired plans.
	ErrNotToggleable = errors.New("subscription cannot be paused or resumed")
	// ErrCancelTooShort rejects cancellation of plans of six days or less.
	ErrCancelTooShort = errors.New("cancellation only available for plans longer than 6 days")
	// ErrAlreadyCancelled rejects transitions out of CANCELLED.
	ErrAlreadyCancelled = errors.New("subscription is already cancelled")
)
