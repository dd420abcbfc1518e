// Package delivery holds the per-day delivery ledger: at most one log row
// per subscription per calendar day, progressed by admin and agent actions
// and terminal once delivered.
package delivery

import (
	"fmt"
	"time"

	vo "thali/internal/domain/delivery/valueobjects"
	"thali/internal/shared/biztime"
)

// Log is one subscription-day's delivery record. The day key is the
// business-timezone calendar date; a composite unique index on
// (subscription, date) closes the duplicate-row race the day-window query
// alone would leave open.
type Log struct {
	id             uint
	subscriptionID uint
	agentID        *uint
	status         vo.DeliveryStatus
	deliveryDate   time.Time
	deliveryTime   *time.Time
	latitude       *float64
	longitude      *float64
	createdAt      time.Time
	updatedAt      time.Time
}

// NewForDay opens a pending log for the given business day.
func NewForDay(subscriptionID uint, day time.Time) (*Log, error) {
	if subscriptionID == 0 {
		return nil, fmt.Errorf("subscription ID is required")
	}
	now := biztime.NowUTC()
	return &Log{
		subscriptionID: subscriptionID,
		status:         vo.StatusPending,
		deliveryDate:   biztime.DateOf(day),
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructLog rebuilds a delivery log from persistence.
func ReconstructLog(
	id, subscriptionID uint,
	agentID *uint,
	status vo.DeliveryStatus,
	deliveryDate time.Time,
	deliveryTime *time.Time,
	latitude, longitude *float64,
	createdAt, updatedAt time.Time,
) (*Log, error) {
	if id == 0 {
		return nil, fmt.Errorf("delivery log ID cannot be zero")
	}
	if !vo.ValidStatuses[status] {
		return nil, fmt.Errorf("invalid delivery status: %s", status)
	}
	return &Log{
		id:             id,
		subscriptionID: subscriptionID,
		agentID:        agentID,
		status:         status,
		deliveryDate:   deliveryDate,
		deliveryTime:   deliveryTime,
		latitude:       latitude,
		longitude:      longitude,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (l *Log) ID() uint                  { return l.id }
func (l *Log) SubscriptionID() uint      { return l.subscriptionID }
func (l *Log) AgentID() *uint            { return l.agentID }
func (l *Log) Status() vo.DeliveryStatus { return l.status }
func (l *Log) DeliveryDate() time.Time   { return l.deliveryDate }
func (l *Log) DeliveryTime() *time.Time  { return l.deliveryTime }
func (l *Log) Latitude() *float64        { return l.latitude }
func (l *Log) Longitude() *float64       { return l.longitude }
func (l *Log) CreatedAt() time.Time      { return l.createdAt }
func (l *Log) UpdatedAt() time.Time      { return l.updatedAt }

// SetID sets the ID after insertion. Persistence layer use only.
func (l *Log) SetID(id uint) error {
	if l.id != 0 {
		return fmt.Errorf("delivery log ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("delivery log ID cannot be zero")
	}
	l.id = id
	return nil
}

// MarkReady flags the day's meal as prepared. A stale mark-ready arriving
// after assignment is swallowed rather than regressing the status; only a
// delivered day rejects the call outright.
func (l *Log) MarkReady(now time.Time) error {
	if l.status.IsTerminal() {
		return fmt.Errorf("delivery already completed for this day")
	}
	if l.status.DisplayRank() > vo.StatusReady.DisplayRank() {
		return nil
	}
	l.status = vo.StatusReady
	l.deliveryTime = &now
	l.updatedAt = now
	return nil
}

// Assign hands the day's delivery to an agent. Re-assignment before
// completion is allowed; a delivered day is immutable.
func (l *Log) Assign(agentID uint, now time.Time) error {
	if agentID == 0 {
		return fmt.Errorf("agent ID is required")
	}
	if l.status.IsTerminal() {
		return fmt.Errorf("delivery already completed for this day")
	}
	l.status = vo.StatusAssigned
	l.agentID = &agentID
	l.deliveryTime = &now
	l.updatedAt = now
	return nil
}

// StartDelivery marks the assigned agent as en route.
func (l *Log) StartDelivery(agentID uint, now time.Time) error {
	if l.status.IsTerminal() {
		return fmt.Errorf("delivery already completed for this day")
	}
	if l.status != vo.StatusAssigned {
		return fmt.Errorf("delivery must be assigned before it can start, status is %s", l.status)
	}
	if l.agentID == nil || *l.agentID != agentID {
		return fmt.Errorf("delivery is assigned to a different agent")
	}
	l.status = vo.StatusOutForDelivery
	l.updatedAt = now
	return nil
}

// ConfirmDelivered completes the day, capturing the drop-off coordinates
// and the actual delivery time. Terminal; repeated confirmations are
// rejected.
func (l *Log) ConfirmDelivered(agentID uint, latitude, longitude float64, now time.Time) error {
	if agentID == 0 {
		return fmt.Errorf("agent ID is required")
	}
	if l.status.IsTerminal() {
		return fmt.Errorf("delivery already completed for this day")
	}
	l.status = vo.StatusDelivered
	l.agentID = &agentID
	l.latitude = &latitude
	l.longitude = &longitude
	l.deliveryTime = &now
	l.updatedAt = now
	return nil
}
