package subscription

import (
	"fmt"
	"time"

	"thali/internal/shared/biztime"
)

// Pause is the append-only audit row written once per completed
// pause/resume cycle. It is never read back into business logic.
type Pause struct {
	id             uint
	subscriptionID uint
	startDate      time.Time
	endDate        time.Time
	createdAt      time.Time
}

// NewPause records a completed pause cycle.
func NewPause(rec PauseRecord) (*Pause, error) {
	if rec.SubscriptionID == 0 {
		return nil, fmt.Errorf("subscription ID is required")
	}
	if rec.EndDate.Before(rec.StartDate) {
		return nil, fmt.Errorf("pause end cannot precede its start")
	}
	return &Pause{
		subscriptionID: rec.SubscriptionID,
		startDate:      rec.StartDate,
		endDate:        rec.EndDate,
		createdAt:      biztime.NowUTC(),
	}, nil
}

// ReconstructPause rebuilds a pause audit row from persistence.
func ReconstructPause(id, subscriptionID uint, startDate, endDate, createdAt time.Time) *Pause {
	return &Pause{
		id:             id,
		subscriptionID: subscriptionID,
		startDate:      startDate,
		endDate:        endDate,
		createdAt:      createdAt,
	}
}

func (p *Pause) ID() uint             { return p.id }
func (p *Pause) SubscriptionID() uint { return p.subscriptionID }
func (p *Pause) StartDate() time.Time { return p.startDate }
func (p *Pause) EndDate() time.Time   { return p.endDate }
func (p *Pause) CreatedAt() time.Time { return p.createdAt }

// SetID sets the ID after insertion. Persistence layer use only.
func (p *Pause) SetID(id uint) {
	p.id = id
}
