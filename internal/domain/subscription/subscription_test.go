package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thali/internal/domain/order"
	ordervo "thali/internal/domain/order/valueobjects"
	vo "thali/internal/domain/subscription/valueobjects"
)

// --- helpers ---

func newOrderWithDays(t *testing.T, days int) *order.Order {
	t.Helper()
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	o, err := order.NewOrder(10, "CHICKEN", days, []ordervo.MealType{ordervo.MealLunch, ordervo.MealDinner}, 3792, start, nil, "")
	require.NoError(t, err)
	require.NoError(t, o.SetID(1))
	return o
}

func newActiveSubscription(t *testing.T, days int) *Subscription {
	t.Helper()
	sub, err := NewFromOrder(newOrderWithDays(t, days))
	require.NoError(t, err)
	require.NoError(t, sub.SetID(1))
	return sub
}

// =====================================================================
// NewFromOrder
// =====================================================================

func TestNewFromOrder_CopiesPlan(t *testing.T) {
	o := newOrderWithDays(t, 12)
	sub, err := NewFromOrder(o)

	require.NoError(t, err)
	assert.Equal(t, vo.StatusActive, sub.Status())
	assert.Equal(t, o.UserID(), sub.UserID())
	assert.Equal(t, o.ID(), sub.OrderID())
	assert.Equal(t, "CHICKEN", sub.Protein())
	assert.Equal(t, 2, sub.MealsPerDay())
	assert.Equal(t, 12, sub.DaysRemaining())
	assert.Equal(t, o.StartDate().AddDate(0, 0, 12), sub.EndDate())
	assert.Nil(t, sub.LastPausedAt())
	assert.Nil(t, sub.CancellationReason())
}

func TestNewFromOrder_PauseEntitlement(t *testing.T) {
	tests := []struct {
		name string
		days int
		want int
	}{
		{"short plan gets none", 5, 0},
		{"seven days is still short", 7, 0},
		{"eight days earns credits", 8, 2},
		{"long plan earns credits", 30, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub, err := NewFromOrder(newOrderWithDays(t, tt.days))
			require.NoError(t, err)
			assert.Equal(t, tt.want, sub.PausesRemaining())
		})
	}
}

// =====================================================================
// Pause / Resume
// =====================================================================

func TestPause_SpendsCredit(t *testing.T) {
	sub := newActiveSubscription(t, 12)
	now := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)

	require.NoError(t, sub.Pause(now))

	assert.Equal(t, vo.StatusPaused, sub.Status())
	assert.Equal(t, 1, sub.PausesRemaining())
	require.NotNil(t, sub.LastPausedAt())
	assert.Equal(t, now, *sub.LastPausedAt())
}

func TestPause_RejectedWhenExhausted(t *testing.T) {
	sub := newActiveSubscription(t, 12)
	now := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)

	// Spend both credits.
	require.NoError(t, sub.Pause(now))
	_, err := sub.Resume(now.Add(time.Hour))
	require.NoError(t, err)
	require.NoError(t, sub.Pause(now.Add(2*time.Hour)))
	_, err = sub.Resume(now.Add(3*time.Hour))
	require.NoError(t, err)
	require.Equal(t, 0, sub.PausesRemaining())

	endBefore := sub.EndDate()
	err = sub.Pause(now.Add(4 * time.Hour))

	assert.ErrorIs(t, err, ErrNoPausesRemaining)
	assert.Equal(t, vo.StatusActive, sub.Status(), "state unchanged after rejection")
	assert.Equal(t, 0, sub.PausesRemaining())
	assert.Equal(t, endBefore, sub.EndDate())
}

func TestPause_RejectedForShortPlan(t *testing.T) {
	sub := newActiveSubscription(t, 5)
	err := sub.Pause(time.Now().UTC())
	assert.ErrorIs(t, err, ErrNoPausesRemaining)
}

func TestResume_DriftExtendsEndDate(t *testing.T) {
	tests := []struct {
		name      string
		pauseFor  time.Duration
		wantDrift int
	}{
		{"instant resume", 0, 0},
		{"exactly one day", 24 * time.Hour, 1},
		{"day and a half rounds up", 36 * time.Hour, 2},
		{"thirty days", 30 * 24 * time.Hour, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := newActiveSubscription(t, 12)
			pausedAt := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)
			require.NoError(t, sub.Pause(pausedAt))

			endBefore := sub.EndDate()
			rec, err := sub.Resume(pausedAt.Add(tt.pauseFor))

			require.NoError(t, err)
			assert.Equal(t, endBefore.AddDate(0, 0, tt.wantDrift), sub.EndDate())
			assert.Equal(t, vo.StatusActive, sub.Status())
			assert.Nil(t, sub.LastPausedAt())
			assert.Equal(t, pausedAt, rec.StartDate)
			assert.Equal(t, pausedAt.Add(tt.pauseFor), rec.EndDate)
		})
	}
}

func TestResume_RejectedWhenActive(t *testing.T) {
	sub := newActiveSubscription(t, 12)
	_, err := sub.Resume(time.Now().UTC())
	assert.Error(t, err)
}

func TestToggle_RejectedWhenCancelled(t *testing.T) {
	sub := newActiveSubscription(t, 12)
	now := time.Now().UTC()
	require.NoError(t, sub.Cancel("moving away", now))

	assert.ErrorIs(t, sub.Pause(now), ErrNotToggleable)
	_, err := sub.Resume(now)
	assert.ErrorIs(t, err, ErrNotToggleable)
}

// =====================================================================
// Cancel
// =====================================================================

func TestCancel_BoundaryAtSixDays(t *testing.T) {
	now := time.Now().UTC()

	six := newActiveSubscription(t, 6)
	assert.ErrorIs(t, six.Cancel("too short", now), ErrCancelTooShort)
	assert.Equal(t, vo.StatusActive, six.Status())

	seven := newActiveSubscription(t, 7)
	require.NoError(t, seven.Cancel("long enough", now))
	assert.Equal(t, vo.StatusCancelled, seven.Status())
}

func TestCancel_DefaultReason(t *testing.T) {
	sub := newActiveSubscription(t, 10)
	require.NoError(t, sub.Cancel("", time.Now().UTC()))
	require.NotNil(t, sub.CancellationReason())
	assert.Equal(t, DefaultCancellationReason, *sub.CancellationReason())
}

func TestCancel_Irreversible(t *testing.T) {
	sub := newActiveSubscription(t, 10)
	now := time.Now().UTC()
	require.NoError(t, sub.Cancel("reason", now))

	assert.ErrorIs(t, sub.Cancel("again", now), ErrAlreadyCancelled)
	assert.Error(t, sub.MarkAsExpired(now))
}

func TestCancel_AllowedWhilePaused(t *testing.T) {
	sub := newActiveSubscription(t, 10)
	now := time.Now().UTC()
	require.NoError(t, sub.Pause(now))
	require.NoError(t, sub.Cancel("while paused", now.Add(time.Hour)))
	assert.Equal(t, vo.StatusCancelled, sub.Status())
}

// =====================================================================
// Reconstruct
// =====================================================================

func TestReconstruct_PausedNeedsLastPausedAt(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	params := ReconstructParams{
		ID:        1,
		OrderID:   1,
		UserID:    10,
		Status:    vo.StatusPaused,
		Protein:   "PANEER",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 10),
		Version:   1,
		CreatedAt: start,
		UpdatedAt: start,
	}

	_, err := Reconstruct(params)
	assert.Error(t, err, "PAUSED without lastPausedAt violates the invariant")

	pausedAt := start.AddDate(0, 0, 2)
	params.LastPausedAt = &pausedAt
	sub, err := Reconstruct(params)
	require.NoError(t, err)
	assert.Equal(t, vo.StatusPaused, sub.Status())
}

func TestReconstruct_RejectsNegativePauses(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err := Reconstruct(ReconstructParams{
		ID:              1,
		OrderID:         1,
		UserID:          10,
		Status:          vo.StatusActive,
		StartDate:       start,
		EndDate:         start.AddDate(0, 0, 10),
		PausesRemaining: -1,
		Version:         1,
	})
	assert.Error(t, err)
}

func TestPlanDurationDays_GrowsWithDrift(t *testing.T) {
	sub := newActiveSubscription(t, 10)
	require.Equal(t, 10, sub.PlanDurationDays())

	pausedAt := time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC)
	require.NoError(t, sub.Pause(pausedAt))
	_, err := sub.Resume(pausedAt.Add(48 * time.Hour))
	require.NoError(t, err)

	assert.Equal(t, 12, sub.PlanDurationDays())
}
