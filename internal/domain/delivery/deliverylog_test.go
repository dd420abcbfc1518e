package delivery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "thali/internal/domain/delivery/valueobjects"
)

func newPendingLog(t *testing.T) *Log {
	t.Helper()
	l, err := NewForDay(7, time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, l.SetID(1))
	return l
}

func TestNewForDay_NormalizesDayKey(t *testing.T) {
	morning, err := NewForDay(7, time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	evening, err := NewForDay(7, time.Date(2026, 3, 10, 21, 5, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, morning.DeliveryDate(), evening.DeliveryDate(),
		"any instant within the business day maps to the same day key")
	assert.Equal(t, vo.StatusPending, morning.Status())
}

func TestMarkReady(t *testing.T) {
	l := newPendingLog(t)
	now := time.Now().UTC()

	require.NoError(t, l.MarkReady(now))
	assert.Equal(t, vo.StatusReady, l.Status())
	require.NotNil(t, l.DeliveryTime())
}

func TestMarkReady_DoesNotRegressAssignment(t *testing.T) {
	l := newPendingLog(t)
	now := time.Now().UTC()
	require.NoError(t, l.Assign(42, now))

	// Stale mark-ready after assignment is swallowed.
	require.NoError(t, l.MarkReady(now.Add(time.Minute)))
	assert.Equal(t, vo.StatusAssigned, l.Status())
	require.NotNil(t, l.AgentID())
	assert.Equal(t, uint(42), *l.AgentID())
}

func TestAssign_AllowsReassignment(t *testing.T) {
	l := newPendingLog(t)
	now := time.Now().UTC()

	require.NoError(t, l.Assign(42, now))
	require.NoError(t, l.Assign(43, now.Add(time.Minute)))

	assert.Equal(t, vo.StatusAssigned, l.Status())
	assert.Equal(t, uint(43), *l.AgentID())
}

func TestStartDelivery_RequiresAssignment(t *testing.T) {
	l := newPendingLog(t)
	now := time.Now().UTC()

	assert.Error(t, l.StartDelivery(42, now), "cannot start an unassigned delivery")

	require.NoError(t, l.Assign(42, now))
	assert.Error(t, l.StartDelivery(99, now), "wrong agent")
	require.NoError(t, l.StartDelivery(42, now))
	assert.Equal(t, vo.StatusOutForDelivery, l.Status())
}

func TestConfirmDelivered_CapturesCoordinates(t *testing.T) {
	l := newPendingLog(t)
	now := time.Now().UTC()
	require.NoError(t, l.Assign(42, now))

	require.NoError(t, l.ConfirmDelivered(42, 18.6512, 73.8491, now.Add(time.Hour)))

	assert.Equal(t, vo.StatusDelivered, l.Status())
	require.NotNil(t, l.Latitude())
	require.NotNil(t, l.Longitude())
	assert.Equal(t, 18.6512, *l.Latitude())
	assert.Equal(t, 73.8491, *l.Longitude())
}

func TestDelivered_IsTerminal(t *testing.T) {
	l := newPendingLog(t)
	now := time.Now().UTC()
	require.NoError(t, l.ConfirmDelivered(42, 18.65, 73.84, now))

	assert.Error(t, l.MarkReady(now))
	assert.Error(t, l.Assign(43, now))
	assert.Error(t, l.ConfirmDelivered(43, 0, 0, now))
}

func TestDisplayRank_Ordering(t *testing.T) {
	assert.Greater(t, vo.StatusDelivered.DisplayRank(), vo.StatusOutForDelivery.DisplayRank())
	assert.Greater(t, vo.StatusOutForDelivery.DisplayRank(), vo.StatusAssigned.DisplayRank())
	assert.Greater(t, vo.StatusAssigned.DisplayRank(), vo.StatusReady.DisplayRank())
	assert.Greater(t, vo.StatusReady.DisplayRank(), vo.StatusPending.DisplayRank())
}
