package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thali/internal/application/testutil"
	"thali/internal/domain/order"
	ordervo "thali/internal/domain/order/valueobjects"
	"thali/internal/domain/subscription"
	vo "thali/internal/domain/subscription/valueobjects"
	"thali/internal/shared/biztime"
	"thali/internal/shared/errors"
	"thali/internal/shared/logger"
)

func newTestSubscription(t *testing.T, userID uint, days int) *subscription.Subscription {
	t.Helper()
	o, err := order.NewOrder(
		userID, "CHICKEN", days,
		[]ordervo.MealType{ordervo.MealLunch},
		1000,
		biztime.StartOfDayUTC(biztime.NowUTC()),
		nil, "",
	)
	require.NoError(t, err)
	require.NoError(t, o.SetID(1))

	sub, err := subscription.NewFromOrder(o)
	require.NoError(t, err)
	return sub
}

func newPausedSubscription(t *testing.T, userID uint, days int, pausedAgo time.Duration) *subscription.Subscription {
	t.Helper()
	now := biztime.NowUTC()
	start := biztime.StartOfDayUTC(now)
	pausedAt := now.Add(-pausedAgo)
	sub, err := subscription.Reconstruct(subscription.ReconstructParams{
		ID:              1,
		OrderID:         1,
		UserID:          userID,
		Status:          vo.StatusPaused,
		Protein:         "CHICKEN",
		MealsPerDay:     1,
		MealTypes:       []ordervo.MealType{ordervo.MealLunch},
		StartDate:       start,
		EndDate:         start.AddDate(0, 0, days),
		DaysRemaining:   days,
		PausesRemaining: 1,
		LastPausedAt:    &pausedAt,
		Version:         2,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	require.NoError(t, err)
	return sub
}

func TestToggleSubscription_PauseSpendsCredit(t *testing.T) {
	subRepo := testutil.NewMockSubscriptionRepository()
	pauseRepo := testutil.NewMockPauseRepository()
	sub := newTestSubscription(t, 7, 12)
	subRepo.Add(sub)

	uc := NewToggleSubscriptionUseCase(testutil.NewTxManager(t), subRepo, pauseRepo, logger.NewNop())
	result, err := uc.Execute(context.Background(), ToggleSubscriptionCommand{
		SubscriptionID: sub.ID(),
		UserID:         7,
	})
	require.NoError(t, err)
	assert.Equal(t, vo.StatusPaused, result.Status())
	assert.Equal(t, 1, result.PausesRemaining())
	assert.NotNil(t, result.LastPausedAt())
	// The audit row is only written on resume.
	assert.Equal(t, 0, pauseRepo.Count())
}

func TestToggleSubscription_ResumeExtendsEndDateAndAudits(t *testing.T) {
	subRepo := testutil.NewMockSubscriptionRepository()
	pauseRepo := testutil.NewMockPauseRepository()
	// Paused 36 hours ago: a partial second day, so the drift rounds to 2.
	sub := newPausedSubscription(t, 7, 12, 36*time.Hour)
	subRepo.Add(sub)
	endBefore := sub.EndDate()

	uc := NewToggleSubscriptionUseCase(testutil.NewTxManager(t), subRepo, pauseRepo, logger.NewNop())
	result, err := uc.Execute(context.Background(), ToggleSubscriptionCommand{
		SubscriptionID: sub.ID(),
		UserID:         7,
	})
	require.NoError(t, err)
	assert.Equal(t, vo.StatusActive, result.Status())
	assert.Nil(t, result.LastPausedAt())
	assert.Equal(t, endBefore.AddDate(0, 0, 2), result.EndDate())
	assert.Equal(t, 1, pauseRepo.Count())
}

func TestToggleSubscription_NoPausesRemaining_Conflict(t *testing.T) {
	subRepo := testutil.NewMockSubscriptionRepository()
	// A 5-day plan carries zero pause credits.
	sub := newTestSubscription(t, 7, 5)
	subRepo.Add(sub)

	uc := NewToggleSubscriptionUseCase(testutil.NewTxManager(t), subRepo, testutil.NewMockPauseRepository(), logger.NewNop())
	_, err := uc.Execute(context.Background(), ToggleSubscriptionCommand{
		SubscriptionID: sub.ID(),
		UserID:         7,
	})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	assert.Equal(t, vo.StatusActive, sub.Status())
	assert.Equal(t, 0, sub.PausesRemaining())
}

func TestToggleSubscription_Cancelled_Conflict(t *testing.T) {
	subRepo := testutil.NewMockSubscriptionRepository()
	sub := newTestSubscription(t, 7, 12)
	require.NoError(t, sub.Cancel("moving away", biztime.NowUTC()))
	subRepo.Add(sub)

	uc := NewToggleSubscriptionUseCase(testutil.NewTxManager(t), subRepo, testutil.NewMockPauseRepository(), logger.NewNop())
	_, err := uc.Execute(context.Background(), ToggleSubscriptionCommand{
		SubscriptionID: sub.ID(),
		UserID:         7,
	})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestToggleSubscription_OtherUsersSubscription_Forbidden(t *testing.T) {
	subRepo := testutil.NewMockSubscriptionRepository()
	sub := newTestSubscription(t, 7, 12)
	subRepo.Add(sub)

	uc := NewToggleSubscriptionUseCase(testutil.NewTxManager(t), subRepo, testutil.NewMockPauseRepository(), logger.NewNop())
	_, err := uc.Execute(context.Background(), ToggleSubscriptionCommand{
		SubscriptionID: sub.ID(),
		UserID:         99,
	})
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeForbidden, errors.GetAppError(err).Type)
}

func TestToggleSubscription_NotFound(t *testing.T) {
	uc := NewToggleSubscriptionUseCase(
		testutil.NewTxManager(t),
		testutil.NewMockSubscriptionRepository(),
		testutil.NewMockPauseRepository(),
		logger.NewNop(),
	)
	_, err := uc.Execute(context.Background(), ToggleSubscriptionCommand{SubscriptionID: 42, UserID: 7})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
