package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thali/internal/application/testutil"
	ordervo "thali/internal/domain/order/valueobjects"
	"thali/internal/domain/subscription"
	vo "thali/internal/domain/subscription/valueobjects"
	"thali/internal/shared/biztime"
	"thali/internal/shared/logger"
)

func reconstructWithStatus(t *testing.T, id uint, status vo.SubscriptionStatus, endedAgo time.Duration) *subscription.Subscription {
	t.Helper()
	now := biztime.NowUTC()
	end := now.Add(-endedAgo)
	sub, err := subscription.Reconstruct(subscription.ReconstructParams{
		ID:              id,
		OrderID:         id,
		UserID:          7,
		Status:          status,
		Protein:         "CHICKEN",
		MealsPerDay:     1,
		MealTypes:       []ordervo.MealType{ordervo.MealLunch},
		StartDate:       end.AddDate(0, 0, -12),
		EndDate:         end,
		DaysRemaining:   0,
		PausesRemaining: 2,
		Version:         1,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	require.NoError(t, err)
	return sub
}

func TestExpireSubscriptions_MarksOnlyLapsedActive(t *testing.T) {
	subRepo := testutil.NewMockSubscriptionRepository()
	lapsed := reconstructWithStatus(t, 50, vo.StatusActive, 48*time.Hour)
	subRepo.Add(lapsed)
	current := newTestSubscription(t, 7, 12)
	subRepo.Add(current)

	uc := NewExpireSubscriptionsUseCase(subRepo, logger.NewNop())
	marked, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, marked)

	got, err := subRepo.GetByID(context.Background(), lapsed.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusExpired, got.Status())

	got, err = subRepo.GetByID(context.Background(), current.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusActive, got.Status())
}

func TestExpireSubscriptions_NothingToDo(t *testing.T) {
	subRepo := testutil.NewMockSubscriptionRepository()
	subRepo.Add(newTestSubscription(t, 7, 12))

	uc := NewExpireSubscriptionsUseCase(subRepo, logger.NewNop())
	marked, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, marked)
}

func TestExpireSubscriptions_SkipsCancelled(t *testing.T) {
	subRepo := testutil.NewMockSubscriptionRepository()
	cancelled := reconstructWithStatus(t, 50, vo.StatusCancelled, 48*time.Hour)
	subRepo.Add(cancelled)

	uc := NewExpireSubscriptionsUseCase(subRepo, logger.NewNop())
	marked, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, marked)

	got, err := subRepo.GetByID(context.Background(), cancelled.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusCancelled, got.Status())
}
