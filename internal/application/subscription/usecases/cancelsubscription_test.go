package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thali/internal/application/testutil"
	"thali/internal/domain/subscription"
	vo "thali/internal/domain/subscription/valueobjects"
	"thali/internal/shared/biztime"
	"thali/internal/shared/errors"
	"thali/internal/shared/logger"
)

func TestCancelSubscription_Success(t *testing.T) {
	subRepo := testutil.NewMockSubscriptionRepository()
	sub := newTestSubscription(t, 7, 12)
	subRepo.Add(sub)

	uc := NewCancelSubscriptionUseCase(testutil.NewTxManager(t), subRepo, logger.NewNop())
	result, err := uc.Execute(context.Background(), CancelSubscriptionCommand{
		SubscriptionID: sub.ID(),
		UserID:         7,
		Reason:         "moving away",
	})
	require.NoError(t, err)
	assert.Equal(t, vo.StatusCancelled, result.Status())
	require.NotNil(t, result.CancellationReason())
	assert.Equal(t, "moving away", *result.CancellationReason())
}

func TestCancelSubscription_EmptyReasonDefaults(t *testing.T) {
	subRepo := testutil.NewMockSubscriptionRepository()
	sub := newTestSubscription(t, 7, 12)
	subRepo.Add(sub)

	uc := NewCancelSubscriptionUseCase(testutil.NewTxManager(t), subRepo, logger.NewNop())
	result, err := uc.Execute(context.Background(), CancelSubscriptionCommand{
		SubscriptionID: sub.ID(),
		UserID:         7,
	})
	require.NoError(t, err)
	require.NotNil(t, result.CancellationReason())
	assert.Equal(t, subscription.DefaultCancellationReason, *result.CancellationReason())
}

func TestCancelSubscription_ReasonIsSanitized(t *testing.T) {
	subRepo := testutil.NewMockSubscriptionRepository()
	sub := newTestSubscription(t, 7, 12)
	subRepo.Add(sub)

	uc := NewCancelSubscriptionUseCase(testutil.NewTxManager(t), subRepo, logger.NewNop())
	result, err := uc.Execute(context.Background(), CancelSubscriptionCommand{
		SubscriptionID: sub.ID(),
		UserID:         7,
		Reason:         `<script>alert("x")</script>too spicy`,
	})
	require.NoError(t, err)
	require.NotNil(t, result.CancellationReason())
	assert.NotContains(t, *result.CancellationReason(), "<script>")
	assert.Contains(t, *result.CancellationReason(), "too spicy")
}

func TestCancelSubscription_ShortPlan_Rejected(t *testing.T) {
	subRepo := testutil.NewMockSubscriptionRepository()
	// Exactly six days: at the boundary, cancellation is refused.
	sub := newTestSubscription(t, 7, 6)
	subRepo.Add(sub)

	uc := NewCancelSubscriptionUseCase(testutil.NewTxManager(t), subRepo, logger.NewNop())
	_, err := uc.Execute(context.Background(), CancelSubscriptionCommand{
		SubscriptionID: sub.ID(),
		UserID:         7,
		Reason:         "boundary",
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, vo.StatusActive, sub.Status())
}

func TestCancelSubscription_SevenDayPlan_Allowed(t *testing.T) {
	subRepo := testutil.NewMockSubscriptionRepository()
	sub := newTestSubscription(t, 7, 7)
	subRepo.Add(sub)

	uc := NewCancelSubscriptionUseCase(testutil.NewTxManager(t), subRepo, logger.NewNop())
	result, err := uc.Execute(context.Background(), CancelSubscriptionCommand{
		SubscriptionID: sub.ID(),
		UserID:         7,
		Reason:         "boundary",
	})
	require.NoError(t, err)
	assert.Equal(t, vo.StatusCancelled, result.Status())
}

func TestCancelSubscription_AlreadyCancelled_Conflict(t *testing.T) {
	subRepo := testutil.NewMockSubscriptionRepository()
	sub := newTestSubscription(t, 7, 12)
	require.NoError(t, sub.Cancel("first", biztime.NowUTC()))
	subRepo.Add(sub)

	uc := NewCancelSubscriptionUseCase(testutil.NewTxManager(t), subRepo, logger.NewNop())
	_, err := uc.Execute(context.Background(), CancelSubscriptionCommand{
		SubscriptionID: sub.ID(),
		UserID:         7,
		Reason:         "second",
	})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	// The first recorded reason survives.
	assert.Equal(t, "first", *sub.CancellationReason())
}
