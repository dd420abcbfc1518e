package usecases

import (
	"context"
	"fmt"

	"thali/internal/domain/subscription"
	"thali/internal/shared/errors"
	"thali/internal/shared/logger"
)

// GetSubscriptionResult bundles a subscription with its pause history.
type GetSubscriptionResult struct {
	Subscription *subscription.Subscription
	Pauses       []*subscription.Pause
}

// GetSubscriptionUseCase fetches one subscription and its pause audit
// trail, enforcing ownership for non-admin callers.
type GetSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	pauseRepo        subscription.PauseRepository
	logger           logger.Interface
}

func NewGetSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	pauseRepo subscription.PauseRepository,
	log logger.Interface,
) *GetSubscriptionUseCase {
	return &GetSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		pauseRepo:        pauseRepo,
		logger:           log,
	}
}

func (uc *GetSubscriptionUseCase) Execute(ctx context.Context, subscriptionID, requesterID uint, isAdmin bool) (*GetSubscriptionResult, error) {
	sub, err := uc.subscriptionRepo.GetByID(ctx, subscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "subscription_id", subscriptionID)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil, errors.NewNotFoundError("subscription not found")
	}
	if !isAdmin && !sub.BelongsTo(requesterID) {
		return nil, errors.NewForbiddenError("subscription belongs to another user")
	}

	pauses, err := uc.pauseRepo.GetBySubscriptionID(ctx, subscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to list pauses", "error", err, "subscription_id", subscriptionID)
		return nil, fmt.Errorf("failed to list pauses: %w", err)
	}

	return &GetSubscriptionResult{Subscription: sub, Pauses: pauses}, nil
}
