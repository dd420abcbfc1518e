package usecases

import (
	"context"
	"fmt"

	"thali/internal/domain/subscription"
	"thali/internal/shared/biztime"
	"thali/internal/shared/logger"
)

// ExpireSubscriptionsUseCase marks lapsed subscriptions EXPIRED. Runs as a
// background job; a failure on one subscription never blocks the rest.
type ExpireSubscriptionsUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewExpireSubscriptionsUseCase(
	subscriptionRepo subscription.Repository,
	log logger.Interface,
) *ExpireSubscriptionsUseCase {
	return &ExpireSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           log,
	}
}

// Execute returns the number of subscriptions marked expired.
func (uc *ExpireSubscriptionsUseCase) Execute(ctx context.Context) (int, error) {
	expiredSubs, err := uc.subscriptionRepo.FindExpiredSubscriptions(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to find expired subscriptions: %w", err)
	}
	if len(expiredSubs) == 0 {
		return 0, nil
	}

	uc.logger.Infow("found expired subscriptions to process", "count", len(expiredSubs))

	now := biztime.NowUTC()
	marked := 0
	for _, sub := range expiredSubs {
		if err := sub.MarkAsExpired(now); err != nil {
			uc.logger.Warnw("failed to mark subscription as expired",
				"subscription_id", sub.ID(),
				"current_status", sub.Status().String(),
				"error", err)
			continue
		}
		if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
			uc.logger.Errorw("failed to update expired subscription",
				"subscription_id", sub.ID(),
				"error", err)
			continue
		}
		marked++
	}

	return marked, nil
}
