package usecases

import (
	"context"
	"fmt"

	"thali/internal/domain/subscription"
	"thali/internal/shared/logger"
)

// ListSubscriptionsCommand filters the subscription listing.
type ListSubscriptionsCommand struct {
	UserID   *uint
	Status   *string
	Page     int
	PageSize int
}

// ListSubscriptionsResult carries one page plus the total match count.
type ListSubscriptionsResult struct {
	Subscriptions []*subscription.Subscription
	Total         int64
}

type ListSubscriptionsUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewListSubscriptionsUseCase(subscriptionRepo subscription.Repository, log logger.Interface) *ListSubscriptionsUseCase {
	return &ListSubscriptionsUseCase{subscriptionRepo: subscriptionRepo, logger: log}
}

func (uc *ListSubscriptionsUseCase) Execute(ctx context.Context, cmd ListSubscriptionsCommand) (*ListSubscriptionsResult, error) {
	subs, total, err := uc.subscriptionRepo.List(ctx, subscription.Filter{
		UserID:   cmd.UserID,
		Status:   cmd.Status,
		Page:     cmd.Page,
		PageSize: cmd.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list subscriptions", "error", err)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return &ListSubscriptionsResult{Subscriptions: subs, Total: total}, nil
}
