package usecases

import (
	"context"
	"fmt"
	"time"

	"thali/internal/domain/delivery"
	"thali/internal/domain/subscription"
	"thali/internal/shared/biztime"
	"thali/internal/shared/errors"
	"thali/internal/shared/logger"
)

// ListDeliveriesUseCase serves the read side of the ledger: the admin day
// view, an agent's route for a day and a subscription's delivery history.
type ListDeliveriesUseCase struct {
	deliveryRepo     delivery.Repository
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewListDeliveriesUseCase(
	deliveryRepo delivery.Repository,
	subscriptionRepo subscription.Repository,
	log logger.Interface,
) *ListDeliveriesUseCase {
	return &ListDeliveriesUseCase{
		deliveryRepo:     deliveryRepo,
		subscriptionRepo: subscriptionRepo,
		logger:           log,
	}
}

// ForDay returns every ledger row on the given business day.
func (uc *ListDeliveriesUseCase) ForDay(ctx context.Context, day time.Time) ([]*delivery.Log, error) {
	if day.IsZero() {
		day = biztime.DateOf(biztime.NowUTC())
	}
	logs, err := uc.deliveryRepo.ListForDay(ctx, day)
	if err != nil {
		uc.logger.Errorw("failed to list deliveries for day", "error", err, "day", day)
		return nil, fmt.Errorf("failed to list deliveries: %w", err)
	}
	return logs, nil
}

// AgentRoute returns the rows assigned to one agent on the given day.
func (uc *ListDeliveriesUseCase) AgentRoute(ctx context.Context, agentID uint, day time.Time) ([]*delivery.Log, error) {
	if day.IsZero() {
		day = biztime.DateOf(biztime.NowUTC())
	}
	logs, err := uc.deliveryRepo.ListByAgentForDay(ctx, agentID, day)
	if err != nil {
		uc.logger.Errorw("failed to list agent route", "error", err, "agent_id", agentID, "day", day)
		return nil, fmt.Errorf("failed to list agent route: %w", err)
	}
	return logs, nil
}

// History returns a subscription's delivery trail, enforcing ownership for
// non-admin callers.
func (uc *ListDeliveriesUseCase) History(ctx context.Context, subscriptionID, requesterID uint, isAdmin bool) ([]*delivery.Log, error) {
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

	logs, err := uc.deliveryRepo.ListBySubscription(ctx, subscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to list delivery history", "error", err, "subscription_id", subscriptionID)
		return nil, fmt.Errorf("failed to list delivery history: %w", err)
	}
	return logs, nil
}
