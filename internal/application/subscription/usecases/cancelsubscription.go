package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"thali/internal/domain/subscription"
	"thali/internal/shared/biztime"
	"thali/internal/shared/db"
	"thali/internal/shared/errors"
	"thali/internal/shared/logger"
	"thali/internal/shared/utils"
)

// CancelSubscriptionCommand terminates a subscription for good.
type CancelSubscriptionCommand struct {
	SubscriptionID uint
	UserID         uint
	IsAdmin        bool
	Reason         string
}

// CancelSubscriptionUseCase cancels a subscription under a row lock. Only
// plans longer than six days qualify; the transition is irreversible.
type CancelSubscriptionUseCase struct {
	txManager        *db.TransactionManager
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewCancelSubscriptionUseCase(
	txManager *db.TransactionManager,
	subscriptionRepo subscription.Repository,
	log logger.Interface,
) *CancelSubscriptionUseCase {
	return &CancelSubscriptionUseCase{
		txManager:        txManager,
		subscriptionRepo: subscriptionRepo,
		logger:           log,
	}
}

func (uc *CancelSubscriptionUseCase) Execute(ctx context.Context, cmd CancelSubscriptionCommand) (*subscription.Subscription, error) {
	var result *subscription.Subscription
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		sub, err := uc.subscriptionRepo.GetByIDForUpdate(txCtx, cmd.SubscriptionID)
		if err != nil {
			return fmt.Errorf("failed to get subscription: %w", err)
		}
		if sub == nil {
			return errors.NewNotFoundError("subscription not found")
		}
		if !cmd.IsAdmin && !sub.BelongsTo(cmd.UserID) {
			return errors.NewForbiddenError("subscription belongs to another user")
		}

		reason := utils.SanitizeText(cmd.Reason)
		if err := sub.Cancel(reason, biztime.NowUTC()); err != nil {
			return mapCancelError(err, sub)
		}

		if err := uc.subscriptionRepo.Update(txCtx, sub); err != nil {
			return fmt.Errorf("failed to update subscription: %w", err)
		}

		result = sub
		return nil
	})
	if err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("subscription cancellation failed",
				"error", err, "subscription_id", cmd.SubscriptionID, "user_id", cmd.UserID)
		}
		return nil, err
	}

	uc.logger.Infow("subscription cancelled",
		"subscription_id", result.ID(),
		"user_id", cmd.UserID,
		"reason", derefOrDefault(result.CancellationReason()))

	return result, nil
}

func mapCancelError(err error, sub *subscription.Subscription) error {
	switch {
	case stderrors.Is(err, subscription.ErrCancelTooShort):
		return errors.NewValidationError(
			fmt.Sprintf("plans of %d days cannot be cancelled, minimum is 7", sub.PlanDurationDays()))
	case stderrors.Is(err, subscription.ErrAlreadyCancelled):
		return errors.NewConflictError("subscription is already cancelled")
	default:
		return errors.NewConflictError(err.Error())
	}
}

func derefOrDefault(s *string) string {
	if s == nil {
		return subscription.DefaultCancellationReason
	}
	return *s
}
