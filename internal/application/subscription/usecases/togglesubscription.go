package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"thali/internal/domain/subscription"
	vo "thali/internal/domain/subscription/valueobjects"
	"thali/internal/shared/biztime"
	"thali/internal/shared/db"
	"thali/internal/shared/errors"
	"thali/internal/shared/logger"
)

// ToggleSubscriptionCommand pauses an active subscription or resumes a
// paused one, depending on the current status.
type ToggleSubscriptionCommand struct {
	SubscriptionID uint
	UserID         uint
	IsAdmin        bool
}

// ToggleSubscriptionUseCase flips a subscription between ACTIVE and PAUSED
// under a row lock. Resuming extends the end date by the whole days spent
// paused and writes the pause audit row in the same transaction.
type ToggleSubscriptionUseCase struct {
	txManager        *db.TransactionManager
	subscriptionRepo subscription.Repository
	pauseRepo        subscription.PauseRepository
	logger           logger.Interface
}

func NewToggleSubscriptionUseCase(
	txManager *db.TransactionManager,
	subscriptionRepo subscription.Repository,
	pauseRepo subscription.PauseRepository,
	log logger.Interface,
) *ToggleSubscriptionUseCase {
	return &ToggleSubscriptionUseCase{
		txManager:        txManager,
		subscriptionRepo: subscriptionRepo,
		pauseRepo:        pauseRepo,
		logger:           log,
	}
}

func (uc *ToggleSubscriptionUseCase) Execute(ctx context.Context, cmd ToggleSubscriptionCommand) (*subscription.Subscription, error) {
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

		now := biztime.NowUTC()
		switch sub.Status() {
		case vo.StatusActive:
			if err := sub.Pause(now); err != nil {
				return mapToggleError(err, sub)
			}
		case vo.StatusPaused:
			record, err := sub.Resume(now)
			if err != nil {
				return mapToggleError(err, sub)
			}
			pause, err := subscription.NewPause(record)
			if err != nil {
				return fmt.Errorf("failed to build pause record: %w", err)
			}
			if err := uc.pauseRepo.Create(txCtx, pause); err != nil {
				return fmt.Errorf("failed to record pause: %w", err)
			}
		default:
			return errors.NewConflictError(
				fmt.Sprintf("subscription is %s and cannot be toggled", sub.Status()))
		}

		if err := uc.subscriptionRepo.Update(txCtx, sub); err != nil {
			return fmt.Errorf("failed to update subscription: %w", err)
		}

		result = sub
		return nil
	})
	if err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("subscription toggle failed",
				"error", err, "subscription_id", cmd.SubscriptionID, "user_id", cmd.UserID)
		}
		return nil, err
	}

	uc.logger.Infow("subscription toggled",
		"subscription_id", result.ID(),
		"user_id", cmd.UserID,
		"status", result.Status(),
		"pauses_remaining", result.PausesRemaining(),
		"end_date", result.EndDate())

	return result, nil
}

// mapToggleError translates domain transition failures into API errors.
func mapToggleError(err error, sub *subscription.Subscription) error {
	if stderrors.Is(err, subscription.ErrNoPausesRemaining) {
		return errors.NewConflictError(
			fmt.Sprintf("no pauses remaining on a %d-day plan", sub.PlanDurationDays()))
	}
	return errors.NewConflictError(err.Error())
}
