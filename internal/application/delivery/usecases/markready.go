package usecases

import (
	"context"
	"fmt"
	"time"

	"thali/internal/domain/delivery"
	"thali/internal/domain/subscription"
	"thali/internal/shared/biztime"
	"thali/internal/shared/db"
	"thali/internal/shared/errors"
	"thali/internal/shared/logger"
)

// MarkReadyCommand flags a subscription-day's meal as prepared.
type MarkReadyCommand struct {
	SubscriptionID uint
	Day            time.Time
}

// MarkReadyUseCase progresses the subscription-day ledger row to READY. A
// stale call arriving after assignment leaves the row untouched; only a
// delivered day is rejected.
type MarkReadyUseCase struct {
	txManager        *db.TransactionManager
	deliveryRepo     delivery.Repository
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewMarkReadyUseCase(
	txManager *db.TransactionManager,
	deliveryRepo delivery.Repository,
	subscriptionRepo subscription.Repository,
	log logger.Interface,
) *MarkReadyUseCase {
	return &MarkReadyUseCase{
		txManager:        txManager,
		deliveryRepo:     deliveryRepo,
		subscriptionRepo: subscriptionRepo,
		logger:           log,
	}
}

func (uc *MarkReadyUseCase) Execute(ctx context.Context, cmd MarkReadyCommand) (*delivery.Log, error) {
	day := cmd.Day
	if day.IsZero() {
		day = biztime.DateOf(biztime.NowUTC())
	}

	var result *delivery.Log
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		log, err := findOrCreateLog(txCtx, uc.deliveryRepo, uc.subscriptionRepo, cmd.SubscriptionID, day)
		if err != nil {
			return err
		}

		if err := log.MarkReady(biztime.NowUTC()); err != nil {
			return errors.NewConflictError(err.Error())
		}
		if err := uc.deliveryRepo.Update(txCtx, log); err != nil {
			return fmt.Errorf("failed to update delivery log: %w", err)
		}

		result = log
		return nil
	})
	if err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("mark ready failed", "error", err, "subscription_id", cmd.SubscriptionID)
		}
		return nil, err
	}

	uc.logger.Infow("delivery marked ready",
		"delivery_log_id", result.ID(),
		"subscription_id", cmd.SubscriptionID,
		"status", result.Status())

	return result, nil
}
