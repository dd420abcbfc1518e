package usecases

import (
	"context"
	"fmt"
	"time"

	"thali/internal/domain/delivery"
	"thali/internal/shared/biztime"
	"thali/internal/shared/db"
	"thali/internal/shared/errors"
	"thali/internal/shared/logger"
)

// StartDeliveryCommand marks the assigned agent as en route.
type StartDeliveryCommand struct {
	SubscriptionID uint
	AgentID        uint
	Day            time.Time
}

// StartDeliveryUseCase moves an assigned subscription-day row to
// OUT_FOR_DELIVERY. Only the assigned agent may start it.
type StartDeliveryUseCase struct {
	txManager    *db.TransactionManager
	deliveryRepo delivery.Repository
	logger       logger.Interface
}

func NewStartDeliveryUseCase(
	txManager *db.TransactionManager,
	deliveryRepo delivery.Repository,
	log logger.Interface,
) *StartDeliveryUseCase {
	return &StartDeliveryUseCase{
		txManager:    txManager,
		deliveryRepo: deliveryRepo,
		logger:       log,
	}
}

func (uc *StartDeliveryUseCase) Execute(ctx context.Context, cmd StartDeliveryCommand) (*delivery.Log, error) {
	day := cmd.Day
	if day.IsZero() {
		day = biztime.DateOf(biztime.NowUTC())
	}

	var result *delivery.Log
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		log, err := uc.deliveryRepo.GetForDay(txCtx, cmd.SubscriptionID, day)
		if err != nil {
			return fmt.Errorf("failed to get delivery log: %w", err)
		}
		if log == nil {
			return errors.NewNotFoundError("no delivery scheduled for this day")
		}

		if err := log.StartDelivery(cmd.AgentID, biztime.NowUTC()); err != nil {
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
			uc.logger.Errorw("start delivery failed",
				"error", err, "subscription_id", cmd.SubscriptionID, "agent_id", cmd.AgentID)
		}
		return nil, err
	}

	uc.logger.Infow("delivery started",
		"delivery_log_id", result.ID(),
		"subscription_id", cmd.SubscriptionID,
		"agent_id", cmd.AgentID)

	return result, nil
}
