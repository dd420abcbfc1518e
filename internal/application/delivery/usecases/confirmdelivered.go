package usecases

import (
	"context"
	"fmt"
	"time"

	"thali/internal/domain/delivery"
	"thali/internal/domain/geo"
	"thali/internal/shared/biztime"
	"thali/internal/shared/db"
	"thali/internal/shared/errors"
	"thali/internal/shared/logger"
)

// ConfirmDeliveredCommand completes a subscription-day delivery, capturing
// the drop-off coordinates.
type ConfirmDeliveredCommand struct {
	SubscriptionID uint
	AgentID        uint
	Latitude       float64
	Longitude      float64
	Day            time.Time
}

// ConfirmDeliveredUseCase closes the day's ledger row. DELIVERED is
// terminal; a second confirmation comes back as Conflict.
type ConfirmDeliveredUseCase struct {
	txManager    *db.TransactionManager
	deliveryRepo delivery.Repository
	logger       logger.Interface
}

func NewConfirmDeliveredUseCase(
	txManager *db.TransactionManager,
	deliveryRepo delivery.Repository,
	log logger.Interface,
) *ConfirmDeliveredUseCase {
	return &ConfirmDeliveredUseCase{
		txManager:    txManager,
		deliveryRepo: deliveryRepo,
		logger:       log,
	}
}

func (uc *ConfirmDeliveredUseCase) Execute(ctx context.Context, cmd ConfirmDeliveredCommand) (*delivery.Log, error) {
	point := geo.Point{Latitude: cmd.Latitude, Longitude: cmd.Longitude}
	if err := point.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

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

		if err := log.ConfirmDelivered(cmd.AgentID, cmd.Latitude, cmd.Longitude, biztime.NowUTC()); err != nil {
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
			uc.logger.Errorw("confirm delivery failed",
				"error", err, "subscription_id", cmd.SubscriptionID, "agent_id", cmd.AgentID)
		}
		return nil, err
	}

	uc.logger.Infow("delivery confirmed",
		"delivery_log_id", result.ID(),
		"subscription_id", cmd.SubscriptionID,
		"agent_id", cmd.AgentID,
		"latitude", cmd.Latitude,
		"longitude", cmd.Longitude)

	return result, nil
}
