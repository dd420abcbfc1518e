package usecases

import (
	"context"
	"fmt"
	"time"

	"thali/internal/domain/delivery"
	"thali/internal/domain/subscription"
	subvo "thali/internal/domain/subscription/valueobjects"
	"thali/internal/domain/user"
	"thali/internal/shared/biztime"
	"thali/internal/shared/db"
	"thali/internal/shared/errors"
	"thali/internal/shared/logger"
)

// AssignDeliveryCommand hands today's delivery for a subscription to an
// agent. Day defaults to the current business day when zero.
type AssignDeliveryCommand struct {
	SubscriptionID uint
	AgentID        uint
	Day            time.Time
}

// AssignDeliveryUseCase finds or creates the subscription-day ledger row
// and assigns it to a delivery agent.
type AssignDeliveryUseCase struct {
	txManager        *db.TransactionManager
	deliveryRepo     delivery.Repository
	subscriptionRepo subscription.Repository
	userRepo         user.Repository
	logger           logger.Interface
}

func NewAssignDeliveryUseCase(
	txManager *db.TransactionManager,
	deliveryRepo delivery.Repository,
	subscriptionRepo subscription.Repository,
	userRepo user.Repository,
	log logger.Interface,
) *AssignDeliveryUseCase {
	return &AssignDeliveryUseCase{
		txManager:        txManager,
		deliveryRepo:     deliveryRepo,
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		logger:           log,
	}
}

func (uc *AssignDeliveryUseCase) Execute(ctx context.Context, cmd AssignDeliveryCommand) (*delivery.Log, error) {
	agent, err := uc.userRepo.GetByID(ctx, cmd.AgentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	if agent == nil {
		return nil, errors.NewNotFoundError("delivery agent not found")
	}
	if !agent.IsDeliveryAgent() {
		return nil, errors.NewValidationError(
			fmt.Sprintf("user %d is not a delivery agent", cmd.AgentID))
	}

	day := cmd.Day
	if day.IsZero() {
		day = biztime.DateOf(biztime.NowUTC())
	}

	var result *delivery.Log
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		log, err := findOrCreateLog(txCtx, uc.deliveryRepo, uc.subscriptionRepo, cmd.SubscriptionID, day)
		if err != nil {
			return err
		}

		if err := log.Assign(cmd.AgentID, biztime.NowUTC()); err != nil {
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
			uc.logger.Errorw("delivery assignment failed",
				"error", err, "subscription_id", cmd.SubscriptionID, "agent_id", cmd.AgentID)
		}
		return nil, err
	}

	uc.logger.Infow("delivery assigned",
		"delivery_log_id", result.ID(),
		"subscription_id", cmd.SubscriptionID,
		"agent_id", cmd.AgentID,
		"delivery_date", result.DeliveryDate())

	return result, nil
}

// findOrCreateLog returns the subscription's ledger row for the day,
// opening a pending one when none exists. The subscription must be live.
func findOrCreateLog(ctx context.Context, repo delivery.Repository, subRepo subscription.Repository, subscriptionID uint, day time.Time) (*delivery.Log, error) {
	log, err := repo.GetForDay(ctx, subscriptionID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to get delivery log: %w", err)
	}
	if log != nil {
		return log, nil
	}

	sub, err := subRepo.GetByID(ctx, subscriptionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil, errors.NewNotFoundError("subscription not found")
	}
	if sub.Status() != subvo.StatusActive {
		return nil, errors.NewConflictError(
			fmt.Sprintf("subscription is %s, deliveries only run for active plans", sub.Status()))
	}

	log, err = delivery.NewForDay(subscriptionID, day)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := repo.Create(ctx, log); err != nil {
		if errors.IsDuplicateError(err) {
			// Lost the race with a concurrent create; the index kept
			// the ledger unique, read the winner back.
			log, err = repo.GetForDay(ctx, subscriptionID, day)
			if err != nil {
				return nil, fmt.Errorf("failed to re-read delivery log: %w", err)
			}
			if log == nil {
				return nil, fmt.Errorf("delivery log vanished after duplicate insert")
			}
			return log, nil
		}
		return nil, fmt.Errorf("failed to create delivery log: %w", err)
	}
	return log, nil
}
