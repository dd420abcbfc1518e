package usecases

import (
	"context"
	"fmt"

	"thali/internal/domain/order"
	"thali/internal/shared/errors"
	"thali/internal/shared/logger"
)

// GetOrderUseCase fetches a single order, enforcing ownership for
// non-admin callers.
type GetOrderUseCase struct {
	orderRepo order.Repository
	logger    logger.Interface
}

func NewGetOrderUseCase(orderRepo order.Repository, log logger.Interface) *GetOrderUseCase {
	return &GetOrderUseCase{orderRepo: orderRepo, logger: log}
}

func (uc *GetOrderUseCase) Execute(ctx context.Context, orderID, requesterID uint, isAdmin bool) (*order.Order, error) {
	o, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		uc.logger.Errorw("failed to get order", "error", err, "order_id", orderID)
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if o == nil {
		return nil, errors.NewNotFoundError("order not found")
	}
	if !isAdmin && o.UserID() != requesterID {
		return nil, errors.NewForbiddenError("order belongs to another user")
	}
	return o, nil
}
