package usecases

import (
	"context"
	"fmt"

	"thali/internal/domain/order"
	"thali/internal/shared/logger"
)

// ListOrdersCommand filters the order listing. Non-admin callers are
// always scoped to their own user ID by the handler.
type ListOrdersCommand struct {
	UserID   *uint
	Status   *string
	Page     int
	PageSize int
}

// ListOrdersResult carries one page of orders plus the total match count.
type ListOrdersResult struct {
	Orders []*order.Order
	Total  int64
}

type ListOrdersUseCase struct {
	orderRepo order.Repository
	logger    logger.Interface
}

func NewListOrdersUseCase(orderRepo order.Repository, log logger.Interface) *ListOrdersUseCase {
	return &ListOrdersUseCase{orderRepo: orderRepo, logger: log}
}

func (uc *ListOrdersUseCase) Execute(ctx context.Context, cmd ListOrdersCommand) (*ListOrdersResult, error) {
	orders, total, err := uc.orderRepo.List(ctx, order.Filter{
		UserID:   cmd.UserID,
		Status:   cmd.Status,
		Page:     cmd.Page,
		PageSize: cmd.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list orders", "error", err)
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return &ListOrdersResult{Orders: orders, Total: total}, nil
}
