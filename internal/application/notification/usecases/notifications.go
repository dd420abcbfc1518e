package usecases

import (
	"context"
	"fmt"

	"thali/internal/domain/notification"
	"thali/internal/shared/errors"
	"thali/internal/shared/logger"
)

// ListNotificationsResult carries one page of a user's notifications plus
// the total and unread counts.
type ListNotificationsResult struct {
	Notifications []*notification.Notification
	Total         int64
	Unread        int64
}

// NotificationUseCase serves a user's notification feed.
type NotificationUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewNotificationUseCase(notificationRepo notification.Repository, log logger.Interface) *NotificationUseCase {
	return &NotificationUseCase{notificationRepo: notificationRepo, logger: log}
}

func (uc *NotificationUseCase) List(ctx context.Context, userID uint, limit, offset int) (*ListNotificationsResult, error) {
	notifications, total, err := uc.notificationRepo.ListByUserID(ctx, userID, limit, offset)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	unread, err := uc.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to count unread notifications", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return &ListNotificationsResult{
		Notifications: notifications,
		Total:         total,
		Unread:        unread,
	}, nil
}

func (uc *NotificationUseCase) CountUnread(ctx context.Context, userID uint) (int64, error) {
	unread, err := uc.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to count unread notifications", "error", err, "user_id", userID)
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return unread, nil
}

// MarkAsRead flips one notification to read, enforcing ownership.
func (uc *NotificationUseCase) MarkAsRead(ctx context.Context, notificationID, userID uint) error {
	n, err := uc.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		uc.logger.Errorw("failed to get notification", "error", err, "notification_id", notificationID)
		return fmt.Errorf("failed to get notification: %w", err)
	}
	if n == nil {
		return errors.NewNotFoundError("notification not found")
	}
	if n.UserID() != userID {
		return errors.NewForbiddenError("notification belongs to another user")
	}
	if !n.IsUnread() {
		return nil
	}

	if err := uc.notificationRepo.MarkAsRead(ctx, notificationID); err != nil {
		uc.logger.Errorw("failed to mark notification as read", "error", err, "notification_id", notificationID)
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}
	return nil
}
