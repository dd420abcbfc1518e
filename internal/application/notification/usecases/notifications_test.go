package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thali/internal/application/testutil"
	"thali/internal/domain/notification"
	vo "thali/internal/domain/notification/valueobjects"
	"thali/internal/shared/errors"
	"thali/internal/shared/logger"
)

func seedNotification(t *testing.T, repo *testutil.MockNotificationRepository, userID uint) *notification.Notification {
	t.Helper()
	n, err := notification.NewNotification(userID, vo.TypeOrderCreated, "New Order", "Order #1: CHICKEN x 12 days", nil)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), n))
	return n
}

func TestNotifications_ListWithUnreadCount(t *testing.T) {
	repo := testutil.NewMockNotificationRepository()
	seedNotification(t, repo, 7)
	seedNotification(t, repo, 7)
	seedNotification(t, repo, 9)

	uc := NewNotificationUseCase(repo, logger.NewNop())
	result, err := uc.List(context.Background(), 7, 20, 0)
	require.NoError(t, err)
	assert.Len(t, result.Notifications, 2)
	assert.Equal(t, int64(2), result.Total)
	assert.Equal(t, int64(2), result.Unread)
}

func TestNotifications_MarkAsRead(t *testing.T) {
	repo := testutil.NewMockNotificationRepository()
	n := seedNotification(t, repo, 7)

	uc := NewNotificationUseCase(repo, logger.NewNop())
	require.NoError(t, uc.MarkAsRead(context.Background(), n.ID(), 7))

	unread, err := uc.CountUnread(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(0), unread)

	// A second mark is a quiet no-op.
	require.NoError(t, uc.MarkAsRead(context.Background(), n.ID(), 7))
}

func TestNotifications_MarkAsRead_OtherUser_Forbidden(t *testing.T) {
	repo := testutil.NewMockNotificationRepository()
	n := seedNotification(t, repo, 7)

	uc := NewNotificationUseCase(repo, logger.NewNop())
	err := uc.MarkAsRead(context.Background(), n.ID(), 99)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeForbidden, errors.GetAppError(err).Type)
}

func TestNotifications_MarkAsRead_Unknown_NotFound(t *testing.T) {
	uc := NewNotificationUseCase(testutil.NewMockNotificationRepository(), logger.NewNop())
	err := uc.MarkAsRead(context.Background(), 42, 7)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
