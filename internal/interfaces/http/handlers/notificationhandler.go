package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	notificationUC "thali/internal/application/notification/usecases"
	"thali/internal/domain/notification"
	"thali/internal/interfaces/http/middleware"
	"thali/internal/shared/utils"
)

type NotificationHandler struct {
	notificationUseCase *notificationUC.NotificationUseCase
}

func NewNotificationHandler(notificationUseCase *notificationUC.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{notificationUseCase: notificationUseCase}
}

type notificationResponse struct {
	ID        uint      `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	RelatedID *uint     `json:"related_id,omitempty"`
	Unread    bool      `json:"unread"`
	CreatedAt time.Time `json:"created_at"`
}

func toNotificationResponse(n *notification.Notification) notificationResponse {
	return notificationResponse{
		ID:        n.ID(),
		Type:      n.Type().String(),
		Title:     n.Title(),
		Content:   n.Content(),
		RelatedID: n.RelatedID(),
		Unread:    n.IsUnread(),
		CreatedAt: n.CreatedAt(),
	}
}

type notificationListResponse struct {
	Items  []notificationResponse `json:"items"`
	Total  int64                  `json:"total"`
	Unread int64                  `json:"unread"`
}

func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}
	page, pageSize := utils.ParsePagination(c)

	result, err := h.notificationUseCase.List(c.Request.Context(), userID, pageSize, (page-1)*pageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]notificationResponse, 0, len(result.Notifications))
	for _, n := range result.Notifications {
		items = append(items, toNotificationResponse(n))
	}
	utils.SuccessResponse(c, http.StatusOK, "", notificationListResponse{
		Items:  items,
		Total:  result.Total,
		Unread: result.Unread,
	})
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	unread, err := h.notificationUseCase.CountUnread(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"unread": unread})
}

func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}
	notificationID, err := utils.ParseUintParam(c, "id", "notification")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.notificationUseCase.MarkAsRead(c.Request.Context(), notificationID, userID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", nil)
}
