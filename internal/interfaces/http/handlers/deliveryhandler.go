package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	deliveryUC "thali/internal/application/delivery/usecases"
	"thali/internal/domain/delivery"
	"thali/internal/interfaces/http/middleware"
	"thali/internal/shared/biztime"
	"thali/internal/shared/errors"
	"thali/internal/shared/logger"
	"thali/internal/shared/utils"
)

type DeliveryHandler struct {
	assignUseCase    *deliveryUC.AssignDeliveryUseCase
	markReadyUseCase *deliveryUC.MarkReadyUseCase
	startUseCase     *deliveryUC.StartDeliveryUseCase
	confirmUseCase   *deliveryUC.ConfirmDeliveredUseCase
	listUseCase      *deliveryUC.ListDeliveriesUseCase
	logger           logger.Interface
}

func NewDeliveryHandler(
	assignUseCase *deliveryUC.AssignDeliveryUseCase,
	markReadyUseCase *deliveryUC.MarkReadyUseCase,
	startUseCase *deliveryUC.StartDeliveryUseCase,
	confirmUseCase *deliveryUC.ConfirmDeliveredUseCase,
	listUseCase *deliveryUC.ListDeliveriesUseCase,
	log logger.Interface,
) *DeliveryHandler {
	return &DeliveryHandler{
		assignUseCase:    assignUseCase,
		markReadyUseCase: markReadyUseCase,
		startUseCase:     startUseCase,
		confirmUseCase:   confirmUseCase,
		listUseCase:      listUseCase,
		logger:           log,
	}
}

type deliveryLogResponse struct {
	ID             uint       `json:"id"`
	SubscriptionID uint       `json:"subscription_id"`
	AgentID        *uint      `json:"agent_id,omitempty"`
	Status         string     `json:"status"`
	DeliveryDate   time.Time  `json:"delivery_date"`
	DeliveryTime   *time.Time `json:"delivery_time,omitempty"`
	Latitude       *float64   `json:"latitude,omitempty"`
	Longitude      *float64   `json:"longitude,omitempty"`
}

func toDeliveryLogResponse(l *delivery.Log) deliveryLogResponse {
	return deliveryLogResponse{
		ID:             l.ID(),
		SubscriptionID: l.SubscriptionID(),
		AgentID:        l.AgentID(),
		Status:         l.Status().String(),
		DeliveryDate:   l.DeliveryDate(),
		DeliveryTime:   l.DeliveryTime(),
		Latitude:       l.Latitude(),
		Longitude:      l.Longitude(),
	}
}

func toDeliveryLogResponses(logs []*delivery.Log) []deliveryLogResponse {
	out := make([]deliveryLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, toDeliveryLogResponse(l))
	}
	return out
}

// parseDayQuery reads an optional date query parameter, zero meaning today.
func parseDayQuery(c *gin.Context) (time.Time, error) {
	raw := c.Query("date")
	if raw == "" {
		return time.Time{}, nil
	}
	return biztime.ParseDateInBizTimezone(raw)
}

type assignDeliveryRequest struct {
	SubscriptionID uint   `json:"subscription_id" binding:"required"`
	AgentID        uint   `json:"agent_id" binding:"required"`
	Date           string `json:"date"`
}

func (h *DeliveryHandler) Assign(c *gin.Context) {
	var req assignDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	var day time.Time
	if req.Date != "" {
		parsed, err := biztime.ParseDateInBizTimezone(req.Date)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
			return
		}
		day = parsed
	}

	result, err := h.assignUseCase.Execute(c.Request.Context(), deliveryUC.AssignDeliveryCommand{
		SubscriptionID: req.SubscriptionID,
		AgentID:        req.AgentID,
		Day:            day,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Delivery assigned", toDeliveryLogResponse(result))
}

type markReadyRequest struct {
	SubscriptionID uint   `json:"subscription_id" binding:"required"`
	Date           string `json:"date"`
}

func (h *DeliveryHandler) MarkReady(c *gin.Context) {
	var req markReadyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	var day time.Time
	if req.Date != "" {
		parsed, err := biztime.ParseDateInBizTimezone(req.Date)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
			return
		}
		day = parsed
	}

	result, err := h.markReadyUseCase.Execute(c.Request.Context(), deliveryUC.MarkReadyCommand{
		SubscriptionID: req.SubscriptionID,
		Day:            day,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Delivery marked ready", toDeliveryLogResponse(result))
}

type startDeliveryRequest struct {
	SubscriptionID uint `json:"subscription_id" binding:"required"`
}

func (h *DeliveryHandler) Start(c *gin.Context) {
	agentID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req startDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.startUseCase.Execute(c.Request.Context(), deliveryUC.StartDeliveryCommand{
		SubscriptionID: req.SubscriptionID,
		AgentID:        agentID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Delivery started", toDeliveryLogResponse(result))
}

type confirmDeliveredRequest struct {
	SubscriptionID uint    `json:"subscription_id" binding:"required"`
	Latitude       float64 `json:"latitude" binding:"required,min=-90,max=90"`
	Longitude      float64 `json:"longitude" binding:"required,min=-180,max=180"`
}

func (h *DeliveryHandler) Confirm(c *gin.Context) {
	agentID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req confirmDeliveredRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.confirmUseCase.Execute(c.Request.Context(), deliveryUC.ConfirmDeliveredCommand{
		SubscriptionID: req.SubscriptionID,
		AgentID:        agentID,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Delivery confirmed", toDeliveryLogResponse(result))
}

// ListForDay is the admin rollup of every delivery on a business day.
func (h *DeliveryHandler) ListForDay(c *gin.Context) {
	day, err := parseDayQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	logs, err := h.listUseCase.ForDay(c.Request.Context(), day)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toDeliveryLogResponses(logs))
}

// AgentRoute lists the calling agent's deliveries for a business day.
func (h *DeliveryHandler) AgentRoute(c *gin.Context) {
	agentID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}
	day, err := parseDayQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	logs, err := h.listUseCase.AgentRoute(c.Request.Context(), agentID, day)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toDeliveryLogResponses(logs))
}

// History lists a subscription's delivery trail.
func (h *DeliveryHandler) History(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}
	subscriptionID, err := utils.ParseUintParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	logs, err := h.listUseCase.History(c.Request.Context(), subscriptionID, userID, middleware.IsAdmin(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toDeliveryLogResponses(logs))
}
