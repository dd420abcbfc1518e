package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	subUC "thali/internal/application/subscription/usecases"
	"thali/internal/domain/subscription"
	"thali/internal/interfaces/http/middleware"
	"thali/internal/shared/errors"
	"thali/internal/shared/logger"
	"thali/internal/shared/utils"
)

type SubscriptionHandler struct {
	toggleUseCase *subUC.ToggleSubscriptionUseCase
	cancelUseCase *subUC.CancelSubscriptionUseCase
	getUseCase    *subUC.GetSubscriptionUseCase
	listUseCase   *subUC.ListSubscriptionsUseCase
	logger        logger.Interface
}

func NewSubscriptionHandler(
	toggleUseCase *subUC.ToggleSubscriptionUseCase,
	cancelUseCase *subUC.CancelSubscriptionUseCase,
	getUseCase *subUC.GetSubscriptionUseCase,
	listUseCase *subUC.ListSubscriptionsUseCase,
	log logger.Interface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		toggleUseCase: toggleUseCase,
		cancelUseCase: cancelUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		logger:        log,
	}
}

type subscriptionResponse struct {
	ID                 uint       `json:"id"`
	OrderID            uint       `json:"order_id"`
	Status             string     `json:"status"`
	Protein            string     `json:"protein"`
	MealsPerDay        int        `json:"meals_per_day"`
	MealTypes          []string   `json:"meal_types"`
	StartDate          time.Time  `json:"start_date"`
	EndDate            time.Time  `json:"end_date"`
	DaysRemaining      int        `json:"days_remaining"`
	PausesRemaining    int        `json:"pauses_remaining"`
	LastPausedAt       *time.Time `json:"last_paused_at,omitempty"`
	CancellationReason *string    `json:"cancellation_reason,omitempty"`
}

func toSubscriptionResponse(s *subscription.Subscription) subscriptionResponse {
	mealTypes := make([]string, 0, len(s.MealTypes()))
	for _, mt := range s.MealTypes() {
		mealTypes = append(mealTypes, mt.String())
	}
	return subscriptionResponse{
		ID:                 s.ID(),
		OrderID:            s.OrderID(),
		Status:             s.Status().String(),
		Protein:            s.Protein(),
		MealsPerDay:        s.MealsPerDay(),
		MealTypes:          mealTypes,
		StartDate:          s.StartDate(),
		EndDate:            s.EndDate(),
		DaysRemaining:      s.DaysRemaining(),
		PausesRemaining:    s.PausesRemaining(),
		LastPausedAt:       s.LastPausedAt(),
		CancellationReason: s.CancellationReason(),
	}
}

type pauseResponse struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

type subscriptionDetailResponse struct {
	subscriptionResponse
	Pauses []pauseResponse `json:"pauses"`
}

// Toggle pauses an active subscription or resumes a paused one.
func (h *SubscriptionHandler) Toggle(c *gin.Context) {
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

	result, err := h.toggleUseCase.Execute(c.Request.Context(), subUC.ToggleSubscriptionCommand{
		SubscriptionID: subscriptionID,
		UserID:         userID,
		IsAdmin:        middleware.IsAdmin(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscription "+result.Status().String(), toSubscriptionResponse(result))
}

type cancelSubscriptionRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

func (h *SubscriptionHandler) Cancel(c *gin.Context) {
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

	var req cancelSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.cancelUseCase.Execute(c.Request.Context(), subUC.CancelSubscriptionCommand{
		SubscriptionID: subscriptionID,
		UserID:         userID,
		IsAdmin:        middleware.IsAdmin(c),
		Reason:         req.Reason,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscription cancelled", toSubscriptionResponse(result))
}

func (h *SubscriptionHandler) Get(c *gin.Context) {
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

	result, err := h.getUseCase.Execute(c.Request.Context(), subscriptionID, userID, middleware.IsAdmin(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pauses := make([]pauseResponse, 0, len(result.Pauses))
	for _, p := range result.Pauses {
		pauses = append(pauses, pauseResponse{StartDate: p.StartDate(), EndDate: p.EndDate()})
	}
	utils.SuccessResponse(c, http.StatusOK, "", subscriptionDetailResponse{
		subscriptionResponse: toSubscriptionResponse(result.Subscription),
		Pauses:               pauses,
	})
}

func (h *SubscriptionHandler) List(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	page, pageSize := utils.ParsePagination(c)
	cmd := subUC.ListSubscriptionsCommand{Page: page, PageSize: pageSize}

	if !middleware.IsAdmin(c) {
		cmd.UserID = &userID
	} else if raw := c.Query("user_id"); raw != "" {
		id, err := utils.ParseUintQuery(raw, "user")
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		cmd.UserID = &id
	}
	if status := c.Query("status"); status != "" {
		cmd.Status = &status
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]subscriptionResponse, 0, len(result.Subscriptions))
	for _, s := range result.Subscriptions {
		items = append(items, toSubscriptionResponse(s))
	}
	utils.ListSuccessResponse(c, items, result.Total, page, pageSize)
}
