package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	orderUC "thali/internal/application/order/usecases"
	"thali/internal/domain/order"
	"thali/internal/domain/pricing"
	"thali/internal/interfaces/http/middleware"
	"thali/internal/shared/biztime"
	"thali/internal/shared/errors"
	"thali/internal/shared/logger"
	"thali/internal/shared/utils"
)

type OrderHandler struct {
	createOrderUseCase  *orderUC.CreateOrderUseCase
	computePriceUseCase *orderUC.ComputePriceUseCase
	getOrderUseCase     *orderUC.GetOrderUseCase
	listOrdersUseCase   *orderUC.ListOrdersUseCase
	logger              logger.Interface
}

func NewOrderHandler(
	createOrderUseCase *orderUC.CreateOrderUseCase,
	computePriceUseCase *orderUC.ComputePriceUseCase,
	getOrderUseCase *orderUC.GetOrderUseCase,
	listOrdersUseCase *orderUC.ListOrdersUseCase,
	log logger.Interface,
) *OrderHandler {
	return &OrderHandler{
		createOrderUseCase:  createOrderUseCase,
		computePriceUseCase: computePriceUseCase,
		getOrderUseCase:     getOrderUseCase,
		listOrdersUseCase:   listOrdersUseCase,
		logger:              log,
	}
}

type addonSelectionRequest struct {
	// Zero quantity is accepted and contributes nothing to the total.
	Quantity  int    `json:"quantity" binding:"min=0"`
	Frequency string `json:"frequency" binding:"required,oneof=once daily"`
}

type createOrderRequest struct {
	Protein     string                         `json:"protein" binding:"required,max=100"`
	Days        int                            `json:"days" binding:"required,min=1,max=90"`
	MealsPerDay int                            `json:"meals_per_day" binding:"omitempty,min=1,max=2"`
	MealTypes   []string                       `json:"meal_types" binding:"omitempty,dive,oneof=LUNCH DINNER"`
	StartDate   string                         `json:"start_date" binding:"required"`
	Addons      map[uint]addonSelectionRequest `json:"addons"`
	Notes       string                         `json:"notes" binding:"max=500"`
	Latitude    *float64                       `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude   *float64                       `json:"longitude" binding:"omitempty,min=-180,max=180"`
}

type orderResponse struct {
	ID          uint      `json:"id"`
	Protein     string    `json:"protein"`
	Days        int       `json:"days"`
	MealsPerDay int       `json:"meals_per_day"`
	MealTypes   []string  `json:"meal_types"`
	TotalPrice  int       `json:"total_price"`
	Status      string    `json:"status"`
	StartDate   time.Time `json:"start_date"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toOrderResponse(o *order.Order) orderResponse {
	mealTypes := make([]string, 0, len(o.MealTypes()))
	for _, mt := range o.MealTypes() {
		mealTypes = append(mealTypes, mt.String())
	}
	return orderResponse{
		ID:          o.ID(),
		Protein:     o.Protein(),
		Days:        o.Days(),
		MealsPerDay: o.MealsPerDay(),
		MealTypes:   mealTypes,
		TotalPrice:  o.TotalPrice(),
		Status:      o.Status().String(),
		StartDate:   o.StartDate(),
		Notes:       o.Notes(),
		CreatedAt:   o.CreatedAt(),
	}
}

type createOrderResponse struct {
	Order        orderResponse        `json:"order"`
	Subscription subscriptionResponse `json:"subscription"`
	Quote        pricing.Quote        `json:"quote"`
}

func toAddonSelections(raw map[uint]addonSelectionRequest) map[uint]pricing.AddonSelection {
	if len(raw) == 0 {
		return nil
	}
	selections := make(map[uint]pricing.AddonSelection, len(raw))
	for id, sel := range raw {
		selections[id] = pricing.AddonSelection{
			Quantity:  sel.Quantity,
			Frequency: pricing.Frequency(sel.Frequency),
		}
	}
	return selections
}

func (h *OrderHandler) Create(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	startDate, err := biztime.ParseDateInBizTimezone(req.StartDate)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.createOrderUseCase.Execute(c.Request.Context(), orderUC.CreateOrderCommand{
		UserID:      userID,
		Protein:     req.Protein,
		Days:        req.Days,
		MealsPerDay: req.MealsPerDay,
		MealTypes:   req.MealTypes,
		StartDate:   startDate,
		Addons:      toAddonSelections(req.Addons),
		Notes:       req.Notes,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, createOrderResponse{
		Order:        toOrderResponse(result.Order),
		Subscription: toSubscriptionResponse(result.Subscription),
		Quote:        result.Quote,
	}, "Order placed successfully")
}

type computePriceRequest struct {
	Protein     string                         `json:"protein" binding:"required,max=100"`
	Days        int                            `json:"days" binding:"required,min=1,max=90"`
	MealsPerDay int                            `json:"meals_per_day" binding:"omitempty,min=1,max=2"`
	MealTypes   []string                       `json:"meal_types" binding:"omitempty,dive,oneof=LUNCH DINNER"`
	Addons      map[uint]addonSelectionRequest `json:"addons"`
}

func (h *OrderHandler) ComputePrice(c *gin.Context) {
	var req computePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	quote, err := h.computePriceUseCase.Execute(c.Request.Context(), orderUC.ComputePriceCommand{
		Protein:     req.Protein,
		Days:        req.Days,
		MealsPerDay: req.MealsPerDay,
		MealTypes:   req.MealTypes,
		Addons:      toAddonSelections(req.Addons),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", quote)
}

func (h *OrderHandler) Get(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}
	orderID, err := utils.ParseUintParam(c, "id", "order")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	o, err := h.getOrderUseCase.Execute(c.Request.Context(), orderID, userID, middleware.IsAdmin(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toOrderResponse(o))
}

func (h *OrderHandler) List(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	page, pageSize := utils.ParsePagination(c)
	cmd := orderUC.ListOrdersCommand{Page: page, PageSize: pageSize}

	// Non-admin callers only ever see their own orders.
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

	result, err := h.listOrdersUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]orderResponse, 0, len(result.Orders))
	for _, o := range result.Orders {
		items = append(items, toOrderResponse(o))
	}
	utils.ListSuccessResponse(c, items, result.Total, page, pageSize)
}
