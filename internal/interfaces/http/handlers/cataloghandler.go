package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogUC "thali/internal/application/catalog/usecases"
	"thali/internal/domain/catalog"
	"thali/internal/shared/errors"
	"thali/internal/shared/utils"
)

// CatalogHandler exposes the protein and addon catalog. Reads are open to
// every authenticated user; writes are admin-only at the route level.
type CatalogHandler struct {
	menuItemUseCase *catalogUC.MenuItemUseCase
	addOnUseCase    *catalogUC.AddOnUseCase
}

func NewCatalogHandler(menuItemUseCase *catalogUC.MenuItemUseCase, addOnUseCase *catalogUC.AddOnUseCase) *CatalogHandler {
	return &CatalogHandler{
		menuItemUseCase: menuItemUseCase,
		addOnUseCase:    addOnUseCase,
	}
}

type menuItemResponse struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Price         int    `json:"price"`
	ProteinAmount int    `json:"protein_amount"`
	Calories      int    `json:"calories"`
	Available     bool   `json:"available"`
}

func toMenuItemResponse(m *catalog.MenuItem) menuItemResponse {
	return menuItemResponse{
		ID:            m.ID(),
		Name:          m.Name(),
		Price:         m.Price(),
		ProteinAmount: m.ProteinAmount(),
		Calories:      m.Calories(),
		Available:     m.Available(),
	}
}

type addOnResponse struct {
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	Price             int    `json:"price"`
	AllowSubscription bool   `json:"allow_subscription"`
}

func toAddOnResponse(a *catalog.AddOn) addOnResponse {
	return addOnResponse{
		ID:                a.ID(),
		Name:              a.Name(),
		Price:             a.Price(),
		AllowSubscription: a.AllowSubscription(),
	}
}

type createMenuItemRequest struct {
	Name          string `json:"name" binding:"required,max=100"`
	Price         int    `json:"price" binding:"required,min=1"`
	ProteinAmount int    `json:"protein_amount" binding:"min=0"`
	Calories      int    `json:"calories" binding:"min=0"`
}

func (h *CatalogHandler) CreateMenuItem(c *gin.Context) {
	var req createMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	item, err := h.menuItemUseCase.Create(c.Request.Context(), catalogUC.CreateMenuItemCommand{
		Name:          req.Name,
		Price:         req.Price,
		ProteinAmount: req.ProteinAmount,
		Calories:      req.Calories,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toMenuItemResponse(item), "Menu item created")
}

type updateMenuItemRequest struct {
	Price         *int  `json:"price" binding:"omitempty,min=1"`
	ProteinAmount *int  `json:"protein_amount" binding:"omitempty,min=0"`
	Calories      *int  `json:"calories" binding:"omitempty,min=0"`
	Available     *bool `json:"available"`
}

func (h *CatalogHandler) UpdateMenuItem(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "menu item")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	item, err := h.menuItemUseCase.Update(c.Request.Context(), catalogUC.UpdateMenuItemCommand{
		ID:            id,
		Price:         req.Price,
		ProteinAmount: req.ProteinAmount,
		Calories:      req.Calories,
		Available:     req.Available,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Menu item updated", toMenuItemResponse(item))
}

func (h *CatalogHandler) GetMenuItem(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "menu item")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	item, err := h.menuItemUseCase.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toMenuItemResponse(item))
}

func (h *CatalogHandler) ListMenuItems(c *gin.Context) {
	items, err := h.menuItemUseCase.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	out := make([]menuItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toMenuItemResponse(item))
	}
	utils.SuccessResponse(c, http.StatusOK, "", out)
}

func (h *CatalogHandler) DeleteMenuItem(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "menu item")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.menuItemUseCase.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Menu item deleted", nil)
}

type createAddOnRequest struct {
	Name              string `json:"name" binding:"required,max=100"`
	Price             int    `json:"price" binding:"required,min=1"`
	AllowSubscription bool   `json:"allow_subscription"`
}

func (h *CatalogHandler) CreateAddOn(c *gin.Context) {
	var req createAddOnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	addon, err := h.addOnUseCase.Create(c.Request.Context(), catalogUC.CreateAddOnCommand{
		Name:              req.Name,
		Price:             req.Price,
		AllowSubscription: req.AllowSubscription,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toAddOnResponse(addon), "Addon created")
}

type updateAddOnRequest struct {
	Price             *int  `json:"price" binding:"omitempty,min=1"`
	AllowSubscription *bool `json:"allow_subscription"`
}

func (h *CatalogHandler) UpdateAddOn(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "addon")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateAddOnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	addon, err := h.addOnUseCase.Update(c.Request.Context(), catalogUC.UpdateAddOnCommand{
		ID:                id,
		Price:             req.Price,
		AllowSubscription: req.AllowSubscription,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Addon updated", toAddOnResponse(addon))
}

func (h *CatalogHandler) GetAddOn(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "addon")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	addon, err := h.addOnUseCase.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toAddOnResponse(addon))
}

func (h *CatalogHandler) ListAddOns(c *gin.Context) {
	addons, err := h.addOnUseCase.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	out := make([]addOnResponse, 0, len(addons))
	for _, addon := range addons {
		out = append(out, toAddOnResponse(addon))
	}
	utils.SuccessResponse(c, http.StatusOK, "", out)
}

func (h *CatalogHandler) DeleteAddOn(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "addon")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.addOnUseCase.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Addon deleted", nil)
}
