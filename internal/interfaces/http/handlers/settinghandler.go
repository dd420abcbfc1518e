package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	settingUC "thali/internal/application/setting/usecases"
	"thali/internal/domain/setting"
	"thali/internal/interfaces/http/middleware"
	"thali/internal/shared/errors"
	"thali/internal/shared/utils"
)

// SettingHandler is the admin surface over runtime settings (service area,
// duplicate-order window and friends).
type SettingHandler struct {
	getUseCase    *settingUC.GetSettingsUseCase
	updateUseCase *settingUC.UpdateSettingUseCase
}

func NewSettingHandler(getUseCase *settingUC.GetSettingsUseCase, updateUseCase *settingUC.UpdateSettingUseCase) *SettingHandler {
	return &SettingHandler{
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
	}
}

type settingResponse struct {
	ID          uint      `json:"id"`
	Category    string    `json:"category"`
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	ValueType   string    `json:"value_type"`
	Description string    `json:"description,omitempty"`
	Version     int       `json:"version"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toSettingResponse(s *setting.SystemSetting) settingResponse {
	return settingResponse{
		ID:          s.ID(),
		Category:    s.Category(),
		Key:         s.Key(),
		Value:       s.Value(),
		ValueType:   string(s.ValueType()),
		Description: s.Description(),
		Version:     s.Version(),
		UpdatedAt:   s.UpdatedAt(),
	}
}

func (h *SettingHandler) List(c *gin.Context) {
	settings, err := h.getUseCase.Execute(c.Request.Context(), c.Query("category"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	out := make([]settingResponse, 0, len(settings))
	for _, s := range settings {
		out = append(out, toSettingResponse(s))
	}
	utils.SuccessResponse(c, http.StatusOK, "", out)
}

type updateSettingRequest struct {
	Category    string `json:"category" binding:"required,max=50"`
	Key         string `json:"key" binding:"required,max=100"`
	Value       string `json:"value" binding:"required"`
	ValueType   string `json:"value_type" binding:"required,oneof=string int float bool json"`
	Description string `json:"description" binding:"max=255"`
}

func (h *SettingHandler) Update(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req updateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	s, err := h.updateUseCase.Execute(c.Request.Context(), settingUC.UpdateSettingCommand{
		Category:    req.Category,
		Key:         req.Key,
		Value:       req.Value,
		ValueType:   req.ValueType,
		Description: req.Description,
		UpdatedBy:   userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Setting updated", toSettingResponse(s))
}
