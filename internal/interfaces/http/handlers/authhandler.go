package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	userUC "thali/internal/application/user/usecases"
	"thali/internal/domain/user"
	"thali/internal/shared/errors"
	"thali/internal/shared/logger"
	"thali/internal/shared/utils"
)

type AuthHandler struct {
	registerUseCase *userUC.RegisterUseCase
	loginUseCase    *userUC.LoginUseCase
	logger          logger.Interface
}

func NewAuthHandler(
	registerUseCase *userUC.RegisterUseCase,
	loginUseCase *userUC.LoginUseCase,
	log logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUseCase: registerUseCase,
		loginUseCase:    loginUseCase,
		logger:          log,
	}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

type userResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *user.User) userResponse {
	return userResponse{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email(),
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt(),
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	u, err := h.registerUseCase.Execute(c.Request.Context(), userUC.RegisterCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toUserResponse(u), "Account created successfully")
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	User        userResponse `json:"user"`
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int64        `json:"expires_in"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), userUC.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", loginResponse{
		User:        toUserResponse(result.User),
		AccessToken: result.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   result.ExpiresIn,
	})
}
