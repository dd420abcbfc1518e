// Package utils holds HTTP response envelopes and small request helpers.
package utils

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"thali/internal/shared/errors"
)

// APIResponse is the standard response envelope.
type APIResponse struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
	Message string     `json:"message,omitempty"`
}

// ErrorInfo carries error details in an API response.
type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ListResponse is the paginated list envelope.
type ListResponse struct {
	Items      any   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// SuccessResponse sends a successful response.
func SuccessResponse(c *gin.Context, statusCode int, message string, data any) {
	c.JSON(statusCode, APIResponse{Success: true, Data: data, Message: message})
}

// CreatedResponse sends a 201 response.
func CreatedResponse(c *gin.Context, data any, message ...string) {
	msg := "Resource created successfully"
	if len(message) > 0 {
		msg = message[0]
	}
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data, Message: msg})
}

// ErrorResponse sends an error response with an explicit status code.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error:   &ErrorInfo{Type: string(errors.ErrorTypeInternal), Message: message},
	})
}

// ErrorResponseWithError maps an error to a response. AppErrors keep their
// status and message; anything else becomes an opaque 500 so internals never
// leak to clients.
func ErrorResponseWithError(c *gin.Context, err error) {
	statusCode := http.StatusInternalServerError
	errorInfo := ErrorInfo{
		Type:    string(errors.ErrorTypeInternal),
		Message: "Internal server error occurred",
	}

	if appErr := errors.GetAppError(err); appErr != nil {
		statusCode = appErr.Code
		errorInfo = ErrorInfo{
			Type:    string(appErr.Type),
			Message: appErr.Message,
			Details: appErr.Details,
		}
	}

	c.JSON(statusCode, APIResponse{Success: false, Error: &errorInfo})
}

// ListSuccessResponse sends a paginated list response.
func ListSuccessResponse(c *gin.Context, items any, total int64, page, pageSize int) {
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if totalPages == 0 {
		totalPages = 1
	}
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data: ListResponse{
			Items:      items,
			Total:      total,
			Page:       page,
			PageSize:   pageSize,
			TotalPages: totalPages,
		},
	})
}

// ParseUintParam parses a numeric path parameter, rejecting zero.
func ParseUintParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}
	return uint(v), nil
}
