// Package errors provides the application error taxonomy: validation,
// not found, conflict, unauthorized, forbidden and internal errors, each
// carrying the HTTP status it maps to.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType classifies an application error.
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "validation_error"
	ErrorTypeNotFound     ErrorType = "not_found"
	ErrorTypeConflict     ErrorType = "conflict"
	ErrorTypeUnauthorized ErrorType = "unauthorized"
	ErrorTypeForbidden    ErrorType = "forbidden"
	ErrorTypeInternal     ErrorType = "internal_error"
)

// AppError is an application error with a user-presentable message.
// Messages are written to be shown directly to end users and carry the
// computed values that triggered the rejection (distance, day counts).
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func newAppError(t ErrorType, code int, message string, details []string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{Type: t, Message: message, Code: code, Details: detail}
}

// NewValidationError creates a validation error (400).
func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, http.StatusBadRequest, message, details)
}

// NewNotFoundError creates a not found error (404).
func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, http.StatusNotFound, message, details)
}

// NewConflictError creates a conflict error (409).
func NewConflictError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeConflict, http.StatusConflict, message, details)
}

// NewUnauthorizedError creates an unauthorized error (401).
func NewUnauthorizedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeUnauthorized, http.StatusUnauthorized, message, details)
}

// NewForbiddenError creates a forbidden error (403).
func NewForbiddenError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeForbidden, http.StatusForbidden, message, details)
}

// NewInternalError creates an internal error (500).
func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, http.StatusInternalServerError, message, details)
}

// GetAppError extracts an AppError from an error chain, or returns nil.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsAppError reports whether err wraps an AppError.
func IsAppError(err error) bool {
	return GetAppError(err) != nil
}

func isType(err error, t ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == t
}

// IsValidationError reports whether err is a validation error.
func IsValidationError(err error) bool { return isType(err, ErrorTypeValidation) }

// IsNotFoundError reports whether err is a not found error.
func IsNotFoundError(err error) bool { return isType(err, ErrorTypeNotFound) }

// IsConflictError reports whether err is a conflict error.
func IsConflictError(err error) bool { return isType(err, ErrorTypeConflict) }

// IsDuplicateError reports whether err is a database unique-key violation.
// Covers MySQL, SQLite and PostgreSQL wording.
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "violates unique constraint")
}
