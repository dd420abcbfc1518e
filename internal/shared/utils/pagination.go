package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"thali/internal/shared/constants"
	"thali/internal/shared/errors"
)

// ParsePagination reads page and page_size query parameters, clamping them
// to sane bounds.
func ParsePagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(constants.DefaultPage)))
	if page < 1 {
		page = constants.DefaultPage
	}
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(constants.DefaultPageSize)))
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	return page, pageSize
}

// ParseUintQuery parses a numeric query value, rejecting zero.
func ParseUintQuery(raw, entityName string) (uint, error) {
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}
	return uint(v), nil
}
