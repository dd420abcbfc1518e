package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"thali/internal/infrastructure/permission"
	"thali/internal/shared/logger"
	"thali/internal/shared/utils"
)

type PermissionMiddleware struct {
	enforcer permission.PermissionEnforcer
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer permission.PermissionEnforcer, log logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{enforcer: enforcer, logger: log}
}

// RequirePermission gates a route on a casbin (resource, action) policy.
// Must run after RequireAuth.
func (m *PermissionMiddleware) RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}

		allowed, err := m.enforcer.Enforce(strconv.FormatUint(uint64(userID), 10), resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed",
				"error", err, "user_id", userID, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}
		if !allowed {
			m.logger.Warnw("permission denied",
				"user_id", userID, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
