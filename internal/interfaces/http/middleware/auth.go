package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"thali/internal/domain/user"
	"thali/internal/infrastructure/auth"
	"thali/internal/shared/constants"
	"thali/internal/shared/logger"
	"thali/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, log logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService, logger: log}
}

// RequireAuth rejects requests without a valid bearer token and stores the
// authenticated identity in the gin context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyUserRole, string(claims.Role))
		c.Next()
	}
}

// CurrentUserID returns the authenticated user ID from the gin context.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(constants.ContextKeyUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// CurrentRole returns the authenticated role from the gin context.
func CurrentRole(c *gin.Context) user.Role {
	return user.Role(c.GetString(constants.ContextKeyUserRole))
}

// IsAdmin reports whether the authenticated caller is an admin.
func IsAdmin(c *gin.Context) bool {
	return CurrentRole(c) == user.RoleAdmin
}
