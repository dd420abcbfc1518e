// Package authorization provides coarse role gates layered on top of the
// fine-grained casbin checks. Role gates guard whole route groups; casbin
// guards individual resource actions.
package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"thali/internal/domain/user"
	"thali/internal/shared/constants"
)

func currentRole(c *gin.Context) user.Role {
	raw, exists := c.Get(constants.ContextKeyUserRole)
	if !exists {
		return ""
	}
	role, _ := raw.(string)
	return user.Role(role)
}

// RequireAdmin rejects any caller whose token does not carry the admin role.
func RequireAdmin() gin.HandlerFunc {
	return RequireRoles(user.RoleAdmin)
}

// RequireRoles rejects callers whose role is not in the allowed set.
func RequireRoles(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := currentRole(c)
		for _, role := range roles {
			if got == role {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
		c.Abort()
	}
}

// CanAccessResourceByOwnerID reports whether a caller may touch a resource
// owned by resourceOwnerID. Admins may touch anything.
func CanAccessResourceByOwnerID(userID uint, role user.Role, resourceOwnerID uint) bool {
	if role == user.RoleAdmin {
		return true
	}
	return userID == resourceOwnerID
}
