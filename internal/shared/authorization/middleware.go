package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ContextKeyUserRole is the gin context key the auth middleware stores the
// caller's role under.
const ContextKeyUserRole = "user_role"

// RequireAdmin aborts the request unless the authenticated caller is an admin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString(ContextKeyUserRole)
		if userRole != string(RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   gin.H{"type": "forbidden", "message": "admin access required"},
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
