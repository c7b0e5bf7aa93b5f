package middleware

import (
	"github.com/gin-gonic/gin"

	"authorsite-backend/internal/domains/user"
	"authorsite-backend/internal/shared/response"
)

// RequireElevated allows only accounts whose role carries moderation
// privileges. Must run after AuthMiddleware.
func RequireElevated() gin.HandlerFunc {
	return func(c *gin.Context) {
		roleStr, ok := c.Get(CtxRole)
		if !ok {
			response.Forbidden(c, "access denied: elevated role required")
			c.Abort()
			return
		}

		role, ok := roleStr.(string)
		if !ok || !user.Role(role).IsElevated() {
			response.Forbidden(c, "access denied: elevated role required")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireSuperAdmin guards the operations only the site owner may run.
func RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		roleStr, _ := c.Get(CtxRole)
		role, ok := roleStr.(string)
		if !ok || user.Role(role) != user.RoleSuperAdmin {
			response.Forbidden(c, "access denied: super admin role required")
			c.Abort()
			return
		}

		c.Next()
	}
}
