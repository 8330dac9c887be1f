package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole creates a gin middleware that checks the roles claim carried
// by the token. It must be used AFTER AuthMiddleware. Roles are a snapshot
// taken at issuance; the check never queries the database, so a role change
// only takes effect once the current token expires or is revoked.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(ContextRoles)
		if !exists {
			// Only reachable when AuthMiddleware was not applied first
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "Unauthorized",
				"message": "User not authenticated.",
			})
			return
		}

		roles, _ := value.([]string)
		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error":   "Forbidden",
			"message": "Role '" + role + "' required.",
		})
	}
}
