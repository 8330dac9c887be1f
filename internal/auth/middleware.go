package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/hanz0pro/backend/internal/logger"
	"github.com/hanz0pro/backend/internal/revocation"
	"github.com/hanz0pro/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys set by AuthMiddleware for downstream handlers.
const (
	ContextUserID = "userID"
	ContextRoles  = "roles"
	ContextClaims = "claims"
)

// BearerToken extracts the token from an Authorization header value.
// It returns an empty string when the header is absent or not Bearer-shaped.
func BearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// AuthMiddleware creates a gin middleware that requires a valid bearer
// token. Each verification failure class gets its own response; a malformed
// token is a 422 while everything else is a 401. On success the decoded
// identity and role snapshot are attached to the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "Unauthorized",
				"message": "Missing Authorization header.",
			})
			return
		}

		claims, err := jwt.ParseToken(token)
		if err != nil {
			abortForTokenError(c, err)
			return
		}

		if revocation.Default != nil && claims.ID != "" {
			revoked, err := revocation.Default.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil {
				logger.Log.Error("revocation check failed", zap.Error(err))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error":   "Internal Server Error",
					"message": "Could not verify token.",
				})
				return
			}
			if revoked {
				abortForTokenError(c, jwt.ErrRevoked)
				return
			}
		}

		userID, err := claims.UserID()
		if err != nil {
			abortForTokenError(c, jwt.ErrMalformed)
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextRoles, claims.Roles)
		c.Set(ContextClaims, claims)
		c.Next()
	}
}

func abortForTokenError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, jwt.ErrExpired):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error":   "Token Expired",
			"message": "The access token has expired.",
		})
	case errors.Is(err, jwt.ErrRevoked):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error":   "Revoked Token",
			"message": "The access token has been revoked.",
		})
	case errors.Is(err, jwt.ErrSignatureInvalid):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error":   "Unauthorized",
			"message": "Token signature verification failed.",
		})
	case errors.Is(err, jwt.ErrMissing):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error":   "Unauthorized",
			"message": "Missing Authorization header.",
		})
	default:
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Invalid Token",
			"message": "The access token could not be decoded.",
		})
	}
}
