package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sawai-h/saas-rbac-api/internal/apperrors"
	"github.com/sawai-h/saas-rbac-api/internal/constants"
	"github.com/sawai-h/saas-rbac-api/internal/token"
)

// RequireAuth resolves the caller's identity from the Authorization
// bearer token. It runs before any data access: a request without a valid
// credential is aborted here.
func RequireAuth(provider *token.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		bearer, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || bearer == "" {
			apperrors.AbortWith(c, apperrors.Unauthenticated(""))
			return
		}

		userID, err := provider.Verify(bearer)
		if err != nil {
			apperrors.AbortWith(c, apperrors.Unauthenticated("Invalid or expired token"))
			return
		}

		// Store user ID in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (string, bool) {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return "", false
	}

	userID, ok := value.(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}
