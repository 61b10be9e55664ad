package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/boutikapp/caisse-backend/internal/utils"
)

// claimsKey is the key used to store the authenticated session claims.
const claimsKey = contextKey("sessionClaims")

// GetClaimsFromContext retrieves the authenticated session claims from the
// Gin context. It returns the claims and a boolean indicating presence.
func GetClaimsFromContext(c *gin.Context) (*utils.SessionClaims, bool) {
	claimsVal := c.Request.Context().Value(claimsKey)
	if claimsVal == nil {
		return nil, false
	}
	claims, ok := claimsVal.(*utils.SessionClaims)
	if !ok {
		return nil, false
	}
	return claims, true
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	claims, ok := GetClaimsFromContext(c)
	if !ok {
		return "", false
	}
	return claims.Subject, claims.Subject != ""
}
