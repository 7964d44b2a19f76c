package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"store-ratings-api/auth"
	"store-ratings-api/models"
)

// Context keys set by AuthRequired and read by handlers downstream.
const (
	ContextUserIDKey = "userID"
	ContextRoleKey   = "role"
)

func abortUnauthorized(c *gin.Context, code, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"code": code, "message": message})
	c.Abort()
}

// AuthRequired validates the bearer token and injects the caller's
// identity into the request context. The header must be exactly
// "Bearer <token>": one space, both parts non-empty.
func AuthRequired(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "MISSING_TOKEN", "Authorization header required")
			return
		}
		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			abortUnauthorized(c, "INVALID_FORMAT", "Authorization header must be 'Bearer <token>'")
			return
		}
		claims, err := tokens.Verify(parts[1])
		if err != nil {
			abortUnauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
			return
		}
		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextRoleKey, claims.Role)
		c.Next()
	}
}

// RoleRequired gates a route to one or more roles; any single match is
// sufficient. Without a prior authenticated identity the request is 401,
// with the wrong role it is 403.
func RoleRequired(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get(ContextRoleKey)
		if !exists {
			abortUnauthorized(c, "UNAUTHENTICATED", "Authentication required")
			return
		}
		callerRole := roleVal.(models.Role)
		for _, r := range roles {
			if callerRole == r {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"code": "FORBIDDEN", "message": "Access denied"})
		c.Abort()
	}
}

// GetUserID extracts the caller user ID from context.
func GetUserID(c *gin.Context) uint {
	val, _ := c.Get(ContextUserIDKey)
	return val.(uint)
}

// GetRole extracts the caller role from context.
func GetRole(c *gin.Context) models.Role {
	val, _ := c.Get(ContextRoleKey)
	return val.(models.Role)
}
