package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// userIDKey and tenantIDKey hold the authenticated actor and the tenant whose ledger the
// request operates on.
const (
	userIDKey   = contextKey("userID")
	tenantIDKey = contextKey("tenantID")
)

// WithIdentity returns a copy of ctx carrying the actor and tenant ids.
func WithIdentity(ctx context.Context, userID, tenantID string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, tenantIDKey, tenantID)
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	return stringFromContext(c, userIDKey)
}

// GetTenantIDFromContext retrieves the tenant ID carried by the caller's token.
func GetTenantIDFromContext(c *gin.Context) (string, bool) {
	return stringFromContext(c, tenantIDKey)
}

func stringFromContext(c *gin.Context, key contextKey) (string, bool) {
	if v, exists := c.Get(string(key)); exists {
		s, ok := v.(string)
		return s, ok && s != ""
	}
	if c.Request == nil {
		return "", false
	}
	s, ok := c.Request.Context().Value(key).(string)
	return s, ok && s != ""
}
