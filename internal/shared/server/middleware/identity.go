package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hireflow-backend/internal/shared/server/respond"
)

const (
	ownerKeyKey = "ownerKey"
	isGuestKey  = "isGuest"
)

// Identity resolves the caller's owner key from the X-User-Id or X-Guest-Id
// header and stores it in context. Authenticated identity comes from an
// upstream gateway; this service only namespaces storage and history by it.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		if userID := strings.TrimSpace(c.GetHeader("X-User-Id")); userID != "" {
			c.Set(ownerKeyKey, "user:"+userID)
			c.Set(isGuestKey, false)
			c.Next()
			return
		}

		guestID := strings.TrimSpace(c.GetHeader("X-Guest-Id"))
		if guestID == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "Missing identity", nil)
			return
		}

		c.Set(ownerKeyKey, "guest:"+guestID)
		c.Set(isGuestKey, true)
		c.Next()
	}
}

// OwnerKeyFromContext fetches the owner key set by the identity middleware.
func OwnerKeyFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(ownerKeyKey)
	if key, ok := val.(string); ok {
		return key
	}
	return ""
}

// IsGuestFromContext reports whether the caller identified as a guest.
func IsGuestFromContext(c *gin.Context) bool {
	if c == nil {
		return false
	}
	val, _ := c.Get(isGuestKey)
	guest, _ := val.(bool)
	return guest
}
