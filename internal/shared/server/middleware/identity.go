package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/shared/server/respond"
)

const userIDKey = "userId"

// Identity resolves the caller's user id from the X-User-Id header and stores
// it in the request context. Session handling lives upstream; by the time a
// request reaches this service the gateway has already authenticated it.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		if strings.HasPrefix(c.Request.URL.Path, "/healthz") {
			c.Next()
			return
		}

		userID := strings.TrimSpace(c.GetHeader("X-User-Id"))
		if userID == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing user identity", nil)
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserIDFromContext fetches the user id stored by Identity middleware.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}
