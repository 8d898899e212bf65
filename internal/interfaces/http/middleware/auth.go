package middleware

import (
	"net/http"
	"strings"

	"github.com/buildtrack/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// UserIDKey is the gin context key holding the authenticated user ID
const UserIDKey = "user_id"

// Auth requires a bearer token on the request. The token is treated as
// an opaque user identity; there is no token verification service, so
// whatever non-empty value the caller presents becomes the user ID.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "Authorization header required")
			return
		}

		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			abortUnauthorized(c, "Authorization header must use the Bearer scheme")
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
		if token == "" {
			abortUnauthorized(c, "Bearer token cannot be empty")
			return
		}

		c.Set(UserIDKey, token)
		c.Next()
	}
}

// GetUserID returns the authenticated user ID from the gin context, or ""
func GetUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

func abortUnauthorized(c *gin.Context, message string) {
	requestID := getRequestIDFromContext(c)
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponseWithRequestID(dto.ErrCodeUnauthorized, message, requestID))
}
