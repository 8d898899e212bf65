package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/buildtrack/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// AdminTokenHeader carries the admin shared secret
const AdminTokenHeader = "X-Admin-Token"

// AdminAuth requires the admin shared secret on the request. When no
// token is configured the admin surface is disabled entirely.
func AdminAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := getRequestIDFromContext(c)

		if token == "" {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponseWithRequestID(dto.ErrCodeForbidden,
					"Admin access is not configured", requestID))
			return
		}

		presented := c.GetHeader(AdminTokenHeader)
		if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponseWithRequestID(dto.ErrCodeForbidden,
					"Invalid admin token", requestID))
			return
		}

		c.Next()
	}
}
