package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/buildtrack/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthTestRouter() *gin.Engine {
	engine := gin.New()
	engine.Use(Auth())
	engine.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, GetUserID(c))
	})
	return engine
}

func TestAuth(t *testing.T) {
	t.Run("accepts bearer token as user identity", func(t *testing.T) {
		engine := newAuthTestRouter()

		req := httptest.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", "Bearer user-42")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user-42", w.Body.String())
	})

	t.Run("rejects missing header", func(t *testing.T) {
		engine := newAuthTestRouter()

		req := httptest.NewRequest("GET", "/whoami", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, dto.ErrCodeUnauthorized, resp.Error.Code)
	})

	t.Run("rejects non-bearer scheme", func(t *testing.T) {
		engine := newAuthTestRouter()

		req := httptest.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects empty bearer token", func(t *testing.T) {
		engine := newAuthTestRouter()

		req := httptest.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", "Bearer   ")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAdminAuth(t *testing.T) {
	newAdminRouter := func(token string) *gin.Engine {
		engine := gin.New()
		engine.Use(AdminAuth(token))
		engine.GET("/stages", func(c *gin.Context) {
			c.String(http.StatusOK, "ok")
		})
		return engine
	}

	t.Run("accepts matching token", func(t *testing.T) {
		engine := newAdminRouter("secret")

		req := httptest.NewRequest("GET", "/stages", nil)
		req.Header.Set(AdminTokenHeader, "secret")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects wrong token", func(t *testing.T) {
		engine := newAdminRouter("secret")

		req := httptest.NewRequest("GET", "/stages", nil)
		req.Header.Set(AdminTokenHeader, "wrong")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrCodeForbidden, resp.Error.Code)
		assert.Equal(t, "Invalid admin token", resp.Error.Message)
	})

	t.Run("rejects missing token header", func(t *testing.T) {
		engine := newAdminRouter("secret")

		req := httptest.NewRequest("GET", "/stages", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("disabled when no token configured", func(t *testing.T) {
		engine := newAdminRouter("")

		req := httptest.NewRequest("GET", "/stages", nil)
		req.Header.Set(AdminTokenHeader, "anything")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Admin access is not configured", resp.Error.Message)
	})
}
