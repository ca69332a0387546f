package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"proconnect_backend/internal/auth"
	"proconnect_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupGateRouter(tm *auth.TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(AuthMiddleware(tm))
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID": c.GetString(string(contextkeys.UserIDKey)),
			"role":   c.GetString(string(contextkeys.RoleKey)),
		})
	})
	return router
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	t.Parallel()

	router := setupGateRouter(auth.NewTokenManager("test-secret"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "No token provided!")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	t.Parallel()

	router := setupGateRouter(auth.NewTokenManager("test-secret"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("x-access-token", "not.a.jwt")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized!")
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	t.Parallel()

	tm := auth.NewTokenManager("test-secret")
	router := setupGateRouter(tm)

	token, err := tm.Generate("user-1", "Student Client", -time.Minute)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("x-access-token", token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	t.Parallel()

	tm := auth.NewTokenManager("test-secret")
	router := setupGateRouter(tm)

	token, err := tm.Generate("user-1", "Service Provider", time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("x-access-token", token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
	assert.Contains(t, w.Body.String(), "Service Provider")
}

func TestRequireRoles(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)
	tm := auth.NewTokenManager("test-secret")

	router := gin.New()
	router.Use(AuthMiddleware(tm))
	router.GET("/providers-only", RequireRoles("Service Provider"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	providerToken, err := tm.Generate("p-1", "Service Provider", time.Hour)
	require.NoError(t, err)
	clientToken, err := tm.Generate("c-1", "Student Client", time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/providers-only", nil)
	req.Header.Set("x-access-token", providerToken)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/providers-only", nil)
	req.Header.Set("x-access-token", clientToken)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
