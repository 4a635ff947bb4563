package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProtectedRouter(t *testing.T, svc *Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	middleware := NewMiddleware(svc, nil)

	router := gin.New()
	router.Use(CorrelationMiddleware())
	router.GET("/protected", middleware.Handler(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetAccountID(c)})
	})
	return router
}

func TestMiddleware_ValidToken(t *testing.T) {
	svc := newTestService(t, newFakeStore())
	router := setupProtectedRouter(t, svc)

	created, err := svc.Signup("Ada", "ada", "ada@x.com", "longenough1")
	require.NoError(t, err)
	token, _, err := svc.Login("ada@x.com", "longenough1")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set(TokenHeader, token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id"`)
	assert.NotZero(t, created.ID)
}

func TestMiddleware_MissingToken(t *testing.T) {
	svc := newTestService(t, newFakeStore())
	router := setupProtectedRouter(t, svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authentication required")
}

func TestMiddleware_TamperedToken(t *testing.T) {
	svc := newTestService(t, newFakeStore())
	router := setupProtectedRouter(t, svc)

	_, err := svc.Signup("Ada", "ada", "ada@x.com", "longenough1")
	require.NoError(t, err)
	token, _, err := svc.Login("ada@x.com", "longenough1")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set(TokenHeader, token+"x")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddleware_ExpiredToken(t *testing.T) {
	svc := newTestService(t, newFakeStore())
	router := setupProtectedRouter(t, svc)

	created, err := svc.Signup("Ada", "ada", "ada@x.com", "longenough1")
	require.NoError(t, err)

	// Mint a token that expired an hour ago
	token, err := MintToken(created.ID, svcSigningKey(t, svc), -time.Hour, time.Now())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set(TokenHeader, token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token expired")
}

// svcSigningKey exposes the service's key to mint edge-case tokens in tests.
func svcSigningKey(t *testing.T, svc *Service) []byte {
	t.Helper()
	return svc.signingKey
}

func TestCorrelationMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(CorrelationMiddleware())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, GetCorrelationID(c))
	})

	t.Run("generates an ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/", nil)
		router.ServeHTTP(w, req)

		assert.NotEmpty(t, w.Body.String())
		assert.Equal(t, w.Body.String(), w.Header().Get("X-Request-ID"))
	})

	t.Run("honors a caller-provided ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/", nil)
		req.Header.Set("X-Request-ID", "caller-id-123")
		router.ServeHTTP(w, req)

		assert.Equal(t, "caller-id-123", w.Body.String())
	})
}
