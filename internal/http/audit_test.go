package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postboard/postboard/internal/audit"
	"github.com/postboard/postboard/internal/auth"
	"github.com/postboard/postboard/internal/config"
	"github.com/postboard/postboard/internal/database"
	"github.com/postboard/postboard/internal/database/accounts"
	auditrepo "github.com/postboard/postboard/internal/database/audit"
)

func setupAuditedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewDatabase(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	svc, err := auth.NewService(accounts.NewRepository(db.DB), config.Auth{
		SigningKey:    "00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff",
		TokenValidity: 24 * time.Hour,
		BcryptCost:    4,
	})
	require.NoError(t, err)

	return NewRouter(RouterConfig{
		Database:    db,
		AuthService: svc,
		Auditor:     audit.NewService(auditrepo.NewRepository(db.DB)),
		Version:     "test",
	})
}

func TestGetAuthEvents(t *testing.T) {
	router := setupAuditedRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/signup", strings.NewReader(
		`{"displayName":"Ada","userName":"ada","email":"ada@x.com","password":"longenough1"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/login", strings.NewReader(
		`{"email":"ada@x.com","password":"longenough1"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var login auth.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	fetchEvents := func(query string) (map[string]any, int) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/auth/events"+query, nil)
		req.Header.Set(auth.TokenHeader, login.Token)
		router.ServeHTTP(w, req)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		return body, w.Code
	}

	// Events are recorded off the request path, so they show up shortly
	// after the responses do
	require.Eventually(t, func() bool {
		body, code := fetchEvents("")
		return code == http.StatusOK && body["total_events"] == float64(2)
	}, 2*time.Second, 10*time.Millisecond)

	t.Run("lists the caller's events", func(t *testing.T) {
		body, code := fetchEvents("")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, float64(2), body["total_events"])
		assert.Equal(t, float64(1), body["page"])
		assert.Len(t, body["events"], 2)
	})

	t.Run("filters by type", func(t *testing.T) {
		body, code := fetchEvents("?type=login")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, float64(1), body["total_events"])

		events := body["events"].([]any)
		require.Len(t, events, 1)
		event := events[0].(map[string]any)
		assert.Equal(t, "login", event["event_type"])
	})

	t.Run("clamps bad paging params", func(t *testing.T) {
		body, code := fetchEvents("?page=0&limit=9999")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, float64(1), body["page"])
		assert.Equal(t, float64(25), body["limit"])
	})
}

func TestGetAuthEvents_RequiresToken(t *testing.T) {
	router := setupAuditedRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/auth/events", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
