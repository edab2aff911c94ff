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

func sessionTestRouter(t *testing.T, manager *JWTManager, hits *int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/protected", SessionRequired(manager), func(c *gin.Context) {
		*hits++
		p, ok := GetPrincipal(c)
		assert.True(t, ok, "principal must be set after the middleware")
		c.JSON(http.StatusOK, gin.H{"staff_id": p.StaffID})
	})
	return r
}

func TestSessionRequiredNoToken(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)
	hits := 0
	r := sessionTestRouter(t, manager, &hits)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, hits, "handler must not run without a session")
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestSessionRequiredBadToken(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)
	hits := 0
	r := sessionTestRouter(t, manager, &hits)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, hits)
}

func TestSessionRequiredCookie(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)
	hits := 0
	r := sessionTestRouter(t, manager, &hits)

	token, err := manager.GenerateSessionToken("staff-1", "a@b.com", "ADMIN")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, hits)
	assert.Contains(t, w.Body.String(), "staff-1")
}

func TestSessionRequiredBearerFallback(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)
	hits := 0
	r := sessionTestRouter(t, manager, &hits)

	token, err := manager.GenerateSessionToken("staff-2", "b@c.com", "MANAGER")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, hits)
}

func TestSessionRequiredExpiredToken(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute)
	hits := 0
	r := sessionTestRouter(t, manager, &hits)

	token, err := manager.GenerateSessionToken("staff-1", "a@b.com", "ADMIN")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, hits)
}
