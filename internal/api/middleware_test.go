package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoplane/admin-backend/internal/auth"
	"github.com/shoplane/admin-backend/internal/pkg/request"
	"github.com/shoplane/admin-backend/internal/staff"
)

func listAll() request.ListParams {
	return request.ListParams{Page: 1, Limit: 100, SortOrder: "desc"}
}

type roleFixture struct {
	router  *gin.Engine
	manager *auth.JWTManager
	service staff.Service
	repo    *staff.MemoryRepository
	hits    int
}

func newRoleFixture(t *testing.T, allowed ...staff.Role) *roleFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &roleFixture{
		manager: auth.NewJWTManager("test-secret", time.Hour),
		repo:    staff.NewMemoryRepository(),
	}
	f.service = staff.NewService(f.repo, auth.NewBcryptPasswordHasherWithCost(4))

	f.router = gin.New()
	f.router.GET("/gated",
		auth.SessionRequired(f.manager),
		RequireRole(f.service, allowed...),
		func(c *gin.Context) {
			f.hits++
			c.Status(http.StatusOK)
		},
	)
	return f
}

func (f *roleFixture) seed(t *testing.T, email string, role staff.Role, active bool) string {
	t.Helper()

	member := &staff.Staff{Email: email, Role: role, IsActive: active}
	f.repo.Seed(member)

	token, err := f.manager.GenerateSessionToken(member.ID, member.Email, string(member.Role))
	require.NoError(t, err)
	return token
}

func (f *roleFixture) request(token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/gated", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestRequireRoleAllows(t *testing.T) {
	f := newRoleFixture(t, staff.RoleAdmin, staff.RoleManager)

	token := f.seed(t, "manager@example.com", staff.RoleManager, true)
	w := f.request(token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, f.hits)
}

func TestRequireRoleForbidsOtherRoles(t *testing.T) {
	f := newRoleFixture(t, staff.RoleAdmin)

	token := f.seed(t, "vendor@example.com", staff.RoleVendor, true)
	w := f.request(token)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, 0, f.hits, "forbidden requests never reach the handler")
	assert.Contains(t, w.Body.String(), "insufficient permissions")
}

func TestRequireRoleWithoutSession(t *testing.T) {
	f := newRoleFixture(t, staff.RoleAdmin)

	w := f.request("")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, f.hits)
}

func TestRequireRoleDeactivatedAccount(t *testing.T) {
	f := newRoleFixture(t, staff.RoleAdmin)

	// The token is valid, but the account behind it has been deactivated.
	token := f.seed(t, "former@example.com", staff.RoleAdmin, false)
	w := f.request(token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, f.hits, "a stale token must not outlive deactivation")
}

func TestRequireRoleDeletedAccount(t *testing.T) {
	f := newRoleFixture(t, staff.RoleAdmin)

	token := f.seed(t, "ghost@example.com", staff.RoleAdmin, true)

	members, _, err := f.repo.List(context.Background(), listAll(), "")
	require.NoError(t, err)
	require.Len(t, members, 1)
	require.NoError(t, f.repo.Delete(context.Background(), members[0].ID))

	w := f.request(token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, f.hits)
}

func TestRequireRoleReflectsRoleChange(t *testing.T) {
	f := newRoleFixture(t, staff.RoleAdmin)

	token := f.seed(t, "demoted@example.com", staff.RoleAdmin, true)

	members, _, err := f.repo.List(context.Background(), listAll(), "")
	require.NoError(t, err)
	require.Len(t, members, 1)

	members[0].Role = staff.RoleCustomer
	require.NoError(t, f.repo.Update(context.Background(), members[0]))

	// The token still says ADMIN; the store is authoritative.
	w := f.request(token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, 0, f.hits)
}
