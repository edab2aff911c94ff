package staff

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoplane/admin-backend/internal/auth"
	"github.com/shoplane/admin-backend/internal/pkg/apperror"
	"github.com/shoplane/admin-backend/internal/pkg/request"
)

func newTestService(t *testing.T) (Service, *MemoryRepository) {
	t.Helper()

	repo := NewMemoryRepository()
	hasher := auth.NewBcryptPasswordHasherWithCost(4) // low cost keeps tests fast
	return NewService(repo, hasher), repo
}

func seedAccount(t *testing.T, svc Service, email, password string, role Role) *Staff {
	t.Helper()

	member, err := svc.Create(context.Background(), CreateParams{
		Email:       email,
		Password:    password,
		DisplayName: "Test Account",
		Role:        role,
	})
	require.NoError(t, err)
	return member
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(t)
	seedAccount(t, svc, "admin@example.com", "correct-horse", RoleAdmin)

	t.Run("valid credentials", func(t *testing.T) {
		member, err := svc.Login(context.Background(), "admin@example.com", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, RoleAdmin, member.Role)
	})

	t.Run("email is case-insensitive and trimmed", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "  ADMIN@Example.com ", "correct-horse")
		assert.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "admin@example.com", "wrong")
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusUnauthorized, appErr.Code)
		assert.Equal(t, "invalid email or password", appErr.Message)
	})

	t.Run("unknown email uses the same message", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "nobody@example.com", "correct-horse")
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusUnauthorized, appErr.Code)
		assert.Equal(t, "invalid email or password", appErr.Message)
	})

	t.Run("deactivated account uses the same message", func(t *testing.T) {
		member := seedAccount(t, svc, "gone@example.com", "correct-horse", RoleManager)

		inactive := false
		_, err := svc.Update(context.Background(), member.ID, UpdateParams{IsActive: &inactive})
		require.NoError(t, err)

		_, err = svc.Login(context.Background(), "gone@example.com", "correct-horse")
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusUnauthorized, appErr.Code)
		assert.Equal(t, "invalid email or password", appErr.Message)
	})

	t.Run("last login is recorded", func(t *testing.T) {
		member, err := svc.Login(context.Background(), "admin@example.com", "correct-horse")
		require.NoError(t, err)

		stored, err := svc.GetByID(context.Background(), member.ID)
		require.NoError(t, err)
		assert.NotNil(t, stored.LastLoginAt)
	})
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), CreateParams{
		Email:       "",
		Password:    "short",
		DisplayName: " ",
		Role:        Role("SUPERUSER"),
	})

	var vErr *apperror.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Violations, 4, "all invalid fields are reported together")

	fields := make([]string, len(vErr.Violations))
	for i, v := range vErr.Violations {
		fields[i] = v.Field
	}
	assert.ElementsMatch(t, []string{"email", "password", "display_name", "role"}, fields)
}

func TestCreateDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)
	seedAccount(t, svc, "dup@example.com", "password123", RoleVendor)

	_, err := svc.Create(context.Background(), CreateParams{
		Email:       "DUP@example.com",
		Password:    "password123",
		DisplayName: "Other",
		Role:        RoleVendor,
	})

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusConflict, appErr.Code)
}

func TestCreateNormalizesEmail(t *testing.T) {
	svc, _ := newTestService(t)

	member := seedAccount(t, svc, "  Mixed@Example.COM ", "password123", RoleManager)
	assert.Equal(t, "mixed@example.com", member.Email)
	assert.True(t, member.IsActive, "new accounts start active")
}

func TestUpdateUnknownID(t *testing.T) {
	svc, _ := newTestService(t)

	name := "New Name"
	_, err := svc.Update(context.Background(), "missing-id", UpdateParams{DisplayName: &name})

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
}

func TestListFiltersByRole(t *testing.T) {
	svc, _ := newTestService(t)
	seedAccount(t, svc, "a@example.com", "password123", RoleAdmin)
	seedAccount(t, svc, "b@example.com", "password123", RoleVendor)
	seedAccount(t, svc, "c@example.com", "password123", RoleVendor)

	params := request.ListParams{Page: 1, Limit: 10, SortOrder: "desc"}

	members, total, err := svc.List(context.Background(), params, string(RoleVendor))
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, members, 2)
}
