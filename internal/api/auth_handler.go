package api

import (
	"github.com/gin-gonic/gin"

	"github.com/shoplane/admin-backend/internal/auth"
	"github.com/shoplane/admin-backend/internal/pkg/apperror"
	"github.com/shoplane/admin-backend/internal/pkg/request"
	"github.com/shoplane/admin-backend/internal/pkg/response"
	"github.com/shoplane/admin-backend/internal/staff"
	staffHttp "github.com/shoplane/admin-backend/internal/staff/http"
)

// AuthHandler serves login, logout and session introspection.
type AuthHandler struct {
	staffService staff.Service
	jwtManager   *auth.JWTManager
	secureCookie bool
}

// NewAuthHandler creates an auth handler. secureCookie should be true in
// production so the session cookie is only sent over TLS.
func NewAuthHandler(staffService staff.Service, jwtManager *auth.JWTManager, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		staffService: staffService,
		jwtManager:   jwtManager,
		secureCookie: secureCookie,
	}
}

//
// POST /api/auth/login
//

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, request.BindingError(err))
		return
	}

	member, err := h.staffService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	token, err := h.jwtManager.GenerateSessionToken(member.ID, member.Email, string(member.Role))
	if err != nil {
		response.Error(c, apperror.Internal(err))
		return
	}

	maxAge := int(h.jwtManager.TTL().Seconds())
	c.SetCookie(auth.SessionCookieName, token, maxAge, "/", "", h.secureCookie, true)

	response.OK(c, LoginResponse{
		Token: token,
		Staff: staffHttp.NewStaffResponse(member),
	}, "logged in")
}

//
// POST /api/auth/logout
//

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(auth.SessionCookieName, "", -1, "/", "", h.secureCookie, true)
	response.OK(c, nil, "logged out")
}

//
// GET /api/auth/me
//

func (h *AuthHandler) Me(c *gin.Context) {
	principal, ok := auth.GetPrincipal(c)
	if !ok {
		response.Error(c, apperror.Unauthorized(""))
		return
	}

	member, err := h.staffService.GetByID(c.Request.Context(), principal.StaffID)
	if err != nil {
		response.Error(c, apperror.Unauthorized("invalid or expired session"))
		return
	}

	response.OK(c, MeResponse{Staff: staffHttp.NewStaffResponse(member)}, "")
}
