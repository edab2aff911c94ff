package api

import (
	staffHttp "github.com/shoplane/admin-backend/internal/staff/http"
)

// LoginRequest is the payload for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the session token and the authenticated account.
// The token is also set as an HTTP-only cookie for browser clients.
type LoginResponse struct {
	Token string                  `json:"token"`
	Staff staffHttp.StaffResponse `json:"staff"`
}

// MeResponse returns the current account.
type MeResponse struct {
	Staff staffHttp.StaffResponse `json:"staff"`
}
