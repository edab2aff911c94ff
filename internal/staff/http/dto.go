package http

import (
	"time"

	"github.com/shoplane/admin-backend/internal/staff"
)

// StaffResponse is the shape of staff data returned in API responses.
// The password hash never leaves the server.
type StaffResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// NewStaffResponse converts a domain staff record to its API shape.
func NewStaffResponse(s *staff.Staff) StaffResponse {
	return StaffResponse{
		ID:          s.ID,
		Email:       s.Email,
		DisplayName: s.DisplayName,
		Role:        string(s.Role),
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
		LastLoginAt: s.LastLoginAt,
	}
}

// CreateRequest defines the payload for creating a staff account.
type CreateRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"display_name" binding:"required"`
	Role        string `json:"role" binding:"required,oneof=CUSTOMER VENDOR MANAGER ADMIN"`
}

// UpdateRequest defines fields allowed to be updated via PUT /staff/:id.
// Pointers distinguish "field not sent" from "field sent empty".
type UpdateRequest struct {
	Email       *string `json:"email" binding:"omitempty,email"`
	Password    *string `json:"password" binding:"omitempty,min=8"`
	DisplayName *string `json:"display_name"`
	Role        *string `json:"role" binding:"omitempty,oneof=CUSTOMER VENDOR MANAGER ADMIN"`
	IsActive    *bool   `json:"is_active"`
}
