package http

import (
	"github.com/gin-gonic/gin"

	"github.com/shoplane/admin-backend/internal/pkg/request"
	"github.com/shoplane/admin-backend/internal/pkg/response"
	"github.com/shoplane/admin-backend/internal/staff"
)

const defaultPageSize = 10

// Handler serves the staff management endpoints.
type Handler struct {
	service staff.Service
}

// NewHandler creates a staff handler.
func NewHandler(service staff.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	params := request.ParseListParams(c, defaultPageSize)
	role := c.Query("role")

	members, total, err := h.service.List(c.Request.Context(), params, role)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]StaffResponse, len(members))
	for i, m := range members {
		items[i] = NewStaffResponse(m)
	}

	response.Paginated(c, items, params.Page, params.Limit, total)
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, request.BindingError(err))
		return
	}

	member, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, NewStaffResponse(member), "")
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, request.BindingError(err))
		return
	}

	member, err := h.service.Create(c.Request.Context(), staff.CreateParams{
		Email:       body.Email,
		Password:    body.Password,
		DisplayName: body.DisplayName,
		Role:        staff.Role(body.Role),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, NewStaffResponse(member), "staff member created")
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, request.BindingError(err))
		return
	}

	var body UpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, request.BindingError(err))
		return
	}

	params := staff.UpdateParams{
		Email:       body.Email,
		Password:    body.Password,
		DisplayName: body.DisplayName,
		IsActive:    body.IsActive,
	}
	if body.Role != nil {
		role := staff.Role(*body.Role)
		params.Role = &role
	}

	member, err := h.service.Update(c.Request.Context(), uri.ID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, NewStaffResponse(member), "staff member updated")
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, request.BindingError(err))
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"id": uri.ID}, "staff member deleted")
}
