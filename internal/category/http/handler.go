package http

import (
	"github.com/gin-gonic/gin"

	"github.com/shoplane/admin-backend/internal/category"
	"github.com/shoplane/admin-backend/internal/pkg/request"
	"github.com/shoplane/admin-backend/internal/pkg/response"
)

const defaultPageSize = 10

// Handler serves the category endpoints.
type Handler struct {
	service category.Service
}

// NewHandler creates a category handler.
func NewHandler(service category.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	params := request.ParseListParams(c, defaultPageSize)

	cats, total, err := h.service.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]CategoryResponse, len(cats))
	for i, cat := range cats {
		items[i] = NewResponse(cat)
	}

	response.Paginated(c, items, params.Page, params.Limit, total)
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, request.BindingError(err))
		return
	}

	cat, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, NewResponse(cat), "")
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, request.BindingError(err))
		return
	}

	cat, err := h.service.Create(c.Request.Context(), category.CreateParams{
		Name:        body.Name,
		Description: body.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, NewResponse(cat), "category created")
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

	cat, err := h.service.Update(c.Request.Context(), uri.ID, category.UpdateParams{
		Name:        body.Name,
		Description: body.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, NewResponse(cat), "category updated")
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

	response.OK(c, gin.H{"id": uri.ID}, "category deleted")
}
