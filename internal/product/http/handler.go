package http

import (
	"github.com/gin-gonic/gin"

	"github.com/shoplane/admin-backend/internal/pkg/apperror"
	"github.com/shoplane/admin-backend/internal/pkg/request"
	"github.com/shoplane/admin-backend/internal/pkg/response"
	"github.com/shoplane/admin-backend/internal/product"
)

const defaultPageSize = 20

// Handler serves the product endpoints.
type Handler struct {
	service product.Service
}

// NewHandler creates a product handler.
func NewHandler(service product.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	params := request.ParseListParams(c, defaultPageSize)
	filter := product.Filter{
		CategoryID: c.Query("category_id"),
		Status:     c.Query("status"),
	}

	products, total, err := h.service.List(c.Request.Context(), params, filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ProductResponse, len(products))
	for i, p := range products {
		items[i] = NewResponse(p)
	}

	response.Paginated(c, items, params.Page, params.Limit, total)
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, request.BindingError(err))
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, NewResponse(p), "")
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, request.BindingError(err))
		return
	}

	p, err := h.service.Create(c.Request.Context(), product.CreateParams{
		CategoryID:  body.CategoryID,
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
		Stock:       body.Stock,
		Status:      product.Status(body.Status),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, NewResponse(p), "product created")
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

	params := product.UpdateParams{
		CategoryID:  body.CategoryID,
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
		Stock:       body.Stock,
	}
	if body.Status != nil {
		status := product.Status(*body.Status)
		params.Status = &status
	}

	p, err := h.service.Update(c.Request.Context(), uri.ID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, NewResponse(p), "product updated")
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

	response.OK(c, gin.H{"id": uri.ID}, "product deleted")
}

func (h *Handler) UploadImage(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, request.BindingError(err))
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		response.Error(c, apperror.NewValidation([]apperror.FieldViolation{
			{Field: "image", Message: "file is required"},
		}))
		return
	}

	p, err := h.service.UploadImage(c.Request.Context(), uri.ID, header)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, NewResponse(p), "product image updated")
}
