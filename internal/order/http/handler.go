package http

import (
	"github.com/gin-gonic/gin"

	"github.com/shoplane/admin-backend/internal/order"
	"github.com/shoplane/admin-backend/internal/pkg/request"
	"github.com/shoplane/admin-backend/internal/pkg/response"
)

const defaultPageSize = 20

// Handler serves the order endpoints.
type Handler struct {
	service order.Service
}

// NewHandler creates an order handler.
func NewHandler(service order.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	params := request.ParseListParams(c, defaultPageSize)
	status := c.Query("status")

	orders, total, err := h.service.List(c.Request.Context(), params, status)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]OrderResponse, len(orders))
	for i, o := range orders {
		items[i] = NewResponse(o)
	}

	response.Paginated(c, items, params.Page, params.Limit, total)
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, request.BindingError(err))
		return
	}

	o, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, NewResponse(o), "")
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, request.BindingError(err))
		return
	}

	items := make([]order.CreateItem, len(body.Items))
	for i, it := range body.Items {
		items[i] = order.CreateItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		}
	}

	o, err := h.service.Create(c.Request.Context(), order.CreateParams{
		CustomerName:  body.CustomerName,
		CustomerEmail: body.CustomerEmail,
		Items:         items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, NewResponse(o), "order created")
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, request.BindingError(err))
		return
	}

	var body UpdateStatusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, request.BindingError(err))
		return
	}

	o, err := h.service.UpdateStatus(c.Request.Context(), uri.ID, order.Status(body.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, NewResponse(o), "order status updated")
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

	response.OK(c, gin.H{"id": uri.ID}, "order deleted")
}
