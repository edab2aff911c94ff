package http

import (
	"time"

	"github.com/shoplane/admin-backend/internal/order"
)

type OrderItemResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type OrderResponse struct {
	ID            string              `json:"id"`
	Number        string              `json:"number"`
	CustomerName  string              `json:"customer_name"`
	CustomerEmail string              `json:"customer_email"`
	Status        string              `json:"status"`
	Items         []OrderItemResponse `json:"items"`
	Total         float64             `json:"total"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

func NewResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		}
	}

	return OrderResponse{
		ID:            o.ID,
		Number:        o.Number,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		Status:        string(o.Status),
		Items:         items,
		Total:         o.Total,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

type CreateItemRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,gte=1"`
}

type CreateRequest struct {
	CustomerName  string              `json:"customer_name" binding:"required,min=1,max=200"`
	CustomerEmail string              `json:"customer_email" binding:"required,email"`
	Items         []CreateItemRequest `json:"items" binding:"required,min=1,dive"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending paid shipped delivered cancelled"`
}
