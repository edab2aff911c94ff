package http

import (
	"time"

	"github.com/shoplane/admin-backend/internal/product"
)

type ProductResponse struct {
	ID            string    `json:"id"`
	CategoryID    string    `json:"category_id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	Stock         int       `json:"stock"`
	Status        string    `json:"status"`
	ImagePath     *string   `json:"image_path,omitempty"`
	ThumbnailPath *string   `json:"thumbnail_path,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		CategoryID:    p.CategoryID,
		Name:          p.Name,
		Slug:          p.Slug,
		Description:   p.Description,
		Price:         p.Price,
		Stock:         p.Stock,
		Status:        string(p.Status),
		ImagePath:     p.ImagePath,
		ThumbnailPath: p.ThumbnailPath,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

type CreateRequest struct {
	CategoryID  string  `json:"category_id" binding:"required,uuid"`
	Name        string  `json:"name" binding:"required,min=1,max=200"`
	Description string  `json:"description" binding:"max=5000"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Stock       int     `json:"stock" binding:"gte=0"`
	Status      string  `json:"status" binding:"omitempty,oneof=draft active archived"`
}

type UpdateRequest struct {
	CategoryID  *string  `json:"category_id" binding:"omitempty,uuid"`
	Name        *string  `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string  `json:"description" binding:"omitempty,max=5000"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	Stock       *int     `json:"stock" binding:"omitempty,gte=0"`
	Status      *string  `json:"status" binding:"omitempty,oneof=draft active archived"`
}
