package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform JSON wrapper returned by every endpoint.
// Success responses never carry Error; failure responses never carry Data.
type Envelope struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Error      string      `json:"error,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination describes the page window of a list response.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// NewPagination computes the pagination block, with pages = ceil(total/limit).
func NewPagination(page, limit, total int) *Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return &Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pages,
	}
}

// OK sends a 200 success envelope.
func OK(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, Envelope{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// Created sends a 201 success envelope.
func Created(c *gin.Context, data any, message string) {
	c.JSON(http.StatusCreated, Envelope{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// Paginated sends a 200 success envelope with a pagination block.
func Paginated[T any](c *gin.Context, items []T, page, limit, total int) {
	// Handle nil slice to avoid JSON outputting null
	if items == nil {
		items = make([]T, 0)
	}

	c.JSON(http.StatusOK, Envelope{
		Success:    true,
		Data:       items,
		Pagination: NewPagination(page, limit, total),
	})
}
