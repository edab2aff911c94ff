package request

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// MaxPageSize is the hard upper bound for any list endpoint.
	MaxPageSize = 100
	// DefaultPageSize is used when an endpoint does not override it.
	DefaultPageSize = 20
)

// ByIDRequest is a common struct for endpoints that require an ID path parameter.
type ByIDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// ListParams holds the pagination, search and sort parameters shared by every
// list endpoint.
type ListParams struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder string // "asc" or "desc"
}

// Offset computes the store offset for the current page.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ParseListParams reads pagination parameters from the query string.
// Malformed or missing numeric values fall back to defaults instead of
// producing an error: page is clamped to [1,inf), limit to [1,MaxPageSize].
func ParseListParams(c *gin.Context, defaultLimit int) ListParams {
	if defaultLimit < 1 || defaultLimit > MaxPageSize {
		defaultLimit = DefaultPageSize
	}

	page := atoiOr(c.Query("page"), 1)
	if page < 1 {
		page = 1
	}

	limit := atoiOr(c.Query("limit"), defaultLimit)
	if limit < 1 {
		limit = 1
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	sortOrder := strings.ToLower(c.Query("sortOrder"))
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	return ListParams{
		Page:      page,
		Limit:     limit,
		Search:    strings.TrimSpace(c.Query("search")),
		SortBy:    c.Query("sortBy"),
		SortOrder: sortOrder,
	}
}

func atoiOr(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
