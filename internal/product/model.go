package product

import "time"

// Status is the publication state of a product.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

// ValidStatuses lists every assignable product status.
var ValidStatuses = []Status{StatusDraft, StatusActive, StatusArchived}

// Valid reports whether the status is a known value.
func (s Status) Valid() bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Product is a sellable item managed through the dashboard.
type Product struct {
	ID            string // UUID
	CategoryID    string
	Name          string
	Slug          string
	Description   string
	Price         float64
	Stock         int
	Status        Status
	ImagePath     *string
	ThumbnailPath *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Filter narrows product listings beyond free-text search.
type Filter struct {
	CategoryID string
	Status     string
}
