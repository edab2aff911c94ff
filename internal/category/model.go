package category

import "time"

// Category groups products for the storefront and the dashboard.
type Category struct {
	ID          string // UUID
	Name        string
	Slug        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
