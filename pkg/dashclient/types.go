package dashclient

import "time"

// Pagination mirrors the pagination block of list responses.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// ListOptions are the common list query parameters. Zero-valued fields are
// omitted from the query string so the server applies its defaults.
type ListOptions struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder string
}

type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateCategoryParams struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateCategoryParams struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type Product struct {
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

// ProductListOptions extends ListOptions with product-specific filters.
type ProductListOptions struct {
	ListOptions
	CategoryID string
	Status     string
}

type CreateProductParams struct {
	CategoryID  string  `json:"category_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Status      string  `json:"status,omitempty"`
}

type UpdateProductParams struct {
	CategoryID  *string  `json:"category_id,omitempty"`
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	Status      *string  `json:"status,omitempty"`
}

type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type Order struct {
	ID            string      `json:"id"`
	Number        string      `json:"number"`
	CustomerName  string      `json:"customer_name"`
	CustomerEmail string      `json:"customer_email"`
	Status        string      `json:"status"`
	Items         []OrderItem `json:"items"`
	Total         float64     `json:"total"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// OrderListOptions extends ListOptions with a status filter.
type OrderListOptions struct {
	ListOptions
	Status string
}

type CreateOrderItemParams struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type CreateOrderParams struct {
	CustomerName  string                  `json:"customer_name"`
	CustomerEmail string                  `json:"customer_email"`
	Items         []CreateOrderItemParams `json:"items"`
}

type Staff struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// LoginResult carries the session token and the authenticated account.
type LoginResult struct {
	Token string `json:"token"`
	Staff Staff  `json:"staff"`
}

// OrderSummary is the compact order shape in the recent-orders panel.
type OrderSummary struct {
	ID           string    `json:"id"`
	Number       string    `json:"number"`
	CustomerName string    `json:"customer_name"`
	Status       string    `json:"status"`
	Total        float64   `json:"total"`
	CreatedAt    time.Time `json:"created_at"`
}

// ProductSummary is the compact product shape in the low-stock panel.
type ProductSummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Stock int     `json:"stock"`
	Price float64 `json:"price"`
}

type Stats struct {
	Categories       int              `json:"categories"`
	Products         int              `json:"products"`
	Orders           int              `json:"orders"`
	Staff            int              `json:"staff"`
	Revenue          float64          `json:"revenue"`
	OrdersByStatus   map[string]int   `json:"orders_by_status"`
	RecentOrders     []OrderSummary   `json:"recent_orders"`
	LowStockProducts []ProductSummary `json:"low_stock_products"`
}
