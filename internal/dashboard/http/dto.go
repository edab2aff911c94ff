package http

import (
	"time"

	"github.com/shoplane/admin-backend/internal/dashboard"
)

// OrderBrief is the compact order shape shown in the recent-orders panel.
type OrderBrief struct {
	ID           string    `json:"id"`
	Number       string    `json:"number"`
	CustomerName string    `json:"customer_name"`
	Status       string    `json:"status"`
	Total        float64   `json:"total"`
	CreatedAt    time.Time `json:"created_at"`
}

// ProductBrief is the compact product shape shown in the low-stock panel.
type ProductBrief struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Stock int     `json:"stock"`
	Price float64 `json:"price"`
}

// StatsResponse is the dashboard landing payload.
type StatsResponse struct {
	Categories       int            `json:"categories"`
	Products         int            `json:"products"`
	Orders           int            `json:"orders"`
	Staff            int            `json:"staff"`
	Revenue          float64        `json:"revenue"`
	OrdersByStatus   map[string]int `json:"orders_by_status"`
	RecentOrders     []OrderBrief   `json:"recent_orders"`
	LowStockProducts []ProductBrief `json:"low_stock_products"`
}

// NewStatsResponse converts the domain stats to their API shape.
func NewStatsResponse(s *dashboard.Stats) StatsResponse {
	recent := make([]OrderBrief, len(s.RecentOrders))
	for i, o := range s.RecentOrders {
		recent[i] = OrderBrief{
			ID:           o.ID,
			Number:       o.Number,
			CustomerName: o.CustomerName,
			Status:       string(o.Status),
			Total:        o.Total,
			CreatedAt:    o.CreatedAt,
		}
	}

	lowStock := make([]ProductBrief, len(s.LowStockProducts))
	for i, p := range s.LowStockProducts {
		lowStock[i] = ProductBrief{
			ID:    p.ID,
			Name:  p.Name,
			Stock: p.Stock,
			Price: p.Price,
		}
	}

	byStatus := s.OrdersByStatus
	if byStatus == nil {
		byStatus = make(map[string]int)
	}

	return StatsResponse{
		Categories:       s.Categories,
		Products:         s.Products,
		Orders:           s.Orders,
		Staff:            s.Staff,
		Revenue:          s.Revenue,
		OrdersByStatus:   byStatus,
		RecentOrders:     recent,
		LowStockProducts: lowStock,
	}
}
