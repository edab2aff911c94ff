package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/shoplane/admin-backend/internal/order"
	"github.com/shoplane/admin-backend/internal/pkg/request"
	"github.com/shoplane/admin-backend/internal/product"
)

const (
	lowStockThreshold = 5
	recentOrderCount  = 5
	lowStockListSize  = 5
)

// Stats is the aggregate view shown on the dashboard landing page.
type Stats struct {
	Categories       int
	Products         int
	Orders           int
	Staff            int
	Revenue          float64
	OrdersByStatus   map[string]int
	RecentOrders     []*order.Order
	LowStockProducts []*product.Product
}

// Service computes dashboard aggregates.
type Service interface {
	Stats(ctx context.Context) (*Stats, error)
	SalesReport(ctx context.Context, from, to time.Time) ([]byte, error)
}

type service struct {
	repo       Repository
	orderSvc   order.Service
	productSvc product.Service
}

// NewService creates a dashboard service.
func NewService(repo Repository, orderSvc order.Service, productSvc product.Service) Service {
	return &service{
		repo:       repo,
		orderSvc:   orderSvc,
		productSvc: productSvc,
	}
}

// Stats gathers every aggregate concurrently; the response is shaped only
// after all queries settle.
func (s *service) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.Categories, err = s.repo.CountCategories(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Products, err = s.repo.CountProducts(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Orders, err = s.repo.CountOrders(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Staff, err = s.repo.CountStaff(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Revenue, err = s.repo.Revenue(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.OrdersByStatus, err = s.repo.OrdersByStatus(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.RecentOrders, _, err = s.orderSvc.List(gctx, request.ListParams{
			Page:      1,
			Limit:     recentOrderCount,
			SortBy:    "created_at",
			SortOrder: "desc",
		}, "")
		return err
	})
	g.Go(func() (err error) {
		stats.LowStockProducts, err = s.productSvc.LowStock(gctx, lowStockThreshold, lowStockListSize)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

// SalesReport renders the orders of [from, to) as a PDF summary.
func (s *service) SalesReport(ctx context.Context, from, to time.Time) ([]byte, error) {
	sales, err := s.repo.SalesBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return buildSalesPDF(from, to, sales)
}
