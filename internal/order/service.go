package order

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/shoplane/admin-backend/internal/pkg/apperror"
	"github.com/shoplane/admin-backend/internal/pkg/request"
	"github.com/shoplane/admin-backend/internal/product"
)

// CreateItem is one requested line of a new order.
type CreateItem struct {
	ProductID string
	Quantity  int
}

// CreateParams carries the fields for a new order.
type CreateParams struct {
	CustomerName  string
	CustomerEmail string
	Items         []CreateItem
}

// Service defines business logic related to orders.
type Service interface {
	Create(ctx context.Context, p CreateParams) (*Order, error)
	GetByID(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context, params request.ListParams, status string) ([]*Order, int, error)
	UpdateStatus(ctx context.Context, id string, target Status) (*Order, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo        Repository
	prodService product.Service
}

// NewService creates an order service. Products are resolved at order time
// so each line carries a snapshot of the product's name and price.
func NewService(repo Repository, prodService product.Service) Service {
	return &service{
		repo:        repo,
		prodService: prodService,
	}
}

func (s *service) Create(ctx context.Context, p CreateParams) (*Order, error) {
	var violations []apperror.FieldViolation

	if strings.TrimSpace(p.CustomerName) == "" {
		violations = append(violations, apperror.FieldViolation{Field: "customer_name", Message: "is required"})
	}
	if strings.TrimSpace(p.CustomerEmail) == "" {
		violations = append(violations, apperror.FieldViolation{Field: "customer_email", Message: "is required"})
	}
	if len(p.Items) == 0 {
		violations = append(violations, apperror.FieldViolation{Field: "items", Message: "must contain at least one item"})
	}
	for i, item := range p.Items {
		if item.Quantity < 1 {
			violations = append(violations, apperror.FieldViolation{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: "must be at least 1",
			})
		}
	}
	if len(violations) > 0 {
		return nil, apperror.NewValidation(violations)
	}

	items := make([]OrderItem, 0, len(p.Items))
	var total float64
	for i, item := range p.Items {
		prod, err := s.prodService.GetByID(ctx, item.ProductID)
		if err != nil {
			// Only a missing product is the client's mistake; store
			// failures keep their own status.
			var appErr *apperror.AppError
			if errors.As(err, &appErr) && appErr.Code == http.StatusNotFound {
				return nil, apperror.NewValidation([]apperror.FieldViolation{
					{Field: fmt.Sprintf("items[%d].product_id", i), Message: "references an unknown product"},
				})
			}
			return nil, err
		}
		items = append(items, OrderItem{
			ProductID: prod.ID,
			Name:      prod.Name,
			Price:     prod.Price,
			Quantity:  item.Quantity,
		})
		total += prod.Price * float64(item.Quantity)
	}

	o := &Order{
		Number:        generateNumber(),
		CustomerName:  strings.TrimSpace(p.CustomerName),
		CustomerEmail: strings.TrimSpace(strings.ToLower(p.CustomerEmail)),
		Status:        StatusPending,
		Items:         items,
		Total:         total,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, params request.ListParams, status string) ([]*Order, int, error) {
	return s.repo.List(ctx, params, status)
}

func (s *service) UpdateStatus(ctx context.Context, id string, target Status) (*Order, error) {
	if !target.Valid() {
		return nil, apperror.NewValidation([]apperror.FieldViolation{
			{Field: "status", Message: "must be one of: pending, paid, shipped, delivered, cancelled"},
		})
	}

	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !o.Status.CanTransition(target) {
		return nil, apperror.NewValidation([]apperror.FieldViolation{
			{Field: "status", Message: fmt.Sprintf("cannot move from %q to %q", o.Status, target)},
		})
	}

	o.Status = target
	if err := s.repo.UpdateStatus(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// generateNumber produces a human-facing order number like ORD-1A2B3C4D.
func generateNumber() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "ORD-" + id[:8]
}
