package order

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoplane/admin-backend/internal/pkg/apperror"
	"github.com/shoplane/admin-backend/internal/pkg/request"
	"github.com/shoplane/admin-backend/internal/product"
)

// fakeRepository keeps orders in a map with pgx-equivalent semantics.
type fakeRepository struct {
	byID map[string]*Order
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byID: make(map[string]*Order)}
}

func (r *fakeRepository) Create(_ context.Context, o *Order) error {
	o.ID = uuid.NewString()
	o.CreatedAt = time.Now()
	o.UpdatedAt = o.CreatedAt
	cp := *o
	r.byID[o.ID] = &cp
	return nil
}

func (r *fakeRepository) GetByID(_ context.Context, id string) (*Order, error) {
	o, ok := r.byID[id]
	if !ok {
		return nil, apperror.NotFound("order")
	}
	cp := *o
	return &cp, nil
}

func (r *fakeRepository) List(_ context.Context, params request.ListParams, status string) ([]*Order, int, error) {
	var matched []*Order
	for _, o := range r.byID {
		if status != "" && string(o.Status) != status {
			continue
		}
		cp := *o
		matched = append(matched, &cp)
	}
	return matched, len(matched), nil
}

func (r *fakeRepository) UpdateStatus(_ context.Context, o *Order) error {
	stored, ok := r.byID[o.ID]
	if !ok {
		return apperror.NotFound("order")
	}
	stored.Status = o.Status
	stored.UpdatedAt = time.Now()
	return nil
}

func (r *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return apperror.NotFound("order")
	}
	delete(r.byID, id)
	return nil
}

// fakeProductService resolves products from a fixed map; only GetByID is
// exercised by the order service. Setting lookupErr makes every lookup
// fail with that error.
type fakeProductService struct {
	byID      map[string]*product.Product
	lookupErr error
}

func (s *fakeProductService) GetByID(_ context.Context, id string) (*product.Product, error) {
	if s.lookupErr != nil {
		return nil, s.lookupErr
	}
	p, ok := s.byID[id]
	if !ok {
		return nil, apperror.NotFound("product")
	}
	return p, nil
}

func (s *fakeProductService) Create(context.Context, product.CreateParams) (*product.Product, error) {
	return nil, apperror.Internal(nil)
}

func (s *fakeProductService) List(context.Context, request.ListParams, product.Filter) ([]*product.Product, int, error) {
	return nil, 0, nil
}

func (s *fakeProductService) Update(context.Context, string, product.UpdateParams) (*product.Product, error) {
	return nil, apperror.Internal(nil)
}

func (s *fakeProductService) Delete(context.Context, string) error { return nil }

func (s *fakeProductService) UploadImage(context.Context, string, *multipart.FileHeader) (*product.Product, error) {
	return nil, apperror.Internal(nil)
}

func (s *fakeProductService) LowStock(context.Context, int, int) ([]*product.Product, error) {
	return nil, nil
}

func testCatalog() (*fakeProductService, string, string) {
	lampID := uuid.NewString()
	deskID := uuid.NewString()
	return &fakeProductService{byID: map[string]*product.Product{
		lampID: {ID: lampID, Name: "Desk Lamp", Price: 25.50},
		deskID: {ID: deskID, Name: "Standing Desk", Price: 400},
	}}, lampID, deskID
}

func TestCreateSnapshotsProducts(t *testing.T) {
	catalog, lampID, deskID := testCatalog()
	svc := NewService(newFakeRepository(), catalog)

	o, err := svc.Create(context.Background(), CreateParams{
		CustomerName:  "Ada Lovelace",
		CustomerEmail: "Ada@Example.com",
		Items: []CreateItem{
			{ProductID: lampID, Quantity: 2},
			{ProductID: deskID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, "ada@example.com", o.CustomerEmail)
	assert.True(t, strings.HasPrefix(o.Number, "ORD-"), o.Number)
	assert.Len(t, o.Number, len("ORD-")+8)

	require.Len(t, o.Items, 2)
	assert.Equal(t, "Desk Lamp", o.Items[0].Name, "item carries the product name snapshot")
	assert.Equal(t, 25.50, o.Items[0].Price)
	assert.InDelta(t, 2*25.50+400, o.Total, 0.001)
}

func TestCreateValidationAggregates(t *testing.T) {
	catalog, _, _ := testCatalog()
	svc := NewService(newFakeRepository(), catalog)

	_, err := svc.Create(context.Background(), CreateParams{})

	var vErr *apperror.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Violations, 3)
}

func TestCreateUnknownProduct(t *testing.T) {
	catalog, _, _ := testCatalog()
	svc := NewService(newFakeRepository(), catalog)

	_, err := svc.Create(context.Background(), CreateParams{
		CustomerName:  "Ada",
		CustomerEmail: "ada@example.com",
		Items:         []CreateItem{{ProductID: uuid.NewString(), Quantity: 1}},
	})

	var vErr *apperror.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Violations[0].Field, "product_id")
}

func TestCreateCatalogFailureKeepsStatus(t *testing.T) {
	catalog, lampID, _ := testCatalog()
	catalog.lookupErr = apperror.Internal(errors.New("connection refused"))
	svc := NewService(newFakeRepository(), catalog)

	_, err := svc.Create(context.Background(), CreateParams{
		CustomerName:  "Ada",
		CustomerEmail: "ada@example.com",
		Items:         []CreateItem{{ProductID: lampID, Quantity: 1}},
	})

	var vErr *apperror.ValidationError
	assert.False(t, errors.As(err, &vErr), "a catalog outage is not the caller's mistake")

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
}

func TestUpdateStatusHappyPath(t *testing.T) {
	catalog, lampID, _ := testCatalog()
	repo := newFakeRepository()
	svc := NewService(repo, catalog)

	o, err := svc.Create(context.Background(), CreateParams{
		CustomerName:  "Ada",
		CustomerEmail: "ada@example.com",
		Items:         []CreateItem{{ProductID: lampID, Quantity: 1}},
	})
	require.NoError(t, err)

	o, err = svc.UpdateStatus(context.Background(), o.ID, StatusPaid)
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, o.Status)

	o, err = svc.UpdateStatus(context.Background(), o.ID, StatusShipped)
	require.NoError(t, err)
	assert.Equal(t, StatusShipped, o.Status)

	o, err = svc.UpdateStatus(context.Background(), o.ID, StatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, StatusDelivered, o.Status)
}

func TestUpdateStatusRejectsIllegalTransition(t *testing.T) {
	catalog, lampID, _ := testCatalog()
	svc := NewService(newFakeRepository(), catalog)

	o, err := svc.Create(context.Background(), CreateParams{
		CustomerName:  "Ada",
		CustomerEmail: "ada@example.com",
		Items:         []CreateItem{{ProductID: lampID, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), o.ID, StatusDelivered)

	var vErr *apperror.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Message, "cannot move")
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	catalog, _, _ := testCatalog()
	svc := NewService(newFakeRepository(), catalog)

	_, err := svc.UpdateStatus(context.Background(), uuid.NewString(), Status("refunded"))

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	catalog, _, _ := testCatalog()
	svc := NewService(newFakeRepository(), catalog)

	_, err := svc.UpdateStatus(context.Background(), uuid.NewString(), StatusPaid)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
}
