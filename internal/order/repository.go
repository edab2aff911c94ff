package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/shoplane/admin-backend/internal/pkg/apperror"
	"github.com/shoplane/admin-backend/internal/pkg/listing"
	"github.com/shoplane/admin-backend/internal/pkg/request"
)

// Repository defines storage operations for orders.
type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context, params request.ListParams, status string) ([]*Order, int, error)
	UpdateStatus(ctx context.Context, o *Order) error
	Delete(ctx context.Context, id string) error
}

var listBuilder = listing.Builder{
	Table:        "public.orders",
	Columns:      []string{"id", "number", "customer_name", "customer_email", "status", "items", "total", "created_at", "updated_at"},
	SearchFields: []string{"number", "customer_name", "customer_email"},
	Sortable:     []string{"number", "total", "created_at"},
	DefaultSort:  "created_at",
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a Repository backed by PostgreSQL.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, o *Order) error {
	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return apperror.Internal(fmt.Errorf("marshal order items: %w", err))
	}

	const query = `
		INSERT INTO public.orders (number, customer_name, customer_email, status, items, total)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err = r.pool.QueryRow(ctx, query,
		o.Number, o.CustomerName, o.CustomerEmail, o.Status, itemsJSON, o.Total,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return apperror.Internal(fmt.Errorf("create order: %w", err))
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Order, error) {
	const query = `
		SELECT id, number, customer_name, customer_email, status, items, total, created_at, updated_at
		FROM public.orders
		WHERE id = $1
	`
	o, err := scanOrder(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("order")
		}
		return nil, apperror.Internal(fmt.Errorf("get order: %w", err))
	}
	return o, nil
}

func scanOrder(row pgx.Row) (*Order, error) {
	var o Order
	var itemsJSON []byte
	if err := row.Scan(
		&o.ID, &o.Number, &o.CustomerName, &o.CustomerEmail,
		&o.Status, &itemsJSON, &o.Total, &o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
			return nil, fmt.Errorf("unmarshal order items: %w", err)
		}
	}
	return &o, nil
}

func (r *pgxRepository) List(ctx context.Context, params request.ListParams, status string) ([]*Order, int, error) {
	filters := squirrel.Eq{}
	if status != "" {
		filters["status"] = status
	}

	selectSQL, selectArgs, err := listBuilder.Select(params, filters)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	countSQL, countArgs, err := listBuilder.Count(params, filters)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}

	var (
		items []*Order
		total int
	)

	// Page slice and total count run concurrently under the same predicate.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := r.pool.Query(gctx, selectSQL, selectArgs...)
		if err != nil {
			return fmt.Errorf("list orders: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			o, err := scanOrder(rows)
			if err != nil {
				return fmt.Errorf("scan order row: %w", err)
			}
			items = append(items, o)
		}
		return rows.Err()
	})
	g.Go(func() error {
		if err := r.pool.QueryRow(gctx, countSQL, countArgs...).Scan(&total); err != nil {
			return fmt.Errorf("count orders: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return items, total, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, o *Order) error {
	const query = `
		UPDATE public.orders
		SET status = $1, updated_at = now()
		WHERE id = $2
		RETURNING updated_at
	`
	err := r.pool.QueryRow(ctx, query, o.Status, o.ID).Scan(&o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.NotFound("order")
		}
		return apperror.Internal(fmt.Errorf("update order status: %w", err))
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM public.orders WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return apperror.Internal(fmt.Errorf("delete order: %w", err))
	}
	if ct.RowsAffected() == 0 {
		return apperror.NotFound("order")
	}
	return nil
}
