package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/shoplane/admin-backend/internal/pkg/apperror"
	"github.com/shoplane/admin-backend/internal/pkg/listing"
	"github.com/shoplane/admin-backend/internal/pkg/request"
)

// Repository defines storage operations for products.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, params request.ListParams, filter Filter) ([]*Product, int, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id string) error
	ListLowStock(ctx context.Context, threshold, limit int) ([]*Product, error)
}

var productColumns = []string{
	"id", "category_id", "name", "slug", "description",
	"price", "stock", "status", "image_path", "thumbnail_path",
	"created_at", "updated_at",
}

var listBuilder = listing.Builder{
	Table:        "public.products",
	Columns:      productColumns,
	SearchFields: []string{"name", "description"},
	Sortable:     []string{"name", "price", "stock", "created_at"},
	DefaultSort:  "created_at",
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a Repository backed by PostgreSQL.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, p *Product) error {
	const query = `
		INSERT INTO public.products (category_id, name, slug, description, price, stock, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		p.CategoryID, p.Name, p.Slug, p.Description, p.Price, p.Stock, p.Status,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				return apperror.Conflict(fmt.Sprintf("a product with slug %q already exists", p.Slug))
			case pgerrcode.ForeignKeyViolation:
				return apperror.NewValidation([]apperror.FieldViolation{
					{Field: "category_id", Message: "references an unknown category"},
				})
			}
		}
		return apperror.Internal(fmt.Errorf("create product: %w", err))
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Product, error) {
	const query = `
		SELECT id, category_id, name, slug, description, price, stock, status,
		       image_path, thumbnail_path, created_at, updated_at
		FROM public.products
		WHERE id = $1
	`
	var p Product
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.CategoryID, &p.Name, &p.Slug, &p.Description,
		&p.Price, &p.Stock, &p.Status, &p.ImagePath, &p.ThumbnailPath,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("product")
		}
		return nil, apperror.Internal(fmt.Errorf("get product: %w", err))
	}
	return &p, nil
}

func (r *pgxRepository) List(ctx context.Context, params request.ListParams, filter Filter) ([]*Product, int, error) {
	filters := squirrel.Eq{}
	if filter.CategoryID != "" {
		filters["category_id"] = filter.CategoryID
	}
	if filter.Status != "" {
		filters["status"] = filter.Status
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
		items []*Product
		total int
	)

	// Page slice and total count run concurrently under the same predicate.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := r.pool.Query(gctx, selectSQL, selectArgs...)
		if err != nil {
			return fmt.Errorf("list products: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var p Product
			if err := rows.Scan(
				&p.ID, &p.CategoryID, &p.Name, &p.Slug, &p.Description,
				&p.Price, &p.Stock, &p.Status, &p.ImagePath, &p.ThumbnailPath,
				&p.CreatedAt, &p.UpdatedAt,
			); err != nil {
				return fmt.Errorf("scan product row: %w", err)
			}
			items = append(items, &p)
		}
		return rows.Err()
	})
	g.Go(func() error {
		if err := r.pool.QueryRow(gctx, countSQL, countArgs...).Scan(&total); err != nil {
			return fmt.Errorf("count products: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return items, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, p *Product) error {
	const query = `
		UPDATE public.products
		SET category_id = $1, name = $2, slug = $3, description = $4,
		    price = $5, stock = $6, status = $7, image_path = $8,
		    thumbnail_path = $9, updated_at = now()
		WHERE id = $10
		RETURNING updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		p.CategoryID, p.Name, p.Slug, p.Description, p.Price, p.Stock,
		p.Status, p.ImagePath, p.ThumbnailPath, p.ID,
	).Scan(&p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.NotFound("product")
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return apperror.Conflict(fmt.Sprintf("a product with slug %q already exists", p.Slug))
		}
		return apperror.Internal(fmt.Errorf("update product: %w", err))
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM public.products WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return apperror.Internal(fmt.Errorf("delete product: %w", err))
	}
	if ct.RowsAffected() == 0 {
		return apperror.NotFound("product")
	}
	return nil
}

func (r *pgxRepository) ListLowStock(ctx context.Context, threshold, limit int) ([]*Product, error) {
	const query = `
		SELECT id, category_id, name, slug, description, price, stock, status,
		       image_path, thumbnail_path, created_at, updated_at
		FROM public.products
		WHERE stock < $1 AND status = 'active'
		ORDER BY stock ASC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, threshold, limit)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("list low stock: %w", err))
	}
	defer rows.Close()

	var items []*Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(
			&p.ID, &p.CategoryID, &p.Name, &p.Slug, &p.Description,
			&p.Price, &p.Stock, &p.Status, &p.ImagePath, &p.ThumbnailPath,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, apperror.Internal(fmt.Errorf("scan low stock row: %w", err))
		}
		items = append(items, &p)
	}
	return items, rows.Err()
}
