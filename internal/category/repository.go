package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/shoplane/admin-backend/internal/pkg/apperror"
	"github.com/shoplane/admin-backend/internal/pkg/listing"
	"github.com/shoplane/admin-backend/internal/pkg/request"
)

// Repository defines storage operations for categories.
type Repository interface {
	Create(ctx context.Context, cat *Category) error
	GetByID(ctx context.Context, id string) (*Category, error)
	List(ctx context.Context, params request.ListParams) ([]*Category, int, error)
	Update(ctx context.Context, cat *Category) error
	Delete(ctx context.Context, id string) error
}

var listBuilder = listing.Builder{
	Table:        "public.categories",
	Columns:      []string{"id", "name", "slug", "description", "created_at", "updated_at"},
	SearchFields: []string{"name", "description"},
	Sortable:     []string{"name", "created_at"},
	DefaultSort:  "created_at",
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a Repository backed by PostgreSQL.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, cat *Category) error {
	const query = `
		INSERT INTO public.categories (name, slug, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query, cat.Name, cat.Slug, cat.Description).
		Scan(&cat.ID, &cat.CreatedAt, &cat.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return apperror.Conflict(fmt.Sprintf("a category with slug %q already exists", cat.Slug))
		}
		return apperror.Internal(fmt.Errorf("create category: %w", err))
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Category, error) {
	const query = `
		SELECT id, name, slug, description, created_at, updated_at
		FROM public.categories
		WHERE id = $1
	`
	var cat Category
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&cat.ID, &cat.Name, &cat.Slug, &cat.Description, &cat.CreatedAt, &cat.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("category")
		}
		return nil, apperror.Internal(fmt.Errorf("get category: %w", err))
	}
	return &cat, nil
}

func (r *pgxRepository) List(ctx context.Context, params request.ListParams) ([]*Category, int, error) {
	selectSQL, selectArgs, err := listBuilder.Select(params, nil)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	countSQL, countArgs, err := listBuilder.Count(params, nil)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}

	var (
		items []*Category
		total int
	)

	// Page slice and total count run concurrently under the same predicate.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := r.pool.Query(gctx, selectSQL, selectArgs...)
		if err != nil {
			return fmt.Errorf("list categories: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var cat Category
			if err := rows.Scan(&cat.ID, &cat.Name, &cat.Slug, &cat.Description, &cat.CreatedAt, &cat.UpdatedAt); err != nil {
				return fmt.Errorf("scan category row: %w", err)
			}
			items = append(items, &cat)
		}
		return rows.Err()
	})
	g.Go(func() error {
		if err := r.pool.QueryRow(gctx, countSQL, countArgs...).Scan(&total); err != nil {
			return fmt.Errorf("count categories: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return items, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, cat *Category) error {
	const query = `
		UPDATE public.categories
		SET name = $1, slug = $2, description = $3, updated_at = now()
		WHERE id = $4
		RETURNING updated_at
	`
	err := r.pool.QueryRow(ctx, query, cat.Name, cat.Slug, cat.Description, cat.ID).
		Scan(&cat.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.NotFound("category")
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return apperror.Conflict(fmt.Sprintf("a category with slug %q already exists", cat.Slug))
		}
		return apperror.Internal(fmt.Errorf("update category: %w", err))
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM public.categories WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return apperror.Internal(fmt.Errorf("delete category: %w", err))
	}
	if ct.RowsAffected() == 0 {
		return apperror.NotFound("category")
	}
	return nil
}
