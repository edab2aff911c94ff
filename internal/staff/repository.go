package staff

import (
	"context"
	"errors"
	"fmt"
	"time"

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

// Repository is the principal store: it resolves and manages staff accounts.
type Repository interface {
	Create(ctx context.Context, s *Staff) error
	GetByID(ctx context.Context, id string) (*Staff, error)
	FindByEmail(ctx context.Context, email string) (*Staff, error)
	List(ctx context.Context, params request.ListParams, role string) ([]*Staff, int, error)
	Update(ctx context.Context, s *Staff) error
	Delete(ctx context.Context, id string) error
	UpdateLastLogin(ctx context.Context, id string, t time.Time) error
}

var listBuilder = listing.Builder{
	Table:        "public.staff",
	Columns:      []string{"id", "email", "password_hash", "display_name", "role", "is_active", "created_at", "last_login_at"},
	SearchFields: []string{"email", "display_name"},
	Sortable:     []string{"email", "display_name", "created_at"},
	DefaultSort:  "created_at",
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a Repository backed by PostgreSQL.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, s *Staff) error {
	const query = `
		INSERT INTO public.staff (email, password_hash, display_name, role, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query, s.Email, s.PasswordHash, s.DisplayName, s.Role, s.IsActive).
		Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return apperror.Conflict("email already in use")
		}
		return apperror.Internal(fmt.Errorf("create staff: %w", err))
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Staff, error) {
	const query = `
		SELECT id, email, password_hash, display_name, role, is_active, created_at, last_login_at
		FROM public.staff
		WHERE id = $1
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *pgxRepository) FindByEmail(ctx context.Context, email string) (*Staff, error) {
	const query = `
		SELECT id, email, password_hash, display_name, role, is_active, created_at, last_login_at
		FROM public.staff
		WHERE email = $1
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, email))
}

func (r *pgxRepository) scanOne(row pgx.Row) (*Staff, error) {
	var s Staff
	err := row.Scan(&s.ID, &s.Email, &s.PasswordHash, &s.DisplayName, &s.Role, &s.IsActive, &s.CreatedAt, &s.LastLoginAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("staff member")
		}
		return nil, apperror.Internal(fmt.Errorf("scan staff: %w", err))
	}
	return &s, nil
}

func (r *pgxRepository) List(ctx context.Context, params request.ListParams, role string) ([]*Staff, int, error) {
	filters := squirrel.Eq{}
	if role != "" {
		filters["role"] = role
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
		items []*Staff
		total int
	)

	// Page slice and total count run concurrently under the same predicate.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := r.pool.Query(gctx, selectSQL, selectArgs...)
		if err != nil {
			return fmt.Errorf("list staff: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var s Staff
			if err := rows.Scan(&s.ID, &s.Email, &s.PasswordHash, &s.DisplayName, &s.Role, &s.IsActive, &s.CreatedAt, &s.LastLoginAt); err != nil {
				return fmt.Errorf("scan staff row: %w", err)
			}
			items = append(items, &s)
		}
		return rows.Err()
	})
	g.Go(func() error {
		if err := r.pool.QueryRow(gctx, countSQL, countArgs...).Scan(&total); err != nil {
			return fmt.Errorf("count staff: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return items, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, s *Staff) error {
	const query = `
		UPDATE public.staff
		SET email = $1, display_name = $2, role = $3, is_active = $4, password_hash = $5
		WHERE id = $6
	`
	ct, err := r.pool.Exec(ctx, query, s.Email, s.DisplayName, s.Role, s.IsActive, s.PasswordHash, s.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return apperror.Conflict("email already in use")
		}
		return apperror.Internal(fmt.Errorf("update staff: %w", err))
	}
	if ct.RowsAffected() == 0 {
		return apperror.NotFound("staff member")
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM public.staff WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return apperror.Internal(fmt.Errorf("delete staff: %w", err))
	}
	if ct.RowsAffected() == 0 {
		return apperror.NotFound("staff member")
	}
	return nil
}

func (r *pgxRepository) UpdateLastLogin(ctx context.Context, id string, t time.Time) error {
	const query = `UPDATE public.staff SET last_login_at = $1 WHERE id = $2`
	if _, err := r.pool.Exec(ctx, query, t, id); err != nil {
		return apperror.Internal(fmt.Errorf("update last login: %w", err))
	}
	return nil
}
