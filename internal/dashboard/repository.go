package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shoplane/admin-backend/internal/pkg/apperror"
)

// SalesRow is one order line of the sales report.
type SalesRow struct {
	Number       string
	CustomerName string
	Status       string
	Total        float64
	CreatedAt    time.Time
}

// Repository defines the aggregate queries behind the dashboard.
type Repository interface {
	CountCategories(ctx context.Context) (int, error)
	CountProducts(ctx context.Context) (int, error)
	CountOrders(ctx context.Context) (int, error)
	CountStaff(ctx context.Context) (int, error)
	Revenue(ctx context.Context) (float64, error)
	OrdersByStatus(ctx context.Context) (map[string]int, error)
	SalesBetween(ctx context.Context, from, to time.Time) ([]SalesRow, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a Repository backed by PostgreSQL.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) countTable(ctx context.Context, query string) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, apperror.Internal(fmt.Errorf("dashboard count: %w", err))
	}
	return n, nil
}

func (r *pgxRepository) CountCategories(ctx context.Context) (int, error) {
	return r.countTable(ctx, `SELECT COUNT(*) FROM public.categories`)
}

func (r *pgxRepository) CountProducts(ctx context.Context) (int, error) {
	return r.countTable(ctx, `SELECT COUNT(*) FROM public.products`)
}

func (r *pgxRepository) CountOrders(ctx context.Context) (int, error) {
	return r.countTable(ctx, `SELECT COUNT(*) FROM public.orders`)
}

func (r *pgxRepository) CountStaff(ctx context.Context) (int, error) {
	return r.countTable(ctx, `SELECT COUNT(*) FROM public.staff`)
}

func (r *pgxRepository) Revenue(ctx context.Context) (float64, error) {
	const query = `
		SELECT COALESCE(SUM(total), 0)
		FROM public.orders
		WHERE status <> 'cancelled'
	`
	var revenue float64
	if err := r.pool.QueryRow(ctx, query).Scan(&revenue); err != nil {
		return 0, apperror.Internal(fmt.Errorf("dashboard revenue: %w", err))
	}
	return revenue, nil
}

func (r *pgxRepository) OrdersByStatus(ctx context.Context) (map[string]int, error) {
	const query = `
		SELECT status, COUNT(*)
		FROM public.orders
		GROUP BY status
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("orders by status: %w", err))
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, apperror.Internal(fmt.Errorf("scan status count: %w", err))
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

func (r *pgxRepository) SalesBetween(ctx context.Context, from, to time.Time) ([]SalesRow, error) {
	const query = `
		SELECT number, customer_name, status, total, created_at
		FROM public.orders
		WHERE created_at >= $1 AND created_at < $2
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("sales between: %w", err))
	}
	defer rows.Close()

	var sales []SalesRow
	for rows.Next() {
		var row SalesRow
		if err := rows.Scan(&row.Number, &row.CustomerName, &row.Status, &row.Total, &row.CreatedAt); err != nil {
			return nil, apperror.Internal(fmt.Errorf("scan sales row: %w", err))
		}
		sales = append(sales, row)
	}
	return sales, rows.Err()
}
