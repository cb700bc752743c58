package product

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"laptophub/internal/domain"
)

// DBPool is the subset of *pgxpool.Pool the repository uses.
type DBPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Repository interface {
	// ListAll returns every product in catalog order.
	ListAll(ctx context.Context) ([]domain.Product, error)
	// Upsert inserts or replaces one product at the given catalog position.
	Upsert(ctx context.Context, p domain.Product, position int) error
	// ReplaceAll upserts products in one transaction, positioned by index.
	ReplaceAll(ctx context.Context, products []domain.Product) error
}
