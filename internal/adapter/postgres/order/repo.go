// Package order implements production order lookups using PostgreSQL.
package order

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/laborcard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/laborcard-backend/internal/domain"
)

// Repo provides order persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new order repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getByNumberSQL = `SELECT order_number, item_number, planned_qty, completed_qty, status
FROM orders
WHERE order_number = $1`

// GetByNumber returns an order regardless of its status.
func (r *Repo) GetByNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		o      domain.Order
		status string
	)
	err := q.QueryRow(ctx, getByNumberSQL, orderNumber).
		Scan(&o.OrderNumber, &o.ItemNumber, &o.PlannedQty, &o.CompletedQty, &status)
	if err != nil {
		return nil, postgres.MapError(err, "order", orderNumber)
	}
	o.Status = domain.OrderStatus(status)

	return &o, nil
}

const addCompletedSQL = `UPDATE orders SET completed_qty = completed_qty + $2 WHERE order_number = $1`

// AddCompleted adds qty good parts to the order's completed quantity.
// Returns false when no such order exists; work cards may name unknown orders.
func (r *Repo) AddCompleted(ctx context.Context, orderNumber string, qty int) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, addCompletedSQL, orderNumber, qty)
	if err != nil {
		return false, postgres.MapError(err, "order", orderNumber)
	}
	return tag.RowsAffected() > 0, nil
}
