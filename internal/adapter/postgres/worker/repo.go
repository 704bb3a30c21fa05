// Package worker implements read access to factory workers using PostgreSQL.
package worker

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/laborcard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/laborcard-backend/internal/domain"
)

// Repo provides worker lookups backed by PostgreSQL. Workers are never
// written by the service.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new worker repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const workerColumns = `id, personal_id, first_name, last_name, is_active`

const getActiveByPersonalIDSQL = `SELECT ` + workerColumns + `
FROM workers
WHERE personal_id = $1 AND is_active`

// GetByPersonalID returns an active worker by personal identifier.
// Returns domain.ErrNotFound for unknown or deactivated workers.
func (r *Repo) GetByPersonalID(ctx context.Context, personalID string) (*domain.Worker, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	w, err := scanWorker(q.QueryRow(ctx, getActiveByPersonalIDSQL, personalID))
	if err != nil {
		return nil, postgres.MapError(err, "worker", personalID)
	}
	return &w, nil
}

const getByIDSQL = `SELECT ` + workerColumns + ` FROM workers WHERE id = $1`

// GetByID returns a worker by primary key regardless of active flag.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Worker, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	w, err := scanWorker(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "worker", id.String())
	}
	return &w, nil
}

const getByIDsSQL = `SELECT ` + workerColumns + ` FROM workers WHERE id = ANY($1::uuid[])`

// GetByIDs returns the workers with the given IDs in no particular order.
// Unknown IDs are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Worker, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getByIDsSQL, ids)
	if err != nil {
		return nil, postgres.MapError(err, "worker", "batch")
	}

	workers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Worker, error) {
		return scanWorker(row)
	})
	if err != nil {
		return nil, postgres.MapError(err, "worker", "batch")
	}
	return workers, nil
}

func scanWorker(row pgx.Row) (domain.Worker, error) {
	var w domain.Worker
	err := row.Scan(&w.ID, &w.PersonalID, &w.FirstName, &w.LastName, &w.IsActive)
	return w, err
}
