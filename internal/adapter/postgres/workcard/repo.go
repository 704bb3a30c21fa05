// Package workcard implements work card persistence using PostgreSQL.
//
// The single-active-card rule is enforced by the partial unique index
// ux_work_cards_active_worker; every mutation is one UPDATE guarded by the
// card's version and active status.
package workcard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/laborcard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/laborcard-backend/internal/domain"
)

// Repo provides work card persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new work card repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const cardColumns = `id, worker_id, area_id, operation_type_id, operation_code, operation_subtype_id,
order_number, item_number, shift, mode, good_parts, scrap_parts, material_usage, strips_rolls,
status, started_at, finished_at, updated_at, version`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const getByIDSQL = `SELECT ` + cardColumns + ` FROM work_cards WHERE id = $1`

// GetByID returns a work card by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WorkCard, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCard(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "work_card", id.String())
	}
	return &c, nil
}

const getActiveByWorkerSQL = `SELECT ` + cardColumns + `
FROM work_cards
WHERE worker_id = $1 AND status = 'active'`

// GetActiveByWorker returns the worker's active card.
// Returns domain.ErrNotFound when the worker has none.
func (r *Repo) GetActiveByWorker(ctx context.Context, workerID uuid.UUID) (*domain.WorkCard, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCard(q.QueryRow(ctx, getActiveByWorkerSQL, workerID))
	if err != nil {
		return nil, postgres.MapError(err, "active work_card of worker", workerID.String())
	}
	return &c, nil
}

// ListCompletedByWorker returns the worker's completed cards, most recently
// finished first, and the total number of completed cards.
func (r *Repo) ListCompletedByWorker(ctx context.Context, workerID uuid.UUID, limit, offset int) ([]domain.WorkCard, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	where := squirrel.Eq{"worker_id": workerID, "status": string(domain.CardStatusCompleted)}

	countSQL, countArgs, err := postgres.Builder().
		Select("count(*)").From("work_cards").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "work_card history", workerID.String())
	}

	listSQL, listArgs, err := postgres.Builder().
		Select(cardColumns).From("work_cards").Where(where).
		OrderBy("finished_at DESC", "id").
		Limit(uint64(limit)).Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, postgres.MapError(err, "work_card history", workerID.String())
	}

	cards, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.WorkCard, error) {
		return scanCard(row)
	})
	if err != nil {
		return nil, 0, postgres.MapError(err, "work_card history", workerID.String())
	}

	return cards, total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const createSQL = `INSERT INTO work_cards (
	id, worker_id, area_id, operation_type_id, operation_code, operation_subtype_id,
	order_number, item_number, shift, mode, good_parts, scrap_parts, material_usage, strips_rolls,
	status, started_at, updated_at, version
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, 'active', $15, $15, 1)
RETURNING ` + cardColumns

// Create inserts a new active card. A second active card for the same
// worker fails with domain.ErrCardAlreadyActive.
func (r *Repo) Create(ctx context.Context, c *domain.WorkCard) (*domain.WorkCard, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanCard(q.QueryRow(ctx, createSQL,
		c.ID, c.WorkerID, c.AreaID, c.OperationTypeID, c.OperationCode, c.OperationSubtypeID,
		c.OrderNumber, c.ItemNumber, int16(c.Shift), string(c.Mode),
		c.GoodParts, c.ScrapParts, c.MaterialUsage, c.StripsRolls,
		c.StartedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "work_card", c.ID.String())
	}
	return &created, nil
}

const updateAccumulatorsSQL = `UPDATE work_cards SET
	good_parts     = COALESCE($3, good_parts),
	scrap_parts    = COALESCE($4, scrap_parts),
	material_usage = COALESCE($5, material_usage),
	strips_rolls   = COALESCE($6, strips_rolls),
	updated_at     = $7,
	version        = version + 1
WHERE id = $1 AND version = $2 AND status = 'active'
RETURNING ` + cardColumns

// UpdateAccumulators applies patch to an active card whose version still
// equals version. Fields left nil in the patch keep their stored value.
func (r *Repo) UpdateAccumulators(ctx context.Context, id uuid.UUID, version int, patch domain.AccumulatorPatch, now time.Time) (*domain.WorkCard, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanCard(q.QueryRow(ctx, updateAccumulatorsSQL,
		id, version, patch.GoodParts, patch.ScrapParts, patch.MaterialUsage, patch.StripsRolls, now,
	))
	if err != nil {
		return nil, r.explainMiss(ctx, err, id, version)
	}
	return &updated, nil
}

const finishSQL = `UPDATE work_cards SET
	good_parts     = $3,
	scrap_parts    = $4,
	material_usage = $5,
	strips_rolls   = $6,
	status         = 'completed',
	finished_at    = $7,
	updated_at     = $7,
	version        = version + 1
WHERE id = $1 AND version = $2 AND status = 'active'
RETURNING ` + cardColumns

// Finish completes an active card with its final accumulators.
func (r *Repo) Finish(ctx context.Context, id uuid.UUID, version int, final domain.Accumulators, finishedAt time.Time) (*domain.WorkCard, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	finished, err := scanCard(q.QueryRow(ctx, finishSQL,
		id, version, final.GoodParts, final.ScrapParts, final.MaterialUsage, final.StripsRolls, finishedAt,
	))
	if err != nil {
		return nil, r.explainMiss(ctx, err, id, version)
	}
	return &finished, nil
}

// explainMiss turns a guarded UPDATE that matched no row into the reason:
// missing card, completed card, or stale version.
func (r *Repo) explainMiss(ctx context.Context, err error, id uuid.UUID, version int) error {
	if !errors.Is(err, pgx.ErrNoRows) {
		return postgres.MapError(err, "work_card", id.String())
	}

	current, getErr := r.GetByID(ctx, id)
	if getErr != nil {
		return getErr
	}

	switch {
	case !current.IsActive():
		return fmt.Errorf("work_card %s: %w", id, domain.ErrCardCompleted)
	case current.Version != version:
		return fmt.Errorf("work_card %s: version %d, stored %d: %w", id, version, current.Version, domain.ErrConflict)
	default:
		return fmt.Errorf("work_card %s: update matched no row: %w", id, domain.ErrConflict)
	}
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanCard(row pgx.Row) (domain.WorkCard, error) {
	var (
		c      domain.WorkCard
		shift  int16
		mode   string
		status string
	)
	err := row.Scan(
		&c.ID, &c.WorkerID, &c.AreaID, &c.OperationTypeID, &c.OperationCode, &c.OperationSubtypeID,
		&c.OrderNumber, &c.ItemNumber, &shift, &mode,
		&c.GoodParts, &c.ScrapParts, &c.MaterialUsage, &c.StripsRolls,
		&status, &c.StartedAt, &c.FinishedAt, &c.UpdatedAt, &c.Version,
	)
	if err != nil {
		return domain.WorkCard{}, err
	}
	c.Shift = domain.Shift(shift)
	c.Mode = domain.Mode(mode)
	c.Status = domain.CardStatus(status)
	return c, nil
}
