// Package scrap implements the append-only scrap ledger using PostgreSQL.
// There is no update or delete path; a trigger rejects both at the table.
package scrap

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/laborcard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/laborcard-backend/internal/domain"
)

// Repo provides scrap entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new scrap repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `INSERT INTO scrap_entries (
	id, work_card_id, scrap_type_id, quantity, material_waste, reason, notes,
	order_number, item_number, registered_by, registered_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

// Create appends a scrap entry. A missing work card, scrap type or
// registering worker fails with domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, e *domain.ScrapEntry) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, createSQL,
		e.ID, e.WorkCardID, e.ScrapTypeID, e.Quantity, e.MaterialWaste, e.Reason, e.Notes,
		e.OrderNumber, e.ItemNumber, e.RegisteredBy, e.RegisteredAt,
	)
	if err != nil {
		return postgres.MapError(err, "scrap_entry", e.ID.String())
	}
	return nil
}

// List returns entries newest first, joined with scrap type and worker names.
func (r *Repo) List(ctx context.Context, f domain.ScrapFilter) ([]domain.ScrapEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder().
		Select(
			"se.id", "se.work_card_id", "se.scrap_type_id", "st.code", "st.name",
			"se.quantity", "se.material_waste", "se.reason", "se.notes",
			"se.order_number", "se.item_number", "se.registered_by", "se.registered_at",
			"w.first_name", "w.last_name", "w.personal_id",
		).
		From("scrap_entries se").
		Join("scrap_types st ON st.id = se.scrap_type_id").
		Join("workers w ON w.id = se.registered_by").
		OrderBy("se.registered_at DESC", "se.id").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset))

	if !f.From.IsZero() {
		query = query.Where(squirrel.GtOrEq{"se.registered_at": f.From})
	}
	if !f.To.IsZero() {
		query = query.Where(squirrel.Lt{"se.registered_at": f.To})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build scrap list query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "scrap_entry", "list")
	}

	entries, err := pgx.CollectRows(rows, scanEntry)
	if err != nil {
		return nil, postgres.MapError(err, "scrap_entry", "list")
	}
	return entries, nil
}

func scanEntry(row pgx.CollectableRow) (domain.ScrapEntry, error) {
	var (
		e                   domain.ScrapEntry
		firstName, lastName string
	)
	err := row.Scan(
		&e.ID, &e.WorkCardID, &e.ScrapTypeID, &e.ScrapTypeCode, &e.ScrapTypeName,
		&e.Quantity, &e.MaterialWaste, &e.Reason, &e.Notes,
		&e.OrderNumber, &e.ItemNumber, &e.RegisteredBy, &e.RegisteredAt,
		&firstName, &lastName, &e.WorkerPersonalID,
	)
	if err != nil {
		return domain.ScrapEntry{}, err
	}
	e.WorkerName = domain.Worker{FirstName: firstName, LastName: lastName}.FullName()
	return e, nil
}
