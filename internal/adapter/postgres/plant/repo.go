// Package plant upserts plant reference data for the seeder.
package plant

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/laborcard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/laborcard-backend/internal/domain"
)

// Repo writes reference rows keyed by their natural codes.
type Repo struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// UpsertArea inserts or renames an area by code and returns its stored ID.
func (r *Repo) UpsertArea(ctx context.Context, a domain.ProductionArea) (uuid.UUID, error) {
	return r.upsertReturningID(ctx, postgres.Builder().
		Insert("production_areas").
		Columns("id", "code", "name", "is_active").
		Values(a.ID, a.Code, a.Name, a.IsActive).
		Suffix("ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name, is_active = EXCLUDED.is_active RETURNING id"),
		"production_area", a.Code)
}

// UpsertOperationType keys on (area_id, code).
func (r *Repo) UpsertOperationType(ctx context.Context, op domain.OperationType) (uuid.UUID, error) {
	return r.upsertReturningID(ctx, postgres.Builder().
		Insert("operation_types").
		Columns("id", "area_id", "code", "name", "is_active").
		Values(op.ID, op.AreaID, op.Code, op.Name, op.IsActive).
		Suffix("ON CONFLICT (area_id, code) DO UPDATE SET name = EXCLUDED.name, is_active = EXCLUDED.is_active RETURNING id"),
		"operation_type", op.Code)
}

// UpsertOperationSubtype keys on (operation_type_id, code).
func (r *Repo) UpsertOperationSubtype(ctx context.Context, sub domain.OperationSubtype) (uuid.UUID, error) {
	return r.upsertReturningID(ctx, postgres.Builder().
		Insert("operation_subtypes").
		Columns("id", "operation_type_id", "code", "name", "is_active").
		Values(sub.ID, sub.OperationTypeID, sub.Code, sub.Name, sub.IsActive).
		Suffix("ON CONFLICT (operation_type_id, code) DO UPDATE SET name = EXCLUDED.name, is_active = EXCLUDED.is_active RETURNING id"),
		"operation_subtype", sub.Code)
}

func (r *Repo) UpsertScrapType(ctx context.Context, st domain.ScrapType) (uuid.UUID, error) {
	return r.upsertReturningID(ctx, postgres.Builder().
		Insert("scrap_types").
		Columns("id", "code", "name", "description", "is_active").
		Values(st.ID, st.Code, st.Name, st.Description, st.IsActive).
		Suffix("ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name, description = EXCLUDED.description, is_active = EXCLUDED.is_active RETURNING id"),
		"scrap_type", st.Code)
}

// UpsertWorker keys on personal_id.
func (r *Repo) UpsertWorker(ctx context.Context, w domain.Worker) (uuid.UUID, error) {
	return r.upsertReturningID(ctx, postgres.Builder().
		Insert("workers").
		Columns("id", "personal_id", "first_name", "last_name", "is_active").
		Values(w.ID, w.PersonalID, w.FirstName, w.LastName, w.IsActive).
		Suffix("ON CONFLICT (personal_id) DO UPDATE SET first_name = EXCLUDED.first_name, last_name = EXCLUDED.last_name, is_active = EXCLUDED.is_active RETURNING id"),
		"worker", w.PersonalID)
}

// UpsertOrder keys on order_number. The completed quantity belongs to the
// shop floor and is never overwritten.
func (r *Repo) UpsertOrder(ctx context.Context, o domain.Order) error {
	query, args, err := postgres.Builder().
		Insert("orders").
		Columns("order_number", "item_number", "planned_qty", "status").
		Values(o.OrderNumber, o.ItemNumber, o.PlannedQty, string(o.Status)).
		Suffix("ON CONFLICT (order_number) DO UPDATE SET item_number = EXCLUDED.item_number, planned_qty = EXCLUDED.planned_qty, status = EXCLUDED.status").
		ToSql()
	if err != nil {
		return fmt.Errorf("build order upsert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "order", o.OrderNumber)
	}
	return nil
}

func (r *Repo) upsertReturningID(ctx context.Context, b squirrel.InsertBuilder, entity, key string) (uuid.UUID, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("build %s upsert: %w", entity, err)
	}

	var id uuid.UUID
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, postgres.MapError(err, entity, key)
	}
	return id, nil
}
