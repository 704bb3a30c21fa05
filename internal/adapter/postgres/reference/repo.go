// Package reference implements the production reference hierarchy
// (areas, operation types, subtypes) and the scrap taxonomy using PostgreSQL.
package reference

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/laborcard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/laborcard-backend/internal/domain"
)

// Repo provides read access to reference data backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new reference repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Production areas
// ---------------------------------------------------------------------------

const (
	areaColumns       = `id, code, name, is_active`
	listAreasSQL      = `SELECT ` + areaColumns + ` FROM production_areas WHERE is_active ORDER BY name`
	getAreaSQL        = `SELECT ` + areaColumns + ` FROM production_areas WHERE id = $1`
	getAreasByIDsSQL  = `SELECT ` + areaColumns + ` FROM production_areas WHERE id = ANY($1::uuid[])`
	operationColumns  = `id, area_id, code, name, is_active`
	listOperationsSQL = `SELECT ` + operationColumns + ` FROM operation_types WHERE area_id = $1 AND is_active ORDER BY name`
	getOperationSQL   = `SELECT ` + operationColumns + ` FROM operation_types WHERE id = $1`
	getOperationsSQL  = `SELECT ` + operationColumns + ` FROM operation_types WHERE id = ANY($1::uuid[])`
	subtypeColumns    = `id, operation_type_id, code, name, is_active`
	listSubtypesSQL   = `SELECT ` + subtypeColumns + ` FROM operation_subtypes WHERE operation_type_id = $1 AND is_active ORDER BY name`
	getSubtypeSQL     = `SELECT ` + subtypeColumns + ` FROM operation_subtypes WHERE id = $1`
	getSubtypesSQL    = `SELECT ` + subtypeColumns + ` FROM operation_subtypes WHERE id = ANY($1::uuid[])`
	scrapTypeColumns  = `id, code, name, description, is_active`
	listScrapTypesSQL = `SELECT ` + scrapTypeColumns + ` FROM scrap_types WHERE is_active ORDER BY name`
	getScrapTypeSQL   = `SELECT ` + scrapTypeColumns + ` FROM scrap_types WHERE code = $1`
)

// ListAreas returns active production areas ordered by name.
func (r *Repo) ListAreas(ctx context.Context) ([]domain.ProductionArea, error) {
	return queryAll(ctx, r.q(ctx), "production_area", scanArea, listAreasSQL)
}

// GetArea returns a production area by ID, active or not.
func (r *Repo) GetArea(ctx context.Context, id uuid.UUID) (*domain.ProductionArea, error) {
	a, err := scanArea(r.q(ctx).QueryRow(ctx, getAreaSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "production_area", id.String())
	}
	return &a, nil
}

// GetAreasByIDs batch-loads areas. Unknown IDs are skipped.
func (r *Repo) GetAreasByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.ProductionArea, error) {
	return queryAll(ctx, r.q(ctx), "production_area", scanArea, getAreasByIDsSQL, ids)
}

// ---------------------------------------------------------------------------
// Operation types
// ---------------------------------------------------------------------------

// ListOperationTypes returns the active operation types of an area ordered by name.
func (r *Repo) ListOperationTypes(ctx context.Context, areaID uuid.UUID) ([]domain.OperationType, error) {
	return queryAll(ctx, r.q(ctx), "operation_type", scanOperation, listOperationsSQL, areaID)
}

// GetOperationType returns an operation type by ID, active or not.
func (r *Repo) GetOperationType(ctx context.Context, id uuid.UUID) (*domain.OperationType, error) {
	o, err := scanOperation(r.q(ctx).QueryRow(ctx, getOperationSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "operation_type", id.String())
	}
	return &o, nil
}

// GetOperationTypesByIDs batch-loads operation types. Unknown IDs are skipped.
func (r *Repo) GetOperationTypesByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.OperationType, error) {
	return queryAll(ctx, r.q(ctx), "operation_type", scanOperation, getOperationsSQL, ids)
}

// ---------------------------------------------------------------------------
// Operation subtypes
// ---------------------------------------------------------------------------

// ListOperationSubtypes returns the active subtypes of an operation type ordered by name.
func (r *Repo) ListOperationSubtypes(ctx context.Context, operationTypeID uuid.UUID) ([]domain.OperationSubtype, error) {
	return queryAll(ctx, r.q(ctx), "operation_subtype", scanSubtype, listSubtypesSQL, operationTypeID)
}

// GetOperationSubtype returns a subtype by ID, active or not.
func (r *Repo) GetOperationSubtype(ctx context.Context, id uuid.UUID) (*domain.OperationSubtype, error) {
	s, err := scanSubtype(r.q(ctx).QueryRow(ctx, getSubtypeSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "operation_subtype", id.String())
	}
	return &s, nil
}

// GetOperationSubtypesByIDs batch-loads subtypes. Unknown IDs are skipped.
func (r *Repo) GetOperationSubtypesByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.OperationSubtype, error) {
	return queryAll(ctx, r.q(ctx), "operation_subtype", scanSubtype, getSubtypesSQL, ids)
}

// ---------------------------------------------------------------------------
// Scrap types
// ---------------------------------------------------------------------------

// ListScrapTypes returns active scrap types ordered by name.
func (r *Repo) ListScrapTypes(ctx context.Context) ([]domain.ScrapType, error) {
	return queryAll(ctx, r.q(ctx), "scrap_type", scanScrapType, listScrapTypesSQL)
}

// GetScrapTypeByCode returns a scrap type by its code, active or not.
func (r *Repo) GetScrapTypeByCode(ctx context.Context, code string) (*domain.ScrapType, error) {
	st, err := scanScrapType(r.q(ctx).QueryRow(ctx, getScrapTypeSQL, code))
	if err != nil {
		return nil, postgres.MapError(err, "scrap_type", code)
	}
	return &st, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.pool)
}

func queryAll[T any](ctx context.Context, q postgres.Querier, entity string, scan func(pgx.Row) (T, error), sql string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, entity, "list")
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (T, error) {
		return scan(row)
	})
	if err != nil {
		return nil, postgres.MapError(err, entity, "list")
	}
	return items, nil
}

func scanArea(row pgx.Row) (domain.ProductionArea, error) {
	var a domain.ProductionArea
	err := row.Scan(&a.ID, &a.Code, &a.Name, &a.IsActive)
	return a, err
}

func scanOperation(row pgx.Row) (domain.OperationType, error) {
	var o domain.OperationType
	err := row.Scan(&o.ID, &o.AreaID, &o.Code, &o.Name, &o.IsActive)
	return o, err
}

func scanSubtype(row pgx.Row) (domain.OperationSubtype, error) {
	var s domain.OperationSubtype
	err := row.Scan(&s.ID, &s.OperationTypeID, &s.Code, &s.Name, &s.IsActive)
	return s, err
}

func scanScrapType(row pgx.Row) (domain.ScrapType, error) {
	var st domain.ScrapType
	err := row.Scan(&st.ID, &st.Code, &st.Name, &st.Description, &st.IsActive)
	return st, err
}
