package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/laborcard-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedWorker creates an active worker with a unique personal ID.
func SeedWorker(t *testing.T, pool *pgxpool.Pool) domain.Worker {
	t.Helper()

	suffix := uniqueSuffix()
	w := domain.Worker{
		ID:         uuid.New(),
		PersonalID: "P-" + suffix,
		FirstName:  "Test",
		LastName:   "Worker " + suffix,
		IsActive:   true,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO workers (id, personal_id, first_name, last_name, is_active)
		 VALUES ($1, $2, $3, $4, $5)`,
		w.ID, w.PersonalID, w.FirstName, w.LastName, w.IsActive,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWorker: %v", err)
	}

	return w
}

// Hierarchy is one area with one operation type and one subtype.
type Hierarchy struct {
	Area      domain.ProductionArea
	Operation domain.OperationType
	Subtype   domain.OperationSubtype
}

// SeedHierarchy creates an active area, operation type with the given
// operation code, and subtype.
func SeedHierarchy(t *testing.T, pool *pgxpool.Pool, operationCode string) Hierarchy {
	t.Helper()
	ctx := context.Background()
	suffix := uniqueSuffix()

	h := Hierarchy{
		Area: domain.ProductionArea{
			ID: uuid.New(), Code: "A-" + suffix, Name: "Area " + suffix, IsActive: true,
		},
	}
	h.Operation = domain.OperationType{
		ID: uuid.New(), AreaID: h.Area.ID, Code: operationCode, Name: "Operation " + suffix, IsActive: true,
	}
	h.Subtype = domain.OperationSubtype{
		ID: uuid.New(), OperationTypeID: h.Operation.ID, Code: "S1", Name: "Subtype " + suffix, IsActive: true,
	}

	if _, err := pool.Exec(ctx,
		`INSERT INTO production_areas (id, code, name, is_active) VALUES ($1, $2, $3, $4)`,
		h.Area.ID, h.Area.Code, h.Area.Name, h.Area.IsActive,
	); err != nil {
		t.Fatalf("testhelper: SeedHierarchy area: %v", err)
	}
	if _, err := pool.Exec(ctx,
		`INSERT INTO operation_types (id, area_id, code, name, is_active) VALUES ($1, $2, $3, $4, $5)`,
		h.Operation.ID, h.Operation.AreaID, h.Operation.Code, h.Operation.Name, h.Operation.IsActive,
	); err != nil {
		t.Fatalf("testhelper: SeedHierarchy operation type: %v", err)
	}
	if _, err := pool.Exec(ctx,
		`INSERT INTO operation_subtypes (id, operation_type_id, code, name, is_active) VALUES ($1, $2, $3, $4, $5)`,
		h.Subtype.ID, h.Subtype.OperationTypeID, h.Subtype.Code, h.Subtype.Name, h.Subtype.IsActive,
	); err != nil {
		t.Fatalf("testhelper: SeedHierarchy subtype: %v", err)
	}

	return h
}

// SeedOrder creates an order with the given status and default item number.
func SeedOrder(t *testing.T, pool *pgxpool.Pool, status domain.OrderStatus, itemNumber string) domain.Order {
	t.Helper()

	o := domain.Order{
		OrderNumber: "ORD-" + uniqueSuffix(),
		PlannedQty:  500,
		Status:      status,
	}
	if itemNumber != "" {
		o.ItemNumber = &itemNumber
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO orders (order_number, item_number, planned_qty, completed_qty, status)
		 VALUES ($1, $2, $3, $4, $5)`,
		o.OrderNumber, o.ItemNumber, o.PlannedQty, o.CompletedQty, string(o.Status),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedOrder: %v", err)
	}

	return o
}

// SeedScrapType creates an active scrap type with a unique code.
func SeedScrapType(t *testing.T, pool *pgxpool.Pool) domain.ScrapType {
	t.Helper()

	suffix := uniqueSuffix()
	st := domain.ScrapType{
		ID:       uuid.New(),
		Code:     "SC-" + suffix,
		Name:     "Scrap " + suffix,
		IsActive: true,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO scrap_types (id, code, name, is_active) VALUES ($1, $2, $3, $4)`,
		st.ID, st.Code, st.Name, st.IsActive,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedScrapType: %v", err)
	}

	return st
}

// SeedCompletedCard inserts a completed work card for worker on h, started
// at startedAt and finished 30 minutes later.
func SeedCompletedCard(t *testing.T, pool *pgxpool.Pool, worker domain.Worker, h Hierarchy, startedAt time.Time, acc domain.Accumulators) domain.WorkCard {
	t.Helper()

	finishedAt := startedAt.Add(30 * time.Minute)
	c := domain.WorkCard{
		ID:                 uuid.New(),
		WorkerID:           worker.ID,
		AreaID:             h.Area.ID,
		OperationTypeID:    h.Operation.ID,
		OperationCode:      h.Operation.Code,
		OperationSubtypeID: h.Subtype.ID,
		OrderNumber:        "ORD-" + uniqueSuffix(),
		ItemNumber:         "ITEM-1",
		Shift:              domain.ClassifyShift(startedAt),
		Mode:               domain.ModeProduction,
		Accumulators:       acc,
		Status:             domain.CardStatusCompleted,
		StartedAt:          startedAt,
		FinishedAt:         &finishedAt,
		UpdatedAt:          finishedAt,
		Version:            2,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO work_cards (
			id, worker_id, area_id, operation_type_id, operation_code, operation_subtype_id,
			order_number, item_number, shift, mode, good_parts, scrap_parts, material_usage, strips_rolls,
			status, started_at, finished_at, updated_at, version
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		c.ID, c.WorkerID, c.AreaID, c.OperationTypeID, c.OperationCode, c.OperationSubtypeID,
		c.OrderNumber, c.ItemNumber, int16(c.Shift), string(c.Mode),
		c.GoodParts, c.ScrapParts, c.MaterialUsage, c.StripsRolls,
		string(c.Status), c.StartedAt, c.FinishedAt, c.UpdatedAt, c.Version,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCompletedCard: %v", err)
	}

	return c
}
