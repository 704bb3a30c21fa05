package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/laborcard-backend/internal/domain"
)

// plantRepo upserts reference rows by their natural keys and returns the
// stored ID, so rows created earlier keep their identity.
type plantRepo interface {
	UpsertArea(ctx context.Context, a domain.ProductionArea) (uuid.UUID, error)
	UpsertOperationType(ctx context.Context, op domain.OperationType) (uuid.UUID, error)
	UpsertOperationSubtype(ctx context.Context, sub domain.OperationSubtype) (uuid.UUID, error)
	UpsertScrapType(ctx context.Context, st domain.ScrapType) (uuid.UUID, error)
	UpsertWorker(ctx context.Context, w domain.Worker) (uuid.UUID, error)
	UpsertOrder(ctx context.Context, o domain.Order) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Phase names in execution order.
const (
	PhaseAreas      = "areas"
	PhaseScrapTypes = "scrap_types"
	PhaseWorkers    = "workers"
	PhaseOrders     = "orders"
)

var allPhases = []string{PhaseAreas, PhaseScrapTypes, PhaseWorkers, PhaseOrders}

// PhaseResult holds the outcome of a single phase.
type PhaseResult struct {
	Upserted int
	Duration time.Duration
}

// Pipeline writes a Plant into storage in one transaction.
type Pipeline struct {
	log     *slog.Logger
	repo    plantRepo
	tx      txManager
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repo plantRepo, tx txManager) *Pipeline {
	return &Pipeline{
		log:     log.With("service", "seeder"),
		repo:    repo,
		tx:      tx,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after a successful Run.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// Run upserts plant. If phases is non-empty, only the listed phases run, in
// canonical order. Nothing is written when any phase fails.
func (p *Pipeline) Run(ctx context.Context, plant *Plant, phases []string) error {
	toRun, err := selectPhases(phases)
	if err != nil {
		return err
	}

	results := make(map[string]PhaseResult, len(toRun))
	err = p.tx.RunInTx(ctx, func(ctx context.Context) error {
		for _, phase := range toRun {
			start := time.Now()

			var (
				n   int
				err error
			)
			switch phase {
			case PhaseAreas:
				n, err = p.seedAreas(ctx, plant.Areas)
			case PhaseScrapTypes:
				n, err = p.seedScrapTypes(ctx, plant.ScrapTypes)
			case PhaseWorkers:
				n, err = p.seedWorkers(ctx, plant.Workers)
			case PhaseOrders:
				n, err = p.seedOrders(ctx, plant.Orders)
			}
			if err != nil {
				return fmt.Errorf("phase %s: %w", phase, err)
			}

			results[phase] = PhaseResult{Upserted: n, Duration: time.Since(start)}
			p.log.InfoContext(ctx, "phase completed",
				slog.String("phase", phase),
				slog.Int("upserted", n),
			)
		}
		return nil
	})
	if err != nil {
		return err
	}

	p.results = results
	return nil
}

func selectPhases(phases []string) ([]string, error) {
	if len(phases) == 0 {
		return allPhases, nil
	}
	for _, ph := range phases {
		if !slices.Contains(allPhases, ph) {
			return nil, fmt.Errorf("unknown phase %q (want one of %s)", ph, strings.Join(allPhases, ", "))
		}
	}
	var out []string
	for _, ph := range allPhases {
		if slices.Contains(phases, ph) {
			out = append(out, ph)
		}
	}
	return out, nil
}

// seedAreas walks the area tree top-down, threading each stored parent ID
// into its children.
func (p *Pipeline) seedAreas(ctx context.Context, areas []Area) (int, error) {
	n := 0
	for _, a := range areas {
		areaID, err := p.repo.UpsertArea(ctx, domain.ProductionArea{
			ID:       uuid.New(),
			Code:     strings.TrimSpace(a.Code),
			Name:     strings.TrimSpace(a.Name),
			IsActive: !a.Inactive,
		})
		if err != nil {
			return n, fmt.Errorf("area %s: %w", a.Code, err)
		}
		n++

		for _, op := range a.Operations {
			opID, err := p.repo.UpsertOperationType(ctx, domain.OperationType{
				ID:       uuid.New(),
				AreaID:   areaID,
				Code:     strings.TrimSpace(op.Code),
				Name:     strings.TrimSpace(op.Name),
				IsActive: !op.Inactive,
			})
			if err != nil {
				return n, fmt.Errorf("operation %s/%s: %w", a.Code, op.Code, err)
			}
			n++

			for _, sub := range op.Subtypes {
				if _, err := p.repo.UpsertOperationSubtype(ctx, domain.OperationSubtype{
					ID:              uuid.New(),
					OperationTypeID: opID,
					Code:            strings.TrimSpace(sub.Code),
					Name:            strings.TrimSpace(sub.Name),
					IsActive:        !sub.Inactive,
				}); err != nil {
					return n, fmt.Errorf("subtype %s/%s/%s: %w", a.Code, op.Code, sub.Code, err)
				}
				n++
			}
		}
	}
	return n, nil
}

func (p *Pipeline) seedScrapTypes(ctx context.Context, types []ScrapType) (int, error) {
	for i, st := range types {
		var desc *string
		if d := strings.TrimSpace(st.Description); d != "" {
			desc = &d
		}
		if _, err := p.repo.UpsertScrapType(ctx, domain.ScrapType{
			ID:          uuid.New(),
			Code:        strings.TrimSpace(st.Code),
			Name:        strings.TrimSpace(st.Name),
			Description: desc,
			IsActive:    !st.Inactive,
		}); err != nil {
			return i, fmt.Errorf("scrap type %s: %w", st.Code, err)
		}
	}
	return len(types), nil
}

func (p *Pipeline) seedWorkers(ctx context.Context, workers []Worker) (int, error) {
	for i, w := range workers {
		if _, err := p.repo.UpsertWorker(ctx, domain.Worker{
			ID:         uuid.New(),
			PersonalID: strings.TrimSpace(w.PersonalID),
			FirstName:  strings.TrimSpace(w.FirstName),
			LastName:   strings.TrimSpace(w.LastName),
			IsActive:   !w.Inactive,
		}); err != nil {
			return i, fmt.Errorf("worker %s: %w", w.PersonalID, err)
		}
	}
	return len(workers), nil
}

func (p *Pipeline) seedOrders(ctx context.Context, orders []Order) (int, error) {
	for i, o := range orders {
		status := domain.OrderStatus(o.Status)
		if status == "" {
			status = domain.OrderStatusActive
		}
		var item *string
		if it := strings.TrimSpace(o.ItemNumber); it != "" {
			item = &it
		}
		if err := p.repo.UpsertOrder(ctx, domain.Order{
			OrderNumber: strings.TrimSpace(o.Number),
			ItemNumber:  item,
			PlannedQty:  o.PlannedQty,
			Status:      status,
		}); err != nil {
			return i, fmt.Errorf("order %s: %w", o.Number, err)
		}
	}
	return len(orders), nil
}
