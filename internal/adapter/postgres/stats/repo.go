// Package stats implements production statistics queries using PostgreSQL.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/laborcard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/laborcard-backend/internal/domain"
)

// Repo runs aggregate queries over work cards.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new statistics repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// AggregateProduction totals completed cards per production area, ordered
// by total good parts descending. from is inclusive and to exclusive on the
// card start time; zero values leave that side open.
func (r *Repo) AggregateProduction(ctx context.Context, from, to time.Time) ([]domain.AreaProductionStats, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder().
		Select(
			"wc.area_id",
			"pa.name",
			"count(*)",
			"COALESCE(sum(wc.good_parts), 0)",
			"COALESCE(sum(wc.scrap_parts), 0)",
			"COALESCE(sum(wc.material_usage), 0)",
			"COALESCE(round(avg(wc.good_parts), 2), 0)",
		).
		From("work_cards wc").
		Join("production_areas pa ON pa.id = wc.area_id").
		Where(squirrel.Eq{"wc.status": string(domain.CardStatusCompleted)}).
		GroupBy("wc.area_id", "pa.name").
		OrderBy("4 DESC", "pa.name")

	if !from.IsZero() {
		query = query.Where(squirrel.GtOrEq{"wc.started_at": from})
	}
	if !to.IsZero() {
		query = query.Where(squirrel.Lt{"wc.started_at": to})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build production stats query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "production_stats", "aggregate")
	}

	stats, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AreaProductionStats, error) {
		var s domain.AreaProductionStats
		err := row.Scan(
			&s.AreaID, &s.AreaName, &s.TotalCards, &s.TotalGoodParts,
			&s.TotalScrapParts, &s.TotalMaterialUsage, &s.AvgGoodParts,
		)
		return s, err
	})
	if err != nil {
		return nil, postgres.MapError(err, "production_stats", "aggregate")
	}
	return stats, nil
}
