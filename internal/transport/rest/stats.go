package rest

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/laborcard-backend/internal/service/report"
)

type reportService interface {
	Production(ctx context.Context, dateFrom, dateTo string) (*report.Production, error)
	ExportProduction(ctx context.Context, w io.Writer, dateFrom, dateTo string) error
}

// StatsHandler serves production statistics.
type StatsHandler struct {
	svc reportService
	log *slog.Logger
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc reportService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, log: logger.With("handler", "stats")}
}

type areaStatsResponse struct {
	AreaID             string `json:"area_id"`
	AreaName           string `json:"area_name"`
	TotalCards         int    `json:"total_cards"`
	TotalGoodParts     int    `json:"total_good_parts"`
	TotalScrapParts    int    `json:"total_scrap_parts"`
	TotalMaterialUsage string `json:"total_material_usage"`
	AvgGoodParts       string `json:"avg_good_parts"`
}

type productionResponse struct {
	From  *time.Time          `json:"from"`
	To    *time.Time          `json:"to"`
	Areas []areaStatsResponse `json:"areas"`
}

// Production handles GET /api/statistics/production.
func (h *StatsHandler) Production(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p, err := h.svc.Production(r.Context(), q.Get("date_from"), q.Get("date_to"))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	resp := productionResponse{Areas: make([]areaStatsResponse, len(p.Areas))}
	if !p.Period.From.IsZero() {
		resp.From = &p.Period.From
	}
	if !p.Period.To.IsZero() {
		resp.To = &p.Period.To
	}
	for i, a := range p.Areas {
		resp.Areas[i] = areaStatsResponse{
			AreaID:             a.AreaID.String(),
			AreaName:           a.AreaName,
			TotalCards:         a.TotalCards,
			TotalGoodParts:     a.TotalGoodParts,
			TotalScrapParts:    a.TotalScrapParts,
			TotalMaterialUsage: a.TotalMaterialUsage.String(),
			AvgGoodParts:       a.AvgGoodParts.StringFixed(2),
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Export handles GET /api/statistics/production/export.
func (h *StatsHandler) Export(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get("date_from"), q.Get("date_to")

	var buf bytes.Buffer
	if err := h.svc.ExportProduction(r.Context(), &buf, from, to); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeWorkbook(w, report.Filename("production", from, to), &buf)
}
