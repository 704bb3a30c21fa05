package rest

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/laborcard-backend/internal/domain"
	"github.com/heartmarshall/laborcard-backend/internal/report/xlsx"
	"github.com/heartmarshall/laborcard-backend/internal/service/report"
	"github.com/heartmarshall/laborcard-backend/internal/service/scrap"
	"github.com/heartmarshall/laborcard-backend/internal/transport/dataloader"
)

type scrapService interface {
	Record(ctx context.Context, registeredBy uuid.UUID, input scrap.RecordInput) (*domain.ScrapEntry, error)
	List(ctx context.Context, input scrap.ListInput) ([]domain.ScrapEntry, error)
}

type scrapExporter interface {
	ExportScrap(ctx context.Context, w io.Writer, dateFrom, dateTo string) error
}

// ScrapHandler serves the scrap ledger.
type ScrapHandler struct {
	svc    scrapService
	export scrapExporter
	log    *slog.Logger
}

// NewScrapHandler creates a ScrapHandler.
func NewScrapHandler(svc scrapService, export scrapExporter, logger *slog.Logger) *ScrapHandler {
	return &ScrapHandler{svc: svc, export: export, log: logger.With("handler", "scrap")}
}

type recordScrapRequest struct {
	WorkCardID    string          `json:"work_card_id"`
	ScrapTypeCode string          `json:"scrap_type_code"`
	Quantity      int             `json:"quantity"`
	MaterialWaste decimal.Decimal `json:"material_waste"`
	Reason        *string         `json:"reason"`
	Notes         *string         `json:"notes"`
	OrderNumber   string          `json:"order_number"`
	ItemNumber    *string         `json:"item_number"`
}

type scrapEntryResponse struct {
	ID               string    `json:"id"`
	WorkCardID       string    `json:"work_card_id"`
	ScrapTypeCode    string    `json:"scrap_type_code"`
	ScrapTypeName    string    `json:"scrap_type_name,omitempty"`
	Quantity         int       `json:"quantity"`
	MaterialWaste    string    `json:"material_waste"`
	WastePercentage  string    `json:"waste_percentage"`
	Reason           *string   `json:"reason"`
	Notes            *string   `json:"notes"`
	OrderNumber      string    `json:"order_number"`
	ItemNumber       *string   `json:"item_number"`
	RegisteredBy     string    `json:"registered_by"`
	RegisteredByName string    `json:"registered_by_name,omitempty"`
	RegisteredByPID  string    `json:"registered_by_personal_id,omitempty"`
	RegisteredAt     time.Time `json:"registered_at"`
}

type scrapSummaryResponse struct {
	Entries         int    `json:"entries"`
	TotalQuantity   int    `json:"total_quantity"`
	TotalWaste      string `json:"total_waste"`
	WastePercentage string `json:"waste_percentage"`
}

type scrapListResponse struct {
	Items   []scrapEntryResponse `json:"items"`
	Summary scrapSummaryResponse `json:"summary"`
}

// Record handles POST /api/scrap-entries.
func (h *ScrapHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req recordScrapRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	registeredBy, err := workerID(r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	cardID, err := optionalUUID("work_card_id", req.WorkCardID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	entry, err := h.svc.Record(r.Context(), registeredBy, scrap.RecordInput{
		WorkCardID:    cardID,
		ScrapTypeCode: req.ScrapTypeCode,
		Quantity:      req.Quantity,
		MaterialWaste: req.MaterialWaste,
		Reason:        req.Reason,
		Notes:         req.Notes,
		OrderNumber:   req.OrderNumber,
		ItemNumber:    req.ItemNumber,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	worker, err := dataloader.FromContext(r.Context()).WorkerByID.Load(r.Context(), entry.RegisteredBy)()
	if err != nil {
		h.log.WarnContext(r.Context(), "load registering worker", slog.String("error", err.Error()))
	} else if worker != nil {
		entry.WorkerName = worker.FullName()
		entry.WorkerPersonalID = worker.PersonalID
	}

	writeJSON(w, http.StatusCreated, toScrapEntryResponse(*entry))
}

// List handles GET /api/scrap-entries.
func (h *ScrapHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	q := r.URL.Query()
	entries, err := h.svc.List(r.Context(), scrap.ListInput{
		DateFrom: q.Get("date_from"),
		DateTo:   q.Get("date_to"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	resp := scrapListResponse{
		Items:   make([]scrapEntryResponse, len(entries)),
		Summary: toScrapSummaryResponse(scrap.Summary(entries)),
	}
	for i, e := range entries {
		resp.Items[i] = toScrapEntryResponse(e)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Export handles GET /api/scrap-entries/export.
func (h *ScrapHandler) Export(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get("date_from"), q.Get("date_to")

	var buf bytes.Buffer
	if err := h.export.ExportScrap(r.Context(), &buf, from, to); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeWorkbook(w, report.Filename("scrap", from, to), &buf)
}

func writeWorkbook(w http.ResponseWriter, filename string, buf *bytes.Buffer) {
	w.Header().Set("Content-Type", xlsx.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func toScrapEntryResponse(e domain.ScrapEntry) scrapEntryResponse {
	return scrapEntryResponse{
		ID:               e.ID.String(),
		WorkCardID:       e.WorkCardID.String(),
		ScrapTypeCode:    e.ScrapTypeCode,
		ScrapTypeName:    e.ScrapTypeName,
		Quantity:         e.Quantity,
		MaterialWaste:    e.MaterialWaste.String(),
		WastePercentage:  e.WastePercentage().StringFixed(2),
		Reason:           e.Reason,
		Notes:            e.Notes,
		OrderNumber:      e.OrderNumber,
		ItemNumber:       e.ItemNumber,
		RegisteredBy:     e.RegisteredBy.String(),
		RegisteredByName: e.WorkerName,
		RegisteredByPID:  e.WorkerPersonalID,
		RegisteredAt:     e.RegisteredAt,
	}
}

func toScrapSummaryResponse(s domain.ScrapSummary) scrapSummaryResponse {
	return scrapSummaryResponse{
		Entries:         s.Entries,
		TotalQuantity:   s.TotalQuantity,
		TotalWaste:      s.TotalWaste.String(),
		WastePercentage: s.WastePercentage.StringFixed(2),
	}
}
