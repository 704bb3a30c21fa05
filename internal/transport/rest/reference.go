package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/laborcard-backend/internal/domain"
	"github.com/heartmarshall/laborcard-backend/internal/service/reference"
)

type referenceService interface {
	ListAreas(ctx context.Context) ([]domain.ProductionArea, error)
	ListOperationTypes(ctx context.Context, areaID uuid.UUID) ([]domain.OperationType, error)
	ListOperationSubtypes(ctx context.Context, operationTypeID uuid.UUID) ([]domain.OperationSubtype, error)
	ListScrapTypes(ctx context.Context) ([]domain.ScrapType, error)
	GetOrder(ctx context.Context, orderNumber string) (*domain.Order, error)
	CurrentShift() reference.ShiftInfo
}

// ReferenceHandler serves the read-only catalogue a kiosk selects from.
type ReferenceHandler struct {
	svc referenceService
	log *slog.Logger
}

// NewReferenceHandler creates a ReferenceHandler.
func NewReferenceHandler(svc referenceService, logger *slog.Logger) *ReferenceHandler {
	return &ReferenceHandler{svc: svc, log: logger.With("handler", "reference")}
}

type namedResponse struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type scrapTypeResponse struct {
	ID          string  `json:"id"`
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type orderResponse struct {
	OrderNumber  string  `json:"order_number"`
	ItemNumber   *string `json:"item_number"`
	PlannedQty   int     `json:"planned_qty"`
	CompletedQty int     `json:"completed_qty"`
	Status       string  `json:"status"`
}

type shiftResponse struct {
	Shift     int       `json:"shift"`
	Start     string    `json:"start"`
	End       string    `json:"end"`
	LocalTime time.Time `json:"local_time"`
}

// Areas handles GET /api/production-areas.
func (h *ReferenceHandler) Areas(w http.ResponseWriter, r *http.Request) {
	areas, err := h.svc.ListAreas(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	resp := make([]namedResponse, len(areas))
	for i, a := range areas {
		resp[i] = namedResponse{ID: a.ID.String(), Code: a.Code, Name: a.Name}
	}
	writeJSON(w, http.StatusOK, resp)
}

// OperationTypes handles GET /api/work-types/{areaId}.
func (h *ReferenceHandler) OperationTypes(w http.ResponseWriter, r *http.Request) {
	areaID, err := pathUUID(r, "areaId")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	ops, err := h.svc.ListOperationTypes(r.Context(), areaID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	resp := make([]namedResponse, len(ops))
	for i, o := range ops {
		resp[i] = namedResponse{ID: o.ID.String(), Code: o.Code, Name: o.Name}
	}
	writeJSON(w, http.StatusOK, resp)
}

// OperationSubtypes handles GET /api/work-subtypes/{workTypeId}.
func (h *ReferenceHandler) OperationSubtypes(w http.ResponseWriter, r *http.Request) {
	opID, err := pathUUID(r, "workTypeId")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	subs, err := h.svc.ListOperationSubtypes(r.Context(), opID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	resp := make([]namedResponse, len(subs))
	for i, s := range subs {
		resp[i] = namedResponse{ID: s.ID.String(), Code: s.Code, Name: s.Name}
	}
	writeJSON(w, http.StatusOK, resp)
}

// ScrapTypes handles GET /api/scrap-types.
func (h *ReferenceHandler) ScrapTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.svc.ListScrapTypes(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	resp := make([]scrapTypeResponse, len(types))
	for i, t := range types {
		resp[i] = scrapTypeResponse{ID: t.ID.String(), Code: t.Code, Name: t.Name, Description: t.Description}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Order handles GET /api/orders/{orderNumber}.
func (h *ReferenceHandler) Order(w http.ResponseWriter, r *http.Request) {
	order, err := h.svc.GetOrder(r.Context(), r.PathValue("orderNumber"))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, orderResponse{
		OrderNumber:  order.OrderNumber,
		ItemNumber:   order.ItemNumber,
		PlannedQty:   order.PlannedQty,
		CompletedQty: order.CompletedQty,
		Status:       order.Status.String(),
	})
}

// Shift handles GET /api/shift.
func (h *ReferenceHandler) Shift(w http.ResponseWriter, r *http.Request) {
	info := h.svc.CurrentShift()
	writeJSON(w, http.StatusOK, shiftResponse{
		Shift:     int(info.Shift),
		Start:     info.Start,
		End:       info.End,
		LocalTime: info.LocalTime,
	})
}
