package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/laborcard-backend/internal/domain"
	"github.com/heartmarshall/laborcard-backend/internal/service/workcard"
	"github.com/heartmarshall/laborcard-backend/internal/transport/dataloader"
)

type workcardService interface {
	Resume(ctx context.Context, workerID uuid.UUID) (*workcard.Session, error)
	Start(ctx context.Context, sess *workcard.Session) (*domain.WorkCard, error)
	Update(ctx context.Context, sess *workcard.Session, patch domain.AccumulatorPatch) (*domain.WorkCard, error)
	Finish(ctx context.Context, sess *workcard.Session, final workcard.Quantities) (*domain.WorkCard, error)
	History(ctx context.Context, workerID uuid.UUID, limit, offset int) ([]domain.WorkCard, int, error)
}

type operationLookup interface {
	GetOperationType(ctx context.Context, id uuid.UUID) (*domain.OperationType, error)
}

// WorkCardHandler drives the work card lifecycle. Each request rebuilds the
// worker's session from storage, so kiosks hold no server-side state.
type WorkCardHandler struct {
	svc workcardService
	ops operationLookup
	log *slog.Logger
	now func() time.Time
}

// NewWorkCardHandler creates a WorkCardHandler.
func NewWorkCardHandler(svc workcardService, ops operationLookup, logger *slog.Logger) *WorkCardHandler {
	return &WorkCardHandler{
		svc: svc,
		ops: ops,
		log: logger.With("handler", "workcard"),
		now: time.Now,
	}
}

type quantitiesRequest struct {
	GoodParts     quantity `json:"good_parts"`
	ScrapParts    quantity `json:"scrap_parts"`
	MaterialUsage quantity `json:"material_usage"`
	StripsRolls   quantity `json:"strips_rolls"`
}

func (q quantitiesRequest) toQuantities() workcard.Quantities {
	return workcard.Quantities{
		GoodParts:     string(q.GoodParts),
		ScrapParts:    string(q.ScrapParts),
		MaterialUsage: string(q.MaterialUsage),
		StripsRolls:   string(q.StripsRolls),
	}
}

type startRequest struct {
	Mode               string `json:"mode"`
	AreaID             string `json:"area_id"`
	OperationTypeID    string `json:"operation_type_id"`
	OperationSubtypeID string `json:"operation_subtype_id"`
	OrderNumber        string `json:"order_number"`
	ItemNumber         string `json:"item_number"`
	quantitiesRequest
}

type updateRequest struct {
	GoodParts     *int             `json:"good_parts"`
	ScrapParts    *int             `json:"scrap_parts"`
	MaterialUsage *decimal.Decimal `json:"material_usage"`
	StripsRolls   *int             `json:"strips_rolls"`
}

type workCardResponse struct {
	ID                 string     `json:"id"`
	WorkerID           string     `json:"worker_id"`
	AreaID             string     `json:"area_id"`
	OperationTypeID    string     `json:"operation_type_id"`
	OperationCode      string     `json:"operation_code"`
	OperationSubtypeID string     `json:"operation_subtype_id"`
	OrderNumber        string     `json:"order_number"`
	ItemNumber         string     `json:"item_number"`
	Shift              int        `json:"shift"`
	Mode               string     `json:"mode"`
	GoodParts          int        `json:"good_parts"`
	ScrapParts         int        `json:"scrap_parts"`
	MaterialUsage      string     `json:"material_usage"`
	StripsRolls        int        `json:"strips_rolls"`
	Status             string     `json:"status"`
	StartedAt          time.Time  `json:"started_at"`
	FinishedAt         *time.Time `json:"finished_at"`
	DurationSeconds    int64      `json:"duration_seconds"`
	Version            int        `json:"version"`

	AreaName             string `json:"area_name,omitempty"`
	OperationTypeName    string `json:"operation_type_name,omitempty"`
	OperationSubtypeName string `json:"operation_subtype_name,omitempty"`
}

type historyResponse struct {
	Items []workCardResponse `json:"items"`
	Total int                `json:"total"`
}

// Active handles GET /api/work-cards/active.
func (h *WorkCardHandler) Active(w http.ResponseWriter, r *http.Request) {
	sess, err := h.resume(r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	if sess.Current == nil {
		writeError(w, http.StatusNotFound, "no active work card")
		return
	}
	writeJSON(w, http.StatusOK, h.toResponse(*sess.Current))
}

// History handles GET /api/work-cards.
func (h *WorkCardHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := workerID(r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
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

	cards, total, err := h.svc.History(r.Context(), id, limit, offset)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	views, err := dataloader.WorkCardViews(r.Context(), dataloader.FromContext(r.Context()), cards)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	resp := historyResponse{Items: make([]workCardResponse, len(views)), Total: total}
	for i, v := range views {
		item := h.toResponse(v.WorkCard)
		item.AreaName = v.AreaName
		item.OperationTypeName = v.OperationTypeName
		item.OperationSubtypeName = v.OperationSubtypeName
		resp.Items[i] = item
	}
	writeJSON(w, http.StatusOK, resp)
}

// Start handles POST /api/work-cards.
func (h *WorkCardHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	sess, err := h.resume(r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	if sess.Current != nil {
		writeDomainError(w, r, h.log, domain.ErrCardAlreadyActive)
		return
	}
	if err := h.fillDraft(r.Context(), sess, req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	card, err := h.svc.Start(r.Context(), sess)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, h.toResponse(*card))
}

// Update handles PUT /api/work-cards/{cardId}.
func (h *WorkCardHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	sess, err := h.resumeCard(r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	card, err := h.svc.Update(r.Context(), sess, domain.AccumulatorPatch{
		GoodParts:     req.GoodParts,
		ScrapParts:    req.ScrapParts,
		MaterialUsage: req.MaterialUsage,
		StripsRolls:   req.StripsRolls,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toResponse(*card))
}

// Finish handles PATCH /api/work-cards/{cardId}/finish.
func (h *WorkCardHandler) Finish(w http.ResponseWriter, r *http.Request) {
	var req quantitiesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	sess, err := h.resumeCard(r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	card, err := h.svc.Finish(r.Context(), sess, req.toQuantities())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toResponse(*card))
}

func (h *WorkCardHandler) resume(r *http.Request) (*workcard.Session, error) {
	id, err := workerID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Resume(r.Context(), id)
}

// resumeCard resumes the session and checks that the addressed card is the
// worker's active one. Without an active card the service reports the state
// error itself.
func (h *WorkCardHandler) resumeCard(r *http.Request) (*workcard.Session, error) {
	cardID, err := pathUUID(r, "cardId")
	if err != nil {
		return nil, err
	}
	sess, err := h.resume(r)
	if err != nil {
		return nil, err
	}
	if sess.Current != nil && sess.Current.ID != cardID {
		return nil, fmt.Errorf("work card %s: %w", cardID, domain.ErrNotFound)
	}
	return sess, nil
}

// fillDraft replays the kiosk form onto the session in selection order.
func (h *WorkCardHandler) fillDraft(ctx context.Context, sess *workcard.Session, req startRequest) error {
	var errs []domain.FieldError
	ids := make(map[string]uuid.UUID, 3)
	for _, f := range []struct{ field, raw string }{
		{"area", req.AreaID},
		{"operation_type", req.OperationTypeID},
		{"operation_subtype", req.OperationSubtypeID},
	} {
		id, err := optionalUUID(f.field, f.raw)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: f.field, Message: "must be a UUID"})
			continue
		}
		ids[f.field] = id
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}

	mode := domain.Mode(req.Mode)
	if mode == "" {
		mode = domain.ModeProduction
	}
	if err := sess.ToggleMode(mode); err != nil {
		return err
	}

	if id := ids["area"]; id != uuid.Nil {
		if err := sess.SelectArea(id); err != nil {
			return err
		}
	}
	if id := ids["operation_type"]; id != uuid.Nil {
		op, err := h.ops.GetOperationType(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("operation_type", "unknown operation type")
		}
		if err != nil {
			return err
		}
		if err := sess.SelectOperationType(*op); err != nil {
			return err
		}
	}
	if id := ids["operation_subtype"]; id != uuid.Nil {
		if err := sess.SelectSubtype(id); err != nil {
			return err
		}
	}
	if err := sess.SetOrder(req.OrderNumber); err != nil {
		return err
	}
	if err := sess.SetItemNumber(req.ItemNumber); err != nil {
		return err
	}
	sess.SetQuantities(req.toQuantities())
	return nil
}

func (h *WorkCardHandler) toResponse(c domain.WorkCard) workCardResponse {
	return workCardResponse{
		ID:                 c.ID.String(),
		WorkerID:           c.WorkerID.String(),
		AreaID:             c.AreaID.String(),
		OperationTypeID:    c.OperationTypeID.String(),
		OperationCode:      c.OperationCode,
		OperationSubtypeID: c.OperationSubtypeID.String(),
		OrderNumber:        c.OrderNumber,
		ItemNumber:         c.ItemNumber,
		Shift:              int(c.Shift),
		Mode:               c.Mode.String(),
		GoodParts:          c.GoodParts,
		ScrapParts:         c.ScrapParts,
		MaterialUsage:      c.MaterialUsage.String(),
		StripsRolls:        c.StripsRolls,
		Status:             c.Status.String(),
		StartedAt:          c.StartedAt,
		FinishedAt:         c.FinishedAt,
		DurationSeconds:    int64(c.Duration(h.now()).Seconds()),
		Version:            c.Version,
	}
}
