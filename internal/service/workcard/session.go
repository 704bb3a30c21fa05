package workcard

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/laborcard-backend/internal/domain"
)

// State is the lifecycle position of a Session.
type State int

const (
	StateNotStarted State = iota
	StateActive
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateCompleted:
		return "completed"
	default:
		return "not_started"
	}
}

// Session is one kiosk's view of a worker's card. It is owned by the caller
// and only touched by one goroutine at a time.
type Session struct {
	Worker  domain.Worker
	Mode    domain.Mode
	Draft   Draft
	Current *domain.WorkCard
	// Last is the most recently finished card, kept for read-only display.
	Last *domain.WorkCard
}

// NewSession returns an empty production-mode session for worker.
func NewSession(worker domain.Worker) *Session {
	return &Session{Worker: worker, Mode: domain.ModeProduction}
}

// State derives the lifecycle state from the current and last cards.
func (s *Session) State() State {
	switch {
	case s.Current != nil:
		return StateActive
	case s.Last != nil:
		return StateCompleted
	default:
		return StateNotStarted
	}
}

// ToggleMode switches between production and scrap. Part counts are cleared;
// material usage and strips/rolls are kept.
func (s *Session) ToggleMode(mode domain.Mode) error {
	if !mode.IsValid() {
		return domain.NewValidationError("mode", "must be production or scrap")
	}
	if s.Current != nil {
		return domain.ErrModeLocked
	}
	s.Mode = mode
	s.Draft.GoodParts = ""
	s.Draft.ScrapParts = ""
	return nil
}

// SelectArea picks the production area and resets everything below it.
func (s *Session) SelectArea(areaID uuid.UUID) error {
	if err := s.editable(); err != nil {
		return err
	}
	s.Draft.AreaID = areaID
	s.Draft.OperationTypeID = uuid.Nil
	s.Draft.OperationCode = ""
	s.Draft.OperationSubtypeID = uuid.Nil
	return nil
}

// SelectOperationType picks the operation and resets the subtype.
func (s *Session) SelectOperationType(op domain.OperationType) error {
	if err := s.editable(); err != nil {
		return err
	}
	s.Draft.OperationTypeID = op.ID
	s.Draft.OperationCode = op.Code
	s.Draft.OperationSubtypeID = uuid.Nil
	if !domain.RequiresStripsRolls(op.Code) {
		s.Draft.StripsRolls = ""
	}
	return nil
}

func (s *Session) SelectSubtype(subtypeID uuid.UUID) error {
	if err := s.editable(); err != nil {
		return err
	}
	s.Draft.OperationSubtypeID = subtypeID
	return nil
}

func (s *Session) SetOrder(orderNumber string) error {
	if err := s.editable(); err != nil {
		return err
	}
	s.Draft.OrderNumber = strings.TrimSpace(orderNumber)
	return nil
}

func (s *Session) SetItemNumber(itemNumber string) error {
	if err := s.editable(); err != nil {
		return err
	}
	s.Draft.ItemNumber = strings.TrimSpace(itemNumber)
	return nil
}

// SetQuantities replaces the accumulator inputs. Allowed in every state.
func (s *Session) SetQuantities(q Quantities) {
	s.Draft.Quantities = q
}

func (s *Session) editable() error {
	if s.Current != nil {
		return domain.ErrCardAlreadyActive
	}
	return nil
}

// adopt binds an active card to the session and mirrors it into the draft.
func (s *Session) adopt(card *domain.WorkCard) {
	s.Current = card
	s.Mode = card.Mode
	s.Draft = Draft{
		AreaID:             card.AreaID,
		OperationTypeID:    card.OperationTypeID,
		OperationCode:      card.OperationCode,
		OperationSubtypeID: card.OperationSubtypeID,
		OrderNumber:        card.OrderNumber,
		ItemNumber:         card.ItemNumber,
		Quantities:         quantitiesOf(card.Accumulators),
	}
}

// release moves the finished card out of Current and clears the quantities
// so the next card starts from zero. The selection is kept.
func (s *Session) release(card *domain.WorkCard) {
	s.Current = nil
	s.Last = card
	s.Draft.Quantities = Quantities{}
}
