package wizard

import (
	"errors"
	"time"

	"rooftop-wizard/internal/domain/listing"

	"github.com/google/uuid"
)

var (
	ErrWrongStep       = errors.New("operation not allowed on current step")
	ErrDateNotSelected = errors.New("no date selected")
	ErrDateUnavailable = errors.New("selected date is not available")
	ErrDraftIncomplete = errors.New("booking draft is incomplete")
)

// Session is one open run of the booking wizard. It owns all workflow state,
// is created fresh on every open and thrown away on completion or dismissal;
// nothing here survives across opens.
type Session struct {
	id          uuid.UUID
	userID      uuid.UUID
	rooftop     listing.Summary
	step        Step
	date        CalendarDate
	available   bool
	times       TimeRange
	card        PaymentCard
	submitError string
	bookingID   string
	createdAt   time.Time
}

func NewSession(id, userID uuid.UUID, rooftop listing.Summary, now time.Time) *Session {
	return &Session{
		id:        id,
		userID:    userID,
		rooftop:   rooftop,
		step:      StepDate,
		times:     DefaultTimeRange(),
		createdAt: now,
	}
}

func (s *Session) ID() uuid.UUID            { return s.id }
func (s *Session) UserID() uuid.UUID        { return s.userID }
func (s *Session) Rooftop() listing.Summary { return s.rooftop }
func (s *Session) Step() Step               { return s.step }
func (s *Session) Date() CalendarDate       { return s.date }
func (s *Session) Available() bool          { return s.available }
func (s *Session) Times() TimeRange         { return s.times }
func (s *Session) Card() PaymentCard        { return s.card }
func (s *Session) SubmitError() string      { return s.submitError }
func (s *Session) BookingID() string        { return s.bookingID }
func (s *Session) CreatedAt() time.Time     { return s.createdAt }

// SelectDate records the picked day together with the availability verdict
// for the current time window. Both land in one operation so the session is
// never seen with a date but an unchecked availability flag.
func (s *Session) SelectDate(date CalendarDate, available bool) error {
	if s.step != StepDate {
		return ErrWrongStep
	}
	if date.IsZero() {
		return ErrDateNotSelected
	}
	s.date = date
	s.available = available
	return nil
}

// SetStart moves the start slot, dragging the end along when they would
// collide (start >= end forces end = start+1).
func (s *Session) SetStart(start HourTime) error {
	if s.step != StepDate {
		return ErrWrongStep
	}
	next, err := s.times.WithStart(start)
	if err != nil {
		return err
	}
	s.times = next
	return nil
}

// SetEnd moves the end slot, dragging the start along when they would
// collide (end <= start forces start = end-1).
func (s *Session) SetEnd(end HourTime) error {
	if s.step != StepDate {
		return ErrWrongStep
	}
	next, err := s.times.WithEnd(end)
	if err != nil {
		return err
	}
	s.times = next
	return nil
}

// RefreshAvailability re-records the verdict after a time edit.
func (s *Session) RefreshAvailability(available bool) {
	s.available = available
}

type CardUpdate struct {
	Number *string
	Name   *string
	Expiry *string
	CVV    *string
}

// UpdateCard applies the input masks to whichever fields were touched.
func (s *Session) UpdateCard(u CardUpdate) error {
	if s.step != StepPayment {
		return ErrWrongStep
	}
	if u.Number != nil {
		s.card = s.card.WithNumber(*u.Number)
	}
	if u.Name != nil {
		s.card = s.card.WithName(*u.Name)
	}
	if u.Expiry != nil {
		s.card = s.card.WithExpiry(*u.Expiry)
	}
	if u.CVV != nil {
		s.card = s.card.WithCVV(*u.CVV)
	}
	return nil
}

// CanAdvance reports whether the primary action is enabled. On the date step
// this is the hard precondition (date picked and available), not a UX hint.
func (s *Session) CanAdvance() bool {
	if s.step == StepDate {
		return !s.date.IsZero() && s.available
	}
	return true
}

// AdvanceFromDate moves DATE -> DETAILS once the precondition holds.
func (s *Session) AdvanceFromDate() error {
	if s.step != StepDate {
		return ErrWrongStep
	}
	if s.date.IsZero() {
		return ErrDateNotSelected
	}
	if !s.available {
		return ErrDateUnavailable
	}
	s.step = StepDetails
	return nil
}

// AdvanceFromDetails moves DETAILS -> PAYMENT.
func (s *Session) AdvanceFromDetails() error {
	if s.step != StepDetails {
		return ErrWrongStep
	}
	s.step = StepPayment
	return nil
}

// BookingDraft is the derived submission payload; it is recomputed from the
// session on demand and never stored independently.
type BookingDraft struct {
	RooftopID string
	StartAt   time.Time
	EndAt     time.Time
}

// Draft builds the submission payload from the selected date and window.
// Only valid on the payment step.
func (s *Session) Draft(loc *time.Location) (BookingDraft, error) {
	if s.step != StepPayment {
		return BookingDraft{}, ErrWrongStep
	}
	if s.date.IsZero() {
		return BookingDraft{}, ErrDraftIncomplete
	}
	startAt, err := s.date.At(s.times.Start(), loc)
	if err != nil {
		return BookingDraft{}, ErrDraftIncomplete
	}
	endAt, err := s.date.At(s.times.End(), loc)
	if err != nil {
		return BookingDraft{}, ErrDraftIncomplete
	}
	return BookingDraft{
		RooftopID: s.rooftop.RooftopID(),
		StartAt:   startAt,
		EndAt:     endAt,
	}, nil
}

// CompleteSubmission moves PAYMENT -> CONFIRMATION after the backend accepted
// the booking request.
func (s *Session) CompleteSubmission(bookingID string) error {
	if s.step != StepPayment {
		return ErrWrongStep
	}
	s.step = StepConfirmation
	s.bookingID = bookingID
	s.submitError = ""
	return nil
}

// FailSubmission records a visible failure. The step does not move and all
// entered state is retained so the user can retry.
func (s *Session) FailSubmission(reason string) {
	s.submitError = reason
}

// Finish is the confirmation step's action: the workflow completes and the
// step resets to DATE for the next use.
func (s *Session) Finish() (Result, error) {
	if s.step != StepConfirmation {
		return "", ErrWrongStep
	}
	s.step = StepDate
	return ResultCompleted, nil
}

// Back regresses exactly one step. On the initial step it does not change the
// step; it cancels the workflow instead.
func (s *Session) Back() Result {
	switch s.step {
	case StepDetails:
		s.step = StepDate
	case StepPayment:
		s.step = StepDetails
	case StepConfirmation:
		s.step = StepPayment
	case StepDate:
		return ResultCancelled
	}
	return ""
}
