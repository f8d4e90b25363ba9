package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"rooftop-wizard/internal/domain/listing"
	"rooftop-wizard/internal/domain/wizard"
	"rooftop-wizard/internal/infra"
	"rooftop-wizard/internal/pkg/clock"
	"rooftop-wizard/internal/pkg/errs"
	"rooftop-wizard/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound     = errs.New("wizard session not found")
	ErrSessionAccessDenied = errs.New("wizard session belongs to another user")
	ErrInvalidRooftop      = errs.New("invalid rooftop summary")
	ErrInvalidDate         = errs.New("invalid date selection")
	ErrInvalidTimeSlot     = errs.New("invalid time slot")
	ErrWrongStep           = errs.New("operation not allowed on current step")
	ErrAdvanceBlocked      = errs.New("date step precondition not met")
	ErrSubmissionInFlight  = errs.New("booking submission already in progress")
	ErrSubmissionFailed    = errs.New("booking submission failed")
	ErrAvailabilityFailed  = errs.New("availability check failed")
	ErrStoreFailed         = errs.New("session store operation failed")
)

// submitFailureMessage is what the user sees on the payment step when the
// backend rejects the booking; the underlying error only goes to the log.
const submitFailureMessage = "We couldn't complete your booking. Please check your details and try again."

type SessionRepository interface {
	Save(ctx context.Context, sess *wizard.Session) error
	Find(ctx context.Context, id uuid.UUID) (*wizard.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// AcquireSubmitGuard is the at-most-once latch for the payment action;
	// it reports false while a previous submission is still settling.
	AcquireSubmitGuard(ctx context.Context, id uuid.UUID, ttl time.Duration) (bool, error)
	ReleaseSubmitGuard(ctx context.Context, id uuid.UUID) error
}

// AvailabilityChecker answers whether the rooftop is free for the window.
type AvailabilityChecker interface {
	Check(ctx context.Context, rooftopID string, startAt, endAt time.Time) (bool, error)
}

type BookingReceipt struct {
	ID         string
	Status     string
	TotalCents int64
	CreatedAt  time.Time
}

type BookingGateway interface {
	Submit(ctx context.Context, draft wizard.BookingDraft, idempotencyKey uuid.UUID) (*BookingReceipt, error)
}

type OpenWizardInput struct {
	Rooftop listing.SummaryParams
}

// AdvanceOutcome reports a transition. When Completed or Cancelled is set
// the session is gone and Session is nil.
type AdvanceOutcome struct {
	Session   *queries.SessionView
	Completed bool
	Cancelled bool
	BookingID string
}

type WizardCommands interface {
	Open(ctx context.Context, userID uuid.UUID, in OpenWizardInput) (*queries.SessionView, error)
	SelectDate(ctx context.Context, userID, sessionID uuid.UUID, date string) (*queries.SessionView, error)
	SetTimes(ctx context.Context, userID, sessionID uuid.UUID, startHour, endHour *int) (*queries.SessionView, error)
	UpdatePayment(ctx context.Context, userID, sessionID uuid.UUID, update wizard.CardUpdate) (*queries.SessionView, error)
	Advance(ctx context.Context, userID, sessionID uuid.UUID) (*AdvanceOutcome, error)
	Back(ctx context.Context, userID, sessionID uuid.UUID) (*AdvanceOutcome, error)
}

type wizardCommandsImpl struct {
	sessions      SessionRepository
	availability  AvailabilityChecker
	gateway       BookingGateway
	clock         clock.Clock
	loc           *time.Location
	submitTimeout time.Duration
}

func NewWizardCommands(
	sessions SessionRepository,
	availability AvailabilityChecker,
	gateway BookingGateway,
	clk clock.Clock,
	loc *time.Location,
	submitTimeout time.Duration,
) WizardCommands {
	return &wizardCommandsImpl{
		sessions:      sessions,
		availability:  availability,
		gateway:       gateway,
		clock:         clk,
		loc:           loc,
		submitTimeout: submitTimeout,
	}
}

func (w *wizardCommandsImpl) Open(ctx context.Context, userID uuid.UUID, in OpenWizardInput) (*queries.SessionView, error) {
	summary, err := listing.NewSummary(in.Rooftop)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRooftop)
	}

	sess := wizard.NewSession(uuid.New(), userID, summary, w.clock.Now())
	if err := w.sessions.Save(ctx, sess); err != nil {
		return nil, errs.Mark(err, ErrStoreFailed)
	}

	return queries.BuildSessionView(sess), nil
}

func (w *wizardCommandsImpl) SelectDate(ctx context.Context, userID, sessionID uuid.UUID, date string) (*queries.SessionView, error) {
	sess, err := w.findOwned(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	day, err := wizard.NewCalendarDate(date, w.clock.Now().In(w.loc))
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDate)
	}

	available, err := w.checkAvailability(ctx, sess, day)
	if err != nil {
		return nil, err
	}

	if err := sess.SelectDate(day, available); err != nil {
		return nil, errs.Mark(err, ErrWrongStep)
	}

	if err := w.sessions.Save(ctx, sess); err != nil {
		return nil, errs.Mark(err, ErrStoreFailed)
	}

	return queries.BuildSessionView(sess), nil
}

func (w *wizardCommandsImpl) SetTimes(ctx context.Context, userID, sessionID uuid.UUID, startHour, endHour *int) (*queries.SessionView, error) {
	sess, err := w.findOwned(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	if startHour != nil {
		start, hourErr := wizard.NewHourTime(*startHour)
		if hourErr != nil {
			return nil, errs.Mark(hourErr, ErrInvalidTimeSlot)
		}
		if setErr := sess.SetStart(start); setErr != nil {
			return nil, w.markTimeEditErr(setErr)
		}
	}

	if endHour != nil {
		end, hourErr := wizard.NewHourTime(*endHour)
		if hourErr != nil {
			return nil, errs.Mark(hourErr, ErrInvalidTimeSlot)
		}
		if setErr := sess.SetEnd(end); setErr != nil {
			return nil, w.markTimeEditErr(setErr)
		}
	}

	// A new window can collide with other bookings, so the verdict for an
	// already-picked date has to be refreshed.
	if !sess.Date().IsZero() {
		available, availErr := w.checkAvailability(ctx, sess, sess.Date())
		if availErr != nil {
			return nil, availErr
		}
		sess.RefreshAvailability(available)
	}

	if err := w.sessions.Save(ctx, sess); err != nil {
		return nil, errs.Mark(err, ErrStoreFailed)
	}

	return queries.BuildSessionView(sess), nil
}

func (w *wizardCommandsImpl) UpdatePayment(ctx context.Context, userID, sessionID uuid.UUID, update wizard.CardUpdate) (*queries.SessionView, error) {
	sess, err := w.findOwned(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	if err := sess.UpdateCard(update); err != nil {
		return nil, errs.Mark(err, ErrWrongStep)
	}

	if err := w.sessions.Save(ctx, sess); err != nil {
		return nil, errs.Mark(err, ErrStoreFailed)
	}

	return queries.BuildSessionView(sess), nil
}

func (w *wizardCommandsImpl) Advance(ctx context.Context, userID, sessionID uuid.UUID) (*AdvanceOutcome, error) {
	sess, err := w.findOwned(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	switch sess.Step() {
	case wizard.StepDate:
		if err := sess.AdvanceFromDate(); err != nil {
			return nil, errs.Mark(err, ErrAdvanceBlocked)
		}

	case wizard.StepDetails:
		if err := sess.AdvanceFromDetails(); err != nil {
			return nil, errs.Mark(err, ErrWrongStep)
		}

	case wizard.StepPayment:
		return w.submit(ctx, sess)

	case wizard.StepConfirmation:
		if _, err := sess.Finish(); err != nil {
			return nil, errs.Mark(err, ErrWrongStep)
		}
		if err := w.sessions.Delete(ctx, sess.ID()); err != nil {
			slog.Warn("failed to delete completed wizard session", "session_id", sess.ID(), "error", err)
		}
		return &AdvanceOutcome{Completed: true, BookingID: sess.BookingID()}, nil
	}

	if err := w.sessions.Save(ctx, sess); err != nil {
		return nil, errs.Mark(err, ErrStoreFailed)
	}

	return &AdvanceOutcome{Session: queries.BuildSessionView(sess)}, nil
}

func (w *wizardCommandsImpl) Back(ctx context.Context, userID, sessionID uuid.UUID) (*AdvanceOutcome, error) {
	sess, err := w.findOwned(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	if sess.Back() == wizard.ResultCancelled {
		if err := w.sessions.Delete(ctx, sess.ID()); err != nil {
			return nil, errs.Mark(err, ErrStoreFailed)
		}
		return &AdvanceOutcome{Cancelled: true}, nil
	}

	if err := w.sessions.Save(ctx, sess); err != nil {
		return nil, errs.Mark(err, ErrStoreFailed)
	}

	return &AdvanceOutcome{Session: queries.BuildSessionView(sess)}, nil
}

// submit is the only transition with a side effect. The guard makes it
// at-most-once per user action; the timeout bounds a hung backend so the
// user is never stuck on the payment step indefinitely.
func (w *wizardCommandsImpl) submit(ctx context.Context, sess *wizard.Session) (*AdvanceOutcome, error) {
	guardTTL := w.submitTimeout + 5*time.Second
	acquired, err := w.sessions.AcquireSubmitGuard(ctx, sess.ID(), guardTTL)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailed)
	}
	if !acquired {
		return nil, ErrSubmissionInFlight
	}
	defer func() {
		if releaseErr := w.sessions.ReleaseSubmitGuard(ctx, sess.ID()); releaseErr != nil {
			slog.Warn("failed to release submit guard", "session_id", sess.ID(), "error", releaseErr)
		}
	}()

	draft, err := sess.Draft(w.loc)
	if err != nil {
		return nil, errs.Mark(err, ErrWrongStep)
	}

	submitCtx, cancel := context.WithTimeout(ctx, w.submitTimeout)
	defer cancel()

	receipt, err := w.gateway.Submit(submitCtx, draft, uuid.New())
	if err != nil {
		slog.Error("booking submission failed",
			"session_id", sess.ID(),
			"rooftop_id", draft.RooftopID,
			"error", err,
		)
		sess.FailSubmission(submitFailureMessage)
		if saveErr := w.sessions.Save(ctx, sess); saveErr != nil {
			return nil, errs.Mark(saveErr, ErrStoreFailed)
		}
		return nil, errs.Mark(err, ErrSubmissionFailed)
	}

	if err := sess.CompleteSubmission(receipt.ID); err != nil {
		return nil, errs.Mark(err, ErrWrongStep)
	}
	if err := w.sessions.Save(ctx, sess); err != nil {
		return nil, errs.Mark(err, ErrStoreFailed)
	}

	return &AdvanceOutcome{Session: queries.BuildSessionView(sess)}, nil
}

func (w *wizardCommandsImpl) checkAvailability(ctx context.Context, sess *wizard.Session, day wizard.CalendarDate) (bool, error) {
	times := sess.Times()
	startAt, err := day.At(times.Start(), w.loc)
	if err != nil {
		return false, errs.Mark(err, ErrInvalidDate)
	}
	endAt, err := day.At(times.End(), w.loc)
	if err != nil {
		return false, errs.Mark(err, ErrInvalidDate)
	}

	available, err := w.availability.Check(ctx, sess.Rooftop().RooftopID(), startAt, endAt)
	if err != nil {
		return false, errs.Mark(err, ErrAvailabilityFailed)
	}
	return available, nil
}

func (w *wizardCommandsImpl) findOwned(ctx context.Context, userID, sessionID uuid.UUID) (*wizard.Session, error) {
	sess, err := w.sessions.Find(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailed)
	}

	if sess.UserID() != userID {
		return nil, ErrSessionAccessDenied
	}

	return sess, nil
}

func (w *wizardCommandsImpl) markTimeEditErr(err error) error {
	if errors.Is(err, wizard.ErrWrongStep) {
		return errs.Mark(err, ErrWrongStep)
	}
	return errs.Mark(err, ErrInvalidTimeSlot)
}
