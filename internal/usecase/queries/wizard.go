package queries

import (
	"context"
	"fmt"

	"rooftop-wizard/internal/domain/wizard"
	"rooftop-wizard/internal/infra"
	"rooftop-wizard/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound     = errs.New("wizard session not found")
	ErrSessionAccessDenied = errs.New("wizard session belongs to another user")
)

type SessionReadStore interface {
	Find(ctx context.Context, id uuid.UUID) (*wizard.Session, error)
}

type RooftopView struct {
	ID         string
	Title      string
	Host       string
	PriceCents int64
	ImageURL   string
	Rating     *float64
	Guests     int
}

// ReviewView is the rendered reservation summary of the details step.
type ReviewView struct {
	DateDisplay        string
	TimeRange          string
	Guests             int
	TotalCents         int64
	CancellationPolicy string
}

type PaymentView struct {
	CardNumber string
	CardName   string
	CardExpiry string
	CardCVV    string
}

type TimeOptionView struct {
	Value string
	Label string
}

// SessionView is everything the host screen needs to render the current step.
type SessionView struct {
	ID                  uuid.UUID
	Step                string
	ActionLabel         string
	CanAdvance          bool
	Rooftop             RooftopView
	SelectedDate        string
	Available           bool
	StartTime           string
	EndTime             string
	TimeOptions         []TimeOptionView
	Review              ReviewView
	Payment             PaymentView
	SubmitError         string
	ConfirmationMessage string
	BookingID           string
}

// BuildSessionView renders a session; pure, no I/O.
func BuildSessionView(s *wizard.Session) *SessionView {
	rooftop := s.Rooftop()
	times := s.Times()

	options := wizard.TimeOptions()
	optionViews := make([]TimeOptionView, len(options))
	for i, o := range options {
		optionViews[i] = TimeOptionView{Value: o.Value, Label: o.Label}
	}

	view := &SessionView{
		ID:           s.ID(),
		Step:         s.Step().String(),
		ActionLabel:  s.Step().ActionLabel(),
		CanAdvance:   s.CanAdvance(),
		SelectedDate: s.Date().String(),
		Available:    s.Available(),
		StartTime:    times.Start().String(),
		EndTime:      times.End().String(),
		TimeOptions:  optionViews,
		Rooftop: RooftopView{
			ID:         rooftop.RooftopID(),
			Title:      rooftop.Title(),
			Host:       rooftop.Host(),
			PriceCents: rooftop.PriceCents(),
			ImageURL:   rooftop.ImageURL(),
			Rating:     rooftop.Rating(),
			Guests:     rooftop.Guests(),
		},
		Review: ReviewView{
			DateDisplay:        s.Date().Display(),
			TimeRange:          fmt.Sprintf("%s - %s", times.Start(), times.End()),
			Guests:             rooftop.Guests(),
			TotalCents:         rooftop.TotalForHours(times.Hours()),
			CancellationPolicy: wizard.CancellationPolicy,
		},
		Payment: PaymentView{
			CardNumber: s.Card().Number(),
			CardName:   s.Card().Name(),
			CardExpiry: s.Card().Expiry(),
			CardCVV:    s.Card().CVV(),
		},
		SubmitError: s.SubmitError(),
		BookingID:   s.BookingID(),
	}

	if s.Step() == wizard.StepConfirmation {
		view.ConfirmationMessage = wizard.ConfirmationMessage
	}

	return view
}

type WizardQueries interface {
	GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*SessionView, error)
}

type wizardQueriesImpl struct {
	sessions SessionReadStore
}

func NewWizardQueries(sessions SessionReadStore) WizardQueries {
	return &wizardQueriesImpl{sessions: sessions}
}

func (q *wizardQueriesImpl) GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*SessionView, error) {
	sess, err := q.sessions.Find(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, errs.Wrap(err, "failed to find wizard session")
	}

	if sess.UserID() != userID {
		return nil, ErrSessionAccessDenied
	}

	return BuildSessionView(sess), nil
}
