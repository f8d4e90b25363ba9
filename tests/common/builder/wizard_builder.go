//go:build unit

package builder

import (
	"time"

	"rooftop-wizard/internal/domain/listing"
	"rooftop-wizard/internal/domain/wizard"
	reqdto "rooftop-wizard/internal/handler/dto/request"

	"github.com/google/uuid"
)

type WizardBuilder struct {
	SessionID  uuid.UUID
	UserID     uuid.UUID
	RooftopID  string
	Title      string
	Host       string
	PriceCents int64
	ImageURL   string
	Rating     *float64
	Capacity   *int
	TotalCents *int64
	Now        time.Time
	Date       string
	Available  bool
}

func NewWizardBuilder() *WizardBuilder {
	rating := 4.8
	now := time.Date(2026, 7, 7, 10, 0, 0, 0, time.UTC)
	return &WizardBuilder{
		SessionID:  uuid.New(),
		UserID:     uuid.New(),
		RooftopID:  "rooftop-301",
		Title:      "Skyline Terrace",
		Host:       "Marina",
		PriceCents: 12000,
		ImageURL:   "https://example.com/rooftop.jpg",
		Rating:     &rating,
		Now:        now,
		Date:       now.AddDate(0, 0, 7).Format("2006-01-02"),
		Available:  true,
	}
}

func (b *WizardBuilder) With(mutate func(*WizardBuilder)) *WizardBuilder {
	mutate(b)
	return b
}

func (b *WizardBuilder) BuildSummaryParams() listing.SummaryParams {
	return listing.SummaryParams{
		RooftopID:  b.RooftopID,
		Title:      b.Title,
		Host:       b.Host,
		PriceCents: b.PriceCents,
		ImageURL:   b.ImageURL,
		Rating:     b.Rating,
		Capacity:   b.Capacity,
		TotalCents: b.TotalCents,
	}
}

func (b *WizardBuilder) BuildSummary() (listing.Summary, error) {
	return listing.NewSummary(b.BuildSummaryParams())
}

// BuildSession returns a fresh session on the date step.
func (b *WizardBuilder) BuildSession() (*wizard.Session, error) {
	summary, err := b.BuildSummary()
	if err != nil {
		return nil, err
	}
	return wizard.NewSession(b.SessionID, b.UserID, summary, b.Now), nil
}

// BuildSessionWithDate returns a session on the date step with the date
// already picked and the availability verdict recorded.
func (b *WizardBuilder) BuildSessionWithDate() (*wizard.Session, error) {
	sess, err := b.BuildSession()
	if err != nil {
		return nil, err
	}
	day, err := wizard.NewCalendarDate(b.Date, b.Now)
	if err != nil {
		return nil, err
	}
	if err := sess.SelectDate(day, b.Available); err != nil {
		return nil, err
	}
	return sess, nil
}

// BuildSessionAtDetails walks the session to the details step.
func (b *WizardBuilder) BuildSessionAtDetails() (*wizard.Session, error) {
	sess, err := b.BuildSessionWithDate()
	if err != nil {
		return nil, err
	}
	if err := sess.AdvanceFromDate(); err != nil {
		return nil, err
	}
	return sess, nil
}

// BuildSessionAtPayment walks the session to the payment step.
func (b *WizardBuilder) BuildSessionAtPayment() (*wizard.Session, error) {
	sess, err := b.BuildSessionAtDetails()
	if err != nil {
		return nil, err
	}
	if err := sess.AdvanceFromDetails(); err != nil {
		return nil, err
	}
	return sess, nil
}

// BuildSessionAtConfirmation walks the session through a completed submission.
func (b *WizardBuilder) BuildSessionAtConfirmation(bookingID string) (*wizard.Session, error) {
	sess, err := b.BuildSessionAtPayment()
	if err != nil {
		return nil, err
	}
	if err := sess.CompleteSubmission(bookingID); err != nil {
		return nil, err
	}
	return sess, nil
}

func (b *WizardBuilder) BuildOpenRequestDTO() reqdto.OpenWizardRequest {
	var image *string
	if b.ImageURL != "" {
		image = &b.ImageURL
	}
	return reqdto.OpenWizardRequest{
		Rooftop: reqdto.RooftopSummaryRequest{
			ID:         b.RooftopID,
			Title:      b.Title,
			Host:       b.Host,
			PriceCents: b.PriceCents,
			Image:      image,
			Rating:     b.Rating,
			Capacity:   b.Capacity,
			TotalCents: b.TotalCents,
		},
	}
}
