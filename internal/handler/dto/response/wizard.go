package response

import (
	"rooftop-wizard/internal/usecase/commands"
	"rooftop-wizard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RooftopResponse struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Host       string   `json:"host"`
	PriceCents int64    `json:"priceCents"`
	ImageURL   string   `json:"imageUrl,omitempty"`
	Rating     *float64 `json:"rating,omitempty"`
	Guests     int      `json:"guests"`
}

type ReviewResponse struct {
	DateDisplay        string `json:"dateDisplay"`
	TimeRange          string `json:"timeRange"`
	Guests             int    `json:"guests"`
	TotalCents         int64  `json:"totalCents"`
	CancellationPolicy string `json:"cancellationPolicy"`
}

type PaymentResponse struct {
	CardNumber string `json:"cardNumber"`
	CardName   string `json:"cardName"`
	CardExpiry string `json:"cardExpiry"`
	CardCVV    string `json:"cardCvv"`
}

type TimeOptionResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type SessionResponse struct {
	ID                  uuid.UUID            `json:"id"`
	Step                string               `json:"step"`
	ActionLabel         string               `json:"actionLabel"`
	CanAdvance          bool                 `json:"canAdvance"`
	Rooftop             RooftopResponse      `json:"rooftop"`
	SelectedDate        string               `json:"selectedDate,omitempty"`
	Available           bool                 `json:"available"`
	StartTime           string               `json:"startTime"`
	EndTime             string               `json:"endTime"`
	TimeOptions         []TimeOptionResponse `json:"timeOptions"`
	Review              ReviewResponse       `json:"review"`
	Payment             PaymentResponse      `json:"payment"`
	SubmitError         string               `json:"submitError,omitempty"`
	ConfirmationMessage string               `json:"confirmationMessage,omitempty"`
	BookingID           string               `json:"bookingId,omitempty"`
}

// AdvanceResponse reports a step transition. Session is absent once
// completed or cancelled is set; the workflow is over at that point.
type AdvanceResponse struct {
	Session   *SessionResponse `json:"session,omitempty"`
	Completed bool             `json:"completed"`
	Cancelled bool             `json:"cancelled"`
	BookingID string           `json:"bookingId,omitempty"`
}

func FromSessionView(view *queries.SessionView) *SessionResponse {
	var resp SessionResponse
	// Field names line up one-to-one with the view.
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromAdvanceOutcome(outcome *commands.AdvanceOutcome) *AdvanceResponse {
	resp := &AdvanceResponse{
		Completed: outcome.Completed,
		Cancelled: outcome.Cancelled,
		BookingID: outcome.BookingID,
	}
	if outcome.Session != nil {
		resp.Session = FromSessionView(outcome.Session)
	}
	return resp
}
