package request

import (
	"rooftop-wizard/internal/domain/listing"
	"rooftop-wizard/internal/domain/wizard"
)

// RooftopSummaryRequest is the read-only listing snapshot the host screen
// passes when it opens the wizard.
type RooftopSummaryRequest struct {
	ID         string   `json:"id" binding:"required"`
	Title      string   `json:"title" binding:"required"`
	Host       string   `json:"host" binding:"required"`
	PriceCents int64    `json:"priceCents" binding:"required,min=1"`
	Image      *string  `json:"image,omitempty"`
	Rating     *float64 `json:"rating,omitempty" binding:"omitempty,min=0,max=5"`
	Capacity   *int     `json:"capacity,omitempty" binding:"omitempty,min=1"`
	TotalCents *int64   `json:"totalCents,omitempty" binding:"omitempty,min=0"`
}

func (r RooftopSummaryRequest) ToParams() listing.SummaryParams {
	params := listing.SummaryParams{
		RooftopID:  r.ID,
		Title:      r.Title,
		Host:       r.Host,
		PriceCents: r.PriceCents,
		Rating:     r.Rating,
		Capacity:   r.Capacity,
		TotalCents: r.TotalCents,
	}
	if r.Image != nil {
		params.ImageURL = *r.Image
	}
	return params
}

type OpenWizardRequest struct {
	Rooftop RooftopSummaryRequest `json:"rooftop" binding:"required"`
}

type SelectDateRequest struct {
	Date string `json:"date" binding:"required"`
}

// SetTimesRequest edits one or both endpoints of the reservation window.
// Pickers offer the 24 on-the-hour slots, hence max=23.
type SetTimesRequest struct {
	StartHour *int `json:"startHour" binding:"omitempty,min=0,max=23"`
	EndHour   *int `json:"endHour" binding:"omitempty,min=0,max=23"`
}

func (r SetTimesRequest) IsEmpty() bool {
	return r.StartHour == nil && r.EndHour == nil
}

type UpdatePaymentRequest struct {
	CardNumber   *string `json:"cardNumber,omitempty"`
	CardName     *string `json:"cardName,omitempty"`
	CardValidity *string `json:"cardValidity,omitempty"`
	CardCVV      *string `json:"cardCvv,omitempty"`
}

func (r UpdatePaymentRequest) ToUpdate() wizard.CardUpdate {
	return wizard.CardUpdate{
		Number: r.CardNumber,
		Name:   r.CardName,
		Expiry: r.CardValidity,
		CVV:    r.CardCVV,
	}
}
