package bookinggw

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"rooftop-wizard/internal/domain/wizard"
	"rooftop-wizard/internal/pkg/config"
	"rooftop-wizard/internal/usecase/commands"

	"github.com/google/uuid"
)

// Client submits booking requests to the marketplace backend's POST /bookings
// endpoint. The http.Client timeout bounds the call; commands adds its own
// context deadline on top.
type Client struct {
	baseURL      string
	serviceToken string
	httpClient   *http.Client
}

func NewClient(cfg config.BookingAPIConfig) *Client {
	return &Client{
		baseURL:      cfg.BaseURL,
		serviceToken: cfg.ServiceToken,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type createBookingRequest struct {
	RooftopID string `json:"rooftopId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type bookingResponse struct {
	ID         string    `json:"id"`
	Status     string    `json:"status"`
	TotalPrice int64     `json:"totalPrice"`
	CreatedAt  time.Time `json:"createdAt"`
}

// RejectedError reports a non-2xx answer from the booking endpoint.
type RejectedError struct {
	StatusCode int
	Body       string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("booking endpoint rejected the request: status %d: %s", e.StatusCode, e.Body)
}

func (c *Client) Submit(ctx context.Context, draft wizard.BookingDraft, idempotencyKey uuid.UUID) (*commands.BookingReceipt, error) {
	payload, err := json.Marshal(createBookingRequest{
		RooftopID: draft.RooftopID,
		StartTime: draft.StartAt.Format(time.RFC3339),
		EndTime:   draft.EndAt.Format(time.RFC3339),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode booking request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/bookings", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build booking request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", idempotencyKey.String())
	if c.serviceToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.serviceToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("booking request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Cap the echoed body; it only feeds logs.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, &RejectedError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var booking bookingResponse
	if err := json.NewDecoder(resp.Body).Decode(&booking); err != nil {
		return nil, fmt.Errorf("failed to decode booking response: %w", err)
	}

	return &commands.BookingReceipt{
		ID:         booking.ID,
		Status:     booking.Status,
		TotalCents: booking.TotalPrice,
		CreatedAt:  booking.CreatedAt,
	}, nil
}
