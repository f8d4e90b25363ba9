package listing

import (
	"errors"
	"strings"
)

var (
	ErrMissingRooftopID = errors.New("rooftop id is required")
	ErrMissingTitle     = errors.New("title is required")
	ErrMissingHost      = errors.New("host is required")
	ErrNegativePrice    = errors.New("price cannot be negative")
)

const DefaultCapacity = 30

// Summary is the read-only rooftop snapshot the host screen hands over when it
// opens the wizard. The wizard never mutates it; the marketplace backend owns
// the full listing record, so the rooftop ID stays an opaque string.
type Summary struct {
	rooftopID  string
	title      string
	host       string
	priceCents int64 // hourly rate
	imageURL   string
	rating     *float64
	capacity   *int
	totalCents *int64 // optional precomputed total supplied by the caller
}

type SummaryParams struct {
	RooftopID  string
	Title      string
	Host       string
	PriceCents int64
	ImageURL   string
	Rating     *float64
	Capacity   *int
	TotalCents *int64
}

func NewSummary(p SummaryParams) (Summary, error) {
	if strings.TrimSpace(p.RooftopID) == "" {
		return Summary{}, ErrMissingRooftopID
	}
	if strings.TrimSpace(p.Title) == "" {
		return Summary{}, ErrMissingTitle
	}
	if strings.TrimSpace(p.Host) == "" {
		return Summary{}, ErrMissingHost
	}
	if p.PriceCents < 0 {
		return Summary{}, ErrNegativePrice
	}

	return Summary{
		rooftopID:  strings.TrimSpace(p.RooftopID),
		title:      strings.TrimSpace(p.Title),
		host:       strings.TrimSpace(p.Host),
		priceCents: p.PriceCents,
		imageURL:   p.ImageURL,
		rating:     p.Rating,
		capacity:   p.Capacity,
		totalCents: p.TotalCents,
	}, nil
}

func (s Summary) RooftopID() string  { return s.rooftopID }
func (s Summary) Title() string      { return s.title }
func (s Summary) Host() string       { return s.host }
func (s Summary) PriceCents() int64  { return s.priceCents }
func (s Summary) ImageURL() string   { return s.imageURL }
func (s Summary) Rating() *float64   { return s.rating }
func (s Summary) TotalCents() *int64 { return s.totalCents }

// Guests falls back to the marketplace default when the listing has no
// declared capacity.
func (s Summary) Guests() int {
	if s.capacity != nil && *s.capacity > 0 {
		return *s.capacity
	}
	return DefaultCapacity
}

func (s Summary) Capacity() *int { return s.capacity }

// TotalForHours resolves the displayed total amount: a caller-supplied flat
// total wins, otherwise hourly price times duration.
func (s Summary) TotalForHours(hours int) int64 {
	if s.totalCents != nil {
		return *s.totalCents
	}
	return s.priceCents * int64(hours)
}
