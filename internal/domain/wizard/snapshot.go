package wizard

import (
	"time"

	"rooftop-wizard/internal/domain/listing"

	"github.com/google/uuid"
)

// Snapshot is the serializable form of a Session for the session store.
type Snapshot struct {
	ID          uuid.UUID        `json:"id"`
	UserID      uuid.UUID        `json:"userId"`
	Rooftop     listing.Snapshot `json:"rooftop"`
	Step        Step             `json:"step"`
	Date        string           `json:"date,omitempty"`
	Available   bool             `json:"available"`
	StartHour   int              `json:"startHour"`
	EndHour     int              `json:"endHour"`
	CardNumber  string           `json:"cardNumber,omitempty"`
	CardName    string           `json:"cardName,omitempty"`
	CardExpiry  string           `json:"cardExpiry,omitempty"`
	CardCVV     string           `json:"cardCvv,omitempty"`
	SubmitError string           `json:"submitError,omitempty"`
	BookingID   string           `json:"bookingId,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		ID:          s.id,
		UserID:      s.userID,
		Rooftop:     s.rooftop.Snapshot(),
		Step:        s.step,
		Date:        s.date.String(),
		Available:   s.available,
		StartHour:   s.times.Start().Hour(),
		EndHour:     s.times.End().Hour(),
		CardNumber:  s.card.Number(),
		CardName:    s.card.Name(),
		CardExpiry:  s.card.Expiry(),
		CardCVV:     s.card.CVV(),
		SubmitError: s.submitError,
		BookingID:   s.bookingID,
		CreatedAt:   s.createdAt,
	}
}

// ReconstructSession restores a stored session, re-validating every value on
// the way back in.
func ReconstructSession(sn Snapshot) (*Session, error) {
	if !sn.Step.IsValid() {
		return nil, ErrWrongStep
	}

	rooftop, err := listing.FromSnapshot(sn.Rooftop)
	if err != nil {
		return nil, err
	}

	date, err := ReconstructCalendarDate(sn.Date)
	if err != nil {
		return nil, err
	}

	start, err := NewHourTime(sn.StartHour)
	if err != nil {
		return nil, err
	}
	end, err := NewHourTime(sn.EndHour)
	if err != nil {
		return nil, err
	}
	times, err := NewTimeRange(start, end)
	if err != nil {
		return nil, err
	}

	return &Session{
		id:          sn.ID,
		userID:      sn.UserID,
		rooftop:     rooftop,
		step:        sn.Step,
		date:        date,
		available:   sn.Available,
		times:       times,
		card:        ReconstructPaymentCard(sn.CardNumber, sn.CardName, sn.CardExpiry, sn.CardCVV),
		submitError: sn.SubmitError,
		bookingID:   sn.BookingID,
		createdAt:   sn.CreatedAt,
	}, nil
}
