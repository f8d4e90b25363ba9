//go:build unit

package listing_test

import (
	"testing"

	"rooftop-wizard/internal/domain/listing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() listing.SummaryParams {
	return listing.SummaryParams{
		RooftopID:  "rooftop-301",
		Title:      "Skyline Terrace",
		Host:       "Marina",
		PriceCents: 12000,
	}
}

func TestNewSummary(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*listing.SummaryParams)
		errIs  error
	}{
		{
			name:   "valid params",
			mutate: func(_ *listing.SummaryParams) {},
		},
		{
			name:   "missing rooftop id",
			mutate: func(p *listing.SummaryParams) { p.RooftopID = "  " },
			errIs:  listing.ErrMissingRooftopID,
		},
		{
			name:   "missing title",
			mutate: func(p *listing.SummaryParams) { p.Title = "" },
			errIs:  listing.ErrMissingTitle,
		},
		{
			name:   "missing host",
			mutate: func(p *listing.SummaryParams) { p.Host = "" },
			errIs:  listing.ErrMissingHost,
		},
		{
			name:   "negative price",
			mutate: func(p *listing.SummaryParams) { p.PriceCents = -1 },
			errIs:  listing.ErrNegativePrice,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := validParams()
			tc.mutate(&params)

			_, err := listing.NewSummary(params)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSummaryGuests(t *testing.T) {
	t.Run("declared capacity wins", func(t *testing.T) {
		params := validParams()
		capacity := 12
		params.Capacity = &capacity

		s, err := listing.NewSummary(params)
		require.NoError(t, err)
		assert.Equal(t, 12, s.Guests())
	})

	t.Run("falls back to the marketplace default", func(t *testing.T) {
		s, err := listing.NewSummary(validParams())
		require.NoError(t, err)
		assert.Equal(t, listing.DefaultCapacity, s.Guests())
	})

	t.Run("non-positive capacity falls back too", func(t *testing.T) {
		params := validParams()
		capacity := 0
		params.Capacity = &capacity

		s, err := listing.NewSummary(params)
		require.NoError(t, err)
		assert.Equal(t, listing.DefaultCapacity, s.Guests())
	})
}

func TestSummaryTotalForHours(t *testing.T) {
	t.Run("hourly price times duration", func(t *testing.T) {
		s, err := listing.NewSummary(validParams())
		require.NoError(t, err)
		assert.Equal(t, int64(72000), s.TotalForHours(6))
	})

	t.Run("caller supplied flat total wins", func(t *testing.T) {
		params := validParams()
		total := int64(50000)
		params.TotalCents = &total

		s, err := listing.NewSummary(params)
		require.NoError(t, err)
		assert.Equal(t, int64(50000), s.TotalForHours(6))
	})
}
