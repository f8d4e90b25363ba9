//go:build unit

package wizard_test

import (
	"testing"

	"rooftop-wizard/internal/domain/wizard"

	"github.com/stretchr/testify/assert"
)

func TestFormatCardNumber(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty input", input: "", expected: ""},
		{name: "single digit", input: "4", expected: "4"},
		{name: "four digits", input: "4111", expected: "4111"},
		{name: "five digits start a new group", input: "41111", expected: "4111 1"},
		{name: "full card number", input: "4111111111111111", expected: "4111 1111 1111 1111"},
		{name: "already formatted input is a no-op", input: "4111 1111 1111 1111", expected: "4111 1111 1111 1111"},
		{name: "non-digits stripped", input: "4111-1111-1111-1111", expected: "4111 1111 1111 1111"},
		{name: "overflow truncated to 16 digits", input: "41111111111111119999", expected: "4111 1111 1111 1111"},
		{name: "letters only", input: "abcd", expected: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, wizard.FormatCardNumber(tc.input))
		})
	}
}

func TestFormatExpiry(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty input", input: "", expected: ""},
		{name: "one digit has no slash", input: "1", expected: "1"},
		{name: "two digits gain a slash", input: "12", expected: "12/"},
		{name: "three digits", input: "122", expected: "12/2"},
		{name: "full expiry", input: "1225", expected: "12/25"},
		{name: "already formatted input is a no-op", input: "12/25", expected: "12/25"},
		{name: "overflow truncated to 4 digits", input: "122599", expected: "12/25"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, wizard.FormatExpiry(tc.input))
		})
	}
}

func TestFormatCVV(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty input", input: "", expected: ""},
		{name: "partial cvv", input: "12", expected: "12"},
		{name: "full cvv", input: "123", expected: "123"},
		{name: "overflow truncated to 3 digits", input: "12345", expected: "123"},
		{name: "non-digits stripped", input: "1a2b3c", expected: "123"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, wizard.FormatCVV(tc.input))
		})
	}
}

func TestFormatCardholder(t *testing.T) {
	assert.Equal(t, "JOHN DOE", wizard.FormatCardholder("  john doe "))
	assert.Equal(t, "", wizard.FormatCardholder("   "))
}

func TestPaymentCard(t *testing.T) {
	t.Run("setters apply the masks", func(t *testing.T) {
		card := wizard.PaymentCard{}.
			WithNumber("4111111111111111").
			WithName("john doe").
			WithExpiry("1225").
			WithCVV("123")

		assert.Equal(t, "4111 1111 1111 1111", card.Number())
		assert.Equal(t, "JOHN DOE", card.Name())
		assert.Equal(t, "12/25", card.Expiry())
		assert.Equal(t, "123", card.CVV())
	})

	t.Run("reconstruct re-applies the masks", func(t *testing.T) {
		card := wizard.ReconstructPaymentCard("4111x1111y1111z1111", "jane", "0128", "99")

		assert.Equal(t, "4111 1111 1111 1111", card.Number())
		assert.Equal(t, "JANE", card.Name())
		assert.Equal(t, "01/28", card.Expiry())
		assert.Equal(t, "99", card.CVV())
	})
}
