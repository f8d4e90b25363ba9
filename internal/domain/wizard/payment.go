package wizard

import "strings"

// Card input masks. Each formatter rebuilds its output from the cleaned
// digits on every change, so applying one to its own output is a no-op and
// malformed values are unrepresentable rather than rejected later.
//
// The fields are presentational: they are held only in the ephemeral session
// and are never forwarded to the booking backend. Real card capture belongs
// in a tokenizing payment SDK.

const (
	cardNumberDigits = 16
	expiryDigits     = 4
	cvvDigits        = 3
)

func digitsOnly(s string, max int) string {
	var b strings.Builder
	for _, r := range s {
		if r < '0' || r > '9' {
			continue
		}
		b.WriteRune(r)
		if b.Len() == max {
			break
		}
	}
	return b.String()
}

// FormatCardNumber strips non-digits, caps at 16 digits and regroups in runs
// of four: "4111111111111111" -> "4111 1111 1111 1111".
func FormatCardNumber(input string) string {
	cleaned := digitsOnly(input, cardNumberDigits)
	if cleaned == "" {
		return ""
	}

	var b strings.Builder
	for i := 0; i < len(cleaned); i += 4 {
		if i > 0 {
			b.WriteByte(' ')
		}
		end := i + 4
		if end > len(cleaned) {
			end = len(cleaned)
		}
		b.WriteString(cleaned[i:end])
	}
	return b.String()
}

// FormatExpiry strips non-digits, caps at 4 digits and inserts the slash once
// at least two digits are present: "1225" -> "12/25", "1" -> "1".
func FormatExpiry(input string) string {
	cleaned := digitsOnly(input, expiryDigits)
	if len(cleaned) >= 2 {
		return cleaned[:2] + "/" + cleaned[2:]
	}
	return cleaned
}

// FormatCVV strips non-digits and caps at 3 digits.
func FormatCVV(input string) string {
	return digitsOnly(input, cvvDigits)
}

// FormatCardholder mirrors the forced-uppercase entry of the card name field.
func FormatCardholder(input string) string {
	return strings.ToUpper(strings.TrimSpace(input))
}

// PaymentCard carries the formatted card fields of one wizard session.
type PaymentCard struct {
	number string
	name   string
	expiry string
	cvv    string
}

func (p PaymentCard) Number() string { return p.number }
func (p PaymentCard) Name() string   { return p.name }
func (p PaymentCard) Expiry() string { return p.expiry }
func (p PaymentCard) CVV() string    { return p.cvv }

func (p PaymentCard) WithNumber(input string) PaymentCard {
	p.number = FormatCardNumber(input)
	return p
}

func (p PaymentCard) WithName(input string) PaymentCard {
	p.name = FormatCardholder(input)
	return p
}

func (p PaymentCard) WithExpiry(input string) PaymentCard {
	p.expiry = FormatExpiry(input)
	return p
}

func (p PaymentCard) WithCVV(input string) PaymentCard {
	p.cvv = FormatCVV(input)
	return p
}

// ReconstructPaymentCard restores stored fields, re-applying the masks so a
// tampered snapshot cannot smuggle unformatted values back in.
func ReconstructPaymentCard(number, name, expiry, cvv string) PaymentCard {
	return PaymentCard{
		number: FormatCardNumber(number),
		name:   FormatCardholder(name),
		expiry: FormatExpiry(expiry),
		cvv:    FormatCVV(cvv),
	}
}
