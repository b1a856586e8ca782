package provider

import (
	"fmt"
	"strconv"
	"strings"
)

// Money is an amount in the currency's smallest unit. Both gateways in scope
// expect monetary values formatted to exactly two decimal places on the wire,
// so cents are the only internal representation.
type Money struct {
	Cents    int64
	Currency string
}

func NewMoney(cents int64, currency string) (Money, error) {
	m := Money{Cents: cents, Currency: strings.ToUpper(currency)}
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	return m, nil
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return NewValidationError("amount must be positive, got %d", m.Cents)
	}
	if len(m.Currency) != 3 {
		return NewValidationError("currency must be a three-letter ISO code, got %q", m.Currency)
	}
	return nil
}

// Format renders the amount with exactly two decimals, e.g. 1000 -> "10.00".
func (m Money) Format() string {
	return FormatCents(m.Cents)
}

// FormatCents renders cents as a two-decimal string.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// ParseAmount converts a gateway-formatted decimal string ("10.00") or plain
// number ("10") back into cents.
func ParseAmount(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty amount")
	}
	negative := strings.HasPrefix(value, "-")
	value = strings.TrimPrefix(value, "-")

	whole, frac, _ := strings.Cut(value, ".")
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed amount %q: %w", value, err)
	}

	var cents int64
	switch len(frac) {
	case 0:
	case 1:
		d, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("malformed amount %q: %w", value, err)
		}
		cents = d * 10
	default:
		d, err := strconv.ParseInt(frac[:2], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("malformed amount %q: %w", value, err)
		}
		cents = d
	}

	total := units*100 + cents
	if negative {
		total = -total
	}
	return total, nil
}
