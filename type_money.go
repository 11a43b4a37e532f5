package costcalc

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency label of a ledger when none is given.
const DefaultCurrency = "INR"

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// ValidateCurrency checks that code is a known ISO 4217 currency code.
func ValidateCurrency(code string) error {
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("unknown currency code %q", code)
	}
	return nil
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// Rounded returns the value rounded to the currency's minor unit.
func (m Money) Rounded() decimal.Decimal {
	if m.cur == "" {
		return m.value
	}
	return m.value.Round(int32(m.currency().Fraction))
}

// String returns the currency code followed by the rounded value in grouped
// digits, e.g. "INR 12,34,567.5".
func (m Money) String() string {
	if m.cur == "" {
		return Format(m.value)
	}
	return m.cur + " " + Format(m.Rounded())
}

func (m Money) Currency() string         { return m.cur }
func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) Mul(q Quantity) Money     { return Money{value: m.value.Mul(q.value), cur: m.cur} }

// In returns the same amount labelled with another currency.
func (m Money) In(currency string) Money { return Money{value: m.value, cur: currency} }

// Add returns the sum of m and n, see cur for their currencies.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// MarshalJSON writes the exact amount, not the rounded one.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.MarshalJSON()
}
