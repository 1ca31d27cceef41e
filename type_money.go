package planner

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is a display-only monetary value. Planned-change amounts travel to
// the backend as bare decimals; Money exists so previews and the CLI can
// show them with the proper currency symbol and grouping.
type Money struct {
	value decimal.Decimal
	cur   string
}

// M builds a Money from a decimal value and an ISO currency code.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// Currency returns the money's currency code.
func (m Money) Currency() string { return m.cur }

// currency returns the money's full currency definition.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}
