package notas

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// BRL is the currency of every amount found in a nota de corretagem.
const BRL = money.BRL

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns the Money value in currency cur.
func M(value decimal.Decimal, cur string) Money { return Money{value: value, cur: cur} }

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String formats the value with the currency symbol and separators.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string            { return m.cur }
func (m Money) Value() decimal.Decimal      { return m.value }
func (m Money) IsZero() bool                { return m.value.IsZero() }
func (m Money) Equal(n Money) bool          { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) Add(n Money) Money           { return Money{value: m.value.Add(n.value), cur: m.cur} }
func (m Money) Mul(q decimal.Decimal) Money { return Money{value: m.value.Mul(q), cur: m.cur} }

// Div divides by a quantity, rounding to the currency precision.
func (m Money) Div(q decimal.Decimal) Money {
	return Money{value: m.value.DivRound(q, int32(m.currency().Fraction)), cur: m.cur}
}
