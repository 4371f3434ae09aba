package notas

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Totals are the evaluated figures of a GroupedRecord.
type Totals struct {
	Quantity     decimal.Decimal
	Amount       Money // sum of price * quantity
	AveragePrice Money // Amount / Quantity
}

// Totals evaluates the group's formula.
//
// It fails if a trade has a non numeric quantity or price, or if the total
// quantity is zero.
func (g GroupedRecord) Totals() (Totals, error) {
	t := Totals{Amount: M(decimal.Zero, BRL)}
	for _, r := range g.Trades {
		q, err := ParseNumber(r.Quantity)
		if err != nil {
			return Totals{}, fmt.Errorf("cannot evaluate %s quantity at %s: %w", g.Ticker, r.Source, err)
		}
		p, err := ParseNumber(r.AveragePrice)
		if err != nil {
			return Totals{}, fmt.Errorf("cannot evaluate %s price at %s: %w", g.Ticker, r.Source, err)
		}
		t.Quantity = t.Quantity.Add(q)
		t.Amount = t.Amount.Add(M(p, BRL).Mul(q))
	}
	if t.Quantity.IsZero() {
		return Totals{}, fmt.Errorf("cannot evaluate %s average price: total quantity is zero", g.Ticker)
	}
	t.AveragePrice = t.Amount.Div(t.Quantity)
	return t, nil
}
