package renderer

import (
	"errors"

	"github.com/etnz/notas"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Report is a struct to represent the grouped trades in json.
// All values are already formatted, the templates only lay them out.
type Report struct {
	// Groups holds one entry per ticker, in first-seen order.
	Groups []Group `json:"groups"`
}

// Group represents the trades of a single ticker.
type Group struct {
	Ticker       string `json:"ticker"`
	Quantity     string `json:"quantity"`
	PriceFormula string `json:"priceFormula"`
	// Totals is only set when the report is evaluated.
	Totals *Totals `json:"totals,omitempty"`
}

// Totals holds the evaluated figures of a group.
type Totals struct {
	Quantity     string `json:"quantity"`
	Amount       string `json:"amount"`
	AveragePrice string `json:"averagePrice"`
}

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// formatQuantity formats a quantity the way notas do, e.g. 1.500.
func formatQuantity(q decimal.Decimal) string {
	return ptBR.Sprint(number.Decimal(q.InexactFloat64()))
}

// NewReport creates a Report from grouped records.
//
// If evaluate is true, totals are computed for each group. Groups that cannot
// be evaluated are still reported, without totals, and the returned error
// joins every evaluation failure.
func NewReport(groups []notas.GroupedRecord, evaluate bool) (*Report, error) {
	r := &Report{Groups: make([]Group, 0, len(groups))}
	var errs []error
	for _, g := range groups {
		rg := Group{
			Ticker:       g.Ticker,
			Quantity:     g.Quantity,
			PriceFormula: g.PriceFormula,
		}
		if evaluate {
			t, err := g.Totals()
			if err != nil {
				errs = append(errs, err)
			} else {
				rg.Totals = &Totals{
					Quantity:     formatQuantity(t.Quantity),
					Amount:       t.Amount.String(),
					AveragePrice: t.AveragePrice.String(),
				}
			}
		}
		r.Groups = append(r.Groups, rg)
	}
	return r, errors.Join(errs...)
}
