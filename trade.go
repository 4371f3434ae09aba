package notas

import (
	"fmt"
	"strings"
)

// Source locates a trade row in the batch. Zero fields are unknown.
type Source struct {
	Document string // base name of the document
	Page     int    // 1-based page number
	Line     int    // 1-based line number within the page text
}

// String returns the source as "document:page:line", omitting unknown parts.
func (s Source) String() string {
	parts := make([]string, 0, 3)
	if s.Document != "" {
		parts = append(parts, s.Document)
	}
	if s.Page > 0 {
		parts = append(parts, fmt.Sprintf("%d", s.Page))
	}
	if s.Line > 0 {
		parts = append(parts, fmt.Sprintf("%d", s.Line))
	}
	return strings.Join(parts, ":")
}

// TradeRecord is a single trade row found in a nota de corretagem.
//
// Quantity and AveragePrice are kept exactly as they appear in the document,
// they are only parsed when totals are explicitly requested.
type TradeRecord struct {
	Ticker       string
	Quantity     string
	AveragePrice string
	PriceFormula string
	Source       Source
}

// NewTradeRecord creates a TradeRecord and derives its price formula.
func NewTradeRecord(ticker, quantity, averagePrice string) TradeRecord {
	return TradeRecord{
		Ticker:       ticker,
		Quantity:     quantity,
		AveragePrice: averagePrice,
		PriceFormula: priceFormula(averagePrice, quantity),
	}
}

// priceFormula is the human readable "(price * quantity)" expression.
func priceFormula(price, quantity string) string {
	return "(" + price + " * " + quantity + ")"
}

// GroupedRecord accumulates every trade of a single ticker.
//
// Quantity and PriceFormula are the " + " concatenation of the contributing
// trades fields, in the order they were found. AveragePrice is the one of the
// first trade.
type GroupedRecord struct {
	Ticker       string
	Quantity     string
	AveragePrice string
	PriceFormula string
	Trades       []TradeRecord
}

// add appends a trade of the same ticker to the group.
func (g *GroupedRecord) add(r TradeRecord) {
	if len(g.Trades) == 0 {
		g.Ticker = r.Ticker
		g.Quantity = r.Quantity
		g.AveragePrice = r.AveragePrice
		g.PriceFormula = r.PriceFormula
	} else {
		g.Quantity += " + " + r.Quantity
		g.PriceFormula += " + " + r.PriceFormula
	}
	g.Trades = append(g.Trades, r)
}
