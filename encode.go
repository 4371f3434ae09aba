package notas

import (
	"encoding/json"
	"fmt"
	"io"
)

// this file contains the JSONL export of grouped records.
// One line per ticker, fields in a stable order so that exports can be diffed.

// marshalTrade returns the JSON object of a single trade of a group.
func marshalTrade(r TradeRecord) (json.RawMessage, error) {
	var w jsonObjectWriter
	appendTrade(&w, r)
	return w.MarshalJSON()
}

// appendTrade appends the fields of r but its ticker.
func appendTrade(w *jsonObjectWriter, r TradeRecord) {
	w.Append("quantity", r.Quantity)
	w.Append("averagePrice", r.AveragePrice)
	w.Append("priceFormula", r.PriceFormula)
	w.Optional("document", r.Source.Document)
	w.Optional("page", r.Source.Page)
	w.Optional("line", r.Source.Line)
}

// marshalGroup returns the JSON object of a grouped record.
func marshalGroup(g GroupedRecord) ([]byte, error) {
	trades := make([]json.RawMessage, 0, len(g.Trades))
	for _, r := range g.Trades {
		data, err := marshalTrade(r)
		if err != nil {
			return nil, err
		}
		trades = append(trades, data)
	}

	var w jsonObjectWriter
	w.Append("ticker", g.Ticker)
	w.Append("quantity", g.Quantity)
	w.Append("averagePrice", g.AveragePrice)
	w.Append("priceFormula", g.PriceFormula)
	w.Append("trades", trades)
	return w.MarshalJSON()
}

// EncodeGroups writes the groups to 'w' as JSONL, one group per line.
func EncodeGroups(w io.Writer, groups []GroupedRecord) error {
	for _, g := range groups {
		data, err := marshalGroup(g)
		if err != nil {
			return fmt.Errorf("cannot marshal group %q: %w", g.Ticker, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write groups: %w", err)
		}
	}
	return nil
}

// EncodeRecords writes the records to 'w' as JSONL, one record per line, in
// the order they were found.
func EncodeRecords(w io.Writer, records []TradeRecord) error {
	for _, r := range records {
		var o jsonObjectWriter
		o.Append("ticker", r.Ticker)
		appendTrade(&o, r)
		data, err := o.MarshalJSON()
		if err != nil {
			return fmt.Errorf("cannot marshal record %q at %s: %w", r.Ticker, r.Source, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write records: %w", err)
		}
	}
	return nil
}
