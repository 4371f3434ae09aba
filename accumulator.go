package notas

import "slices"

// Accumulator collects trade records across pages and documents and keeps
// them grouped by ticker.
//
// Groups are ordered by the first appearance of their ticker. Its zero value
// is not ready to use, use NewAccumulator.
type Accumulator struct {
	records []TradeRecord
	groups  []*GroupedRecord
	index   map[string]*GroupedRecord
}

// NewAccumulator returns an empty Accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{index: make(map[string]*GroupedRecord)}
}

// Add appends records, in order.
func (a *Accumulator) Add(records ...TradeRecord) {
	for _, r := range records {
		a.records = append(a.records, r)
		g, exists := a.index[r.Ticker]
		if !exists {
			g = &GroupedRecord{}
			a.groups = append(a.groups, g)
			a.index[r.Ticker] = g
		}
		g.add(r)
	}
}

// Len returns the number of records added so far.
func (a *Accumulator) Len() int { return len(a.records) }

// Records returns a copy of all the records added so far, in order.
func (a *Accumulator) Records() []TradeRecord { return slices.Clone(a.records) }

// Groups returns a copy of the current groups, one per ticker, in first-seen order.
func (a *Accumulator) Groups() []GroupedRecord {
	groups := make([]GroupedRecord, 0, len(a.groups))
	for _, g := range a.groups {
		c := *g
		c.Trades = slices.Clone(g.Trades)
		groups = append(groups, c)
	}
	return groups
}

// Group groups records by ticker.
//
// Repeated tickers get their quantity and formula appended with " + ", no
// numeric summation is performed.
func Group(records []TradeRecord) []GroupedRecord {
	a := NewAccumulator()
	a.Add(records...)
	return a.Groups()
}
