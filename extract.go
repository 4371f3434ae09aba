package notas

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ExtractPage extracts every trade record from a page's text.
//
// Rows rejected by the layout are reported as RejectedLine diagnostics. A
// page without any line carrying the marker returns a NoMatchOnPage
// diagnostic. Records and diagnostics only carry their line number, the
// caller knows the rest.
func ExtractPage(text string, layout *Layout) ([]TradeRecord, Diagnostics) {
	var records []TradeRecord
	var diags Diagnostics
	rows := 0

	// text extractors may return decomposed accents
	text = norm.NFC.String(text)
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		r, ok, err := layout.ParseLine(line)
		if !ok {
			continue
		}
		rows++
		src := Source{Line: i + 1}
		if err != nil {
			diags = append(diags, Diagnostic{Kind: RejectedLine, Source: src, Err: err})
			continue
		}
		r.Source = src
		records = append(records, r)
	}

	if rows == 0 {
		diags = append(diags, Diagnostic{Kind: NoMatchOnPage})
	}
	return records, diags
}
