package renderer

import (
	"fmt"
	"io"
)

// consoleRenderer prints reports as plain text blocks.
type consoleRenderer struct {
	w   io.Writer
	err error
}

// Printf formats according to a format specifier and writes to the renderer's writer.
// After the first error, it does nothing.
func (r *consoleRenderer) Printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

// RenderConsole writes one block per group to w.
func RenderConsole(w io.Writer, report *Report) error {
	r := &consoleRenderer{w: w}
	for _, g := range report.Groups {
		r.Printf("Trade: %s\n", g.Ticker)
		r.Printf("Quantidade: %s\n", g.Quantity)
		r.Printf("Fórmula preço médio: %s\n", g.PriceFormula)
		if t := g.Totals; t != nil {
			r.Printf("Quantidade total: %s\n", t.Quantity)
			r.Printf("Valor total: %s\n", t.Amount)
			r.Printf("Preço médio: %s\n", t.AveragePrice)
		}
		r.Printf("-----\n")
	}
	return r.err
}
