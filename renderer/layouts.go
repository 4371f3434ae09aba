package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/notas"
)

// RenderLayouts renders the available layouts as a markdown table.
// The default one is marked with a star.
func RenderLayouts(layouts []*notas.Layout, selected string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Layouts\n\n")
	fmt.Fprintln(&b, "| Name | Marker | Quantity | Price | Strict | Description |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|:---:|:---|")
	for _, l := range layouts {
		name := l.Name
		if name == selected {
			name += " *"
		}
		strict := " "
		if l.Strict {
			strict = "X"
		}
		fmt.Fprintf(&b, "| %s | `%s` | %d | %d | %s | %s |\n",
			name,
			l.Marker,
			l.QuantityFromEnd,
			l.PriceFromEnd,
			strict,
			l.Description,
		)
	}
	return b.String()
}
