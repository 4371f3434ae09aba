// Package pdftext reads the plain text of PDF documents, page by page.
package pdftext

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/dslipak/pdf"
)

// Reader reads PDF files from the local filesystem.
// Its zero value is ready to use.
type Reader struct{}

// ReadPages returns the text of every page of the PDF at path, one string per
// page, rows separated by "\n". A page without content returns "".
func (Reader) ReadPages(ctx context.Context, path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", path, err)
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", path, err)
	}
	r, err := pdf.NewReader(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	n := r.NumPage()
	pages := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		rows, err := p.GetTextByRow()
		if err != nil {
			return nil, fmt.Errorf("cannot read page %d of %s: %w", i, path, err)
		}
		pages = append(pages, pageText(rows))
	}
	return pages, nil
}

// pageText joins rows top to bottom.
func pageText(rows pdf.Rows) string {
	rows = slices.Clone(rows)
	// PDF coordinates grow upward.
	slices.SortStableFunc(rows, func(a, b *pdf.Row) int {
		switch {
		case a.Position > b.Position:
			return -1
		case a.Position < b.Position:
			return 1
		}
		return 0
	})

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, rowText(row.Content))
	}
	return strings.Join(lines, "\n")
}

// rowText joins the glyphs of a row left to right. A space is inserted
// wherever the gap between two glyphs is wider than a fraction of the font
// size.
func rowText(texts pdf.TextHorizontal) string {
	texts = slices.Clone(texts)
	slices.SortStableFunc(texts, func(a, b pdf.Text) int {
		switch {
		case a.X < b.X:
			return -1
		case a.X > b.X:
			return 1
		}
		return 0
	})

	var b strings.Builder
	var end float64
	lastSpace := true
	for i, t := range texts {
		if i > 0 && !lastSpace && t.S != " " && t.X-end > gap(t) {
			b.WriteByte(' ')
		}
		b.WriteString(t.S)
		lastSpace = strings.HasSuffix(t.S, " ")
		end = t.X + t.W
	}
	return strings.TrimSpace(b.String())
}

// gap is the minimum distance between two glyphs of different words.
func gap(t pdf.Text) float64 {
	if t.FontSize <= 0 {
		return 1
	}
	return t.FontSize * 0.2
}
