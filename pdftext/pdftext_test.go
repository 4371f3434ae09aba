package pdftext

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dslipak/pdf"
)

// glyphs lays out s as one glyph per rune, 1 unit wide, starting at x.
func glyphs(s string, x float64) pdf.TextHorizontal {
	var texts pdf.TextHorizontal
	for _, r := range s {
		texts = append(texts, pdf.Text{S: string(r), X: x, W: 1, FontSize: 10})
		x++
	}
	return texts
}

func TestRowText(t *testing.T) {
	tests := []struct {
		name  string
		texts pdf.TextHorizontal
		want  string
	}{
		{"empty", nil, ""},
		{"single word", glyphs("VALE3", 0), "VALE3"},
		{"gap makes a space", append(glyphs("VALE3", 0), glyphs("ON", 10)...), "VALE3 ON"},
		{"unordered glyphs", append(glyphs("ON", 10), glyphs("VALE3", 0)...), "VALE3 ON"},
		{"explicit space", append(glyphs("VALE3 ", 0), glyphs("ON", 10)...), "VALE3 ON"},
		{"narrow gap", append(glyphs("25", 0), glyphs(",50", 2.5)...), "25,50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rowText(tt.texts); got != tt.want {
				t.Errorf("rowText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPageText(t *testing.T) {
	rows := pdf.Rows{
		{Position: 100, Content: glyphs("bottom", 0)},
		{Position: 700, Content: glyphs("top", 0)},
		{Position: 400, Content: glyphs("middle", 0)},
	}
	if got, want := pageText(rows), "top\nmiddle\nbottom"; got != want {
		t.Errorf("pageText() = %q, want %q", got, want)
	}
	if rows[0].Position != 100 {
		t.Errorf("pageText() modified its argument")
	}
}

func TestReadPages(t *testing.T) {
	// testdata/nota.pdf has one page: a title, then a trade row drawn in two
	// runs of text separated by a wide gap.
	pages, err := Reader{}.ReadPages(context.Background(), filepath.Join("testdata", "nota.pdf"))
	if err != nil {
		t.Fatalf("ReadPages() error = %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("ReadPages() returned %d pages, want 1", len(pages))
	}
	want := "Resumo dos Negocios\n1-BOVESPA C VISTA PETR4 N2 100 25,50 2.550,00 D"
	if pages[0] != want {
		t.Errorf("ReadPages() page 1 = %q, want %q", pages[0], want)
	}
}

func TestReadPagesCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (Reader{}).ReadPages(ctx, filepath.Join("testdata", "nota.pdf")); err != context.Canceled {
		t.Errorf("ReadPages() error = %v, want %v", err, context.Canceled)
	}
}

func TestReadPagesErrors(t *testing.T) {
	dir := t.TempDir()
	notPDF := filepath.Join(dir, "nota.pdf")
	if err := os.WriteFile(notPDF, []byte("Resumo dos Negócios"), 0644); err != nil {
		t.Fatal(err)
	}
	for _, path := range []string{filepath.Join(dir, "missing.pdf"), notPDF} {
		if _, err := (Reader{}).ReadPages(context.Background(), path); err == nil {
			t.Errorf("ReadPages(%s) succeeded, want an error", filepath.Base(path))
		}
	}
}
