package notas

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bovespa(t *testing.T) *Layout {
	t.Helper()
	l, ok := NewLayouts().Get(DefaultLayout)
	require.True(t, ok, "default layout %q is not registered", DefaultLayout)
	return l
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		ok       bool
		rejected bool
		want     TradeRecord
	}{
		{
			name: "vista with qualifier",
			line: "1-BOVESPA C VISTA PETR4 N2 100 25,50 2.550,00 D",
			ok:   true,
			want: TradeRecord{Ticker: "PETR4", Quantity: "100", AveragePrice: "25,50", PriceFormula: "(25,50 * 100)"},
		},
		{
			name: "fracionario",
			line: "1-BOVESPA C FRACIONARIO ITSA4F PN N1 7 9,87 69,09 D",
			ok:   true,
			want: TradeRecord{Ticker: "ITSA4F PN", Quantity: "7", AveragePrice: "9,87", PriceFormula: "(9,87 * 7)"},
		},
		{
			name: "company name and market qualifier",
			line: "1-BOVESPA C VISTA VALE ON NM 1.000 61,20 61.200,00 D",
			ok:   true,
			want: TradeRecord{Ticker: "VALE ON", Quantity: "1.000", AveragePrice: "61,20", PriceFormula: "(61,20 * 1.000)"},
		},
		{
			name: "surrounding spaces",
			line: "   1-BOVESPA C VISTA TAEE11 UNT N2 20 35,10 702,00 D  ",
			ok:   true,
			want: TradeRecord{Ticker: "TAEE11 UNT", Quantity: "20", AveragePrice: "35,10", PriceFormula: "(35,10 * 20)"},
		},
		{
			name: "ci qualifier",
			line: "1-BOVESPA C VISTA BOVA11 CI 10 110,00 1.100,00 D",
			ok:   true,
			want: TradeRecord{Ticker: "BOVA11", Quantity: "10", AveragePrice: "110,00", PriceFormula: "(110,00 * 10)"},
		},
		{
			name: "name starting like a qualifier",
			line: "1-BOVESPA C VISTA CIA HERING ON NM 100 4,10 410,00 D",
			ok:   true,
			want: TradeRecord{Ticker: "CIA HERING ON", Quantity: "100", AveragePrice: "4,10", PriceFormula: "(4,10 * 100)"},
		},
		{
			name: "ticker starting like a qualifier",
			line: "1-BOVESPA C VISTA CIELO ON NM 300 5,25 1.575,00 D",
			ok:   true,
			want: TradeRecord{Ticker: "CIELO ON", Quantity: "300", AveragePrice: "5,25", PriceFormula: "(5,25 * 300)"},
		},
		{
			name: "name containing a qualifier",
			line: "1-BOVESPA C VISTA NMXX3 N1NM ON N1 5 2,00 10,00 D",
			ok:   true,
			want: TradeRecord{Ticker: "NMXX3 N1NM ON", Quantity: "5", AveragePrice: "2,00", PriceFormula: "(2,00 * 5)"},
		},
		{
			name: "not a trade row",
			line: "Resumo dos Negócios 2.550,00",
			ok:   false,
		},
		{
			name: "empty",
			line: "",
			ok:   false,
		},
		{
			name:     "too few fields",
			line:     "1-BOVESPA C VISTA PETR4",
			ok:       true,
			rejected: true,
		},
		{
			name:     "non numeric quantity",
			line:     "1-BOVESPA C VISTA PETR4 N2 abc 25,50 2.550,00 D",
			ok:       true,
			rejected: true,
		},
		{
			name:     "no ticker",
			line:     "1-BOVESPA C VISTA",
			ok:       true,
			rejected: true,
		},
	}

	l := bovespa(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := l.ParseLine(tt.line)
			assert.Equal(t, tt.ok, ok)
			if tt.rejected {
				assert.ErrorIs(t, err, ErrRejectedLine)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLineNonStrict(t *testing.T) {
	l := *bovespa(t)
	l.Strict = false

	got, ok, err := l.ParseLine("1-BOVESPA C VISTA PETR4 N2 abc 25,50 2.550,00 D")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc", got.Quantity)
	assert.Equal(t, "(25,50 * abc)", got.PriceFormula)

	// too few fields is always rejected
	_, ok, err = l.ParseLine("1-BOVESPA C VISTA PETR4")
	assert.True(t, ok)
	assert.ErrorIs(t, err, ErrRejectedLine)
}

func TestDecodeLayouts(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
	}{
		{
			name: "valid",
			yaml: `
- name: custom
  marker: "1-BOVESPA"
  prefix: '^1-BOVESPA [CV] VISTA'
  quantity_from_end: 3
  price_from_end: 2
`,
		},
		{
			name: "missing marker",
			yaml: `
- name: custom
  quantity_from_end: 3
  price_from_end: 2
`,
			wantErr: true,
		},
		{
			name: "zero offset",
			yaml: `
- name: custom
  marker: X
  quantity_from_end: 0
  price_from_end: 2
`,
			wantErr: true,
		},
		{
			name: "same offsets",
			yaml: `
- name: custom
  marker: X
  quantity_from_end: 2
  price_from_end: 2
`,
			wantErr: true,
		},
		{
			name: "invalid pattern",
			yaml: `
- name: custom
  marker: X
  qualifiers: '(\sN2'
  quantity_from_end: 3
  price_from_end: 2
`,
			wantErr: true,
		},
		{
			name: "unknown field",
			yaml: `
- name: custom
  marker: X
  quantity: 3
`,
			wantErr: true,
		},
		{
			name: "empty document",
			yaml: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeLayouts(strings.NewReader(tt.yaml))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLayoutsAdd(t *testing.T) {
	s := NewLayouts()
	custom, err := DecodeLayouts(strings.NewReader(`
- name: bovespa
  marker: "1-BOVESPA"
  quantity_from_end: 3
  price_from_end: 2
- name: other
  marker: "OTHER"
  quantity_from_end: 3
  price_from_end: 2
`))
	require.NoError(t, err)
	s.Add(custom...)

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, "bovespa", all[0].Name, "a replaced layout keeps its position")
	assert.Equal(t, 3, all[0].QuantityFromEnd)
	assert.Equal(t, "other", all[1].Name)

	_, ok := s.Get("missing")
	assert.False(t, ok)
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "100", want: "100"},
		{in: "25,50", want: "25.5"},
		{in: "1.000", want: "1000"},
		{in: "2.550,00", want: "2550"},
		{in: "-3,5", want: "-3.5"},
		{in: "1.00", wantErr: true},
		{in: "1,2,3", wantErr: true},
		{in: "D", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseNumber(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}
