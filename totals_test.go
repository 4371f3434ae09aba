package notas

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotals(t *testing.T) {
	g := Group([]TradeRecord{
		NewTradeRecord("VALE3", "50", "10,00"),
		NewTradeRecord("VALE3", "30", "12,00"),
	})[0]

	got, err := g.Totals()
	require.NoError(t, err)
	assert.True(t, got.Quantity.Equal(decimal.NewFromInt(80)), "quantity = %s", got.Quantity)
	assert.True(t, got.Amount.Equal(M(decimal.NewFromInt(860), BRL)), "amount = %s", got.Amount)
	assert.True(t, got.AveragePrice.Equal(M(decimal.RequireFromString("10.75"), BRL)), "average = %s", got.AveragePrice)
	assert.Contains(t, got.AveragePrice.String(), "10,75")
}

func TestTotalsRounding(t *testing.T) {
	g := Group([]TradeRecord{
		NewTradeRecord("ITSA4", "3", "10,00"),
		NewTradeRecord("ITSA4", "1.000", "10,01"),
	})[0]
	got, err := g.Totals()
	require.NoError(t, err)
	// 10.040 / 1003 = 10.00997...
	assert.Equal(t, "10.01", got.AveragePrice.Value().StringFixed(2))
	assert.Contains(t, got.Amount.String(), "10.040,00")
}

func TestTotalsErrors(t *testing.T) {
	tests := []struct {
		name    string
		records []TradeRecord
	}{
		{"bad quantity", []TradeRecord{NewTradeRecord("X", "1O", "1,00")}},
		{"bad price", []TradeRecord{NewTradeRecord("X", "10", "1.0")}},
		{"zero quantity", []TradeRecord{NewTradeRecord("X", "0", "1,00")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Group(tt.records)[0].Totals()
			assert.Error(t, err)
		})
	}
}
