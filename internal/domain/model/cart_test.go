package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCartLine_EffectiveUnitPrice(t *testing.T) {
	tests := []struct {
		name     string
		line     CartLine
		expected string
	}{
		{
			name:     "flat per-unit price",
			line:     CartLine{Quantity: 3, LineTotal: decimal.NewFromInt(300000)},
			expected: "100000",
		},
		{
			name:     "promotional total",
			line:     CartLine{Quantity: 2, LineTotal: decimal.NewFromInt(150000)},
			expected: "75000",
		},
		{
			name:     "reverted quantity keeps the confirmed unit price",
			line:     CartLine{Quantity: 2, PricedQuantity: 3, LineTotal: decimal.NewFromInt(300000)},
			expected: "100000",
		},
		{
			name:     "zero quantity never divides",
			line:     CartLine{Quantity: 0, LineTotal: decimal.NewFromInt(150000)},
			expected: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.line.EffectiveUnitPrice().String())
		})
	}
}

func TestCartLine_SelectedSubtotal(t *testing.T) {
	// 100000 / 3 does not divide evenly; the subtotal must still equal the line total.
	line := CartLine{Quantity: 3, LineTotal: decimal.NewFromInt(100000)}
	assert.True(t, line.SelectedSubtotal().Equal(decimal.NewFromInt(100000)))
}

func TestCartSummary_IsEmpty(t *testing.T) {
	assert.True(t, CartSummary{}.IsEmpty())
	assert.False(t, CartSummary{TotalQuantity: 1}.IsEmpty())
}
