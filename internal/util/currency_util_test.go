package util

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestFormatCurrency(t *testing.T) {
	testCases := []struct {
		name     string
		amount   decimal.Decimal
		expected string
	}{
		{"整數千分位", decimal.NewFromInt(65000), "₹65,000"},
		{"小額", decimal.NewFromInt(58), "₹58"},
		{"百萬", decimal.NewFromInt(1234567), "₹1,234,567"},
		{"小數四捨五入", decimal.NewFromFloat(349.6), "₹350"},
		{"零", decimal.Zero, "₹0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, FormatCurrency(tc.amount))
		})
	}
}
