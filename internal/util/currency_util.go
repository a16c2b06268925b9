package util

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency 金額格式化為INR顯示字串
// 四捨五入到整數, 千分位逗號
//
// 範例:
//
//	FormatCurrency(decimal.NewFromInt(65000)) => "₹65,000"
func FormatCurrency(amount decimal.Decimal) string {
	rounded := amount.Round(0)

	s := rounded.Abs().String()
	var b strings.Builder
	if rounded.IsNegative() {
		b.WriteString("-")
	}
	b.WriteString("₹")

	n := len(s)
	for i, ch := range s {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteString(",")
		}
		b.WriteRune(ch)
	}
	return b.String()
}
