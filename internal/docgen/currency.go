package docgen

import (
	"strings"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// discountedPrice applies a percentage discount to a unit price.
func discountedPrice(unitPrice, discountPercent decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(oneHundred.Sub(discountPercent)).Div(oneHundred)
}

// formatBRL renders a monetary value as a Brazilian currency string:
// "R$ 1.234,50". Rounding is fixed at two decimal places, half away from
// zero, which for the non-negative amounts a proposal carries is round
// half-up.
func formatBRL(v decimal.Decimal) string {
	s := v.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := "R$ " + b.String() + "," + fracPart
	if neg {
		out = "R$ -" + b.String() + "," + fracPart
	}
	return out
}
