package docgen

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatBRL(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "R$ 0,00"},
		{1234.5, "R$ 1.234,50"},
		{999.999, "R$ 1.000,00"},
		{1000000, "R$ 1.000.000,00"},
		{12, "R$ 12,00"},
		{0.005, "R$ 0,01"},
	}
	for _, c := range cases {
		if got := formatBRL(decimal.NewFromFloat(c.in)); got != c.want {
			t.Errorf("formatBRL(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestHalfUpRounding(t *testing.T) {
	// 1234.505 * 2 must round half-up to 2469.01, independent of float
	// representation noise.
	unit := decimal.NewFromFloat(1234.505)
	total := discountedPrice(unit, decimal.Zero).Mul(decimal.NewFromInt(2))
	if got := formatBRL(total); got != "R$ 2.469,01" {
		t.Fatalf("total = %q, want R$ 2.469,01", got)
	}
}

func TestDiscountedPrice(t *testing.T) {
	unit := decimal.NewFromFloat(200)
	got := discountedPrice(unit, decimal.NewFromFloat(15))
	if !got.Equal(decimal.NewFromFloat(170)) {
		t.Fatalf("discountedPrice = %s, want 170", got)
	}
}
