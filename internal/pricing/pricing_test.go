package pricing

import (
	"testing"

	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/models"

	"github.com/shopspring/decimal"
)

func money(t *testing.T, v string) models.Money {
	t.Helper()
	d, err := decimal.NewFromString(v)
	if err != nil {
		t.Fatalf("bad money literal %q: %v", v, err)
	}
	return models.NewMoneyFromDecimal(d)
}

func TestPriceForVariantMultipliers(t *testing.T) {
	table := NewTable(DefaultMultipliers(), 0.10)
	base := money(t, "100.00")

	cases := []struct {
		variant string
		want    string
	}{
		{"250g", "60.00"},
		{"500g", "100.00"},
		{"1kg", "180.00"},
	}
	for _, tc := range cases {
		got := table.PriceForVariant(base, tc.variant)
		if got.String() != tc.want {
			t.Fatalf("variant %s: got %s, want %s", tc.variant, got.String(), tc.want)
		}
	}
}

func TestPriceForVariantUnknownLabelFallsBack(t *testing.T) {
	table := NewTable(DefaultMultipliers(), 0.10)
	base := money(t, "42.50")

	got := table.PriceForVariant(base, "2kg")
	if got.String() != "42.50" {
		t.Fatalf("unknown variant should use base price, got %s", got.String())
	}
}

func TestPriceForVariantRoundsHalfUp(t *testing.T) {
	table := NewTable(DefaultMultipliers(), 0.10)
	// 12.99 * 0.6 = 7.794 -> 7.79; 18.99 * 0.6 = 11.394 -> 11.39
	if got := table.PriceForVariant(money(t, "12.99"), "250g"); got.String() != "7.79" {
		t.Fatalf("got %s, want 7.79", got.String())
	}
	// 24.99 * 1.8 = 44.982 -> 44.98
	if got := table.PriceForVariant(money(t, "24.99"), "1kg"); got.String() != "44.98" {
		t.Fatalf("got %s, want 44.98", got.String())
	}
}

func TestComputeTotalsCheckoutTax(t *testing.T) {
	table := NewTable(DefaultMultipliers(), 0.18)
	totals := table.ComputeTotals([]Line{
		{UnitPrice: money(t, "100.00"), Quantity: 1},
	})
	if totals.Subtotal.String() != "100.00" {
		t.Fatalf("subtotal: got %s", totals.Subtotal.String())
	}
	if totals.Tax.String() != "18.00" {
		t.Fatalf("tax: got %s", totals.Tax.String())
	}
	if totals.Total.String() != "118.00" {
		t.Fatalf("total: got %s", totals.Total.String())
	}
}

func TestComputeTotalsMultipleLines(t *testing.T) {
	table := NewTable(DefaultMultipliers(), 0.10)
	totals := table.ComputeTotals([]Line{
		{UnitPrice: money(t, "7.79"), Quantity: 2},
		{UnitPrice: money(t, "14.99"), Quantity: 1},
		{UnitPrice: money(t, "44.98"), Quantity: 0}, // ignored
	})
	// 15.58 + 14.99 = 30.57; tax 3.057 -> 3.06
	if totals.Subtotal.String() != "30.57" {
		t.Fatalf("subtotal: got %s", totals.Subtotal.String())
	}
	if totals.Tax.String() != "3.06" {
		t.Fatalf("tax: got %s", totals.Tax.String())
	}
	if totals.Total.String() != "33.63" {
		t.Fatalf("total: got %s", totals.Total.String())
	}
}

func TestComputeTotalsEmpty(t *testing.T) {
	table := NewTable(DefaultMultipliers(), 0.18)
	totals := table.ComputeTotals(nil)
	if totals.Subtotal.String() != "0.00" || totals.Tax.String() != "0.00" || totals.Total.String() != "0.00" {
		t.Fatalf("empty input should produce zero totals: %+v", totals)
	}
}
