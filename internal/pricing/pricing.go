// Package pricing implements the variant multiplier table and the
// subtotal/tax/total arithmetic. Everything here is pure: no stores,
// no clocks, no I/O.
package pricing

import (
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/models"

	"github.com/shopspring/decimal"
)

// Table maps variant labels to price multipliers relative to the 500g
// reference price, plus a tax rate.
type Table struct {
	Multipliers map[string]decimal.Decimal
	TaxRate     decimal.Decimal
}

// NewTable builds a Table from float config values.
func NewTable(multipliers map[string]float64, taxRate float64) Table {
	t := Table{
		Multipliers: make(map[string]decimal.Decimal, len(multipliers)),
		TaxRate:     decimal.NewFromFloat(taxRate),
	}
	for label, m := range multipliers {
		t.Multipliers[label] = decimal.NewFromFloat(m)
	}
	return t
}

// DefaultMultipliers is the standard weight-variant table.
func DefaultMultipliers() map[string]float64 {
	return map[string]float64{
		"250g": 0.6,
		"500g": 1.0,
		"1kg":  1.8,
	}
}

// PriceForVariant returns the unit price for a variant: base price times
// the variant multiplier, rounded half-up to 2 decimals. Unknown labels
// fall back to the base price unchanged.
func (t Table) PriceForVariant(basePrice models.Money, variantLabel string) models.Money {
	multiplier, ok := t.Multipliers[variantLabel]
	if !ok {
		multiplier = decimal.NewFromInt(1)
	}
	return models.NewMoneyFromDecimal(basePrice.Decimal.Mul(multiplier).Round(2))
}

// Line is one priced cart or checkout line.
type Line struct {
	UnitPrice models.Money
	Quantity  int
}

// Totals is the result of a pricing pass.
type Totals struct {
	Subtotal models.Money `json:"subtotal"`
	Tax      models.Money `json:"tax"`
	Total    models.Money `json:"total"`
}

// ComputeTotals sums line prices, applies the table's tax rate and
// returns subtotal, tax and grand total, each rounded to 2 decimals.
// Lines with a non-positive quantity contribute nothing.
func (t Table) ComputeTotals(lines []Line) Totals {
	subtotal := decimal.Zero
	for _, line := range lines {
		if line.Quantity <= 0 {
			continue
		}
		subtotal = subtotal.Add(line.UnitPrice.Decimal.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	subtotal = subtotal.Round(2)
	tax := subtotal.Mul(t.TaxRate).Round(2)
	return Totals{
		Subtotal: models.NewMoneyFromDecimal(subtotal),
		Tax:      models.NewMoneyFromDecimal(tax),
		Total:    models.NewMoneyFromDecimal(subtotal.Add(tax)),
	}
}
