package services

import (
	"github.com/shopspring/decimal"

	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/modules/bizdesk/models"
)

var profitMargin = decimal.NewFromFloat(0.2)

// SaleTotals holds the derived amounts of a sale
type SaleTotals struct {
	Lines    []decimal.Decimal
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
	Profit   decimal.Decimal
}

// ComputeTotals derives line totals, subtotal, total and the flat 20% profit.
// Line totals are kept to cents; profit is rounded to a whole unit.
func ComputeTotals(products []models.SaleProductInput, discount *float64) SaleTotals {
	totals := SaleTotals{
		Lines:    make([]decimal.Decimal, len(products)),
		Subtotal: decimal.Zero,
		Discount: decimal.Zero,
	}

	for i, p := range products {
		line := decimal.NewFromInt(int64(p.Qty)).Mul(decimal.NewFromFloat(p.Price)).Round(2)
		totals.Lines[i] = line
		totals.Subtotal = totals.Subtotal.Add(line)
	}

	if discount != nil {
		totals.Discount = decimal.NewFromFloat(*discount).Round(2)
	}

	totals.Total = decimal.Max(decimal.Zero, totals.Subtotal.Sub(totals.Discount))
	totals.Profit = totals.Total.Mul(profitMargin).Round(0)

	return totals
}

// hasSubCents reports whether v carries more precision than a decimal(12,2) column keeps
func hasSubCents(v float64) bool {
	d := decimal.NewFromFloat(v)
	return !d.Equal(d.Round(2))
}

func roundMoney(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
