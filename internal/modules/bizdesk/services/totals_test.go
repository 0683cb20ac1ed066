package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/modules/bizdesk/models"
)

func TestComputeTotals(t *testing.T) {
	cases := []struct {
		name     string
		products []models.SaleProductInput
		discount *float64
		subtotal float64
		total    float64
		profit   float64
	}{
		{"single line", []models.SaleProductInput{product("Pen", 2, 50)}, nil, 100, 100, 20},
		{"discounted", []models.SaleProductInput{product("Chair", 1, 4500)}, ptr(500.0), 4500, 4000, 800},
		{"fractional prices", []models.SaleProductInput{product("Tea", 3, 33.33), product("Sugar", 1, 0.01)}, nil, 100, 100, 20},
		{"profit rounds to whole units", []models.SaleProductInput{product("Gum", 1, 12.5)}, nil, 12.5, 12.5, 3},
		{"discount above subtotal", []models.SaleProductInput{product("Pen", 1, 10)}, ptr(25.0), 10, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			totals := ComputeTotals(tc.products, tc.discount)
			assert.Equal(t, tc.subtotal, totals.Subtotal.InexactFloat64())
			assert.Equal(t, tc.total, totals.Total.InexactFloat64())
			assert.Equal(t, tc.profit, totals.Profit.InexactFloat64())
			assert.Len(t, totals.Lines, len(tc.products))
		})
	}
}

func TestComputeTotals_LineTotals(t *testing.T) {
	totals := ComputeTotals([]models.SaleProductInput{product("Tea", 3, 33.33), product("Pen", 2, 50)}, nil)

	assert.Equal(t, "99.99", totals.Lines[0].StringFixed(2))
	assert.Equal(t, "100.00", totals.Lines[1].StringFixed(2))
	assert.Equal(t, "199.99", totals.Subtotal.StringFixed(2))
}

func TestInvoiceGenerator(t *testing.T) {
	at := time.Date(2026, time.October, 18, 9, 30, 0, 0, time.UTC)
	gen := NewInvoiceGeneratorWith(func() time.Time { return at }, func(n int) int {
		assert.Equal(t, 1000, n)
		return 42
	})

	assert.Equal(t, "INV-1792315800000-42", gen.Next())
	assert.Regexp(t, `^INV-\d{13}-\d{1,3}$`, NewInvoiceGenerator().Next())
}

func TestHasSubCents(t *testing.T) {
	for _, v := range []float64{10, 0.01, 33.33, 4500.5, 19.99} {
		assert.False(t, hasSubCents(v), "%v", v)
	}
	for _, v := range []float64{0.004, 0.125, 19.999, 1.001} {
		assert.True(t, hasSubCents(v), "%v", v)
	}
}
