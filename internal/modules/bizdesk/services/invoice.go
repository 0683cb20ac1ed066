package services

import (
	"fmt"
	"math/rand"
	"time"
)

// InvoiceGenerator produces display numbers of the form INV-<unix ms>-<0..999>.
// Uniqueness is enforced by the sales.invoice_number index, not here.
type InvoiceGenerator struct {
	now  func() time.Time
	intn func(n int) int
}

func NewInvoiceGenerator() *InvoiceGenerator {
	return &InvoiceGenerator{now: time.Now, intn: rand.Intn}
}

// NewInvoiceGeneratorWith lets tests fix the clock and the random suffix
func NewInvoiceGeneratorWith(now func() time.Time, intn func(n int) int) *InvoiceGenerator {
	if now == nil {
		now = time.Now
	}
	if intn == nil {
		intn = rand.Intn
	}
	return &InvoiceGenerator{now: now, intn: intn}
}

// Next returns a fresh invoice number
func (g *InvoiceGenerator) Next() string {
	return fmt.Sprintf("INV-%d-%d", g.now().UnixMilli(), g.intn(1000))
}
