package export

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"
)

// InvoiceLine is one product on an invoice
type InvoiceLine struct {
	Name     string
	Quantity int
	Price    float64
	Total    float64
}

// InvoiceDocument is everything printed on a sale invoice
type InvoiceDocument struct {
	BusinessName  string
	InvoiceNumber string
	Date          time.Time
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Lines         []InvoiceLine
	Subtotal      float64
	Discount      float64
	Total         float64
	PaymentMethod string
	PaymentStatus string
	Notes         string
	Currency      string
}

// QRPayload is the text encoded in the invoice QR code
func (d *InvoiceDocument) QRPayload() string {
	return fmt.Sprintf("%s|%s|%.2f", d.InvoiceNumber, d.Date.UTC().Format(time.RFC3339), d.Total)
}

// RenderInvoice writes a one-page A4 invoice with a QR code of the bill number
func RenderInvoice(doc *InvoiceDocument, writer io.Writer) error {
	if doc.InvoiceNumber == "" {
		return fmt.Errorf("invoice number is required")
	}

	qr, err := qrcode.Encode(doc.QRPayload(), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	currency := doc.Currency
	if currency == "" {
		currency = "Rs."
	}
	money := func(v float64) string { return fmt.Sprintf("%s %.2f", currency, v) }

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(120, 10, tr(doc.BusinessName))
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(120, 6, tr("Invoice "+doc.InvoiceNumber))
	pdf.Ln(6)
	pdf.Cell(120, 6, doc.Date.Format("02 Jan 2006 15:04"))
	pdf.Ln(10)

	pdf.RegisterImageOptionsReader("invoice-qr", gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qr))
	pdf.ImageOptions("invoice-qr", 160, 10, 35, 35, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	// Bill to
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 6, "Bill To")
	pdf.Ln(6)
	pdf.SetFont("Arial", "", 10)
	for _, line := range []string{doc.CustomerName, doc.CustomerEmail, doc.CustomerPhone} {
		if line != "" {
			pdf.Cell(0, 5, tr(line))
			pdf.Ln(5)
		}
	}
	pdf.Ln(6)

	// Items
	widths := []float64{80, 25, 40, 45}
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(68, 114, 196)
	pdf.SetTextColor(255, 255, 255)
	for i, title := range []string{"Product", "Qty", "Price", "Total"} {
		pdf.CellFormat(widths[i], 7, title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "", 10)

	for _, line := range doc.Lines {
		pdf.CellFormat(widths[0], 6, tr(line.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, fmt.Sprintf("%d", line.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 6, tr(money(line.Price)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 6, tr(money(line.Total)), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(4)

	// Totals
	totals := []SummaryLine{
		{Label: "Subtotal", Value: money(doc.Subtotal)},
		{Label: "Discount", Value: money(doc.Discount)},
		{Label: "Total", Value: money(doc.Total)},
	}
	for i, line := range totals {
		style := ""
		if i == len(totals)-1 {
			style = "B"
		}
		pdf.SetFont("Arial", style, 10)
		pdf.CellFormat(145, 6, line.Label, "", 0, "R", false, 0, "")
		pdf.CellFormat(45, 6, tr(line.Value), "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 5, tr(fmt.Sprintf("Payment: %s (%s)", doc.PaymentMethod, doc.PaymentStatus)))
	pdf.Ln(5)
	if doc.Notes != "" {
		pdf.MultiCell(0, 5, tr("Notes: "+doc.Notes), "", "", false)
	}

	if err := pdf.Output(writer); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}
