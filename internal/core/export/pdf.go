package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// PDFExporter implements table export using gofpdf
type PDFExporter struct{}

// NewPDFExporter creates a new PDF exporter
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Export exports data to PDF format
func (p *PDFExporter) Export(data *ExportData, writer io.Writer) error {
	if len(data.Columns) == 0 {
		return fmt.Errorf("no columns provided")
	}

	orientation := "P"
	if data.Style.Orientation == "landscape" {
		orientation = "L"
	}
	pageSize := data.Style.PageSize
	if pageSize == "" {
		pageSize = "A4"
	}
	fontSize := data.Style.FontSize
	if fontSize == 0 {
		fontSize = 9
	}

	pdf := gofpdf.New(orientation, "mm", pageSize, "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(false, 15)
	pdf.AddPage()

	if data.Title != "" {
		pdf.SetFont("Arial", "B", 16)
		pdf.Cell(0, 10, tr(data.Title))
		pdf.Ln(12)
	}

	if data.Description != "" {
		pdf.SetFont("Arial", "", fontSize)
		pdf.MultiCell(0, 5, tr(data.Description), "", "", false)
		pdf.Ln(4)
	}

	if !data.CreatedAt.IsZero() {
		pdf.SetFont("Arial", "I", 8)
		meta := fmt.Sprintf("Generated: %s", data.CreatedAt.Format("2006-01-02 15:04:05"))
		if data.Author != "" {
			meta += fmt.Sprintf(" | %s", data.Author)
		}
		pdf.Cell(0, 5, tr(meta))
		pdf.Ln(8)
	}

	pageWidth, pageHeight := pdf.GetPageSize()
	leftMargin, _, rightMargin, bottomMargin := pdf.GetMargins()
	colWidth := (pageWidth - leftMargin - rightMargin) / float64(len(data.Columns))

	drawHeader := func() {
		pdf.SetFont("Arial", "B", fontSize)
		fill := data.Style.HeaderBgColor != ""
		if fill {
			r, g, b := hexToRGB(data.Style.HeaderBgColor)
			pdf.SetFillColor(r, g, b)
			pdf.SetTextColor(255, 255, 255)
		}
		for _, col := range data.Columns {
			pdf.CellFormat(colWidth, 7, tr(col.Title), "1", 0, "C", fill, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Arial", "", fontSize)
	}

	drawHeader()

	for rowIdx, row := range data.Rows {
		if pdf.GetY()+6 > pageHeight-bottomMargin {
			pdf.AddPage()
			drawHeader()
		}

		if data.Style.AlternateRows {
			color := data.Style.RowBgColor1
			if rowIdx%2 == 1 {
				color = data.Style.RowBgColor2
			}
			r, g, b := hexToRGB(color)
			pdf.SetFillColor(r, g, b)
		}

		for colIdx, col := range data.Columns {
			var value interface{} = ""
			if colIdx < len(row) {
				value = row[colIdx]
			}
			align := string(col.Align)
			if align == "" {
				align = string(AlignLeft)
			}
			pdf.CellFormat(colWidth, 6, tr(formatCell(col, value)), "1", 0, align, data.Style.AlternateRows, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(data.Summary) > 0 {
		pdf.Ln(4)
		for _, line := range data.Summary {
			if pdf.GetY()+6 > pageHeight-bottomMargin {
				pdf.AddPage()
			}
			pdf.SetFont("Arial", "B", fontSize)
			pdf.CellFormat(50, 6, tr(line.Label), "", 0, "L", false, 0, "")
			pdf.SetFont("Arial", "", fontSize)
			pdf.CellFormat(50, 6, tr(line.Value), "", 1, "L", false, 0, "")
		}
	}

	if err := pdf.Output(writer); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	return nil
}

// GetContentType returns the MIME type for PDF files
func (p *PDFExporter) GetContentType() string {
	return "application/pdf"
}

// GetFileExtension returns the file extension for PDF files
func (p *PDFExporter) GetFileExtension() string {
	return ".pdf"
}

// hexToRGB converts hex color to RGB values, white when invalid
func hexToRGB(hex string) (int, int, int) {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return 255, 255, 255
	}

	var r, g, b int
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return 255, 255, 255
	}
	return r, g, b
}
