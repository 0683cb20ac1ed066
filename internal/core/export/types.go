package export

import (
	"fmt"
	"io"
	"time"
)

// ExportFormat represents the export file format
type ExportFormat string

const (
	FormatPDF   ExportFormat = "pdf"
	FormatExcel ExportFormat = "excel"
)

// ParseFormat validates a format name; empty means excel
func ParseFormat(raw string) (ExportFormat, error) {
	switch ExportFormat(raw) {
	case "", FormatExcel, "xlsx":
		return FormatExcel, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("unsupported export format: %s", raw)
	}
}

// Exporter is the interface for all tabular export formats
type Exporter interface {
	Export(data *ExportData, writer io.Writer) error
	GetContentType() string
	GetFileExtension() string
}

// Align is a column's horizontal alignment
type Align string

const (
	AlignLeft  Align = "L"
	AlignRight Align = "R"
)

// Column describes one table column
type Column struct {
	Title string
	Width float64 // Excel character width; 0 keeps the default
	Align Align
	Money bool // rendered with two decimals
}

// SummaryLine is a label/value pair printed under the table
type SummaryLine struct {
	Label string
	Value string
}

// ExportData represents a titled table
type ExportData struct {
	Title       string
	Description string
	Author      string
	CreatedAt   time.Time

	Columns []Column
	Rows    [][]interface{}
	Summary []SummaryLine

	Style ExportStyle
}

// ExportStyle defines styling options for exports
type ExportStyle struct {
	// PDF specific
	Orientation string // "portrait" or "landscape"
	PageSize    string // "A4", "Letter", etc.

	HeaderBgColor string // Hex color
	AlternateRows bool
	RowBgColor1   string // Hex color for odd rows
	RowBgColor2   string // Hex color for even rows

	FontSize float64

	// Excel specific
	FreezeHeader bool
	AutoFilter   bool
}

// DefaultStyle returns default export styling
func DefaultStyle() ExportStyle {
	return ExportStyle{
		Orientation:   "portrait",
		PageSize:      "A4",
		HeaderBgColor: "#4472C4",
		AlternateRows: true,
		RowBgColor1:   "#FFFFFF",
		RowBgColor2:   "#F2F2F2",
		FontSize:      9,
		FreezeHeader:  true,
		AutoFilter:    true,
	}
}

// formatCell renders a value for text-based output
func formatCell(col Column, value interface{}) string {
	if col.Money {
		switch v := value.(type) {
		case float64:
			return fmt.Sprintf("%.2f", v)
		case int:
			return fmt.Sprintf("%d.00", v)
		case int64:
			return fmt.Sprintf("%d.00", v)
		}
	}
	if t, ok := value.(time.Time); ok {
		return t.Format("2006-01-02 15:04")
	}
	return fmt.Sprintf("%v", value)
}
