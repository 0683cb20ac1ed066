package export

import (
	"bytes"
	"fmt"
)

// Service provides high-level export functionality
type Service struct {
	pdfExporter   Exporter
	excelExporter Exporter
}

// NewService creates a new export service
func NewService() *Service {
	return &Service{
		pdfExporter:   NewPDFExporter(),
		excelExporter: NewExcelExporter("Sales"),
	}
}

func (s *Service) exporter(format ExportFormat) (Exporter, error) {
	switch format {
	case FormatPDF:
		return s.pdfExporter, nil
	case FormatExcel:
		return s.excelExporter, nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// Export renders data and returns the bytes, content type and file extension
func (s *Service) Export(data *ExportData, format ExportFormat) ([]byte, string, string, error) {
	exporter, err := s.exporter(format)
	if err != nil {
		return nil, "", "", err
	}

	var buf bytes.Buffer
	if err := exporter.Export(data, &buf); err != nil {
		return nil, "", "", fmt.Errorf("%s export failed: %w", format, err)
	}

	return buf.Bytes(), exporter.GetContentType(), exporter.GetFileExtension(), nil
}

// Invoice renders a single-sale invoice PDF
func (s *Service) Invoice(doc *InvoiceDocument) ([]byte, error) {
	var buf bytes.Buffer
	if err := RenderInvoice(doc, &buf); err != nil {
		return nil, fmt.Errorf("invoice export failed: %w", err)
	}
	return buf.Bytes(), nil
}
