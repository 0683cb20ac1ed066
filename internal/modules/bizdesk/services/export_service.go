package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/core/auth"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/core/export"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/modules/bizdesk/models"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/shared/apperror"
)

// maxReportRows caps a single export
const maxReportRows = 10000

// ExportFile is a rendered download
type ExportFile struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ExportService renders sales reports and invoices
type ExportService struct {
	exporter         *export.Service
	saleService      *SaleService
	analyticsService *AnalyticsService
	authService      *auth.Service
}

func NewExportService(exporter *export.Service, saleService *SaleService, analyticsService *AnalyticsService, authService *auth.Service) *ExportService {
	return &ExportService{
		exporter:         exporter,
		saleService:      saleService,
		analyticsService: analyticsService,
		authService:      authService,
	}
}

// SalesReport exports the owner's sales for a period as Excel or PDF
func (s *ExportService) SalesReport(ctx context.Context, ownerID uuid.UUID, rawPeriod, rawFormat string) (*ExportFile, error) {
	period, err := analytics.ParsePeriod(rawPeriod)
	if err != nil {
		return nil, apperror.Validation("Invalid period. Use week, month or year")
	}
	format, err := export.ParseFormat(rawFormat)
	if err != nil {
		return nil, apperror.Validation("Invalid format. Use excel or pdf")
	}

	owner, err := s.authService.GetOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	loc := s.analyticsService.Location()
	now := s.analyticsService.now().In(loc)
	window := analytics.GetDateRange(period, now)

	sales, err := s.collectSales(ctx, ownerID, window)
	if err != nil {
		return nil, err
	}

	overview, err := s.analyticsService.Overview(ctx, ownerID, window.UTC())
	if err != nil {
		return nil, apperror.Persistence("Failed to export sales", err)
	}

	rows := make([][]interface{}, 0, len(sales))
	for _, sale := range sales {
		rows = append(rows, []interface{}{
			sale.Date.In(loc).Format("2006-01-02 15:04"),
			sale.BillNo,
			sale.CustomerName,
			len(sale.Products),
			sale.PaymentMethod,
			sale.PaymentStatus,
			sale.Subtotal,
			sale.Discount,
			sale.Total,
			sale.Profit,
		})
	}

	style := export.DefaultStyle()
	style.Orientation = "landscape"

	data := &export.ExportData{
		Title:       fmt.Sprintf("%s sales report", owner.DisplayName()),
		Description: fmt.Sprintf("Period: %s (%s to %s)", period, window.Start.Format("2006-01-02"), window.End.Format("2006-01-02")),
		Author:      owner.DisplayName(),
		CreatedAt:   now,
		Columns: []export.Column{
			{Title: "Date", Width: 18},
			{Title: "Invoice", Width: 24},
			{Title: "Customer", Width: 24},
			{Title: "Items", Align: export.AlignRight},
			{Title: "Payment"},
			{Title: "Status"},
			{Title: "Subtotal", Align: export.AlignRight, Money: true, Width: 14},
			{Title: "Discount", Align: export.AlignRight, Money: true, Width: 14},
			{Title: "Total", Align: export.AlignRight, Money: true, Width: 14},
			{Title: "Profit", Align: export.AlignRight, Money: true, Width: 14},
		},
		Rows: rows,
		Summary: []export.SummaryLine{
			{Label: "Sales", Value: fmt.Sprintf("%d", overview.TotalSales)},
			{Label: "Revenue", Value: fmt.Sprintf("%.2f", overview.TotalRevenue)},
			{Label: "Profit", Value: fmt.Sprintf("%.2f", overview.TotalProfit)},
			{Label: "Discounts", Value: fmt.Sprintf("%.2f", overview.TotalDiscount)},
			{Label: "Average order", Value: fmt.Sprintf("%.2f", overview.AverageOrderValue)},
		},
		Style: style,
	}

	content, contentType, ext, err := s.exporter.Export(data, format)
	if err != nil {
		log.Error().Err(err).Str("owner_id", ownerID.String()).Str("format", string(format)).Msg("❌ Sales export failed")
		return nil, apperror.Persistence("Failed to export sales", err)
	}

	return &ExportFile{
		Content:     content,
		ContentType: contentType,
		Filename:    fmt.Sprintf("sales-%s-%s%s", period, now.Format("20060102"), ext),
	}, nil
}

func (s *ExportService) collectSales(ctx context.Context, ownerID uuid.UUID, window *analytics.DateRange) ([]models.SaleView, error) {
	from, to := window.Start, window.End
	sales := make([]models.SaleView, 0)

	for page := 1; len(sales) < maxReportRows; page++ {
		resp, err := s.saleService.ListSales(ctx, models.SaleFilter{
			OwnerID:  ownerID,
			From:     &from,
			To:       &to,
			Page:     page,
			PageSize: maxPageSize,
		})
		if err != nil {
			return nil, err
		}
		sales = append(sales, resp.Sales...)
		if page >= resp.TotalPages {
			break
		}
	}

	// oldest first
	for i, j := 0, len(sales)-1; i < j; i, j = i+1, j-1 {
		sales[i], sales[j] = sales[j], sales[i]
	}
	return sales, nil
}

// Invoice renders the PDF invoice of one sale
func (s *ExportService) Invoice(ctx context.Context, ownerID, saleID uuid.UUID) (*ExportFile, error) {
	sale, err := s.saleService.GetSale(ctx, ownerID, saleID)
	if err != nil {
		return nil, err
	}

	owner, err := s.authService.GetOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	doc := &export.InvoiceDocument{
		BusinessName:  owner.DisplayName(),
		InvoiceNumber: sale.BillNo,
		Date:          sale.Date.In(s.analyticsService.Location()),
		CustomerName:  sale.CustomerName,
		CustomerEmail: sale.CustomerEmail,
		CustomerPhone: sale.CustomerPhone,
		Lines:         make([]export.InvoiceLine, 0, len(sale.Products)),
		Subtotal:      sale.Subtotal,
		Discount:      sale.Discount,
		Total:         sale.Total,
		PaymentMethod: sale.PaymentMethod,
		PaymentStatus: sale.PaymentStatus,
		Notes:         sale.Notes,
	}
	for _, p := range sale.Products {
		doc.Lines = append(doc.Lines, export.InvoiceLine{Name: p.Name, Quantity: p.Qty, Price: p.Price, Total: p.Total})
	}

	content, err := s.exporter.Invoice(doc)
	if err != nil {
		log.Error().Err(err).Str("owner_id", ownerID.String()).Str("sale_id", saleID.String()).Msg("❌ Invoice export failed")
		return nil, apperror.Persistence("Failed to generate invoice", err)
	}

	return &ExportFile{
		Content:     content,
		ContentType: "application/pdf",
		Filename:    sale.BillNo + ".pdf",
	}, nil
}
