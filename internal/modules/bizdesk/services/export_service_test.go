package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/core/export"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/shared/apperror"
)

func newExportService(f *fixture) *ExportService {
	return NewExportService(export.NewService(), f.sales, f.analytics, f.auth)
}

func TestSalesReport_Excel(t *testing.T) {
	f := newFixture(t)
	seedAnalytics(t, f)

	file, err := newExportService(f).SalesReport(context.Background(), f.ownerA.ID, "week", "excel")
	require.NoError(t, err)

	assert.Equal(t, "sales-week-20261018.xlsx", file.Filename)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", file.ContentType)

	book, err := excelize.OpenReader(bytes.NewReader(file.Content))
	require.NoError(t, err)
	defer book.Close()

	rows, err := book.GetRows("Sales")
	require.NoError(t, err)

	var customers []string
	for _, row := range rows {
		if len(row) > 2 && (row[2] == "Amit" || row[2] == "Priya") {
			customers = append(customers, row[2])
		}
	}
	// oldest first within the week
	assert.Equal(t, []string{"Amit", "Priya", "Amit"}, customers)
}

func TestSalesReport_PDF(t *testing.T) {
	f := newFixture(t)
	seedAnalytics(t, f)

	file, err := newExportService(f).SalesReport(context.Background(), f.ownerA.ID, "", "pdf")
	require.NoError(t, err)

	assert.Equal(t, "sales-month-20261018.pdf", file.Filename)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Content, []byte("%PDF")))
}

func TestSalesReport_Validation(t *testing.T) {
	f := newFixture(t)
	svc := newExportService(f)

	_, err := svc.SalesReport(context.Background(), f.ownerA.ID, "decade", "pdf")
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	_, err = svc.SalesReport(context.Background(), f.ownerA.ID, "week", "csv")
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestInvoiceExport(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	view, err := f.sales.CreateSale(ctx, f.ownerA.ID, saleOf("Amit", product("Pen", 2, 50)))
	require.NoError(t, err)

	svc := newExportService(f)
	file, err := svc.Invoice(ctx, f.ownerA.ID, view.ID)
	require.NoError(t, err)
	assert.Equal(t, view.BillNo+".pdf", file.Filename)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Content, []byte("%PDF")))

	_, err = svc.Invoice(ctx, f.ownerB.ID, view.ID)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	_, err = svc.Invoice(ctx, f.ownerA.ID, uuid.New())
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}
