package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/modules/bizdesk/models"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/shared/apperror"
)

func seedAnalytics(t *testing.T, f *fixture) {
	t.Helper()

	pens := saleOf("Amit", product("Pen", 2, 50))
	pens.PaymentMethod = "UPI"
	f.sellAt(t, f.ownerA.ID, saleTime, pens)

	chair := saleOf("Priya", product("Chair", 1, 4500))
	chair.Discount = ptr(500.0)
	f.sellAt(t, f.ownerA.ID, saleTime.Add(time.Hour), chair)

	mixed := saleOf("Amit", product("Pen", 3, 50), product("Ink", 1, 20))
	mixed.PaymentStatus = "Pending"
	f.sellAt(t, f.ownerA.ID, saleTime.Add(2*time.Hour), mixed)

	notebooks := saleOf("Ravi", product("Notebook", 10, 5))
	notebooks.PaymentMethod = "UPI"
	f.sellAt(t, f.ownerA.ID, time.Date(2026, time.October, 3, 11, 0, 0, 0, time.UTC), notebooks)

	book := saleOf("Ravi", product("Book", 1, 1000))
	book.PaymentMethod = "Card"
	f.sellAt(t, f.ownerA.ID, time.Date(2026, time.March, 9, 11, 0, 0, 0, time.UTC), book)

	f.sellAt(t, f.ownerB.ID, saleTime, saleOf("Other shop", product("Pen", 100, 99.99)))
}

func TestGetAnalytics_Week(t *testing.T) {
	f := newFixture(t)
	seedAnalytics(t, f)

	report, err := f.analytics.GetAnalytics(context.Background(), f.ownerA.ID, "week")
	require.NoError(t, err)

	assert.Equal(t, analytics.PeriodWeek, report.Period)
	assert.Equal(t, models.AnalyticsOverview{
		TotalRevenue:      4270,
		TotalProfit:       854,
		TotalDiscount:     500,
		TotalSales:        3,
		AverageOrderValue: 1423.33,
	}, report.Overview)

	assert.Equal(t, []models.PaymentMethodSummary{
		{Method: "Cash", Amount: 4170, Count: 2},
		{Method: "UPI", Amount: 100, Count: 1},
	}, report.PaymentMethods)

	assert.Equal(t, []models.PaymentStatusSummary{
		{Status: "Paid", Amount: 4100, Count: 2},
		{Status: "Pending", Amount: 170, Count: 1},
	}, report.PaymentStatus)

	require.Len(t, report.TopCustomers, 2)
	assert.Equal(t, "Priya", report.TopCustomers[0].Name)
	assert.Equal(t, 4000.0, report.TopCustomers[0].TotalSpent)
	assert.Equal(t, "Amit", report.TopCustomers[1].Name)
	assert.Equal(t, int64(2), report.TopCustomers[1].SalesCount)
	assert.Equal(t, 270.0, report.TopCustomers[1].TotalSpent)

	assert.Equal(t, []models.TopProduct{
		{Name: "Pen", Quantity: 5, Revenue: 250, Count: 2},
		{Name: "Chair", Quantity: 1, Revenue: 4500, Count: 1},
		{Name: "Ink", Quantity: 1, Revenue: 20, Count: 1},
	}, report.TopProducts)
}

func TestGetAnalytics_PeriodsNest(t *testing.T) {
	f := newFixture(t)
	seedAnalytics(t, f)
	ctx := context.Background()

	month, err := f.analytics.GetAnalytics(ctx, f.ownerA.ID, "")
	require.NoError(t, err)
	assert.Equal(t, analytics.PeriodMonth, month.Period)
	assert.Equal(t, 4320.0, month.Overview.TotalRevenue)
	assert.Equal(t, int64(4), month.Overview.TotalSales)

	year, err := f.analytics.GetAnalytics(ctx, f.ownerA.ID, "year")
	require.NoError(t, err)
	assert.Equal(t, 5320.0, year.Overview.TotalRevenue)
	assert.Equal(t, int64(5), year.Overview.TotalSales)
	assert.GreaterOrEqual(t, year.Overview.TotalRevenue, month.Overview.TotalRevenue)

	assert.Equal(t, "Card", year.PaymentMethods[1].Method)
}

func TestGetAnalytics_SalesChart(t *testing.T) {
	f := newFixture(t)
	seedAnalytics(t, f)

	report, err := f.analytics.GetAnalytics(context.Background(), f.ownerA.ID, "week")
	require.NoError(t, err)

	chart := report.SalesChart
	require.Len(t, chart, 30)
	assert.Equal(t, "2026-09-19", chart[0].Date)
	assert.Equal(t, "2026-10-18", chart[29].Date)
	assert.Equal(t, analytics.DailyPoint{Date: "2026-10-03", Amount: 50, Count: 1}, chart[14])
	assert.Equal(t, analytics.DailyPoint{Date: "2026-10-15", Amount: 4270, Count: 3}, chart[26])

	var total float64
	for _, p := range chart {
		total += p.Amount
	}
	assert.Equal(t, 4320.0, total)
}

func TestGetAnalytics_NoSales(t *testing.T) {
	f := newFixture(t)

	report, err := f.analytics.GetAnalytics(context.Background(), f.ownerA.ID, "week")
	require.NoError(t, err)

	assert.Equal(t, models.AnalyticsOverview{}, report.Overview)
	assert.NotNil(t, report.PaymentMethods)
	assert.Empty(t, report.PaymentMethods)
	assert.NotNil(t, report.TopCustomers)
	assert.Empty(t, report.TopCustomers)
	assert.NotNil(t, report.TopProducts)
	assert.Empty(t, report.TopProducts)

	require.Len(t, report.SalesChart, 30)
	for _, p := range report.SalesChart {
		assert.Zero(t, p.Amount)
		assert.Zero(t, p.Count)
	}
}

func TestGetAnalytics_InvalidPeriod(t *testing.T) {
	f := newFixture(t)

	_, err := f.analytics.GetAnalytics(context.Background(), f.ownerA.ID, "decade")
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	assert.Equal(t, 400, apperror.StatusCode(err))
}

func TestGetAnalytics_UsesReportingTimezone(t *testing.T) {
	f := newFixture(t)
	// 18:00 UTC on Sep 30 is already Oct 1 in Jakarta
	f.sellAt(t, f.ownerA.ID, time.Date(2026, time.September, 30, 18, 0, 0, 0, time.UTC), saleOf("Amit", product("Pen", 1, 10)))

	ctx := context.Background()

	month, err := f.analytics.GetAnalytics(ctx, f.ownerA.ID, "month")
	require.NoError(t, err)
	assert.Zero(t, month.Overview.TotalSales)

	jakarta := NewAnalyticsService(analytics.NewAggregator(f.db), time.FixedZone("WIB", 7*3600))
	jakarta.SetClock(func() time.Time { return refTime })

	month, err = jakarta.GetAnalytics(ctx, f.ownerA.ID, "month")
	require.NoError(t, err)
	assert.Equal(t, int64(1), month.Overview.TotalSales)
	assert.Equal(t, analytics.DailyPoint{Date: "2026-10-01", Amount: 10, Count: 1}, month.SalesChart[12])
}
