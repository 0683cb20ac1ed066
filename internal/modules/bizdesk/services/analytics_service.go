package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/modules/bizdesk/models"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/shared/apperror"
)

const (
	chartDays = 30
	topLimit  = 5
)

// AnalyticsService builds owner-scoped sales rollups. Windows are computed in loc and queried in UTC.
type AnalyticsService struct {
	agg *analytics.Aggregator
	loc *time.Location
	now func() time.Time
}

func NewAnalyticsService(agg *analytics.Aggregator, loc *time.Location) *AnalyticsService {
	if loc == nil {
		loc = time.Local
	}
	return &AnalyticsService{agg: agg, loc: loc, now: time.Now}
}

// SetClock overrides the reference time for windows
func (s *AnalyticsService) SetClock(now func() time.Time) {
	s.now = now
}

// Location is the reporting timezone
func (s *AnalyticsService) Location() *time.Location {
	return s.loc
}

// GetAnalytics builds the full report for a period (week, month or year; empty means month)
func (s *AnalyticsService) GetAnalytics(ctx context.Context, ownerID uuid.UUID, rawPeriod string) (*models.AnalyticsReport, error) {
	period, err := analytics.ParsePeriod(rawPeriod)
	if err != nil {
		return nil, apperror.Validation("Invalid period. Use week, month or year")
	}

	now := s.now().In(s.loc)
	window := analytics.GetDateRange(period, now).UTC()

	report := &models.AnalyticsReport{Period: period}

	if report.Overview, err = s.Overview(ctx, ownerID, window); err != nil {
		return nil, s.fail(ownerID, "overview", err)
	}
	if report.PaymentMethods, err = s.PaymentMethods(ctx, ownerID, window); err != nil {
		return nil, s.fail(ownerID, "payment methods", err)
	}
	if report.PaymentStatus, err = s.PaymentStatus(ctx, ownerID, window); err != nil {
		return nil, s.fail(ownerID, "payment status", err)
	}
	if report.TopCustomers, err = s.TopCustomers(ctx, ownerID, window, topLimit); err != nil {
		return nil, s.fail(ownerID, "top customers", err)
	}
	if report.TopProducts, err = s.TopProducts(ctx, ownerID, window, topLimit); err != nil {
		return nil, s.fail(ownerID, "top products", err)
	}
	if report.SalesChart, err = s.SalesChart(ctx, ownerID, now); err != nil {
		return nil, s.fail(ownerID, "sales chart", err)
	}

	return report, nil
}

func (s *AnalyticsService) fail(ownerID uuid.UUID, part string, err error) error {
	log.Error().Err(err).Str("owner_id", ownerID.String()).Str("aggregate", part).Msg("❌ Analytics query failed")
	return apperror.Persistence("Failed to fetch analytics", err)
}

// Overview sums revenue, profit and discount over the window
func (s *AnalyticsService) Overview(ctx context.Context, ownerID uuid.UUID, window *analytics.DateRange) (models.AnalyticsOverview, error) {
	var row struct {
		TotalRevenue  float64
		TotalProfit   float64
		TotalDiscount float64
		TotalSales    int64
	}

	err := s.agg.Aggregate(ctx, analytics.AggregateQuery{
		Table:       "sales",
		OwnerColumn: "owner_id",
		OwnerID:     ownerID,
		Select: []string{
			"COALESCE(SUM(total_amount), 0) AS total_revenue",
			"COALESCE(SUM(profit_amount), 0) AS total_profit",
			"COALESCE(SUM(discount_amount), 0) AS total_discount",
			"COUNT(*) AS total_sales",
		},
		DateRange: window,
	}, &row)
	if err != nil {
		return models.AnalyticsOverview{}, err
	}

	overview := models.AnalyticsOverview{
		TotalRevenue:  roundMoney(row.TotalRevenue),
		TotalProfit:   roundMoney(row.TotalProfit),
		TotalDiscount: roundMoney(row.TotalDiscount),
		TotalSales:    row.TotalSales,
	}
	if row.TotalSales > 0 {
		overview.AverageOrderValue = roundMoney(row.TotalRevenue / float64(row.TotalSales))
	}

	return overview, nil
}

// PaymentMethods groups the window by payment method, largest amount first
func (s *AnalyticsService) PaymentMethods(ctx context.Context, ownerID uuid.UUID, window *analytics.DateRange) ([]models.PaymentMethodSummary, error) {
	rows := make([]models.PaymentMethodSummary, 0)
	err := s.agg.Aggregate(ctx, s.groupBy(ownerID, window, "payment_method", "method"), &rows)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []models.PaymentMethodSummary{}
	}
	for i := range rows {
		rows[i].Amount = roundMoney(rows[i].Amount)
	}
	return rows, nil
}

// PaymentStatus groups the window by payment status, largest amount first
func (s *AnalyticsService) PaymentStatus(ctx context.Context, ownerID uuid.UUID, window *analytics.DateRange) ([]models.PaymentStatusSummary, error) {
	rows := make([]models.PaymentStatusSummary, 0)
	err := s.agg.Aggregate(ctx, s.groupBy(ownerID, window, "payment_status", "status"), &rows)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []models.PaymentStatusSummary{}
	}
	for i := range rows {
		rows[i].Amount = roundMoney(rows[i].Amount)
	}
	return rows, nil
}

func (s *AnalyticsService) groupBy(ownerID uuid.UUID, window *analytics.DateRange, column, alias string) analytics.AggregateQuery {
	return analytics.AggregateQuery{
		Table:       "sales",
		OwnerColumn: "owner_id",
		OwnerID:     ownerID,
		Select: []string{
			column + " AS " + alias,
			"COALESCE(SUM(total_amount), 0) AS amount",
			"COUNT(*) AS count",
		},
		DateRange: window,
		GroupBy:   []string{column},
		OrderBy:   []string{"SUM(total_amount) DESC", column + " ASC"},
	}
}

// TopCustomers ranks customers by in-window spend; ties go to the lower id
func (s *AnalyticsService) TopCustomers(ctx context.Context, ownerID uuid.UUID, window *analytics.DateRange, limit int) ([]models.TopCustomer, error) {
	rows := make([]models.TopCustomer, 0)
	err := s.agg.Aggregate(ctx, analytics.AggregateQuery{
		Table:       "sales",
		Joins:       []string{"JOIN customers ON customers.id = sales.customer_id"},
		OwnerColumn: "sales.owner_id",
		OwnerID:     ownerID,
		Select: []string{
			"customers.id AS id",
			"customers.name AS name",
			"customers.email AS email",
			"COUNT(sales.id) AS sales_count",
			"COALESCE(SUM(sales.total_amount), 0) AS total_spent",
		},
		DateRange: window.WithField("sales.created_at"),
		GroupBy:   []string{"customers.id", "customers.name", "customers.email"},
		OrderBy:   []string{"SUM(sales.total_amount) DESC", "customers.id ASC"},
		Limit:     limit,
	}, &rows)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []models.TopCustomer{}
	}
	for i := range rows {
		rows[i].TotalSpent = roundMoney(rows[i].TotalSpent)
	}
	return rows, nil
}

// TopProducts ranks line items by summed quantity, scoped through the parent sale
func (s *AnalyticsService) TopProducts(ctx context.Context, ownerID uuid.UUID, window *analytics.DateRange, limit int) ([]models.TopProduct, error) {
	rows := make([]models.TopProduct, 0)
	err := s.agg.Aggregate(ctx, analytics.AggregateQuery{
		Table:       "sale_items",
		Joins:       []string{"JOIN sales ON sales.id = sale_items.sale_id"},
		OwnerColumn: "sales.owner_id",
		OwnerID:     ownerID,
		Select: []string{
			"sale_items.product_name AS name",
			"COALESCE(SUM(sale_items.quantity), 0) AS quantity",
			"COALESCE(SUM(sale_items.total_price), 0) AS revenue",
			"COUNT(sale_items.id) AS count",
		},
		DateRange: window.WithField("sales.created_at"),
		GroupBy:   []string{"sale_items.product_name"},
		OrderBy:   []string{"SUM(sale_items.quantity) DESC", "sale_items.product_name ASC"},
		Limit:     limit,
	}, &rows)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []models.TopProduct{}
	}
	for i := range rows {
		rows[i].Revenue = roundMoney(rows[i].Revenue)
	}
	return rows, nil
}

// SalesChart returns one point per day for the 30 days ending today, zero days included
func (s *AnalyticsService) SalesChart(ctx context.Context, ownerID uuid.UUID, now time.Time) ([]analytics.DailyPoint, error) {
	local := now.In(s.loc)
	span := analytics.GetTrailingDays(chartDays, local)

	var samples []analytics.Sample
	err := s.agg.Aggregate(ctx, analytics.AggregateQuery{
		Table:       "sales",
		OwnerColumn: "owner_id",
		OwnerID:     ownerID,
		Select:      []string{"created_at AS at", "total_amount AS amount"},
		DateRange:   span.UTC(),
	}, &samples)
	if err != nil {
		return nil, err
	}

	points := analytics.DailySeries(span.Start, chartDays, s.loc, samples)
	for i := range points {
		points[i].Amount = roundMoney(points[i].Amount)
	}
	return points, nil
}
