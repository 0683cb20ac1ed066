package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/core/audit"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/core/auth"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/modules/bizdesk/models"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/modules/bizdesk/repositories"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/shared/testutil"
)

var (
	saleTime = time.Date(2026, time.October, 15, 10, 0, 0, 0, time.UTC)
	refTime  = time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)
)

type fixture struct {
	db        *gorm.DB
	auth      *auth.Service
	audit     *audit.Service
	customers *CustomerService
	sales     *SaleService
	inventory *InventoryService
	analytics *AnalyticsService
	ownerA    *auth.Owner
	ownerB    *auth.Owner
}

func newFixture(t *testing.T) *fixture {
	return newFixtureWithInvoices(t, nil)
}

func newFixtureWithInvoices(t *testing.T, invoices *InvoiceGenerator) *fixture {
	t.Helper()

	db := testutil.NewDB(t,
		&auth.Owner{},
		&models.Customer{},
		&models.InventoryItem{},
		&models.Sale{},
		&models.SaleItem{},
		&audit.AuditLog{},
	)

	ownerA := &auth.Owner{Email: "a@shop.test", Name: "Asha", BusinessName: "Asha Traders"}
	ownerB := &auth.Owner{Email: "b@shop.test", Name: "Bala"}
	require.NoError(t, db.Create(ownerA).Error)
	require.NoError(t, db.Create(ownerB).Error)

	auditSvc := audit.NewService(db)
	customerRepo := repositories.NewCustomerRepo(db)
	saleRepo := repositories.NewSaleRepo(db)
	inventoryRepo := repositories.NewInventoryRepo(db)

	customers := NewCustomerService(customerRepo, auditSvc)
	sales := NewSaleService(db, saleRepo, inventoryRepo, customers, invoices, auditSvc)
	sales.SetClock(func() time.Time { return saleTime })

	analyticsSvc := NewAnalyticsService(analytics.NewAggregator(db), time.UTC)
	analyticsSvc.SetClock(func() time.Time { return refTime })

	return &fixture{
		db:        db,
		auth:      auth.NewService(db, "test-secret"),
		audit:     auditSvc,
		customers: customers,
		sales:     sales,
		inventory: NewInventoryService(inventoryRepo, auditSvc),
		analytics: analyticsSvc,
		ownerA:    ownerA,
		ownerB:    ownerB,
	}
}

func (f *fixture) count(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(model).Count(&n).Error)
	return n
}

func (f *fixture) sellAt(t *testing.T, ownerID uuid.UUID, at time.Time, req *models.CreateSaleRequest) *models.SaleView {
	t.Helper()
	f.sales.SetClock(func() time.Time { return at })
	defer f.sales.SetClock(func() time.Time { return saleTime })

	view, err := f.sales.CreateSale(context.Background(), ownerID, req)
	require.NoError(t, err)
	return view
}

func saleOf(customer string, products ...models.SaleProductInput) *models.CreateSaleRequest {
	return &models.CreateSaleRequest{CustomerName: customer, Products: products}
}

func product(name string, qty int, price float64) models.SaleProductInput {
	return models.SaleProductInput{Name: name, Qty: qty, Price: price}
}

func ptr[T any](v T) *T {
	return &v
}
