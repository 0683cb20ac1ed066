package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/core/audit"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/modules/bizdesk/models"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/shared/apperror"
)

func TestCreateSale_SingleProduct(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	view, err := f.sales.CreateSale(ctx, f.ownerA.ID, saleOf("Amit Sharma", product("Pen", 2, 50)))
	require.NoError(t, err)

	assert.Equal(t, "Amit Sharma", view.CustomerName)
	assert.Equal(t, 100.0, view.Subtotal)
	assert.Equal(t, 0.0, view.Discount)
	assert.Equal(t, 100.0, view.Total)
	assert.Equal(t, 20.0, view.Profit)
	assert.Equal(t, models.DefaultPaymentMethod, view.PaymentMethod)
	assert.Equal(t, models.DefaultPaymentStatus, view.PaymentStatus)
	assert.Regexp(t, `^INV-\d+-\d{1,3}$`, view.BillNo)
	assert.Equal(t, saleTime, view.Date)

	require.Len(t, view.Products, 1)
	assert.Equal(t, "Pen", view.Products[0].Name)
	assert.Equal(t, 2, view.Products[0].Qty)
	assert.Equal(t, 100.0, view.Products[0].Total)

	stored, err := f.sales.GetSale(ctx, f.ownerA.ID, view.ID)
	require.NoError(t, err)
	assert.Equal(t, view.BillNo, stored.BillNo)
	assert.Equal(t, 100.0, stored.Total)
	require.Len(t, stored.Products, 1)

	assert.Equal(t, int64(1), f.count(t, &models.Customer{}))
	assert.Equal(t, int64(1), f.count(t, &models.SaleItem{}))
}

func TestCreateSale_DiscountAndPayment(t *testing.T) {
	f := newFixture(t)

	req := saleOf("Priya", product("Chair", 1, 4500))
	req.Discount = ptr(500.0)
	req.PaymentMethod = "UPI"
	req.PaymentStatus = "Pending"
	req.Notes = "  deliver friday "

	view, err := f.sales.CreateSale(context.Background(), f.ownerA.ID, req)
	require.NoError(t, err)

	assert.Equal(t, 4500.0, view.Subtotal)
	assert.Equal(t, 500.0, view.Discount)
	assert.Equal(t, 4000.0, view.Total)
	assert.Equal(t, 800.0, view.Profit)
	assert.Equal(t, "UPI", view.PaymentMethod)
	assert.Equal(t, "Pending", view.PaymentStatus)
	assert.Equal(t, "deliver friday", view.Notes)
}

func TestCreateSale_KeepsLineOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	view, err := f.sales.CreateSale(ctx, f.ownerA.ID, saleOf("Ravi",
		product("Zebra pen", 1, 10),
		product("Apple", 3, 20),
		product("Mango", 2, 15),
	))
	require.NoError(t, err)

	stored, err := f.sales.GetSale(ctx, f.ownerA.ID, view.ID)
	require.NoError(t, err)
	require.Len(t, stored.Products, 3)
	assert.Equal(t, "Zebra pen", stored.Products[0].Name)
	assert.Equal(t, "Apple", stored.Products[1].Name)
	assert.Equal(t, "Mango", stored.Products[2].Name)
	assert.Equal(t, 100.0, stored.Subtotal)
}

func TestCreateSale_ReusesCustomerByName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.sales.CreateSale(ctx, f.ownerA.ID, saleOf("X", product("Pen", 1, 10)))
	require.NoError(t, err)
	second, err := f.sales.CreateSale(ctx, f.ownerA.ID, saleOf("X", product("Ink", 1, 20)))
	require.NoError(t, err)

	assert.Equal(t, first.CustomerID, second.CustomerID)
	assert.Equal(t, int64(1), f.count(t, &models.Customer{}))
}

func TestCreateSale_MatchesEmailBeforeName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := saleOf("Meera Iyer", product("Pen", 1, 10))
	first.CustomerEmail = "meera@example.com"
	a, err := f.sales.CreateSale(ctx, f.ownerA.ID, first)
	require.NoError(t, err)

	second := saleOf("Meera I.", product("Pen", 1, 10))
	second.CustomerEmail = "meera@example.com"
	second.CustomerPhone = "+91 98765 43210"
	b, err := f.sales.CreateSale(ctx, f.ownerA.ID, second)
	require.NoError(t, err)

	assert.Equal(t, a.CustomerID, b.CustomerID)
	assert.Equal(t, "Meera Iyer", b.CustomerName)
	assert.Equal(t, "+91 98765 43210", b.CustomerPhone)

	// omitted contact details never clear stored ones
	c, err := f.sales.CreateSale(ctx, f.ownerA.ID, saleOf("Meera Iyer", product("Pen", 1, 10)))
	require.NoError(t, err)
	assert.Equal(t, a.CustomerID, c.CustomerID)
	assert.Equal(t, "meera@example.com", c.CustomerEmail)
	assert.Equal(t, "+91 98765 43210", c.CustomerPhone)

	assert.Equal(t, int64(1), f.count(t, &models.Customer{}))
}

func TestCreateSale_CustomersAreScopedByOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.sales.CreateSale(ctx, f.ownerA.ID, saleOf("X", product("Pen", 1, 10)))
	require.NoError(t, err)
	b, err := f.sales.CreateSale(ctx, f.ownerB.ID, saleOf("X", product("Pen", 1, 10)))
	require.NoError(t, err)

	assert.NotEqual(t, a.CustomerID, b.CustomerID)
	assert.Equal(t, int64(2), f.count(t, &models.Customer{}))
}

func TestCreateSale_Validation(t *testing.T) {
	f := newFixture(t)

	cases := []struct {
		name string
		req  *models.CreateSaleRequest
		msg  string
	}{
		{"nil body", nil, "Request body is required"},
		{"blank customer", saleOf("   ", product("Pen", 1, 10)), "Customer name is required"},
		{"no products", saleOf("Amit"), "At least one product is required"},
		{"blank product name", saleOf("Amit", product(" ", 1, 10)), "Product 1: name is required"},
		{"zero qty", saleOf("Amit", product("Pen", 1, 10), product("Ink", 0, 10)), "Product 2: qty must be greater than 0"},
		{"zero price", saleOf("Amit", product("Pen", 1, 0)), "Product 1: price must be greater than 0"},
		{"price below a cent", saleOf("Amit", product("Pin", 1, 0.004)), "Product 1: price cannot have more than 2 decimal places"},
		{"sub-cent price", saleOf("Amit", product("Pen", 1, 10), product("Clip", 1, 0.125)), "Product 2: price cannot have more than 2 decimal places"},
		{"sub-cent discount", func() *models.CreateSaleRequest {
			r := saleOf("Amit", product("Pen", 1, 10))
			r.Discount = ptr(0.005)
			return r
		}(), "Discount cannot have more than 2 decimal places"},
		{"negative discount", func() *models.CreateSaleRequest {
			r := saleOf("Amit", product("Pen", 1, 10))
			r.Discount = ptr(-1.0)
			return r
		}(), "Discount cannot be negative"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.sales.CreateSale(context.Background(), f.ownerA.ID, tc.req)
			require.Error(t, err)
			assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
			assert.Equal(t, tc.msg, apperror.PublicMessage(err))
		})
	}

	assert.Zero(t, f.count(t, &models.Sale{}))
	assert.Zero(t, f.count(t, &models.Customer{}))
}

func TestCreateSale_LineTotalsMatchUnitPrice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	view, err := f.sales.CreateSale(ctx, f.ownerA.ID, saleOf("Amit", product("Tea", 3, 33.33), product("Sugar", 1, 0.01)))
	require.NoError(t, err)

	var items []models.SaleItem
	require.NoError(t, f.db.Where("sale_id = ?", view.ID).Order("line_number").Find(&items).Error)
	require.Len(t, items, 2)
	for i, item := range items {
		assert.InDelta(t, float64(item.Quantity)*item.UnitPrice, item.TotalPrice, 0.0001)
		assert.Equal(t, view.Products[i].Price, item.UnitPrice)
		assert.Equal(t, view.Products[i].Total, item.TotalPrice)
	}
	assert.Equal(t, 100.0, view.Total)
}

func TestCreateSale_RequiresOwner(t *testing.T) {
	f := newFixture(t)

	_, err := f.sales.CreateSale(context.Background(), uuid.Nil, saleOf("Amit", product("Pen", 1, 10)))
	assert.Equal(t, apperror.KindAuthorization, apperror.KindOf(err))
}

func TestCreateSale_RollsBackWhenItemsFail(t *testing.T) {
	f := newFixture(t)

	err := f.db.Callback().Create().Before("gorm:create").Register("test:fail_items", func(tx *gorm.DB) {
		if tx.Statement.Schema != nil && tx.Statement.Schema.Table == "sale_items" {
			_ = tx.AddError(errors.New("disk full"))
		}
	})
	require.NoError(t, err)

	_, err = f.sales.CreateSale(context.Background(), f.ownerA.ID, saleOf("Amit", product("Pen", 2, 50)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrSaleCreation))
	assert.Equal(t, 500, apperror.StatusCode(err))

	assert.Zero(t, f.count(t, &models.Sale{}))
	assert.Zero(t, f.count(t, &models.SaleItem{}))
	assert.Zero(t, f.count(t, &models.Customer{}))
}

func sequence(values ...int) func(int) int {
	i := 0
	return func(int) int {
		v := values[i]
		if i < len(values)-1 {
			i++
		}
		return v
	}
}

func TestCreateSale_RetriesInvoiceCollision(t *testing.T) {
	fixed := func() time.Time { return time.UnixMilli(1) }
	f := newFixtureWithInvoices(t, NewInvoiceGeneratorWith(fixed, sequence(1, 1, 2)))
	ctx := context.Background()

	first, err := f.sales.CreateSale(ctx, f.ownerA.ID, saleOf("Existing", product("Pen", 1, 10)))
	require.NoError(t, err)
	assert.Equal(t, "INV-1-1", first.BillNo)

	second, err := f.sales.CreateSale(ctx, f.ownerA.ID, saleOf("Buyer", product("Pen", 1, 10)))
	require.NoError(t, err)
	assert.Equal(t, "INV-1-2", second.BillNo)

	// the collided attempt left nothing behind
	assert.Equal(t, int64(2), f.count(t, &models.Sale{}))
	assert.Equal(t, int64(2), f.count(t, &models.Customer{}))
	assert.Equal(t, int64(2), f.count(t, &models.SaleItem{}))
}

func TestCreateSale_GivesUpAfterRepeatedCollisions(t *testing.T) {
	fixed := func() time.Time { return time.UnixMilli(1) }
	f := newFixtureWithInvoices(t, NewInvoiceGeneratorWith(fixed, sequence(7)))
	ctx := context.Background()

	_, err := f.sales.CreateSale(ctx, f.ownerA.ID, saleOf("Existing", product("Pen", 1, 10)))
	require.NoError(t, err)

	_, err = f.sales.CreateSale(ctx, f.ownerA.ID, saleOf("Buyer", product("Pen", 1, 10)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrSaleCreation))
	assert.Equal(t, int64(1), f.count(t, &models.Sale{}))
	assert.Equal(t, int64(1), f.count(t, &models.Customer{}))
}

func TestCreateSale_InventoryReference(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	own, err := f.inventory.CreateItem(ctx, f.ownerA.ID, &models.CreateInventoryRequest{ItemName: "Pen", StockQuantity: 40, ItemPrice: 10})
	require.NoError(t, err)
	foreign, err := f.inventory.CreateItem(ctx, f.ownerB.ID, &models.CreateInventoryRequest{ItemName: "Pen", StockQuantity: 40, ItemPrice: 10})
	require.NoError(t, err)

	linked := product("Pen", 3, 10)
	linked.InventoryItemID = &own.ID
	view, err := f.sales.CreateSale(ctx, f.ownerA.ID, saleOf("Amit", linked))
	require.NoError(t, err)
	require.NotNil(t, view.Products[0].InventoryItemID)
	assert.Equal(t, own.ID, *view.Products[0].InventoryItemID)

	// sales never decrement stock
	item, err := f.inventory.GetItem(ctx, f.ownerA.ID, own.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, item.StockQuantity)

	stolen := product("Pen", 1, 10)
	stolen.InventoryItemID = &foreign.ID
	_, err = f.sales.CreateSale(ctx, f.ownerA.ID, saleOf("Amit", stolen))
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	assert.Equal(t, int64(1), f.count(t, &models.Sale{}))
}

func TestCreateSale_InventoryCheckRunsInsideTransaction(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	own, err := f.inventory.CreateItem(ctx, f.ownerA.ID, &models.CreateInventoryRequest{ItemName: "Pen", StockQuantity: 40, ItemPrice: 10})
	require.NoError(t, err)

	var lookups, inTx int
	err = f.db.Callback().Query().Before("gorm:query").Register("test:inventory_tx", func(tx *gorm.DB) {
		if tx.Statement.Schema == nil || tx.Statement.Schema.Table != "inventory_items" {
			return
		}
		lookups++
		if _, ok := tx.Statement.ConnPool.(gorm.TxCommitter); ok {
			inTx++
		}
	})
	require.NoError(t, err)

	linked := product("Pen", 1, 10)
	linked.InventoryItemID = &own.ID
	_, err = f.sales.CreateSale(ctx, f.ownerA.ID, saleOf("Amit", linked))
	require.NoError(t, err)

	assert.Equal(t, 1, lookups)
	assert.Equal(t, 1, inTx)
}

func TestCreateSale_MissingInventoryRollsBack(t *testing.T) {
	f := newFixture(t)

	missing := uuid.New()
	linked := product("Pen", 1, 10)
	linked.InventoryItemID = &missing

	_, err := f.sales.CreateSale(context.Background(), f.ownerA.ID, saleOf("Amit", linked))
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	assert.Zero(t, f.count(t, &models.Sale{}))
	assert.Zero(t, f.count(t, &models.Customer{}))
}

func TestGetSale_OwnerIsolation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	view, err := f.sales.CreateSale(ctx, f.ownerA.ID, saleOf("Amit", product("Pen", 1, 10)))
	require.NoError(t, err)

	_, err = f.sales.GetSale(ctx, f.ownerB.ID, view.ID)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	list, err := f.sales.ListSales(ctx, models.SaleFilter{OwnerID: f.ownerB.ID})
	require.NoError(t, err)
	assert.Empty(t, list.Sales)
	assert.NotNil(t, list.Sales)

	err = f.sales.DeleteSale(ctx, f.ownerB.ID, view.ID)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	assert.Equal(t, int64(1), f.count(t, &models.Sale{}))
}

func TestListSales_NewestFirstWithPaging(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	base := time.Date(2026, time.October, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		f.sellAt(t, f.ownerA.ID, base.AddDate(0, 0, i), saleOf("Amit", product("Pen", i+1, 10)))
	}

	list, err := f.sales.ListSales(ctx, models.SaleFilter{OwnerID: f.ownerA.ID, Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), list.Total)
	assert.Equal(t, 2, list.TotalPages)
	require.Len(t, list.Sales, 2)
	assert.Equal(t, 30.0, list.Sales[0].Total)
	assert.Equal(t, 20.0, list.Sales[1].Total)

	from := base.AddDate(0, 0, 1)
	to := base.AddDate(0, 0, 2)
	window, err := f.sales.ListSales(ctx, models.SaleFilter{OwnerID: f.ownerA.ID, From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, window.Sales, 1)
	assert.Equal(t, 20.0, window.Sales[0].Total)

	_, err = f.sales.ListSales(ctx, models.SaleFilter{OwnerID: f.ownerA.ID, From: &to, To: &from})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestDeleteSale_RemovesOnlyItsItems(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	keep, err := f.sales.CreateSale(ctx, f.ownerA.ID, saleOf("Amit", product("Pen", 1, 10), product("Ink", 1, 5)))
	require.NoError(t, err)
	drop, err := f.sales.CreateSale(ctx, f.ownerA.ID, saleOf("Amit", product("Book", 1, 100), product("Bag", 1, 300)))
	require.NoError(t, err)

	require.NoError(t, f.sales.DeleteSale(ctx, f.ownerA.ID, drop.ID))

	_, err = f.sales.GetSale(ctx, f.ownerA.ID, drop.ID)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	var orphaned int64
	require.NoError(t, f.db.Model(&models.SaleItem{}).Where("sale_id = ?", drop.ID).Count(&orphaned).Error)
	assert.Zero(t, orphaned)

	kept, err := f.sales.GetSale(ctx, f.ownerA.ID, keep.ID)
	require.NoError(t, err)
	assert.Len(t, kept.Products, 2)

	// the customer outlives the sale
	assert.Equal(t, int64(1), f.count(t, &models.Customer{}))

	logs, err := f.audit.GetLogs(ctx, audit.AuditFilter{OwnerID: f.ownerA.ID, Entity: "sale", Action: audit.ActionDelete})
	require.NoError(t, err)
	require.Len(t, logs.Logs, 1)
	assert.Equal(t, drop.ID.String(), logs.Logs[0].EntityID)
}
