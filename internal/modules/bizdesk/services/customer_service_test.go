package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/core/audit"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/modules/bizdesk/models"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/shared/apperror"
)

func TestCustomerCRUD(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.customers.CreateCustomer(ctx, f.ownerA.ID, &models.CreateCustomerRequest{
		Name:      " Kiran Rao ",
		Email:     "kiran@example.com",
		GSTNumber: "29ABCDE1234F1Z5",
	})
	require.NoError(t, err)
	assert.Equal(t, "Kiran Rao", created.Name)

	updated, err := f.customers.UpdateCustomer(ctx, f.ownerA.ID, created.ID, &models.UpdateCustomerRequest{
		Phone: ptr("080-2222"),
	})
	require.NoError(t, err)
	assert.Equal(t, "080-2222", updated.Phone)
	assert.Equal(t, "kiran@example.com", updated.Email)

	got, err := f.customers.GetCustomer(ctx, f.ownerA.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "080-2222", got.Phone)
	assert.Equal(t, "29ABCDE1234F1Z5", got.GSTNumber)

	_, err = f.customers.UpdateCustomer(ctx, f.ownerA.ID, created.ID, &models.UpdateCustomerRequest{Name: ptr("  ")})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	_, err = f.customers.GetCustomer(ctx, f.ownerB.ID, created.ID)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	require.NoError(t, f.customers.DeleteCustomer(ctx, f.ownerA.ID, created.ID))
	_, err = f.customers.GetCustomer(ctx, f.ownerA.ID, created.ID)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	history, err := f.audit.GetEntityHistory(ctx, f.ownerA.ID, "customer", created.ID.String())
	require.NoError(t, err)
	require.Len(t, history, 3)

	actions := map[string]bool{}
	for _, entry := range history {
		actions[entry.Action] = true
	}
	assert.True(t, actions[audit.ActionCreate])
	assert.True(t, actions[audit.ActionUpdate])
	assert.True(t, actions[audit.ActionDelete])
}

func TestCreateCustomer_RequiresName(t *testing.T) {
	f := newFixture(t)

	_, err := f.customers.CreateCustomer(context.Background(), f.ownerA.ID, &models.CreateCustomerRequest{Email: "x@example.com"})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	assert.Zero(t, f.count(t, &models.Customer{}))
}

func TestDeleteCustomer_WithSales(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	view, err := f.sales.CreateSale(ctx, f.ownerA.ID, saleOf("Amit", product("Pen", 1, 10)))
	require.NoError(t, err)

	err = f.customers.DeleteCustomer(ctx, f.ownerA.ID, view.CustomerID)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	assert.Equal(t, "Customer has 1 sale(s) and cannot be deleted", apperror.PublicMessage(err))
	assert.Equal(t, int64(1), f.count(t, &models.Customer{}))
}

func TestListCustomers_SearchAndPaging(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, name := range []string{"Zoya", "amit", "Amrita", "Bhavna"} {
		_, err := f.customers.CreateCustomer(ctx, f.ownerA.ID, &models.CreateCustomerRequest{Name: name})
		require.NoError(t, err)
	}
	_, err := f.customers.CreateCustomer(ctx, f.ownerB.ID, &models.CreateCustomerRequest{Name: "Amar"})
	require.NoError(t, err)

	found, err := f.customers.ListCustomers(ctx, models.CustomerFilter{OwnerID: f.ownerA.ID, SearchTerm: "AM"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), found.Total)
	require.Len(t, found.Customers, 2)

	paged, err := f.customers.ListCustomers(ctx, models.CustomerFilter{OwnerID: f.ownerA.ID, Page: 2, PageSize: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(4), paged.Total)
	assert.Equal(t, 2, paged.TotalPages)
	require.Len(t, paged.Customers, 1)
	assert.Equal(t, "Zoya", paged.Customers[0].Name)

	none, err := f.customers.ListCustomers(ctx, models.CustomerFilter{OwnerID: f.ownerA.ID, SearchTerm: "nobody"})
	require.NoError(t, err)
	assert.NotNil(t, none.Customers)
	assert.Empty(t, none.Customers)
}

func TestCustomerLockKeys(t *testing.T) {
	owner := uuid.MustParse("7f1c7a52-5d0e-4a8e-9a57-0c3f1d2b9e10")
	prefix := "customer:" + owner.String()

	assert.Equal(t, []string{prefix + ":name:amit"}, customerLockKeys(owner, "Amit", ""))

	// same new email under two names: both transactions must contend on the email key
	first := customerLockKeys(owner, "Amit", "Amit@Shop.in")
	second := customerLockKeys(owner, "A. Kumar", "amit@shop.in")
	assert.Equal(t, []string{prefix + ":email:amit@shop.in", prefix + ":name:amit"}, first)
	assert.Equal(t, first[0], second[0])
	assert.IsIncreasing(t, second)
}
