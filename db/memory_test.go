package db

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bpmapi/models"
)

func TestMemoryStorageSeed(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	counts, err := s.Counts(ctx)
	require.NoError(t, err)
	require.Equal(t, 5, counts.AssetTypes)
	require.Equal(t, 4, counts.EmployeeExpenses)
	require.Equal(t, 2, counts.TravelRequests)

	types, err := s.ListAssetTypes(ctx)
	require.NoError(t, err)
	require.Len(t, types, 5)
	require.Equal(t, "LAPTOP-DL-7420", types[0].ProductId)
}

func TestMemoryStorageListAssetsByEmployee(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	lower, err := s.ListAssetsByEmployee(ctx, "john.doe")
	require.NoError(t, err)
	require.Len(t, lower, 2)

	// Регистр не влияет на результат
	upper, err := s.ListAssetsByEmployee(ctx, "JOHN.DOE")
	require.NoError(t, err)
	require.Equal(t, lower, upper)

	none, err := s.ListAssetsByEmployee(ctx, "nobody")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestMemoryStorageGetTravelRequest(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	tr, err := s.GetTravelRequest(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "TR-2024-001", tr.RequestId)

	_, err = s.GetTravelRequest(ctx, 999999)
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestMemoryStorageCreateEmployeeExpense(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	first := models.EmployeeExpense{
		VendorName:  "Office Supplies Inc.",
		Amount:      145.75,
		InvoiceDate: time.Now().AddDate(0, 0, -1),
		Currency:    "USD",
		Description: "Office supplies and stationery",
	}
	require.NoError(t, s.CreateEmployeeExpense(ctx, &first))
	require.Greater(t, first.ID, 0)

	second := first
	second.ID = 0
	require.NoError(t, s.CreateEmployeeExpense(ctx, &second))
	require.Greater(t, second.ID, first.ID)

	expenses, err := s.ListEmployeeExpenses(ctx)
	require.NoError(t, err)
	require.Len(t, expenses, 6)
}

func TestMemoryStorageCreatePurchaseRequest(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	pr := models.PurchaseRequest{
		Employee:  "john.doe",
		Requestor: "jane.manager",
		Items: []models.PurchaseRequestItem{
			{ProductId: "LAPTOP-DL-7420", Price: 1899.99, Quantity: 1},
			{ProductId: "MON-LG-34WN", Price: 699.99, Quantity: 2},
		},
	}
	require.NoError(t, s.CreatePurchaseRequest(ctx, &pr))
	require.Equal(t, 1, pr.ID)
	require.Equal(t, 1, pr.Items[0].ID)
	require.Equal(t, 2, pr.Items[1].ID)
}

func TestMemoryStorageCreateTravelExpense(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	exists, err := s.TravelRequestExists(ctx, 1)
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = s.TravelRequestExists(ctx, 999)
	require.NoError(t, err)
	require.False(t, exists)

	e := models.TravelExpense{
		TravelRequestId: 1,
		VendorName:      "Marriott Hotel",
		Amount:          250.00,
		InvoiceDate:     time.Now().AddDate(0, 0, -1),
		Currency:        "USD",
		Description:     "Hotel accommodation for business trip",
	}
	require.NoError(t, s.CreateTravelExpense(ctx, &e))
	require.Equal(t, 1, e.ID)
}

func TestMemoryStorageAssetTypeExists(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	exists, err := s.AssetTypeExists(ctx, "LAPTOP-DL-7420")
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = s.AssetTypeExists(ctx, "NO-SUCH-PRODUCT")
	require.NoError(t, err)
	require.False(t, exists)
}
