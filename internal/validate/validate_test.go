package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bpmapi/models"
)

func validExpense() models.SubmitEmployeeExpenseRequest {
	return models.SubmitEmployeeExpenseRequest{
		VendorName:  "Office Supplies Inc.",
		Amount:      145.75,
		InvoiceDate: time.Now().AddDate(0, 0, -5),
		Currency:    "USD",
		Description: "Office supplies and stationery",
	}
}

func TestStructAcceptsValidExpense(t *testing.T) {
	require.Empty(t, Struct(validExpense()))
}

func TestStructCollectsAllViolations(t *testing.T) {
	req := models.SubmitEmployeeExpenseRequest{
		Currency:    "usd",
		Description: "abc",
	}
	fields := Struct(req)

	// Не fail-fast: каждое поле получает своё сообщение
	require.Equal(t, "Vendor name is required", fields["VendorName"])
	require.Equal(t, "Amount is required", fields["Amount"])
	require.Equal(t, "Invoice date is required", fields["InvoiceDate"])
	require.Equal(t, "Currency must be a valid 3-character uppercase ISO code", fields["Currency"])
	require.Equal(t, "Description must be at least 5 characters", fields["Description"])
}

func TestStructNotFutureDate(t *testing.T) {
	req := validExpense()
	req.InvoiceDate = time.Now().AddDate(0, 0, 1)
	fields := Struct(req)
	require.Equal(t, "Invoice date cannot be in the future", fields["InvoiceDate"])

	// Сегодняшний день — не будущее, время суток не учитывается
	req.InvoiceDate = time.Now()
	require.Empty(t, Struct(req))
}

func TestStructCurrencyShape(t *testing.T) {
	req := validExpense()

	req.Currency = "US"
	fields := Struct(req)
	require.Equal(t, "Currency must be a 3-character ISO code", fields["Currency"])

	req.Currency = "US1"
	fields = Struct(req)
	require.Equal(t, "Currency must be a valid 3-character uppercase ISO code", fields["Currency"])
}

func TestStructPurchaseRequest(t *testing.T) {
	req := models.CreatePurchaseRequestRequest{
		Employee:  "john.doe",
		Requestor: "jane.manager",
		Items:     []models.CreatePurchaseRequestItemRequest{},
	}
	fields := Struct(req)
	require.Equal(t, "At least one item is required", fields["Items"])

	req.Items = []models.CreatePurchaseRequestItemRequest{
		{ProductId: "LAPTOP-DL-7420", Price: 1899.99, Quantity: 1},
		{Price: 0, Quantity: 0},
	}
	fields = Struct(req)
	require.Empty(t, fields["Items[0].ProductId"])
	require.Equal(t, "ProductId is required", fields["Items[1].ProductId"])
	require.Equal(t, "Price is required", fields["Items[1].Price"])
	require.Equal(t, "Quantity is required", fields["Items[1].Quantity"])
}

func TestStructTravelExpense(t *testing.T) {
	req := models.SubmitTravelExpenseRequest{
		VendorName:  "Marriott Hotel",
		Amount:      250.00,
		InvoiceDate: time.Now().AddDate(0, 0, -1),
		Currency:    "USD",
		Description: "Hotel accommodation for business trip",
	}
	fields := Struct(req)
	require.Equal(t, "Travel request ID is required", fields["TravelRequestId"])

	req.TravelRequestId = 1
	require.Empty(t, Struct(req))
}
