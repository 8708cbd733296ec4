package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lahiruj/autolanka-erp/internal/application/aggregator"
	"github.com/lahiruj/autolanka-erp/internal/infrastructure/memstore"
	"github.com/lahiruj/autolanka-erp/pkg/apperror"
	"github.com/lahiruj/autolanka-erp/pkg/datefmt"
)

func newInvoiceFixture() *InvoiceService {
	svc := NewInvoiceService(memstore.NewInvoiceRepository())
	svc.today = func() datefmt.Date {
		return datefmt.New(time.Date(2025, 9, 20, 0, 0, 0, 0, time.UTC))
	}
	return svc
}

func validInvoiceInput() *InvoiceInput {
	return &InvoiceInput{
		CustomerName:  "ABC Corporation",
		Address:       "Colombo 03, Sri Lanka",
		InvoiceNumber: "INV-2025-001",
		VATNumber:     "VAT987654321",
		Items: []aggregator.ItemEntry{
			{ItemCode: "LAP-01", Description: "Laptop", UnitPrice: "250000", Quantity: "1"},
			{ItemCode: "MOU-01", Description: "Mouse", UnitPrice: "5000", Quantity: "2"},
		},
	}
}

func TestInvoiceCreateSnapshotsHeaderIntoItems(t *testing.T) {
	ctx := context.Background()
	svc := newInvoiceFixture()

	invoice, err := svc.Create(ctx, validInvoiceInput())
	require.NoError(t, err)

	assert.NotEmpty(t, invoice.ID)
	assert.Equal(t, "20.09.2025", invoice.Date.String(), "blank date defaults to today")
	require.Len(t, invoice.Items, 2)
	for _, item := range invoice.Items {
		assert.Equal(t, "ABC Corporation", item.CustomerName)
		assert.Equal(t, "INV-2025-001", item.InvoiceNumber)
	}
	assert.Equal(t, 260000.0, invoice.ComputeTotal())
}

func TestInvoiceCreatePreconditions(t *testing.T) {
	ctx := context.Background()
	svc := newInvoiceFixture()

	in := validInvoiceInput()
	in.Address = ""
	_, err := svc.Create(ctx, in)
	require.Error(t, err)
	assert.Equal(t, "Please fill Customer Name, Address, Invoice Number, and add at least one item.", apperror.GetAppError(err).Message)

	in = validInvoiceInput()
	in.Items[0].ItemCode = ""
	_, err = svc.Create(ctx, in)
	require.Error(t, err)
	require.True(t, apperror.IsValidation(err))
	assert.Equal(t, []string{"Item 1: Please fill Item Code, Description, Rate, and Quantity."}, apperror.GetAppError(err).Errors)
}

func TestInvoiceCreateRejectsBadDate(t *testing.T) {
	ctx := context.Background()
	svc := newInvoiceFixture()

	in := validInvoiceInput()
	in.Date = "next tuesday"
	_, err := svc.Create(ctx, in)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestInvoiceUpdateReplacesInPlace(t *testing.T) {
	ctx := context.Background()
	svc := newInvoiceFixture()

	invoice, err := svc.Create(ctx, validInvoiceInput())
	require.NoError(t, err)

	in := validInvoiceInput()
	in.CustomerName = "XYZ Corp"
	in.Date = "01.10.2025"
	in.Items = in.Items[:1]
	updated, err := svc.Update(ctx, invoice.ID, in)
	require.NoError(t, err)

	assert.Equal(t, invoice.ID, updated.ID)
	assert.Equal(t, "XYZ Corp", updated.CustomerName)
	assert.Equal(t, "01.10.2025", updated.Date.String())
	require.Len(t, updated.Items, 1)
	assert.Equal(t, "XYZ Corp", updated.Items[0].CustomerName, "rebuilt items snapshot the new header")

	result, err := svc.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
}
