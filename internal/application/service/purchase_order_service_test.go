package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lahiruj/autolanka-erp/internal/application/aggregator"
	"github.com/lahiruj/autolanka-erp/internal/domain/enum"
	"github.com/lahiruj/autolanka-erp/internal/infrastructure/memstore"
	"github.com/lahiruj/autolanka-erp/pkg/apperror"
	"github.com/lahiruj/autolanka-erp/pkg/datefmt"
)

func newPOFixture() *PurchaseOrderService {
	svc := NewPurchaseOrderService(memstore.NewPurchaseOrderRepository())
	svc.today = func() datefmt.Date {
		return datefmt.New(time.Date(2025, 9, 20, 0, 0, 0, 0, time.UTC))
	}
	return svc
}

func validPOInput() *PurchaseOrderInput {
	return &PurchaseOrderInput{
		PONumber:    "PO-2025-001",
		CompanyName: "Supplier X",
		VATNumber:   "123456789",
		Location:    "Colombo, Sri Lanka",
		Note:        "Deliver by end of month.",
		Items: []aggregator.ItemEntry{
			{Description: "Gaming Laptop", UnitPrice: "30000", Quantity: "5", Warranty: "2 years", Note: "Handle with care"},
			{Description: "Docking Station", UnitPrice: "12000", Quantity: "5"},
		},
	}
}

func TestPurchaseOrderCreate(t *testing.T) {
	ctx := context.Background()
	svc := newPOFixture()

	po, err := svc.Create(ctx, validPOInput())
	require.NoError(t, err)

	assert.NotEmpty(t, po.ID)
	assert.Equal(t, enum.PurchaseOrderStatusDraft, po.Status)
	assert.Equal(t, "20.09.2025", po.Date.String())
	assert.Equal(t, 210000.0, po.TotalAmount)
	assert.Equal(t, "2 years", po.Warranty, "header warranty falls back to the first item's")
	require.Len(t, po.Items, 2)
	assert.Equal(t, "PO-1", po.Items[0].ItemCode)
	assert.Equal(t, "PO-2", po.Items[1].ItemCode)
	assert.Equal(t, "Handle with care", po.Items[0].Note)
}

func TestPurchaseOrderCreatePreconditions(t *testing.T) {
	ctx := context.Background()
	svc := newPOFixture()

	in := validPOInput()
	in.CompanyName = ""
	_, err := svc.Create(ctx, in)
	require.Error(t, err)
	assert.Equal(t, "Please fill PO Number, Company Name, and add at least one item.", apperror.GetAppError(err).Message)

	in = validPOInput()
	in.Items = nil
	_, err = svc.Create(ctx, in)
	require.Error(t, err)

	in = validPOInput()
	in.Items[1].Quantity = "-2"
	_, err = svc.Create(ctx, in)
	require.Error(t, err)
	require.True(t, apperror.IsValidation(err))
	assert.Equal(t, []string{"Item 2: Quantity must be greater than 0."}, apperror.GetAppError(err).Errors)

	result, err := svc.List(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, result.Items)
}

func TestPurchaseOrderUpdateKeepsStatusAndDate(t *testing.T) {
	ctx := context.Background()
	svc := newPOFixture()

	po, err := svc.Create(ctx, validPOInput())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, po.ID, enum.PurchaseOrderStatusApproved)
	require.NoError(t, err)

	in := validPOInput()
	in.Items = []aggregator.ItemEntry{{Description: "Replacement", UnitPrice: "1000", Quantity: "1", Warranty: "1 year"}}
	updated, err := svc.Update(ctx, po.ID, in)
	require.NoError(t, err)

	assert.Equal(t, enum.PurchaseOrderStatusApproved, updated.Status)
	assert.Equal(t, po.Date, updated.Date)
	assert.Equal(t, 1000.0, updated.TotalAmount)
	assert.Equal(t, "1 year", updated.Warranty)
}

func TestPurchaseOrderUpdateStatusRejectsUnknown(t *testing.T) {
	ctx := context.Background()
	svc := newPOFixture()

	po, err := svc.Create(ctx, validPOInput())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, po.ID, enum.PurchaseOrderStatus("Shipped"))
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}
