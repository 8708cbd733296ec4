package aggregator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lahiruj/autolanka-erp/internal/domain/entity"
	"github.com/lahiruj/autolanka-erp/internal/domain/enum"
	"github.com/lahiruj/autolanka-erp/pkg/apperror"
)

func frozenClock() func() time.Time {
	fixed := time.Date(2025, 9, 20, 10, 0, 0, 0, time.UTC)
	return func() time.Time { return fixed }
}

func TestQuotationAggregatorCommitsBatch(t *testing.T) {
	agg := NewQuotationAggregator()
	agg.now = frozenClock()

	committed, err := agg.AddItems([]ItemEntry{
		{Description: "Brake Pad Set", UnitPrice: "18500", Quantity: "2", Tax: "V8", Warranty: "6 Months", Brand: "Toyota", Model: "Aqua", Year: "2017"},
		{Description: "Oil Filter", UnitPrice: "4500", Quantity: "3"},
	})
	require.NoError(t, err)
	require.Len(t, committed, 2)

	assert.Equal(t, "ITEM-1", committed[0].ItemCode)
	assert.Equal(t, "ITEM-2", committed[1].ItemCode)
	assert.Equal(t, 37000.0, committed[0].Amount)
	assert.Equal(t, 13500.0, committed[1].Amount)
	assert.Equal(t, enum.TaxRateV8, committed[0].Tax)
	assert.Equal(t, enum.TaxRateV18, committed[1].Tax, "missing tax falls back to the default band")
	assert.Equal(t, "Toyota", committed[0].Brand)
	assert.NotEqual(t, committed[0].ID, committed[1].ID)

	assert.Equal(t, 50500.0, agg.Total())
}

func TestQuotationAggregatorRejectsWholeBatch(t *testing.T) {
	agg := NewQuotationAggregator()

	_, err := agg.AddItems([]ItemEntry{
		{Description: "Valid", UnitPrice: "100", Quantity: "1"},
		{Description: "", UnitPrice: "200", Quantity: "1"},
		{Description: "Bad price", UnitPrice: "abc", Quantity: "1"},
		{Description: "Bad qty", UnitPrice: "50", Quantity: "0"},
	})
	require.Error(t, err)
	require.True(t, apperror.IsValidation(err))

	appErr := apperror.GetAppError(err)
	assert.Equal(t, []string{
		"Item 2: Please fill Item Description, Unit Price, and Quantity.",
		"Item 3: Unit Price must be greater than 0.",
		"Item 4: Quantity must be greater than 0.",
	}, appErr.Errors)

	// All-or-nothing: the valid entry must not have been committed.
	assert.Empty(t, agg.Items())
	assert.Equal(t, 0.0, agg.Total())
}

func TestQuotationAggregatorEmptyBatch(t *testing.T) {
	agg := NewQuotationAggregator()
	_, err := agg.AddItems(nil)
	require.Error(t, err)
	assert.Equal(t, "Please add at least one valid item.", apperror.GetAppError(err).Message)
}

func TestQuotationAggregatorCodesContinueAcrossBatches(t *testing.T) {
	agg := NewQuotationAggregator()

	_, err := agg.AddItems([]ItemEntry{{Description: "A", UnitPrice: "10", Quantity: "1"}})
	require.NoError(t, err)
	second, err := agg.AddItems([]ItemEntry{{Description: "B", UnitPrice: "20", Quantity: "1"}})
	require.NoError(t, err)

	assert.Equal(t, "ITEM-2", second[0].ItemCode)
}

func TestQuotationAggregatorRemoveItem(t *testing.T) {
	agg := NewQuotationAggregator()
	committed, err := agg.AddItems([]ItemEntry{
		{Description: "A", UnitPrice: "10", Quantity: "1"},
		{Description: "B", UnitPrice: "20", Quantity: "1"},
	})
	require.NoError(t, err)

	agg.RemoveItem(committed[0].ID)
	require.Len(t, agg.Items(), 1)
	assert.Equal(t, "B", agg.Items()[0].Description)
	assert.Equal(t, 20.0, agg.Total())

	// Removing an unknown id changes nothing.
	agg.RemoveItem("no-such-id")
	assert.Len(t, agg.Items(), 1)
}

func TestQuotationAggregatorAmountFrozenAtCommit(t *testing.T) {
	agg := NewQuotationAggregator()
	committed, err := agg.AddItems([]ItemEntry{{Description: "A", UnitPrice: "10", Quantity: "2"}})
	require.NoError(t, err)

	committed[0].Qty = 100
	assert.Equal(t, 20.0, agg.Total(), "mutating the returned copy must not affect the committed amount")
}

func TestInvoiceAggregatorSnapshotsHeader(t *testing.T) {
	header := entity.InvoiceHeader{CustomerName: "ABC Corp", Address: "Colombo", InvoiceNumber: "INV-001"}
	agg := NewInvoiceAggregator(header)

	first, err := agg.AddItems([]ItemEntry{{ItemCode: "LAP-01", Description: "Laptop", UnitPrice: "250000", Quantity: "1"}})
	require.NoError(t, err)
	assert.Equal(t, "ABC Corp", first[0].CustomerName)

	// A later header edit must not rewrite items already committed.
	header.CustomerName = "XYZ Corp"
	agg.SetHeader(header)
	second, err := agg.AddItems([]ItemEntry{{ItemCode: "MOU-01", Description: "Mouse", UnitPrice: "5000", Quantity: "2"}})
	require.NoError(t, err)

	items := agg.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "ABC Corp", items[0].CustomerName)
	assert.Equal(t, "XYZ Corp", second[0].CustomerName)
	assert.Equal(t, 260000.0, agg.Total())
}

func TestInvoiceAggregatorRequiresItemCode(t *testing.T) {
	agg := NewInvoiceAggregator(entity.InvoiceHeader{})

	_, err := agg.AddItems([]ItemEntry{{Description: "Laptop", UnitPrice: "100", Quantity: "1"}})
	require.Error(t, err)
	assert.Equal(t, []string{
		"Item 1: Please fill Item Code, Description, Rate, and Quantity.",
	}, apperror.GetAppError(err).Errors)
}

func TestPurchaseOrderAggregatorAddsOneAtATime(t *testing.T) {
	agg := NewPurchaseOrderAggregator()

	first, err := agg.AddItem(ItemEntry{Description: "Gaming Laptop", UnitPrice: "30000", Quantity: "5", Warranty: "2 years", Note: "Handle with care"})
	require.NoError(t, err)
	assert.Equal(t, "PO-1", first.ItemCode)
	assert.Equal(t, 150000.0, first.Amount)
	assert.Equal(t, "Handle with care", first.Note)

	second, err := agg.AddItem(ItemEntry{Description: "Docking Station", UnitPrice: "12000", Quantity: "5"})
	require.NoError(t, err)
	assert.Equal(t, "PO-2", second.ItemCode)
	assert.Equal(t, 210000.0, agg.Total())
}

func TestPurchaseOrderAggregatorRejectsInvalidEntry(t *testing.T) {
	agg := NewPurchaseOrderAggregator()

	_, err := agg.AddItem(ItemEntry{Description: "Laptop", UnitPrice: "", Quantity: "5"})
	require.Error(t, err)
	require.True(t, apperror.IsValidation(err))
	assert.Equal(t, []string{
		"Item 1: Please fill PO Description, Unit Price, and Amount.",
	}, apperror.GetAppError(err).Errors)
	assert.Empty(t, agg.Items())

	_, err = agg.AddItem(ItemEntry{Description: "Laptop", UnitPrice: "0", Quantity: "5"})
	require.Error(t, err)
	assert.Equal(t, []string{
		"Item 1: Unit Price must be greater than 0.",
	}, apperror.GetAppError(err).Errors)
}

func TestAggregatorReset(t *testing.T) {
	agg := NewQuotationAggregator()
	_, err := agg.AddItems([]ItemEntry{{Description: "A", UnitPrice: "10", Quantity: "1"}})
	require.NoError(t, err)

	agg.Reset()
	assert.Empty(t, agg.Items())
	assert.Equal(t, 0.0, agg.Total())
}
