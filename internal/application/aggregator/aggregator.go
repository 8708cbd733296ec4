package aggregator

import (
	"fmt"
	"time"

	"github.com/lahiruj/autolanka-erp/internal/domain/entity"
	"github.com/lahiruj/autolanka-erp/pkg/apperror"
	"github.com/lahiruj/autolanka-erp/pkg/utils"
)

// The aggregators accumulate validated line items for one document being
// assembled. Commits are all-or-nothing: a batch with any invalid entry
// leaves the committed list untouched and reports every problem at once.

// QuotationAggregator builds the item list of one quotation. Entries are
// committed in batches and item codes are synthesized from the committed
// position, so codes read ITEM-1, ITEM-2, ... in entry order.
type QuotationAggregator struct {
	items []entity.QuotationItem
	now   func() time.Time
}

// NewQuotationAggregator creates an empty quotation aggregator.
func NewQuotationAggregator() *QuotationAggregator {
	return &QuotationAggregator{now: time.Now}
}

// AddItems validates and commits a batch of entry forms. On any invalid
// entry nothing is committed and the returned error carries one message per
// problem, each prefixed with the entry's 1-based position.
func (a *QuotationAggregator) AddItems(entries []ItemEntry) ([]entity.QuotationItem, error) {
	if len(entries) == 0 {
		return nil, apperror.NewBadRequestError("Please add at least one valid item.")
	}

	var messages []string
	committed := make([]entity.QuotationItem, 0, len(entries))
	ts := a.now()

	for i, e := range entries {
		pos := i + 1
		if blank(e.Description) || blank(e.UnitPrice) || blank(e.Quantity) {
			messages = append(messages, itemMessage(pos, "Please fill Item Description, Unit Price, and Quantity."))
			continue
		}
		rate, ok := parseNumber(e.UnitPrice)
		if !ok {
			messages = append(messages, itemMessage(pos, "Unit Price must be greater than 0."))
			continue
		}
		qty, ok := parseNumber(e.Quantity)
		if !ok {
			messages = append(messages, itemMessage(pos, "Quantity must be greater than 0."))
			continue
		}

		committed = append(committed, entity.QuotationItem{
			LineItem: entity.LineItem{
				ID:          utils.BatchID(ts, i),
				ItemCode:    fmt.Sprintf("ITEM-%d", len(a.items)+i+1),
				Description: e.Description,
				Qty:         qty,
				Rate:        rate,
				Tax:         e.taxRate(),
				Warranty:    e.Warranty,
				Amount:      qty * rate,
			},
			Brand:     e.Brand,
			Model:     e.Model,
			Year:      e.Year,
			ChassisNo: e.ChassisNo,
		})
	}

	if len(messages) > 0 {
		return nil, apperror.NewValidationError(messages)
	}

	a.items = append(a.items, committed...)
	return committed, nil
}

// RemoveItem drops the committed item with the given id. Unknown ids are
// ignored.
func (a *QuotationAggregator) RemoveItem(id string) {
	a.items = entity.RemoveByID(a.items, id)
}

// Items returns a copy of the committed items in entry order.
func (a *QuotationAggregator) Items() []entity.QuotationItem {
	out := make([]entity.QuotationItem, len(a.items))
	copy(out, a.items)
	return out
}

// Total returns the running sum of committed item amounts.
func (a *QuotationAggregator) Total() float64 {
	return entity.SumAmounts(a.items)
}

// Reset discards every committed item.
func (a *QuotationAggregator) Reset() {
	a.items = nil
}

// InvoiceAggregator builds the item list of one invoice. Item codes are
// caller-supplied and every committed item carries a value copy of the
// header as it stood at commit time.
type InvoiceAggregator struct {
	header entity.InvoiceHeader
	items  []entity.InvoiceItem
	now    func() time.Time
}

// NewInvoiceAggregator creates an invoice aggregator snapshotting the given
// header into each committed item.
func NewInvoiceAggregator(header entity.InvoiceHeader) *InvoiceAggregator {
	return &InvoiceAggregator{header: header, now: time.Now}
}

// SetHeader replaces the header used for subsequent commits. Items already
// committed keep the snapshot they were taken with.
func (a *InvoiceAggregator) SetHeader(header entity.InvoiceHeader) {
	a.header = header
}

// AddItems validates and commits a batch of entry forms, all-or-nothing.
func (a *InvoiceAggregator) AddItems(entries []ItemEntry) ([]entity.InvoiceItem, error) {
	if len(entries) == 0 {
		return nil, apperror.NewBadRequestError("Please add at least one valid item.")
	}

	var messages []string
	committed := make([]entity.InvoiceItem, 0, len(entries))
	ts := a.now()

	for i, e := range entries {
		pos := i + 1
		if blank(e.ItemCode) || blank(e.Description) || blank(e.UnitPrice) || blank(e.Quantity) {
			messages = append(messages, itemMessage(pos, "Please fill Item Code, Description, Rate, and Quantity."))
			continue
		}
		qty, ok := parseNumber(e.Quantity)
		if !ok {
			messages = append(messages, itemMessage(pos, "Quantity must be greater than 0."))
			continue
		}
		rate, ok := parseNumber(e.UnitPrice)
		if !ok {
			messages = append(messages, itemMessage(pos, "Rate must be greater than 0."))
			continue
		}

		committed = append(committed, entity.InvoiceItem{
			LineItem: entity.LineItem{
				ID:          utils.BatchID(ts, i),
				ItemCode:    e.ItemCode,
				Description: e.Description,
				Qty:         qty,
				Rate:        rate,
				Tax:         e.taxRate(),
				Warranty:    e.Warranty,
				Amount:      qty * rate,
			},
			InvoiceHeader: a.header,
		})
	}

	if len(messages) > 0 {
		return nil, apperror.NewValidationError(messages)
	}

	a.items = append(a.items, committed...)
	return committed, nil
}

// RemoveItem drops the committed item with the given id.
func (a *InvoiceAggregator) RemoveItem(id string) {
	a.items = entity.RemoveByID(a.items, id)
}

// Items returns a copy of the committed items in entry order.
func (a *InvoiceAggregator) Items() []entity.InvoiceItem {
	out := make([]entity.InvoiceItem, len(a.items))
	copy(out, a.items)
	return out
}

// Total returns the running sum of committed item amounts.
func (a *InvoiceAggregator) Total() float64 {
	return entity.SumAmounts(a.items)
}

// Reset discards every committed item.
func (a *InvoiceAggregator) Reset() {
	a.items = nil
}

// PurchaseOrderAggregator builds the item list of one purchase order. Items
// are committed one entry at a time; codes read PO-1, PO-2, ... in entry
// order.
type PurchaseOrderAggregator struct {
	items []entity.PurchaseOrderItem
	now   func() time.Time
}

// NewPurchaseOrderAggregator creates an empty purchase order aggregator.
func NewPurchaseOrderAggregator() *PurchaseOrderAggregator {
	return &PurchaseOrderAggregator{now: time.Now}
}

// AddItem validates and commits a single entry form. The error message is
// prefixed with the position the item would have taken.
func (a *PurchaseOrderAggregator) AddItem(e ItemEntry) (entity.PurchaseOrderItem, error) {
	pos := len(a.items) + 1
	if blank(e.Description) || blank(e.UnitPrice) || blank(e.Quantity) {
		return entity.PurchaseOrderItem{}, apperror.NewValidationError([]string{
			itemMessage(pos, "Please fill PO Description, Unit Price, and Amount."),
		})
	}
	rate, ok := parseNumber(e.UnitPrice)
	if !ok {
		return entity.PurchaseOrderItem{}, apperror.NewValidationError([]string{
			itemMessage(pos, "Unit Price must be greater than 0."),
		})
	}
	qty, ok := parseNumber(e.Quantity)
	if !ok {
		return entity.PurchaseOrderItem{}, apperror.NewValidationError([]string{
			itemMessage(pos, "Quantity must be greater than 0."),
		})
	}

	item := entity.PurchaseOrderItem{
		LineItem: entity.LineItem{
			ID:          utils.BatchID(a.now(), len(a.items)),
			ItemCode:    fmt.Sprintf("PO-%d", pos),
			Description: e.Description,
			Qty:         qty,
			Rate:        rate,
			Tax:         e.taxRate(),
			Warranty:    e.Warranty,
			Amount:      qty * rate,
		},
		Note: e.Note,
	}
	a.items = append(a.items, item)
	return item, nil
}

// RemoveItem drops the committed item with the given id.
func (a *PurchaseOrderAggregator) RemoveItem(id string) {
	a.items = entity.RemoveByID(a.items, id)
}

// Items returns a copy of the committed items in entry order.
func (a *PurchaseOrderAggregator) Items() []entity.PurchaseOrderItem {
	out := make([]entity.PurchaseOrderItem, len(a.items))
	copy(out, a.items)
	return out
}

// Total returns the running sum of committed item amounts.
func (a *PurchaseOrderAggregator) Total() float64 {
	return entity.SumAmounts(a.items)
}

// Reset discards every committed item.
func (a *PurchaseOrderAggregator) Reset() {
	a.items = nil
}
