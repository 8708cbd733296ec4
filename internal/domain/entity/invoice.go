package entity

import "github.com/lahiruj/autolanka-erp/pkg/datefmt"

// InvoiceHeader holds the customer and document fields of an invoice. Each
// committed invoice item carries a value copy of the header as it stood at
// commit time; editing the header afterwards does not touch those copies.
type InvoiceHeader struct {
	CustomerName  string       `json:"customerName"`
	Address       string       `json:"address"`
	InvoiceNumber string       `json:"invoiceNumber"`
	Date          datefmt.Date `json:"date"`
	TaxPercent    string       `json:"taxPercent,omitempty"`
	Terms         string       `json:"terms,omitempty"`
	VATNumber     string       `json:"vatNumber,omitempty"`
	CustomerNo    string       `json:"customerNo,omitempty"`
	CustomerPONo  string       `json:"customerPONo,omitempty"`
	Type          string       `json:"type,omitempty"`
	SalesPerson   string       `json:"salesPerson,omitempty"`
}

// Invoice represents a customer invoice
type Invoice struct {
	ID string `json:"id,omitempty"`
	InvoiceHeader
	Items []InvoiceItem `json:"items"`
}

// ComputeTotal recomputes the invoice total from the committed items.
func (i *Invoice) ComputeTotal() float64 {
	return SumAmounts(i.Items)
}

// InvoiceItem is an invoice line item with its point-in-time header snapshot
// flattened alongside the priced fields.
type InvoiceItem struct {
	LineItem
	InvoiceHeader
}
