package entity

import (
	"github.com/lahiruj/autolanka-erp/internal/domain/enum"
	"github.com/lahiruj/autolanka-erp/pkg/datefmt"
)

// Quotation represents a price quotation offered to a customer
type Quotation struct {
	ID              string               `json:"id,omitempty"`
	QuoteNumber     string               `json:"quoteNumber"`
	CustomerName    string               `json:"customerName"`
	CustomerEmail   string               `json:"customerEmail,omitempty"`
	CustomerPhone   string               `json:"customerPhone,omitempty"`
	CustomerAddress string               `json:"customerAddress,omitempty"`
	VATNumber       string               `json:"vatNumber,omitempty"`
	Status          enum.QuotationStatus `json:"status"`
	Date            datefmt.Date         `json:"date"`
	ValidUntil      datefmt.Date         `json:"validUntil"`
	TotalAmount     float64              `json:"totalAmount"`
	Notes           string               `json:"notes,omitempty"`
	Items           []QuotationItem      `json:"items"`
}

// ComputeTotal recomputes the document total from the committed items.
func (q *Quotation) ComputeTotal() float64 {
	return SumAmounts(q.Items)
}

// QuotationItem is a quotation line item. The vehicle-part fields are
// optional extras captured on the entry form.
type QuotationItem struct {
	LineItem
	Brand     string `json:"brand,omitempty"`
	Model     string `json:"model,omitempty"`
	Year      string `json:"year,omitempty"`
	ChassisNo string `json:"chassisNo,omitempty"`
}
