package entity

import (
	"github.com/lahiruj/autolanka-erp/internal/domain/enum"
	"github.com/lahiruj/autolanka-erp/pkg/datefmt"
)

// PurchaseOrder represents an order placed with a supplier
type PurchaseOrder struct {
	ID          string                   `json:"id,omitempty"`
	PONumber    string                   `json:"poNumber"`
	CompanyName string                   `json:"companyName"`
	VATNumber   string                   `json:"vatNumber,omitempty"`
	Email       string                   `json:"email,omitempty"`
	PhoneNumber string                   `json:"phoneNumber,omitempty"`
	Location    string                   `json:"location,omitempty"`
	Status      enum.PurchaseOrderStatus `json:"status"`
	Date        datefmt.Date             `json:"date"`
	TotalAmount float64                  `json:"totalAmount"`
	Warranty    string                   `json:"warranty,omitempty"`
	Note        string                   `json:"note,omitempty"`
	Items       []PurchaseOrderItem      `json:"items"`
}

// ComputeTotal recomputes the order total from the committed items.
func (p *PurchaseOrder) ComputeTotal() float64 {
	return SumAmounts(p.Items)
}

// PurchaseOrderItem is a purchase order line item
type PurchaseOrderItem struct {
	LineItem
	Note string `json:"note,omitempty"`
}
