package entity

import (
	"github.com/lahiruj/autolanka-erp/internal/domain/enum"
	"github.com/lahiruj/autolanka-erp/pkg/datefmt"
)

// Sale represents a sales-pipeline record. One Sale is derived automatically
// from every submitted quotation; its quotation fields are denormalized
// copies, not references.
type Sale struct {
	ID          string          `json:"id"`
	Customer    string          `json:"customer"`
	Amount      float64         `json:"amount"`
	Date        datefmt.Date    `json:"date"`
	Status      enum.SaleStatus `json:"status"`
	CreatedAt   datefmt.Date    `json:"createdAt"`
	Email       string          `json:"email,omitempty"`
	Phone       string          `json:"phone,omitempty"`
	Description string          `json:"description,omitempty"`
	Location    string          `json:"location,omitempty"`
	VATNo       string          `json:"vatNo,omitempty"`
	QuotationNo string          `json:"quotationNo,omitempty"`
	Items       []LineItem      `json:"items,omitempty"`
}
