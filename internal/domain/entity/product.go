package entity

import (
	"github.com/lahiruj/autolanka-erp/internal/domain/enum"
	"github.com/lahiruj/autolanka-erp/pkg/datefmt"
)

// Product represents an inventory item shown on the inventory page. Prices
// stay display-formatted strings ("LKR 18500"); the inventory page never
// computes with them.
type Product struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Supplier      string           `json:"supplier,omitempty"`
	ProductCode   string           `json:"productCode"`
	Quantity      int              `json:"quantity"`
	SoldCount     int              `json:"soldCount"`
	Status        enum.StockStatus `json:"status"`
	SupplierPrice string           `json:"supplierPrice,omitempty"`
	SellPrice     string           `json:"sellPrice,omitempty"`
	CreatedBy     string           `json:"createdBy,omitempty"`
	Date          datefmt.Date     `json:"date"`
}
