package entity

import (
	"github.com/lahiruj/autolanka-erp/internal/domain/enum"
	"github.com/lahiruj/autolanka-erp/pkg/datefmt"
)

// Supplier represents a parts supplier shown on the suppliers page
type Supplier struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	Contact          string              `json:"contact,omitempty"`
	Email            string              `json:"email,omitempty"`
	PhoneNumber      string              `json:"phoneNumber,omitempty"`
	Location         string              `json:"location,omitempty"`
	VATNumber        string              `json:"vatNumber,omitempty"`
	ProductsSupplied int                 `json:"productsSupplied"`
	Status           enum.CustomerStatus `json:"status"`
	CreatedAt        datefmt.Date        `json:"createdAt"`
}
