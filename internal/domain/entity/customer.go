package entity

import (
	"github.com/lahiruj/autolanka-erp/internal/domain/enum"
	"github.com/lahiruj/autolanka-erp/pkg/datefmt"
)

// Customer represents a customer shown on the customers page
type Customer struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Email     string              `json:"email,omitempty"`
	Orders    int                 `json:"orders"`
	Status    enum.CustomerStatus `json:"status"`
	CreatedAt datefmt.Date        `json:"createdAt"`
}
