package entity

import (
	"github.com/lahiruj/autolanka-erp/internal/domain/enum"
	"github.com/lahiruj/autolanka-erp/pkg/datefmt"
)

// Finance represents a finance transaction shown on the reports page
type Finance struct {
	ID            string             `json:"id"`
	TransactionID string             `json:"transactionId"`
	Description   string             `json:"description"`
	Amount        float64            `json:"amount"`
	Date          datefmt.Date       `json:"date"`
	Status        enum.FinanceStatus `json:"status"`
	CreatedAt     datefmt.Date       `json:"createdAt"`
}
