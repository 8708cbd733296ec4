package enum

// CustomerStatus represents whether a customer account is active
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "Active"
	CustomerStatusInactive CustomerStatus = "Inactive"
)

func (s CustomerStatus) String() string {
	return string(s)
}

// FinanceStatus represents the settlement state of a finance transaction
type FinanceStatus string

const (
	FinanceStatusCompleted FinanceStatus = "Completed"
	FinanceStatusPending   FinanceStatus = "Pending"
	FinanceStatusFailed    FinanceStatus = "Failed"
)

func (s FinanceStatus) String() string {
	return string(s)
}

// StockStatus represents the inventory level band of a product
type StockStatus string

const (
	StockStatusInStock    StockStatus = "In stock"
	StockStatusLowStock   StockStatus = "Low stock"
	StockStatusOutOfStock StockStatus = "Out of stock"
)

func (s StockStatus) String() string {
	return string(s)
}

// StockStatusFor derives the band from a quantity on hand.
func StockStatusFor(quantity int) StockStatus {
	switch {
	case quantity <= 0:
		return StockStatusOutOfStock
	case quantity < 5:
		return StockStatusLowStock
	default:
		return StockStatusInStock
	}
}
