package entity

import "github.com/lahiruj/autolanka-erp/internal/domain/enum"

// LineItem is the common shape of one priced row of a document: an item or
// service with a quantity, unit rate and VAT band. Amount is derived from
// Qty and Rate when the item is committed and never set independently.
type LineItem struct {
	ID          string       `json:"id"`
	ItemCode    string       `json:"itemCode"`
	Description string       `json:"description"`
	Qty         float64      `json:"qty"`
	Rate        float64      `json:"rate"`
	Tax         enum.TaxRate `json:"tax"`
	Warranty    string       `json:"warranty,omitempty"`
	Amount      float64      `json:"amount"`
}

// LineID returns the item's identifier.
func (l LineItem) LineID() string {
	return l.ID
}

// LineAmount returns the item's committed amount. A zero value stands in
// for items hydrated from partially-shaped external data.
func (l LineItem) LineAmount() float64 {
	return l.Amount
}

// Lined is satisfied by every line item variant through the embedded
// LineItem.
type Lined interface {
	LineID() string
	LineAmount() float64
}

// SumAmounts folds committed item amounts into a document total. An empty
// list yields 0; items without an amount contribute 0.
func SumAmounts[T Lined](items []T) float64 {
	var total float64
	for _, item := range items {
		total += item.LineAmount()
	}
	return total
}

// RemoveByID returns the list without the item carrying the given id,
// preserving entry order. Unknown ids leave the list unchanged.
func RemoveByID[T Lined](items []T, id string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item.LineID() != id {
			out = append(out, item)
		}
	}
	return out
}
