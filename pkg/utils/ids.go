package utils

import (
	"fmt"
	"strconv"
	"time"
)

// TimestampID returns a millisecond-resolution identifier token.
func TimestampID(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

// BatchID returns a timestamp identifier with an index suffix so records
// minted in the same batch (and so the same millisecond) stay unique.
func BatchID(t time.Time, index int) string {
	return TimestampID(t) + strconv.Itoa(index)
}

// GenerateQuotationNo suggests a quotation number for a new form.
func GenerateQuotationNo(t time.Time) string {
	return fmt.Sprintf("QTN-%d-%s", t.Year(), lastDigits(t, 3))
}

// GeneratePONo suggests a purchase order number for a new form.
func GeneratePONo(t time.Time) string {
	return fmt.Sprintf("PO-%d-%s", t.Year(), lastDigits(t, 3))
}

// GenerateInvoiceNo suggests an invoice number for a new form.
func GenerateInvoiceNo(t time.Time) string {
	return fmt.Sprintf("INV-%d-%s", t.Year(), lastDigits(t, 3))
}

func lastDigits(t time.Time, n int) string {
	ms := TimestampID(t)
	if len(ms) > n {
		ms = ms[len(ms)-n:]
	}
	return ms
}
