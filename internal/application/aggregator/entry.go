package aggregator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lahiruj/autolanka-erp/internal/domain/enum"
)

// ItemEntry is one entry form's worth of raw input. Numbers arrive as text
// exactly as typed; nothing is parsed until the entry is committed.
type ItemEntry struct {
	ItemCode    string `json:"itemCode"`
	Description string `json:"description"`
	UnitPrice   string `json:"unitPrice"`
	Quantity    string `json:"quantity"`
	Tax         string `json:"tax"`
	Warranty    string `json:"warranty"`

	// Quotation extras
	Brand     string `json:"brand"`
	Model     string `json:"model"`
	Year      string `json:"year"`
	ChassisNo string `json:"chassisNo"`

	// Purchase order extra
	Note string `json:"note"`
}

func (e ItemEntry) taxRate() enum.TaxRate {
	return enum.TaxRate(strings.TrimSpace(e.Tax)).OrDefault()
}

// parseNumber parses a form field as a positive number. The empty-field case
// is handled by the required-field checks before parsing.
func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func itemMessage(pos int, format string, args ...any) string {
	return fmt.Sprintf("Item %d: ", pos) + fmt.Sprintf(format, args...)
}
