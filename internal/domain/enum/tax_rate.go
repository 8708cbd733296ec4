package enum

import "encoding/json"

// TaxRate represents the VAT band applied to a line item
type TaxRate string

const (
	TaxRateV0  TaxRate = "V0"
	TaxRateV8  TaxRate = "V8"
	TaxRateV18 TaxRate = "V18"
)

// DefaultTaxRate is applied when an entry form leaves the band unset.
const DefaultTaxRate = TaxRateV18

func (t TaxRate) String() string {
	return string(t)
}

// IsValid reports whether the value is a known VAT band.
func (t TaxRate) IsValid() bool {
	switch t {
	case TaxRateV0, TaxRateV8, TaxRateV18:
		return true
	}
	return false
}

// OrDefault returns the rate, falling back to the default band when unset
// or unknown.
func (t TaxRate) OrDefault() TaxRate {
	if t.IsValid() {
		return t
	}
	return DefaultTaxRate
}

func (t TaxRate) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *TaxRate) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = TaxRate(str)
	return nil
}
