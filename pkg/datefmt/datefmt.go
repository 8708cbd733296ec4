package datefmt

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DisplayLayout is the canonical date format shown on the dashboard.
const DisplayLayout = "02.01.2006"

// ISOLayout is accepted on input for callers that still send ISO dates.
const ISOLayout = "2006-01-02"

// Date is a calendar date that marshals to the dashboard's canonical
// DD.MM.YYYY format. Parsing accepts both DD.MM.YYYY and YYYY-MM-DD so the
// format drift of older clients is absorbed at this boundary.
type Date struct {
	time.Time
}

// New creates a Date from a time, truncated to the calendar day.
func New(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date.
func Today() Date {
	return New(time.Now())
}

// AddDays returns the date shifted by the given number of days.
func (d Date) AddDays(days int) Date {
	return New(d.Time.AddDate(0, 0, days))
}

// String formats the date in the canonical display layout.
func (d Date) String() string {
	if d.Time.IsZero() {
		return ""
	}
	return d.Time.Format(DisplayLayout)
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d.Time.IsZero()
}

// Parse reads a date in either accepted layout.
func Parse(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, nil
	}
	for _, layout := range []string{DisplayLayout, ISOLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return New(t), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q: use DD.MM.YYYY or YYYY-MM-DD", s)
}

// MarshalJSON renders the date as a DD.MM.YYYY string, or "" when unset.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts DD.MM.YYYY or YYYY-MM-DD strings.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
