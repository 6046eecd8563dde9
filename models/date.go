package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// dateLayout is the wire format used for birth dates ("dd/MM/yyyy").
const dateLayout = "02/01/2006"

// Date is a day-precision timestamp serialized as "dd/MM/yyyy", the format
// the API has always used for the "dataNascimento" field.
type Date struct {
	time.Time
}

// NewDate builds a Date truncated to day precision in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// MarshalJSON implements json.Marshaler using the "dd/MM/yyyy" layout.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

// UnmarshalJSON implements json.Unmarshaler. It accepts either the
// "dd/MM/yyyy" wire layout or an empty string (left as the zero Date).
func (d *Date) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	if strings.TrimSpace(raw) == "" {
		*d = Date{}
		return nil
	}

	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", raw, err)
	}

	*d = Date{parsed}
	return nil
}
