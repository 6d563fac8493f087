package types

import (
	"strconv"
	"strings"
)

// ExFloat is a float64 that distinguishes "absent or unparsable" from zero.
//
// Exchange payloads mix JSON numbers, numeric strings, empty strings, the
// literal "NULL" and missing keys for the same field. Unmarshalling into a
// plain float64 collapses all of those into 0, which downstream code cannot
// tell apart from a real zero. ExFloat keeps the distinction: Valid is false
// when no numeric value was present.
type ExFloat struct {
	Float64 float64
	Valid   bool
}

// Float returns a valid ExFloat holding f.
func Float(f float64) ExFloat {
	return ExFloat{Float64: f, Valid: true}
}

// ParseFloat coerces an arbitrary raw JSON value into an ExFloat.
// Accepted inputs: float64, json numbers decoded as float64, numeric
// strings. Everything else (nil, booleans, objects, "NULL", "") is unknown.
func ParseFloat(v interface{}) ExFloat {
	switch val := v.(type) {
	case float64:
		return Float(val)
	case int:
		return Float(float64(val))
	case int64:
		return Float(float64(val))
	case string:
		s := strings.TrimSpace(val)
		if s == "" || strings.EqualFold(s, "null") {
			return ExFloat{}
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return Float(f)
		}
	}
	return ExFloat{}
}

// UnmarshalJSON accepts a JSON number, a numeric string, null or an empty
// string. Non-numeric input yields the unknown value rather than an error,
// so one malformed field never fails the record around it.
func (f *ExFloat) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(strings.Trim(string(data), `"`))
	if s == "" || strings.EqualFold(s, "null") {
		*f = ExFloat{}
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = ExFloat{}
		return nil
	}
	*f = Float(v)
	return nil
}

// MarshalJSON renders the unknown value as null.
func (f ExFloat) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(f.Float64, 'f', -1, 64)), nil
}

// String renders the value for logging; unknown renders as "null".
func (f ExFloat) String() string {
	if !f.Valid {
		return "null"
	}
	return strconv.FormatFloat(f.Float64, 'f', -1, 64)
}
