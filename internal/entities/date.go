package entities

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the only textual form a Date is accepted or emitted in.
const DateLayout = "2006-01-02"

// Date is a Gregorian calendar date without a time of day.
//
// The zero Date is not a valid date; constructors never return it without an
// error, so IsZero is how entity constructors detect a missing payload field.
type Date struct {
	year  int
	month time.Month
	day   int
}

// Years a Date may carry. There is no year 0 in a postgres date column and
// the textual form has exactly four year digits.
const (
	MinYear = 1
	MaxYear = 9999
)

// storedLayouts are the forms sqlite hands back for a date column written
// as a timestamp. Anything else read from the store is corrupt.
var storedLayouts = []string{
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
}

// NewDate builds a Date from its components, rejecting overflowing values
// such as February 30th instead of normalizing them.
func NewDate(year int, month time.Month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, &ValidationError{Field: "date", Err: ErrInvalidDate}
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	y, m, d := t.Date()
	if y != year || m != month || d != day {
		return Date{}, &ValidationError{Field: "date", Err: ErrInvalidDate}
	}
	return Date{year: year, month: month, day: day}, nil
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(raw string) (Date, error) {
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return Date{}, &ValidationError{Field: "date", Err: ErrInvalidDate}
	}
	return NewDate(t.Date())
}

// MustParseDate is ParseDate for literals known to be valid; it panics otherwise.
func MustParseDate(raw string) Date {
	d, err := ParseDate(raw)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf takes the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

func (d Date) Year() int          { return d.year }
func (d Date) Month() time.Month  { return d.month }
func (d Date) Day() int           { return d.day }
func (d Date) IsZero() bool       { return d == Date{} }
func (d Date) Time() time.Time    { return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC) }
func (d Date) Before(o Date) bool { return d.Time().Before(o.Time()) }
func (d Date) After(o Date) bool  { return d.Time().After(o.Time()) }

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return &ValidationError{Field: "date", Err: ErrInvalidDate}
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value stores the date as YYYY-MM-DD text, which both postgres date columns
// and sqlite accept.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// Scan accepts time.Time (postgres, and sqlite columns declared as date) as
// well as raw text.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		parsed, err := NewDate(v.Date())
		if err != nil {
			return corrupt("date", err)
		}
		*d = parsed
		return nil
	case string:
		return d.scanText(v)
	case []byte:
		return d.scanText(string(v))
	case nil:
		return corrupt("date", fmt.Errorf("unexpected NULL"))
	default:
		return corrupt("date", fmt.Errorf("unsupported type %T", src))
	}
}

func (d *Date) scanText(raw string) error {
	if len(raw) == len(DateLayout) {
		parsed, err := ParseDate(raw)
		if err != nil {
			return corrupt("date", err)
		}
		*d = parsed
		return nil
	}
	for _, layout := range storedLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		parsed, err := NewDate(t.Date())
		if err != nil {
			return corrupt("date", err)
		}
		*d = parsed
		return nil
	}
	return corrupt("date", fmt.Errorf("unrecognized date text %q", raw))
}
