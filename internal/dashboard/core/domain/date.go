package domain

import (
	"encoding/json"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day without time of day or zone. The zero value is not a valid date.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf drops the clock part of t, keeping the calendar day in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate accepts only zero-padded YYYY-MM-DD strings naming a real calendar day.
func ParseDate(field, value string) (Date, error) {
	if len(value) != len(dateLayout) {
		return Date{}, newValidationError(field, value, "expected YYYY-MM-DD")
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return Date{}, newValidationError(field, value, "expected YYYY-MM-DD")
	}
	return Date{t: t}, nil
}

func MustParseDate(value string) Date {
	d, err := ParseDate("date", value)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) Time() time.Time { return d.t }
func (d Date) IsZero() bool    { return d.t.IsZero() }
func (d Date) Year() int       { return d.t.Year() }
func (d Date) Month() time.Month {
	return d.t.Month()
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(dateLayout)
}

func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) After(o Date) bool  { return d.t.After(o.t) }

// Equal lets go-cmp and testify compare dates by value.
func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }

func (d Date) Compare(o Date) int {
	return d.t.Compare(o.t)
}

func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

func (d Date) AddYears(n int) Date {
	return Date{t: d.t.AddDate(n, 0, 0)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return newValidationError("date", string(b), "expected a string")
	}
	parsed, err := ParseDate("date", s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
