// Package models defines data structures and domain types.
package models

import (
	"fmt"
	"time"
)

// DateFormat is the wire and display format for calendar dates.
const DateFormat = "2006-01-02"

// Date is a calendar day with no time-of-day and no timezone arithmetic.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate creates a Date from its components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// ParseDate parses a date in YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// DateOf returns the UTC calendar day of an instant.
func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{Year: y, Month: m, Day: d}
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.UTC().Format(DateFormat)
}

// UTC returns midnight UTC at the start of the day.
func (d Date) UTC() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Next returns the following calendar day.
func (d Date) Next() Date {
	return DateOf(d.UTC().AddDate(0, 0, 1))
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.UTC().Before(other.UTC())
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return d.UTC().After(other.UTC())
}

// MarshalJSON encodes the date as a YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a YYYY-MM-DD string.
func (d *Date) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("invalid date literal: %s", data)
	}
	parsed, err := ParseDate(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DateRange is an inclusive interval of calendar days. A nil bound means
// unbounded in that direction; both bounds nil matches everything.
// An inverted range (Start after End) is not rejected, it simply contains
// no days.
type DateRange struct {
	Start *Date
	End   *Date
}

// RangeBetween returns a range bounded on both sides.
func RangeBetween(start, end Date) DateRange {
	return DateRange{Start: &start, End: &end}
}

// RangeFrom returns a range bounded only from below.
func RangeFrom(start Date) DateRange {
	return DateRange{Start: &start}
}

// RangeUntil returns a range bounded only from above.
func RangeUntil(end Date) DateRange {
	return DateRange{End: &end}
}

// AllTime returns the fully unbounded range.
func AllTime() DateRange {
	return DateRange{}
}

// Unbounded reports whether neither side has a bound.
func (r DateRange) Unbounded() bool {
	return r.Start == nil && r.End == nil
}

// Contains reports whether the UTC calendar day of t falls inside the
// range, inclusive on both ends.
func (r DateRange) Contains(t time.Time) bool {
	d := DateOf(t)
	if r.Start != nil && d.Before(*r.Start) {
		return false
	}
	if r.End != nil && d.After(*r.End) {
		return false
	}
	return true
}

// String renders the range for display, using an ellipsis for open ends.
func (r DateRange) String() string {
	start, end := "...", "..."
	if r.Start != nil {
		start = r.Start.String()
	}
	if r.End != nil {
		end = r.End.String()
	}
	if r.Unbounded() {
		return "all time"
	}
	return start + " .. " + end
}
