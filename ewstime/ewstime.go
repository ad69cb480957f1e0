// Package ewstime holds the two date/time value types the EWS schema
// distinguishes: a civil date with no time-of-day or zone, and a zoned
// instant. Both carry the fixed wire format EWS expects.
package ewstime

import "time"

const (
	dateFormat     = "2006-01-02"
	dateTimeFormat = "2006-01-02T15:04:05Z"
)

// Date is a civil date (year, month, day) with no time-of-day and no zone.
type Date struct {
	t time.Time
}

// NewDate creates a civil date.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates an instant to its civil date in the instant's location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Time returns the date as midnight UTC.
func (d Date) Time() time.Time {
	return d.t
}

// String formats the date the way EWS date elements expect, e.g. "2024-01-01".
func (d Date) String() string {
	return d.t.Format(dateFormat)
}

// DateTime is a zoned instant.
type DateTime struct {
	t time.Time
}

// NewDateTime wraps an instant.
func NewDateTime(t time.Time) DateTime {
	return DateTime{t: t}
}

// IsZero reports whether the instant is the zero value.
func (dt DateTime) IsZero() bool {
	return dt.t.IsZero()
}

// Time returns the underlying instant.
func (dt DateTime) Time() time.Time {
	return dt.t
}

// String formats the instant in UTC the way EWS datetime elements expect,
// e.g. "2024-01-01T09:30:00Z".
func (dt DateTime) String() string {
	return dt.t.UTC().Format(dateTimeFormat)
}
