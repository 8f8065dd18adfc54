package domain

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Date is a calendar date without a time of day or a timezone.
//
// Study scheduling works in the learner's local calendar: a practice session
// at 23:30 and another at 00:30 the next night are different study days no
// matter what they map to in UTC. Deriving dates by truncating a UTC
// timestamp shifts them by up to a day for learners east or west of
// Greenwich, so all date handling goes through this type and conversion from
// a time.Time always respects that time's location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// dateLayout is the wire format for dates (ISO 8601 date-only).
const dateLayout = "2006-01-02"

// NewDate returns the Date for the given year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf returns the Date on which t falls, in t's own location.
// Callers that want the learner's study day must pass a time.Time carrying
// the learner's local timezone, e.g. time.Now().
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// ParseDate parses a date in YYYY-MM-DD format.
// Returns ErrInvalidDate if the string is not a valid calendar date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

// IsZero reports whether d is the zero date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// String returns the date in YYYY-MM-DD format.
func (d Date) String() string {
	return d.toTime().Format(dateLayout)
}

// toTime returns midnight UTC of d. The UTC location here is only an
// anchor for arithmetic and formatting; it never leaks into date derivation.
func (d Date) toTime() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days after d (or before, for negative n).
func (d Date) AddDays(n int) Date {
	return DateOf(d.toTime().AddDate(0, 0, n))
}

// DaysSince returns the number of calendar days from other to d.
func (d Date) DaysSince(other Date) int {
	return int(d.toTime().Sub(other.toTime()).Hours() / 24)
}

// Before reports whether d is before other.
func (d Date) Before(other Date) bool {
	return d.toTime().Before(other.toTime())
}

// After reports whether d is after other.
func (d Date) After(other Date) bool {
	return d.toTime().After(other.toTime())
}

// MarshalJSON encodes the date as a YYYY-MM-DD JSON string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a YYYY-MM-DD JSON string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("%w: %s", ErrInvalidDate, s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer so Date maps onto SQL DATE columns.
// The zero date maps to NULL.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.toTime(), nil
}

// Scan implements sql.Scanner for DATE columns.
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case nil:
		*d = Date{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}
