package model

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// DateLayout is the ISO calendar date format used on the wire and in the store.
const DateLayout = "2006-01-02"

// ── calendar date column type ──

// Date is a calendar day in YYYY-MM-DD form. It implements the GORM Scanner/Valuer
// interfaces so that DATE columns read back identically from PostgreSQL (time.Time)
// and from SQLite (text), and range filters compare day strings.
type Date string

// ParseDate validates s as a YYYY-MM-DD day.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date(t.Format(DateLayout)), nil
}

// DateOf returns the calendar day of t in t's location.
func DateOf(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

// AddDays shifts the day by n (negative goes back). An unparsable date is returned as is.
func (d Date) AddDays(n int) Date {
	t, err := time.Parse(DateLayout, string(d))
	if err != nil {
		return d
	}
	return Date(t.AddDate(0, 0, n).Format(DateLayout))
}

// String implements fmt.Stringer.
func (d Date) String() string { return string(d) }

// Scan accepts time.Time, []byte and string sources.
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = ""
	case time.Time:
		*d = Date(v.Format(DateLayout))
	case []byte:
		*d = Date(truncateDay(string(v)))
	case string:
		*d = Date(truncateDay(v))
	default:
		return fmt.Errorf("Date.Scan: unsupported type %T", src)
	}
	return nil
}

// Value stores the day as text; an empty Date is NULL.
func (d Date) Value() (driver.Value, error) {
	if d == "" {
		return nil, nil
	}
	return string(d), nil
}

// truncateDay drops any time part a driver may render after the day.
func truncateDay(s string) string {
	if len(s) > len(DateLayout) {
		return s[:len(DateLayout)]
	}
	return s
}
