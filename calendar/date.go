// Package calendar implements date arithmetic on the proleptic Gregorian calendar:
// parsing of DD/MM/YYYY and YYYY-MM-DD dates, validation, day of week and stepping
// one day forwards or backwards.
package calendar

import (
	"fmt"
	"time"

	"github.com/ngrash/weekenddays/internal/unixtime"
)

// Date is a calendar date. A Date returned by Parse is not range checked,
// use Validate or IsValid before doing arithmetic with it.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// String returns the date in YYYY-MM-DD form.
func (d Date) String() string {
	if d.Year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -d.Year, int(d.Month), d.Day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return other.Before(d)
}

// Compare returns -1 if a is before b, +1 if a is after b and 0 if they are the same date.
// Both dates must be valid.
func Compare(a, b Date) int {
	da, db := unixtime.DayNumber(a.Year, int(a.Month), a.Day), unixtime.DayNumber(b.Year, int(b.Month), b.Day)
	switch {
	case da < db:
		return -1
	case da > db:
		return 1
	}
	return 0
}

// DaysBetween returns the number of days in the inclusive range [a, b].
// It returns 0 if b is before a. Both dates must be valid.
func DaysBetween(a, b Date) int {
	n := unixtime.DayNumber(b.Year, int(b.Month), b.Day) - unixtime.DayNumber(a.Year, int(a.Month), a.Day)
	if n < 0 {
		return 0
	}
	return int(n) + 1
}
