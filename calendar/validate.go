package calendar

import (
	"errors"
	"fmt"
)

// ErrRange is matched by errors.Is for every *RangeError.
var ErrRange = errors.New("date out of range")

// RangeError reports a date whose fields parsed as integers but do not
// name a day of the calendar, such as 31 April or month 13.
type RangeError struct {
	Date  Date
	Field string // "month" or "day"
	Max   int
}

func (e *RangeError) Error() string {
	if e.Field == "month" {
		return fmt.Sprintf("invalid month %d: must be between 1 and 12", int(e.Date.Month))
	}
	return fmt.Sprintf("invalid day %d for %04d-%02d: must be between 1 and %d", e.Date.Day, e.Date.Year, int(e.Date.Month), e.Max)
}

func (e *RangeError) Is(target error) bool { return target == ErrRange }

// Check returns a *RangeError if d is not a real calendar date.
func Check(d Date) error {
	if d.Month < 1 || d.Month > 12 {
		return &RangeError{Date: d, Field: "month", Max: 12}
	}
	if last := DaysInMonth(d.Month, d.Year); d.Day < 1 || d.Day > last {
		return &RangeError{Date: d, Field: "day", Max: last}
	}
	return nil
}

// Validate parses s and checks that it is a real calendar date.
// The error is either a *FormatError or a *RangeError.
func Validate(s string) (Date, error) {
	d, err := Parse(s)
	if err != nil {
		return Date{}, err
	}
	if err := Check(d); err != nil {
		return Date{}, err
	}
	return d, nil
}

// IsValid reports whether s is a DD/MM/YYYY or YYYY-MM-DD date that exists on the calendar.
func IsValid(s string) bool {
	_, err := Validate(s)
	return err == nil
}
