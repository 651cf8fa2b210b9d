// Package weekend counts the Saturdays and Sundays in a range of calendar dates.
package weekend

import (
	"fmt"

	"github.com/ngrash/weekenddays/calendar"
)

// Order returns a and b sorted chronologically. swapped is true
// if a was not before b. Both dates must be valid.
func Order(a, b calendar.Date) (start, end calendar.Date, swapped bool) {
	if calendar.Compare(a, b) < 0 {
		return a, b, false
	}
	return b, a, true
}

// Count returns the number of weekend days in the inclusive range [start, end].
// Both dates must be valid and start must not be after end. The range is walked
// one day at a time, so the running time grows with the length of the range.
func Count(start, end calendar.Date) int {
	count := 0
	for d := start; ; d = calendar.Next(d) {
		if calendar.IsWeekend(calendar.WeekdayOf(d)) {
			count++
		}
		if d == end {
			return count
		}
	}
}

// Summary is the result of counting the weekend days between two dates.
type Summary struct {
	Start       calendar.Date
	End         calendar.Date
	Days        int // days in the range, both ends included
	WeekendDays int
	Swapped     bool // the dates were given latest first
}

// Summarize orders a and b and counts the weekend days between them.
func Summarize(a, b calendar.Date) Summary {
	start, end, swapped := Order(a, b)
	return Summary{
		Start:       start,
		End:         end,
		Swapped:     swapped,
		Days:        calendar.DaysBetween(start, end),
		WeekendDays: Count(start, end),
	}
}

// String returns the summary as a single line of text.
func (s Summary) String() string {
	return fmt.Sprintf("The period between %s and %s includes %d weekend days.", s.Start, s.End, s.WeekendDays)
}
