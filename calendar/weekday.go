package calendar

import "time"

// monthOffsets holds the per-month term of the day of week congruence, January first.
var monthOffsets = [12]int{0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}

// WeekdayOf returns the day of the week for a valid date.
// The result for an invalid date is unspecified.
func WeekdayOf(d Date) time.Weekday {
	year := d.Year
	if d.Month < time.March {
		year--
	}
	n := (year + floorDiv(year, 4) - floorDiv(year, 100) + floorDiv(year, 400) + monthOffsets[((int(d.Month)-1)%12+12)%12] + d.Day) % 7
	if n < 0 {
		n += 7
	}
	return time.Weekday(n)
}

// floorDiv divides rounding towards negative infinity, so years before 1 are counted correctly.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// IsWeekend reports whether w is a Saturday or a Sunday.
func IsWeekend(w time.Weekday) bool {
	return w == time.Saturday || w == time.Sunday
}
