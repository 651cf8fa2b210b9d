// Package unixtime numbers the days of the proleptic Gregorian calendar relative to the Unix epoch.
package unixtime

// DayNumber returns the number of days from 1970-01-01 to the given date, negative for earlier dates.
// It respects leap years and assumes the proleptic Gregorian calendar. Month must be in the range 1-12
// and day must be at least 1.
// This implementation follows the day counting of the Go standard library's time package but does not
// go through time.Time, which would add a time zone to what is a plain calendar date.
func DayNumber(year int, month int, day int) int64 {
	d := daysSinceEpoch(year) + daysBeforeMonth[month-1] + uint64(day-1)
	if month > 2 && isLeapYear(year) {
		d++ // +leap day
	}
	return int64(d - unixEpochDays)
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var daysBeforeMonth = [12]uint64{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// unixEpochDays is the day number of 1970-01-01 counted from the absolute epoch.
var unixEpochDays = daysSinceEpoch(1970)

// The constants were copied from time.go in the Go standard library's time package.
const (
	daysPer400Years = 365*400 + 97
	daysPer100Years = 365*100 + 24
	daysPer4Years   = 365*4 + 1

	absoluteZeroYear = -292277022399
)

// daysSinceEpoch takes a year and returns the number of days from
// the absolute epoch to the start of that year.
// This is basically (year - zeroYear) * 365, but accounting for leap days.
//
// This function was copied from time.go in the Go standard library time package.
func daysSinceEpoch(year int) uint64 {
	y := uint64(int64(year) - absoluteZeroYear)

	// Add in days from 400-year cycles.
	n := y / 400
	y -= 400 * n
	d := daysPer400Years * n

	// Add in 100-year cycles.
	n = y / 100
	y -= 100 * n
	d += daysPer100Years * n

	// Add in 4-year cycles.
	n = y / 4
	y -= 4 * n
	d += daysPer4Years * n

	// Add in non-leap years.
	n = y
	d += 365 * n

	return d
}
