package calendar

import "time"

// Next returns the day after d, rolling over into the next month and year.
func Next(d Date) Date {
	d.Day++
	if d.Day > DaysInMonth(d.Month, d.Year) {
		d.Day = 1
		d.Month++
		if d.Month > time.December {
			d.Month = time.January
			d.Year++
		}
	}
	return d
}

// Previous returns the day before d, rolling back into the previous month and year.
func Previous(d Date) Date {
	d.Day--
	if d.Day < 1 {
		d.Month--
		if d.Month < time.January {
			d.Month = time.December
			d.Year--
		}
		d.Day = DaysInMonth(d.Month, d.Year)
	}
	return d
}
