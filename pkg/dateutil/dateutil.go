package dateutil

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns the number of days in a given year
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the number of days in a given month of a given year
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.April, time.June, time.September, time.November:
		return 30
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

// IsLastDayOfMonth checks if a date is the final calendar day of its month
func IsLastDayOfMonth(d civil.Date) bool {
	return d.Day == DaysInMonth(d.Year, d.Month)
}

// MonthsBetween calculates the number of whole calendar months between two
// dates, ignoring the day of month
func MonthsBetween(from, to civil.Date) int {
	return (to.Year-from.Year)*12 + int(to.Month) - int(from.Month)
}

// DaysBetween calculates the signed number of days from one date to another
func DaysBetween(from, to civil.Date) int {
	return to.DaysSince(from)
}

// MustParseDate parses a YYYY-MM-DD date and panics on failure. Intended for
// tests and hard-coded fixtures.
func MustParseDate(s string) civil.Date {
	d, err := civil.ParseDate(s)
	if err != nil {
		panic(fmt.Sprintf("dateutil: cannot parse date %q: %v", s, err))
	}
	return d
}
