// Copyright 2026 Peter Edge
//
// All rights reserved.

package caldate

import (
	"fmt"
	"math"
	"time"
)

const (
	// GregorianYear is the year the Gregorian calendar replaced the Julian calendar.
	GregorianYear = 1582
	// reformMonth is the month of GregorianYear in which the reform days were dropped.
	reformMonth = time.October
	// reformFirstDroppedDay is the first day of reformMonth that never occurred.
	reformFirstDroppedDay = 5
	// reformLastDroppedDay is the last day of reformMonth that never occurred.
	reformLastDroppedDay = 14
	// reformDroppedDays is the number of days dropped by the reform.
	reformDroppedDays = reformLastDroppedDay - reformFirstDroppedDay + 1
	// reformYearDays is the length of GregorianYear.
	reformYearDays = 365 - reformDroppedDays
	// daysBeforeGregorianYear is the number of days from January 1, 1 to January 1, GregorianYear.
	daysBeforeGregorianYear = 365*(GregorianYear-1) + (GregorianYear-1)/4

	// MinYear is the earliest supported year.
	MinYear = math.MinInt32
	// MaxYear is the latest supported year.
	MaxYear = math.MaxInt32
)

var (
	// daysInMonth is the number of days in each month of a non-leap year.
	daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	// daysBeforeMonth is the number of days in a non-leap year before the first of each month.
	daysBeforeMonth = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}
	monthNames      = [12]string{
		"January",
		"February",
		"March",
		"April",
		"May",
		"June",
		"July",
		"August",
		"September",
		"October",
		"November",
		"December",
	}
)

// IsLeap returns true if year is a leap year.
//
// Years before GregorianYear follow the proleptic Julian rule (every fourth year),
// years from GregorianYear onward follow the Gregorian rule. There is no year 0, so
// negative years are shifted by one first: 1 BC (year -1) is a leap year.
func IsLeap(year int) bool {
	if year < 0 {
		year++
	}
	if year < GregorianYear {
		return year%4 == 0
	}
	return year%400 == 0 || (year%4 == 0 && year%100 != 0)
}

// ValidateYear returns a non-nil *Error if the year does not exist or is
// outside [MinYear, MaxYear].
func ValidateYear(year int) error {
	return validateYear(New(year, time.January, 1))
}

// YearDays returns the number of days in the given year.
//
// Year 0 does not exist and has 0 days, GregorianYear has 355 days.
func YearDays(year int) int {
	switch {
	case year == 0:
		return 0
	case year == GregorianYear:
		return reformYearDays
	case IsLeap(year):
		return 366
	default:
		return 365
	}
}

// DaysInMonth returns the number of valid days in the given month of the given year,
// or 0 if the month is invalid.
//
// October of GregorianYear still reports 31, the dropped days are rejected by Validate.
func DaysInMonth(year int, month time.Month) int {
	if !isValidMonth(month) {
		return 0
	}
	days := daysInMonth[month-1]
	if month == time.February && IsLeap(year) {
		days++
	}
	return days
}

// MonthName returns the English name of the month.
func MonthName(month time.Month) (string, error) {
	if !isValidMonth(month) {
		return "", fmt.Errorf("invalid month %d", month)
	}
	return monthNames[month-1], nil
}

// DaysBetween returns the signed number of days from first to second.
//
// The result is positive if second is later than first. Both dates are validated,
// first before second, and the first validation error is returned.
func DaysBetween(first Date, second Date) (int, error) {
	if err := first.Validate(); err != nil {
		return 0, err
	}
	if err := second.Validate(); err != nil {
		return 0, err
	}
	yearSum := daysBeforeYear(second.Year) - daysBeforeYear(first.Year)
	return yearSum - first.DayOfYear() + second.DayOfYear(), nil
}

// daysBeforeYear returns the signed number of days from January 1, 1 to
// January 1 of the given year.
//
// This is the sum of YearDays over [1, year) for AD years and the negated sum
// over [year, -1] for BC years. Year 0 has no days and returns 0.
func daysBeforeYear(year int) int {
	switch {
	case year < 0:
		// Julian leap years in [year, -1] are those where year+1 is divisible by 4,
		// which includes 1 BC.
		years := -year
		return -(365*years + (years-1)/4 + 1)
	case year == 0:
		return 0
	case year <= GregorianYear:
		years := year - 1
		return 365*years + years/4
	default:
		return daysBeforeGregorianYear +
			reformYearDays +
			365*(year-GregorianYear-1) +
			gregorianLeapYears(year-1) -
			gregorianLeapYears(GregorianYear)
	}
}

// gregorianLeapYears returns the number of Gregorian leap years in [1, year].
func gregorianLeapYears(year int) int {
	return year/4 - year/100 + year/400
}

func validateYear(date Date) error {
	switch {
	case date.Year == 0:
		return newError(ErrorKindYearZero, date)
	case date.Year < MinYear || date.Year > MaxYear:
		return newError(ErrorKindYearOutOfRange, date)
	default:
		return nil
	}
}

// dayOfYear returns the 1-based ordinal of the date within its year.
//
// The date must be valid.
func dayOfYear(year int, month time.Month, day int) int {
	days := daysBeforeMonth[month-1] + day
	if month > time.February && IsLeap(year) {
		days++
	}
	if isAfterReform(year, month, day) {
		days -= reformDroppedDays
	}
	return days
}

// isInReformGap returns true for the days of GregorianYear that never occurred.
func isInReformGap(year int, month time.Month, day int) bool {
	return year == GregorianYear &&
		month == reformMonth &&
		day >= reformFirstDroppedDay &&
		day <= reformLastDroppedDay
}

// isAfterReform returns true for the days of GregorianYear after the dropped days.
func isAfterReform(year int, month time.Month, day int) bool {
	if year != GregorianYear {
		return false
	}
	return month > reformMonth || (month == reformMonth && day > reformLastDroppedDay)
}

func isValidMonth(month time.Month) bool {
	return month >= time.January && month <= time.December
}
