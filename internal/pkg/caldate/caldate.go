// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package caldate provides calendar dates on a hybrid Julian/Gregorian calendar.
//
// Dates before October 15, 1582 use the proleptic Julian calendar, dates from
// October 15, 1582 onward use the Gregorian calendar. There is no year 0: year -1
// is 1 BC and is immediately followed by year 1 (AD 1). October 5-14, 1582 never
// occurred and are invalid dates.
//
// All functions in this package are pure and safe for concurrent use.
package caldate

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date is a calendar date.
//
// A Date must be validated with Validate before it is used with DayOfYear.
// DaysBetween validates its arguments itself.
type Date struct {
	// Year is the year. Negative years are BC, 0 is invalid.
	// Valid years are within [MinYear, MaxYear].
	Year int
	// Month is the month of the year.
	Month time.Month
	// Day is the day of the month.
	Day int
}

// New returns a new Date. The Date is not validated.
func New(year int, month time.Month, day int) Date {
	return Date{
		Year:  year,
		Month: month,
		Day:   day,
	}
}

// Validate returns a non-nil *Error if the date does not exist on the calendar.
func (d Date) Validate() error {
	if err := validateYear(d); err != nil {
		return err
	}
	if !isValidMonth(d.Month) {
		return newError(ErrorKindInvalidMonth, d)
	}
	if isInReformGap(d.Year, d.Month, d.Day) {
		return newError(ErrorKindNonexistentDate, d)
	}
	if d.Day < 1 || d.Day > DaysInMonth(d.Year, d.Month) {
		return newError(ErrorKindInvalidDay, d)
	}
	return nil
}

// IsValid returns true if Validate returns nil.
func (d Date) IsValid() bool {
	return d.Validate() == nil
}

// DayOfYear returns the 1-based ordinal of the date within its year.
//
// The date must be valid. In 1582, October 15 is day 278 and December 31 is day 355.
// Returns 0 if the month is invalid.
func (d Date) DayOfYear() int {
	if !isValidMonth(d.Month) {
		return 0
	}
	return dayOfYear(d.Year, d.Month, d.Day)
}

// IsBC returns true if the date is in the BC era.
func (d Date) IsBC() bool {
	return d.Year < 0
}

// String returns the date in the form "March 15, 44 BC" or "July 22, 2021".
//
// Dates with an invalid month are rendered as "13/1/2021".
func (d Date) String() string {
	monthName, err := MonthName(d.Month)
	if err != nil {
		return fmt.Sprintf("%d/%d/%d", int(d.Month), d.Day, d.Year)
	}
	if d.IsBC() {
		return fmt.Sprintf("%s %d, %d BC", monthName, d.Day, -d.Year)
	}
	return fmt.Sprintf("%s %d, %d", monthName, d.Day, d.Year)
}

// ISOString returns the date in the form "2021-07-22", or "-0044-03-15" for BC dates.
//
// The result is accepted by ParseDate.
func (d Date) ISOString() string {
	sign := ""
	year := d.Year
	if year < 0 {
		sign = "-"
		year = -year
	}
	return fmt.Sprintf("%s%04d-%02d-%02d", sign, year, int(d.Month), d.Day)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.ISOString()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// The parsed date is validated.
func (d *Date) UnmarshalText(data []byte) error {
	date, err := ParseDate(string(data))
	if err != nil {
		return err
	}
	if err := date.Validate(); err != nil {
		return err
	}
	*d = date
	return nil
}

// Compare returns -1 if d is before other, +1 if d is after other, and 0 if they are equal.
//
// Dates are compared field by field, the dates are not validated.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return cmp.Compare(d.Year, other.Year)
	case d.Month != other.Month:
		return cmp.Compare(d.Month, other.Month)
	default:
		return cmp.Compare(d.Day, other.Day)
	}
}

// ParseDate parses a date of the form "Y-MM-DD" with an optional leading "-" for BC years.
//
// Only the syntax is checked: the returned Date is not validated.
func ParseDate(s string) (Date, error) {
	value := strings.TrimSpace(s)
	negative := strings.HasPrefix(value, "-")
	if negative {
		value = value[1:]
	}
	parts := strings.Split(value, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date %q, expected format Y-MM-DD", s)
	}
	year, err := parseDigits(parts[0], 0)
	if err != nil {
		return Date{}, fmt.Errorf("invalid year in date %q: %w", s, err)
	}
	month, err := parseDigits(parts[1], 2)
	if err != nil {
		return Date{}, fmt.Errorf("invalid month in date %q: %w", s, err)
	}
	day, err := parseDigits(parts[2], 2)
	if err != nil {
		return Date{}, fmt.Errorf("invalid day in date %q: %w", s, err)
	}
	if negative {
		year = -year
	}
	return New(year, time.Month(month), day), nil
}

// parseDigits parses a non-empty unsigned decimal string of at most maxLen digits.
//
// A maxLen of 0 means no limit.
func parseDigits(s string, maxLen int) (int, error) {
	if s == "" {
		return 0, errors.New("empty value")
	}
	if maxLen > 0 && len(s) > maxLen {
		return 0, fmt.Errorf("%q has more than %d digits", s, maxLen)
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%q is not a number", s)
		}
	}
	return strconv.Atoi(s)
}
