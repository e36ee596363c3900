// Copyright 2026 Peter Edge
//
// All rights reserved.

package caldate

import (
	"errors"
	"fmt"
)

// ErrorKind is the kind of a date validation failure.
type ErrorKind int

const (
	// ErrorKindYearZero is returned for dates in year 0, which does not exist.
	ErrorKindYearZero ErrorKind = iota + 1
	// ErrorKindInvalidMonth is returned for months outside 1-12.
	ErrorKindInvalidMonth
	// ErrorKindNonexistentDate is returned for the days dropped by the Gregorian reform.
	ErrorKindNonexistentDate
	// ErrorKindInvalidDay is returned for days outside the valid range of their month.
	ErrorKindInvalidDay
	// ErrorKindYearOutOfRange is returned for years outside [MinYear, MaxYear].
	ErrorKindYearOutOfRange
)

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindYearZero:
		return "year_zero"
	case ErrorKindInvalidMonth:
		return "invalid_month"
	case ErrorKindNonexistentDate:
		return "nonexistent_date"
	case ErrorKindInvalidDay:
		return "invalid_day"
	case ErrorKindYearOutOfRange:
		return "year_out_of_range"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is a date validation error.
type Error struct {
	// Kind is the kind of validation failure.
	Kind ErrorKind
	// Date is the date that failed validation.
	Date Date
}

// Error implements error.
func (e *Error) Error() string {
	switch e.Kind {
	case ErrorKindYearZero:
		return "year 0 does not exist"
	case ErrorKindInvalidMonth:
		return fmt.Sprintf("invalid month %d", int(e.Date.Month))
	case ErrorKindNonexistentDate:
		return fmt.Sprintf("%s does not exist", e.Date)
	case ErrorKindInvalidDay:
		return fmt.Sprintf("%s: invalid day", e.Date)
	case ErrorKindYearOutOfRange:
		return fmt.Sprintf("year %d is out of range, must be between %d and %d", e.Date.Year, MinYear, MaxYear)
	default:
		return fmt.Sprintf("%s: invalid date", e.Date)
	}
}

// Is returns true if target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	targetError, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == targetError.Kind
}

// ErrorKindOf returns the ErrorKind of the first *Error in err's chain.
//
// Returns false if err does not wrap an *Error.
func ErrorKindOf(err error) (ErrorKind, bool) {
	var dateError *Error
	if errors.As(err, &dateError) {
		return dateError.Kind, true
	}
	return 0, false
}

func newError(kind ErrorKind, date Date) *Error {
	return &Error{
		Kind: kind,
		Date: date,
	}
}
