// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package caldatepb provides conversion functions between caldate.Date and the
// google.type.Date proto message.
package caldatepb

import (
	"errors"
	"fmt"
	"time"

	"github.com/bufdev/caldiff/internal/pkg/caldate"
	datepb "google.golang.org/genproto/googleapis/type/date"
)

const (
	// minProtoYear is the smallest year google.type.Date can represent.
	minProtoYear = 1
	// maxProtoYear is the largest year google.type.Date can represent.
	maxProtoYear = 9999
)

// NewProtoDate creates a new validated proto Date from year, month, and day.
//
// google.type.Date cannot represent BC years, so only years 1-9999 are accepted.
func NewProtoDate(year int, month time.Month, day int) (*datepb.Date, error) {
	return DateToProto(caldate.New(year, month, day))
}

// DateToProto converts a caldate.Date to a validated proto Date.
func DateToProto(date caldate.Date) (*datepb.Date, error) {
	if err := date.Validate(); err != nil {
		return nil, err
	}
	if date.Year < minProtoYear || date.Year > maxProtoYear {
		return nil, fmt.Errorf("%s: year %d cannot be represented as a google.type.Date, must be between %d and %d", date, date.Year, minProtoYear, maxProtoYear)
	}
	return &datepb.Date{
		Year:  int32(date.Year),
		Month: int32(date.Month),
		Day:   int32(date.Day),
	}, nil
}

// ProtoToDate converts a proto Date to a validated caldate.Date.
//
// A proto Date with a zero year, which google.type.Date uses for dates without
// a year, fails validation as year 0 does not exist.
func ProtoToDate(protoDate *datepb.Date) (caldate.Date, error) {
	if protoDate == nil {
		return caldate.Date{}, errors.New("nil date")
	}
	date := caldate.New(
		int(protoDate.GetYear()),
		time.Month(protoDate.GetMonth()),
		int(protoDate.GetDay()),
	)
	if err := date.Validate(); err != nil {
		return caldate.Date{}, err
	}
	return date, nil
}

// ProtosToDates converts proto Dates to validated caldate.Dates.
//
// The error names the index of the first invalid proto Date.
func ProtosToDates(protoDates []*datepb.Date) ([]caldate.Date, error) {
	dates := make([]caldate.Date, 0, len(protoDates))
	for i, protoDate := range protoDates {
		date, err := ProtoToDate(protoDate)
		if err != nil {
			return nil, fmt.Errorf("date %d: %w", i, err)
		}
		dates = append(dates, date)
	}
	return dates, nil
}
