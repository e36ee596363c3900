// Copyright 2026 Peter Edge
//
// All rights reserved.

package caldatepb

import (
	"testing"
	"time"

	"github.com/bufdev/caldiff/internal/pkg/caldate"
	"github.com/stretchr/testify/require"
	datepb "google.golang.org/genproto/googleapis/type/date"
	"google.golang.org/protobuf/proto"
)

func TestBasic(t *testing.T) {
	t.Parallel()
	// Invalid date: month 13, day 60 should fail validation.
	_, err := NewProtoDate(2005, time.Month(13), 60)
	require.Error(t, err)
	// BC years cannot be represented.
	_, err = NewProtoDate(-44, time.March, 15)
	require.Error(t, err)
	_, err = NewProtoDate(10000, time.January, 1)
	require.Error(t, err)
	// The reform days never occurred.
	_, err = NewProtoDate(1582, time.October, 10)
	require.ErrorIs(t, err, &caldate.Error{Kind: caldate.ErrorKindNonexistentDate})
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	for _, date := range []caldate.Date{
		caldate.New(1, time.January, 1),
		caldate.New(1582, time.October, 15),
		caldate.New(2000, time.February, 29),
		caldate.New(9999, time.December, 31),
	} {
		protoDate, err := DateToProto(date)
		require.NoError(t, err)
		require.True(t, proto.Equal(
			&datepb.Date{Year: int32(date.Year), Month: int32(date.Month), Day: int32(date.Day)},
			protoDate,
		))
		got, err := ProtoToDate(protoDate)
		require.NoError(t, err)
		require.Equal(t, date, got)
	}
}

func TestProtoToDateInvalid(t *testing.T) {
	t.Parallel()
	_, err := ProtoToDate(nil)
	require.Error(t, err)
	// A zero year means "no year" to google.type.Date.
	_, err = ProtoToDate(&datepb.Date{Year: 0, Month: 7, Day: 4})
	require.ErrorIs(t, err, &caldate.Error{Kind: caldate.ErrorKindYearZero})
	_, err = ProtoToDate(&datepb.Date{Year: 1979, Month: 2, Day: 29})
	require.ErrorIs(t, err, &caldate.Error{Kind: caldate.ErrorKindInvalidDay})
}

func TestProtosToDates(t *testing.T) {
	t.Parallel()
	dates, err := ProtosToDates([]*datepb.Date{
		{Year: 1977, Month: 10, Day: 1},
		{Year: 2021, Month: 7, Day: 22},
	})
	require.NoError(t, err)
	require.Equal(t, []caldate.Date{
		caldate.New(1977, time.October, 1),
		caldate.New(2021, time.July, 22),
	}, dates)
	_, err = ProtosToDates([]*datepb.Date{
		{Year: 1977, Month: 10, Day: 1},
		{Year: 2021, Month: 13, Day: 22},
	})
	require.ErrorContains(t, err, "date 1")
}
