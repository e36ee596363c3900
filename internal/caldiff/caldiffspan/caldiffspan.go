// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package caldiffspan computes day counts between many dates.
//
// A Span is the signed number of days between two dates. Spans can be computed
// for pairs read from a CSV file, and a timeline can be computed for a list of
// dates as the days between each consecutive pair.
package caldiffspan

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bufdev/caldiff/internal/pkg/caldate"
	"golang.org/x/sync/errgroup"
)

// Pair is a pair of dates to compute a Span for.
//
// The dates are not validated until the Span is computed.
type Pair struct {
	// Label is an optional label for the pair.
	Label string
	// First is the date to count from.
	First caldate.Date
	// Second is the date to count to.
	Second caldate.Date
	// Line is the 1-based line number the pair was read from, or 0 if the pair was not read from a file.
	Line int
}

// Span is the signed number of days between two dates.
type Span struct {
	Label  string       `json:"label,omitempty"`
	First  caldate.Date `json:"first"`
	Second caldate.Date `json:"second"`
	// Days is positive if Second is later than First.
	Days int `json:"days"`
}

// TimelineEntry is a date within a timeline.
type TimelineEntry struct {
	Date caldate.Date `json:"date"`
	// Days is the number of days since the previous entry, 0 for the first entry.
	Days int `json:"days"`
	// Total is the number of days since the first entry.
	Total int `json:"total"`
}

// NewSpan computes the Span between first and second.
func NewSpan(label string, first caldate.Date, second caldate.Date) (Span, error) {
	days, err := caldate.DaysBetween(first, second)
	if err != nil {
		return Span{}, err
	}
	return Span{
		Label:  label,
		First:  first,
		Second: second,
		Days:   days,
	}, nil
}

// ComputeSpans computes the Spans for all pairs concurrently.
//
// At most parallelism Spans are computed at once, a parallelism of 0 or less means
// no limit. The returned Spans are in the same order as the pairs. The first invalid
// pair stops the computation and its error is returned.
func ComputeSpans(ctx context.Context, pairs []Pair, parallelism int) ([]Span, error) {
	spans := make([]Span, len(pairs))
	eg, ctx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		eg.SetLimit(parallelism)
	}
	for i, pair := range pairs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			span, err := NewSpan(pair.Label, pair.First, pair.Second)
			if err != nil {
				return pairError(i, pair, err)
			}
			spans[i] = span
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return spans, nil
}

// Timeline computes the days between each consecutive pair of dates.
//
// The first entry has zero days. Dates do not need to be in chronological order,
// moving backwards in time results in negative days.
func Timeline(dates []caldate.Date) ([]TimelineEntry, error) {
	entries := make([]TimelineEntry, 0, len(dates))
	total := 0
	for i, date := range dates {
		if i == 0 {
			if err := date.Validate(); err != nil {
				return nil, fmt.Errorf("date 1: %w", err)
			}
			entries = append(entries, TimelineEntry{Date: date})
			continue
		}
		days, err := caldate.DaysBetween(dates[i-1], date)
		if err != nil {
			return nil, fmt.Errorf("date %d: %w", i+1, err)
		}
		total += days
		entries = append(entries, TimelineEntry{
			Date:  date,
			Days:  days,
			Total: total,
		})
	}
	return entries, nil
}

// FormatSpan returns the span in the form "October 1, 1977 - July 22, 2021: 16000 days".
func FormatSpan(span Span) string {
	return fmt.Sprintf("%s - %s: %d days", span.First, span.Second, span.Days)
}

// SpanHeaders returns the column headers for span output.
func SpanHeaders() []string {
	return []string{"LABEL", "FIRST", "SECOND", "DAYS"}
}

// SpanToRow converts a Span to a table or CSV row.
func SpanToRow(span Span) []string {
	return []string{
		span.Label,
		span.First.String(),
		span.Second.String(),
		strconv.Itoa(span.Days),
	}
}

// TimelineHeaders returns the column headers for timeline output.
func TimelineHeaders() []string {
	return []string{"DATE", "DAYS", "TOTAL"}
}

// TimelineEntryToRow converts a TimelineEntry to a table or CSV row.
func TimelineEntryToRow(entry TimelineEntry) []string {
	return []string{
		entry.Date.String(),
		strconv.Itoa(entry.Days),
		strconv.Itoa(entry.Total),
	}
}

// TimelineTotalsRow returns the totals row for a timeline table.
func TimelineTotalsRow(entries []TimelineEntry) []string {
	total := 0
	if len(entries) > 0 {
		total = entries[len(entries)-1].Total
	}
	return []string{"TOTAL", "", strconv.Itoa(total)}
}

func pairError(index int, pair Pair, err error) error {
	if pair.Line > 0 {
		return fmt.Errorf("line %d: %w", pair.Line, err)
	}
	return fmt.Errorf("pair %d: %w", index+1, err)
}
