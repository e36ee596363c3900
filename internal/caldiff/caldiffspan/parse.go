// Copyright 2026 Peter Edge
//
// All rights reserved.

package caldiffspan

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bufdev/caldiff/internal/pkg/caldate"
	"github.com/bufdev/caldiff/internal/standard/xos"
)

// headerFirstField is the first field of an optional header record.
const headerFirstField = "first"

// ParsePairsFile parses a CSV file of date pairs.
//
// See ParsePairs for the file format.
func ParsePairsFile(filePath string) (_ []Pair, retErr error) {
	file, err := xos.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer func() {
		retErr = errors.Join(retErr, file.Close())
	}()
	pairs, err := ParsePairs(file)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filePath, err)
	}
	return pairs, nil
}

// ParsePairs parses CSV records of the form "first,second[,label]".
//
// Dates are in Y-MM-DD form. A header record starting with "first" is skipped,
// as are blank lines and lines starting with #. Dates are parsed but not validated.
func ParsePairs(reader io.Reader) ([]Pair, error) {
	csvReader := csv.NewReader(reader)
	// The label column is optional.
	csvReader.FieldsPerRecord = -1
	// Don't treat leading spaces as significant.
	csvReader.TrimLeadingSpace = true
	csvReader.Comment = '#'

	var pairs []Pair
	firstRecord := true
	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV: %w", err)
		}
		line, _ := csvReader.FieldPos(0)
		isHeader := firstRecord && strings.EqualFold(strings.TrimSpace(record[0]), headerFirstField)
		firstRecord = false
		if isHeader {
			continue
		}
		pair, err := parsePair(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		pair.Line = line
		pairs = append(pairs, pair)
	}
	return pairs, nil
}

func parsePair(record []string) (Pair, error) {
	if len(record) < 2 || len(record) > 3 {
		return Pair{}, fmt.Errorf("expected 2 or 3 fields, got %d", len(record))
	}
	first, err := caldate.ParseDate(record[0])
	if err != nil {
		return Pair{}, err
	}
	second, err := caldate.ParseDate(record[1])
	if err != nil {
		return Pair{}, err
	}
	var label string
	if len(record) == 3 {
		label = strings.TrimSpace(record[2])
	}
	return Pair{
		Label:  label,
		First:  first,
		Second: second,
	}, nil
}
