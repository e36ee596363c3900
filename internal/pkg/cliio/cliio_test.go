// Copyright 2026 Peter Edge
//
// All rights reserved.

package cliio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()
	for _, format := range Formats() {
		got, err := ParseFormat(string(format))
		require.NoError(t, err)
		require.Equal(t, format, got)
	}
	got, err := ParseFormat("JSON")
	require.NoError(t, err)
	require.Equal(t, FormatJSON, got)
	_, err = ParseFormat("xml")
	require.Error(t, err)
}

func TestWriteRecords(t *testing.T) {
	t.Parallel()
	type object struct {
		Name string `json:"name"`
		Days int    `json:"days"`
	}
	headers := []string{"NAME", "DAYS"}
	rows := [][]string{{"a", "1"}, {"bb", "366"}}
	objects := []object{{Name: "a", Days: 1}, {Name: "bb", Days: 366}}

	var buf bytes.Buffer
	require.NoError(t, WriteRecords(&buf, FormatCSV, headers, rows, objects))
	require.Equal(t, "NAME,DAYS\na,1\nbb,366\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteRecords(&buf, FormatJSON, headers, rows, objects))
	require.Equal(t, "{\"name\":\"a\",\"days\":1}\n{\"name\":\"bb\",\"days\":366}\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteRecords(&buf, FormatTable, headers, rows, objects))
	require.Equal(t, "NAME  DAYS\na     1\nbb    366\n", buf.String())

	require.Error(t, WriteRecords(&buf, Format("xml"), headers, rows, objects))
}

func TestWriteTableWithTotals(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, WriteTableWithTotals(
		&buf,
		[]string{"DATE", "DAYS"},
		[][]string{{"x", "1"}},
		[]string{"TOTAL", "1"},
	))
	require.Equal(t, "DATE   DAYS\nx      1\n       \nTOTAL  1\n", buf.String())
}
