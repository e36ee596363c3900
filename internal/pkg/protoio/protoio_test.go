// Copyright 2026 Peter Edge
//
// All rights reserved.

package protoio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	datepb "google.golang.org/genproto/googleapis/type/date"
	"google.golang.org/protobuf/proto"
)

func TestMessagesJSONRoundTrip(t *testing.T) {
	t.Parallel()
	messages := []*datepb.Date{
		{Year: 1977, Month: 10, Day: 1},
		{Year: 2021, Month: 7, Day: 22},
	}
	filePath := filepath.Join(t.TempDir(), "dates.json")
	require.NoError(t, WriteMessagesJSON(filePath, messages))
	got, err := ReadMessagesJSON(filePath, func() *datepb.Date { return &datepb.Date{} })
	require.NoError(t, err)
	require.Len(t, got, len(messages))
	for i := range messages {
		require.True(t, proto.Equal(messages[i], got[i]), "message %d", i)
	}
}

func TestEncodeMessagesJSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, EncodeMessagesJSON(&buf, []*datepb.Date{
		{Year: 1977, Month: 10, Day: 1},
		{Year: 2021, Month: 7, Day: 22},
	}))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "1977")
	require.Contains(t, lines[1], "2021")
}

func TestDecodeMessagesJSON(t *testing.T) {
	t.Parallel()
	input := `{"year": 1977, "month": 10, "day": 1}

{"year": 2021, "month": 7, "day": 22}
`
	got, err := DecodeMessagesJSON(strings.NewReader(input), func() *datepb.Date { return &datepb.Date{} })
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, int32(2021), got[1].GetYear())

	_, err = DecodeMessagesJSON(
		strings.NewReader("{\"year\": 1977}\n{\"era\": 1}\n"),
		func() *datepb.Date { return &datepb.Date{} },
	)
	require.ErrorContains(t, err, "line 2")
}

func TestReadMessagesJSONErrors(t *testing.T) {
	t.Parallel()
	dirPath := t.TempDir()
	newDate := func() *datepb.Date { return &datepb.Date{} }

	_, err := ReadMessagesJSON(filepath.Join(dirPath, "missing.json"), newDate)
	require.ErrorIs(t, err, os.ErrNotExist)

	filePath := filepath.Join(dirPath, "dates.json")
	require.NoError(t, os.WriteFile(filePath, []byte("{\"year\": 1977}\nnot json\n"), 0o644))
	got, err := ReadMessagesJSON(filePath, newDate)
	require.ErrorContains(t, err, "line 2")
	require.Nil(t, got)

	// The file is closed after a successful read and can be removed.
	require.NoError(t, os.WriteFile(filePath, []byte("{\"year\": 1977}\n"), 0o644))
	got, err = ReadMessagesJSON(filePath, newDate)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NoError(t, os.Remove(filePath))
}
