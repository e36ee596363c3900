// Copyright 2026 Peter Edge
//
// All rights reserved.

package caldiffcmd

import (
	"testing"
	"time"

	"github.com/bufdev/caldiff/internal/caldiff/caldiffconfig"
	"github.com/bufdev/caldiff/internal/pkg/caldate"
	"github.com/bufdev/caldiff/internal/pkg/cliio"
	"github.com/stretchr/testify/require"
)

func TestResolveFormat(t *testing.T) {
	t.Parallel()
	config := &caldiffconfig.Config{Format: cliio.FormatCSV}
	format, err := ResolveFormat("", config)
	require.NoError(t, err)
	require.Equal(t, cliio.FormatCSV, format)
	format, err = ResolveFormat("JSON", config)
	require.NoError(t, err)
	require.Equal(t, cliio.FormatJSON, format)
	_, err = ResolveFormat("xml", config)
	require.Error(t, err)
}

func TestResolveDate(t *testing.T) {
	t.Parallel()
	config := caldiffconfig.NewDefaultConfig()
	config.NamedDates["ides"] = caldate.New(-44, time.March, 15)

	date, err := ResolveDate(config, "@ides")
	require.NoError(t, err)
	require.Equal(t, caldate.New(-44, time.March, 15), date)

	date, err = ResolveDate(config, "1582-10-15")
	require.NoError(t, err)
	require.Equal(t, caldate.New(1582, time.October, 15), date)

	// Calendar errors keep their kind.
	_, err = ResolveDate(config, "1582-10-10")
	kind, ok := caldate.ErrorKindOf(err)
	require.True(t, ok)
	require.Equal(t, caldate.ErrorKindNonexistentDate, kind)

	_, err = ResolveDate(config, "@missing")
	require.Error(t, err)
	_, ok = caldate.ErrorKindOf(err)
	require.False(t, ok)

	_, err = ResolveDate(config, "not-a-date")
	require.Error(t, err)
}

func TestFormatYear(t *testing.T) {
	t.Parallel()
	require.Equal(t, "2021", FormatYear(2021))
	require.Equal(t, "44 BC", FormatYear(-44))
	require.Equal(t, "1 BC", FormatYear(-1))
}
