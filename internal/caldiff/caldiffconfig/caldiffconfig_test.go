// Copyright 2026 Peter Edge
//
// All rights reserved.

package caldiffconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bufdev/caldiff/internal/pkg/caldate"
	"github.com/bufdev/caldiff/internal/pkg/cliio"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestInitConfig(t *testing.T) {
	t.Parallel()
	dirPath := filepath.Join(t.TempDir(), "caldiff")
	filePath, err := InitConfig(dirPath)
	require.NoError(t, err)
	require.Equal(t, ConfigFilePath(dirPath), filePath)
	// The template must be a valid configuration.
	config, err := ReadConfig(dirPath)
	require.NoError(t, err)
	require.Equal(t, cliio.FormatTable, config.Format)
	require.Equal(t, map[string]caldate.Date{
		"reform": caldate.New(1582, time.October, 15),
	}, config.NamedDates)
	require.NoError(t, ValidateConfigFile(filePath))
	// A second init must not overwrite the file.
	_, err = InitConfig(dirPath)
	require.Error(t, err)
}

func TestReadConfigMissing(t *testing.T) {
	t.Parallel()
	dirPath := t.TempDir()
	_, err := ReadConfig(dirPath)
	require.ErrorContains(t, err, "caldiff config init")
	config, err := ReadConfigOrDefault(dirPath)
	require.NoError(t, err)
	if diff := cmp.Diff(NewDefaultConfig(), config); diff != "" {
		t.Errorf("unexpected config (-want +got):\n%s", diff)
	}
}

func TestReadConfig(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		desc    string
		data    string
		want    *Config
		wantErr string
	}{
		{
			desc: "full",
			data: `version: v1
format: csv
dates:
  - name: ides
    date: -44-03-15
  - name: epoch
    date: 1970-01-01
`,
			want: &Config{
				Format: cliio.FormatCSV,
				NamedDates: map[string]caldate.Date{
					"ides":  caldate.New(-44, time.March, 15),
					"epoch": caldate.New(1970, time.January, 1),
				},
			},
		},
		{
			desc: "minimal",
			data: "version: v1\n",
			want: &Config{
				Format:     cliio.FormatTable,
				NamedDates: map[string]caldate.Date{},
			},
		},
		{
			desc:    "empty",
			data:    "",
			wantErr: "unsupported config version",
		},
		{
			desc:    "wrong version",
			data:    "version: v2\n",
			wantErr: "unsupported config version",
		},
		{
			desc:    "unknown field",
			data:    "version: v1\ncolor: blue\n",
			wantErr: "could not unmarshal as YAML",
		},
		{
			desc:    "unknown format",
			data:    "version: v1\nformat: xml\n",
			wantErr: "unknown format",
		},
		{
			desc:    "missing name",
			data:    "version: v1\ndates:\n  - date: 2000-01-01\n",
			wantErr: "date name is required",
		},
		{
			desc:    "prefixed name",
			data:    "version: v1\ndates:\n  - name: \"@x\"\n    date: 2000-01-01\n",
			wantErr: "must not start with",
		},
		{
			desc:    "duplicate name",
			data:    "version: v1\ndates:\n  - name: x\n    date: 2000-01-01\n  - name: x\n    date: 2001-01-01\n",
			wantErr: "duplicate date name",
		},
		{
			desc:    "nonexistent date",
			data:    "version: v1\ndates:\n  - name: x\n    date: 1582-10-10\n",
			wantErr: "October 10, 1582 does not exist",
		},
		{
			desc:    "missing date",
			data:    "version: v1\ndates:\n  - name: x\n",
			wantErr: `date "x": date is required`,
		},
		{
			desc:    "malformed date",
			data:    "version: v1\ndates:\n  - name: x\n    date: 2000/01/01\n",
			wantErr: "expected format Y-MM-DD",
		},
		{
			desc:    "year out of range",
			data:    "version: v1\ndates:\n  - name: x\n    date: 9223372036854775807-01-01\n",
			wantErr: "out of range",
		},
		{
			desc:    "year zero",
			data:    "version: v1\ndates:\n  - name: x\n    date: 0000-01-01\n",
			wantErr: "year 0 does not exist",
		},
	} {
		dirPath := t.TempDir()
		require.NoError(t, os.WriteFile(ConfigFilePath(dirPath), []byte(test.data), 0o644), test.desc)
		config, err := ReadConfig(dirPath)
		if test.wantErr != "" {
			require.ErrorContains(t, err, test.wantErr, test.desc)
			continue
		}
		require.NoError(t, err, test.desc)
		if diff := cmp.Diff(test.want, config); diff != "" {
			t.Errorf("%s: unexpected config (-want +got):\n%s", test.desc, diff)
		}
	}
}

func TestResolveDate(t *testing.T) {
	t.Parallel()
	config := &Config{
		Format: cliio.FormatTable,
		NamedDates: map[string]caldate.Date{
			"reform": caldate.New(1582, time.October, 15),
		},
	}
	date, err := config.ResolveDate("@reform")
	require.NoError(t, err)
	require.Equal(t, caldate.New(1582, time.October, 15), date)
	date, err = config.ResolveDate("-44-03-15")
	require.NoError(t, err)
	require.Equal(t, caldate.New(-44, time.March, 15), date)
	_, err = config.ResolveDate("@missing")
	require.ErrorContains(t, err, "unknown named date")
	_, err = config.ResolveDate("1979-02-29")
	require.ErrorIs(t, err, &caldate.Error{Kind: caldate.ErrorKindInvalidDay})
	_, err = config.ResolveDate("yesterday")
	require.Error(t, err)
}

func TestNewConfig(t *testing.T) {
	t.Parallel()
	config, err := NewConfig(ExternalConfig{
		Version: "v1",
		Dates: []ExternalDateConfig{
			{Name: "ides", Date: caldate.New(-44, time.March, 15)},
		},
	})
	require.NoError(t, err)
	require.Equal(t, caldate.New(-44, time.March, 15), config.NamedDates["ides"])

	// Dates built in code are validated as well as decoded ones.
	_, err = NewConfig(ExternalConfig{
		Version: "v1",
		Dates: []ExternalDateConfig{
			{Name: "gap", Date: caldate.New(1582, time.October, 10)},
		},
	})
	require.ErrorIs(t, err, &caldate.Error{Kind: caldate.ErrorKindNonexistentDate})
}

func TestDecodeDateErrorKind(t *testing.T) {
	t.Parallel()
	var externalConfig ExternalConfig
	err := unmarshalYAMLStrict(
		[]byte("version: v1\ndates:\n  - name: x\n    date: 1979-02-29\n"),
		&externalConfig,
	)
	kind, ok := caldate.ErrorKindOf(err)
	require.True(t, ok)
	require.Equal(t, caldate.ErrorKindInvalidDay, kind)
}
