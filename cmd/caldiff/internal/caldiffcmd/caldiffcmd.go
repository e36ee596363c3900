// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package caldiffcmd provides shared wiring for caldiff commands (flag names,
// reading the config, resolving date arguments and the output format).
package caldiffcmd

import (
	"fmt"
	"strconv"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/caldiff/internal/caldiff/caldiffconfig"
	"github.com/bufdev/caldiff/internal/pkg/caldate"
	"github.com/bufdev/caldiff/internal/pkg/cliio"
)

const (
	// DirFlagName is the flag name for the caldiff directory containing caldiff.yaml.
	DirFlagName = "dir"
	// FormatFlagName is the flag name for the output format.
	FormatFlagName = "format"
	// FileFlagName is the flag name for an input or output file.
	FileFlagName = "file"
)

// DirFlagUsage is the usage string for the --dir flag.
const DirFlagUsage = "The caldiff directory containing caldiff.yaml"

// FormatFlagUsage is the usage string for the --format flag.
const FormatFlagUsage = "Output format (table, csv, json), defaults to the format in caldiff.yaml or table"

// ReadConfig reads the configuration from the caldiff directory, falling back to the
// default configuration if caldiff.yaml does not exist.
func ReadConfig(dirPath string) (*caldiffconfig.Config, error) {
	return caldiffconfig.ReadConfigOrDefault(dirPath)
}

// ResolveFormat returns the output format from the --format flag value, or the
// configured default format if the flag is empty.
func ResolveFormat(flagValue string, config *caldiffconfig.Config) (cliio.Format, error) {
	if flagValue == "" {
		return config.Format, nil
	}
	format, err := cliio.ParseFormat(flagValue)
	if err != nil {
		return "", appcmd.NewInvalidArgumentError(err.Error())
	}
	return format, nil
}

// ResolveDate resolves a date argument against the config.
//
// Calendar validation errors are returned unchanged, all other errors are
// returned as invalid argument errors.
func ResolveDate(config *caldiffconfig.Config, arg string) (caldate.Date, error) {
	date, err := config.ResolveDate(arg)
	if err != nil {
		if _, ok := caldate.ErrorKindOf(err); ok {
			return caldate.Date{}, err
		}
		return caldate.Date{}, appcmd.NewInvalidArgumentError(err.Error())
	}
	return date, nil
}

// ResolveDateArgs resolves all positional arguments as dates.
func ResolveDateArgs(container appext.Container, config *caldiffconfig.Config) ([]caldate.Date, error) {
	if container.NumArgs() == 0 {
		return nil, appcmd.NewInvalidArgumentError("at least one date is required")
	}
	dates := make([]caldate.Date, 0, container.NumArgs())
	for i := range container.NumArgs() {
		date, err := ResolveDate(config, container.Arg(i))
		if err != nil {
			return nil, err
		}
		dates = append(dates, date)
	}
	return dates, nil
}

// ParseYearArgs parses all positional arguments as years.
//
// Year 0 and years outside [caldate.MinYear, caldate.MaxYear] are rejected
// with a calendar validation error.
func ParseYearArgs(container appext.Container) ([]int, error) {
	if container.NumArgs() == 0 {
		return nil, appcmd.NewInvalidArgumentError("at least one year is required")
	}
	years := make([]int, 0, container.NumArgs())
	for i := range container.NumArgs() {
		arg := container.Arg(i)
		year, err := strconv.Atoi(arg)
		if err != nil {
			return nil, appcmd.NewInvalidArgumentErrorf("invalid year %q", arg)
		}
		if err := caldate.ValidateYear(year); err != nil {
			return nil, err
		}
		years = append(years, year)
	}
	return years, nil
}

// FormatYear returns the year as "44 BC" for BC years and "2021" otherwise.
func FormatYear(year int) string {
	if year < 0 {
		return fmt.Sprintf("%d BC", -year)
	}
	return strconv.Itoa(year)
}
