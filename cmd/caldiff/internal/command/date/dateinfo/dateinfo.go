// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package dateinfo implements the "date info" command.
package dateinfo

import (
	"context"
	"strconv"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/caldiff/cmd/caldiff/internal/caldiffcmd"
	"github.com/bufdev/caldiff/internal/pkg/caldate"
	"github.com/bufdev/caldiff/internal/pkg/cliio"
	"github.com/spf13/pflag"
)

// NewCommand returns a new date info command.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name + " <date>...",
		Short: "Print the day of year, leap year and year length of dates",
		Run: builder.NewRunFunc(
			func(ctx context.Context, container appext.Container) error {
				return run(ctx, container, flags)
			},
		),
		BindFlags: flags.Bind,
	}
}

type flags struct {
	// Dir is the caldiff directory containing caldiff.yaml.
	Dir string
	// Format is the output format (table, csv, json).
	Format string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.Dir, caldiffcmd.DirFlagName, ".", caldiffcmd.DirFlagUsage)
	flagSet.StringVar(&f.Format, caldiffcmd.FormatFlagName, "", caldiffcmd.FormatFlagUsage)
}

// dateInfo is the JSON output of the command.
type dateInfo struct {
	Date      caldate.Date `json:"date"`
	Display   string       `json:"display"`
	DayOfYear int          `json:"day_of_year"`
	Leap      bool         `json:"leap"`
	YearDays  int          `json:"year_days"`
}

func newDateInfo(date caldate.Date) dateInfo {
	return dateInfo{
		Date:      date,
		Display:   date.String(),
		DayOfYear: date.DayOfYear(),
		Leap:      caldate.IsLeap(date.Year),
		YearDays:  caldate.YearDays(date.Year),
	}
}

func run(_ context.Context, container appext.Container, flags *flags) error {
	config, err := caldiffcmd.ReadConfig(flags.Dir)
	if err != nil {
		return err
	}
	format, err := caldiffcmd.ResolveFormat(flags.Format, config)
	if err != nil {
		return err
	}
	dates, err := caldiffcmd.ResolveDateArgs(container, config)
	if err != nil {
		return err
	}
	infos := make([]dateInfo, 0, len(dates))
	rows := make([][]string, 0, len(dates))
	for _, date := range dates {
		info := newDateInfo(date)
		infos = append(infos, info)
		rows = append(rows, []string{
			info.Display,
			date.ISOString(),
			strconv.Itoa(info.DayOfYear),
			strconv.FormatBool(info.Leap),
			strconv.Itoa(info.YearDays),
		})
	}
	return cliio.WriteRecords(
		container.Stdout(),
		format,
		[]string{"DATE", "ISO", "DAY_OF_YEAR", "LEAP", "YEAR_DAYS"},
		rows,
		infos,
	)
}
