// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package yeardays implements the "year days" command.
package yeardays

import (
	"context"
	"strconv"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/caldiff/cmd/caldiff/internal/caldiffcmd"
	"github.com/bufdev/caldiff/internal/caldiff/caldiffconfig"
	"github.com/bufdev/caldiff/internal/pkg/caldate"
	"github.com/bufdev/caldiff/internal/pkg/cliio"
	"github.com/spf13/pflag"
)

// NewCommand returns a new year days command.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name + " <year>...",
		Short: "Print the number of days in years",
		Long: `Print the number of days in years.

1582 has 355 days, as October 5-14, 1582 were dropped by the calendar reform.`,
		Run: builder.NewRunFunc(
			func(ctx context.Context, container appext.Container) error {
				return run(ctx, container, flags)
			},
		),
		BindFlags: flags.Bind,
	}
}

type flags struct {
	// Format is the output format (table, csv, json).
	Format string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.Format, caldiffcmd.FormatFlagName, "table", "Output format (table, csv, json)")
}

type yearDays struct {
	Year int `json:"year"`
	Days int `json:"days"`
}

func run(_ context.Context, container appext.Container, flags *flags) error {
	format, err := caldiffcmd.ResolveFormat(flags.Format, caldiffconfig.NewDefaultConfig())
	if err != nil {
		return err
	}
	years, err := caldiffcmd.ParseYearArgs(container)
	if err != nil {
		return err
	}
	results := make([]yearDays, 0, len(years))
	rows := make([][]string, 0, len(years))
	for _, year := range years {
		days := caldate.YearDays(year)
		results = append(results, yearDays{Year: year, Days: days})
		rows = append(rows, []string{caldiffcmd.FormatYear(year), strconv.Itoa(days)})
	}
	return cliio.WriteRecords(container.Stdout(), format, []string{"YEAR", "DAYS"}, rows, results)
}
