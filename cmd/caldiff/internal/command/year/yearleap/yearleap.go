// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package yearleap implements the "year leap" command.
package yearleap

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

// NewCommand returns a new year leap command.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name + " <year>...",
		Short: "Print whether years are leap years",
		Long: `Print whether years are leap years.

Years before 1582 follow the Julian rule, every fourth year is a leap year.
From 1582 onward, century years are only leap years if divisible by 400.
1 BC, 5 BC, 9 BC and so on are leap years.`,
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

type yearLeap struct {
	Year int  `json:"year"`
	Leap bool `json:"leap"`
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
	results := make([]yearLeap, 0, len(years))
	rows := make([][]string, 0, len(years))
	for _, year := range years {
		leap := caldate.IsLeap(year)
		results = append(results, yearLeap{Year: year, Leap: leap})
		rows = append(rows, []string{caldiffcmd.FormatYear(year), strconv.FormatBool(leap)})
	}
	return cliio.WriteRecords(container.Stdout(), format, []string{"YEAR", "LEAP"}, rows, results)
}
