// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package between implements the "between" command.
package between

import (
	"context"
	"fmt"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/caldiff/cmd/caldiff/internal/caldiffcmd"
	"github.com/bufdev/caldiff/internal/caldiff/caldiffspan"
	"github.com/bufdev/caldiff/internal/pkg/cliio"
	"github.com/spf13/pflag"
)

// labelFlagName is the flag name for the span label.
const labelFlagName = "label"

// NewCommand returns a new between command that counts the days between two dates.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name + " <first> <second>",
		Short: "Count the days between two dates",
		Long: `Count the days between two dates.

The result is positive if the second date is later than the first.

With the default table format, prints the span in the form:

  October 1, 1977 - July 22, 2021: 16000 days`,
		Args: appcmd.ExactArgs(2),
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
	// Label is an optional label for the span.
	Label string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.Dir, caldiffcmd.DirFlagName, ".", caldiffcmd.DirFlagUsage)
	flagSet.StringVar(&f.Format, caldiffcmd.FormatFlagName, "", caldiffcmd.FormatFlagUsage)
	flagSet.StringVar(&f.Label, labelFlagName, "", "An optional label for the span in csv and json output")
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
	first, err := caldiffcmd.ResolveDate(config, container.Arg(0))
	if err != nil {
		return err
	}
	second, err := caldiffcmd.ResolveDate(config, container.Arg(1))
	if err != nil {
		return err
	}
	span, err := caldiffspan.NewSpan(flags.Label, first, second)
	if err != nil {
		return err
	}
	if format == cliio.FormatTable {
		_, err := fmt.Fprintln(container.Stdout(), caldiffspan.FormatSpan(span))
		return err
	}
	return cliio.WriteRecords(
		container.Stdout(),
		format,
		caldiffspan.SpanHeaders(),
		[][]string{caldiffspan.SpanToRow(span)},
		[]caldiffspan.Span{span},
	)
}
