// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package datevalidate implements the "date validate" command.
package datevalidate

import (
	"context"
	"fmt"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/caldiff/cmd/caldiff/internal/caldiffcmd"
	"github.com/spf13/pflag"
)

// NewCommand returns a new date validate command that checks dates exist on the calendar.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name + " <date>...",
		Short: "Validate dates",
		Long: `Validate dates.

Prints each date in long form, for example "March 15, 44 BC", or fails with
the first date that does not exist on the calendar.`,
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
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.Dir, caldiffcmd.DirFlagName, ".", caldiffcmd.DirFlagUsage)
}

func run(_ context.Context, container appext.Container, flags *flags) error {
	config, err := caldiffcmd.ReadConfig(flags.Dir)
	if err != nil {
		return err
	}
	dates, err := caldiffcmd.ResolveDateArgs(container, config)
	if err != nil {
		return err
	}
	for _, date := range dates {
		if _, err := fmt.Fprintln(container.Stdout(), date.String()); err != nil {
			return err
		}
	}
	return nil
}
