// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package spantimeline implements the "span timeline" command.
package spantimeline

import (
	"context"
	"fmt"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/caldiff/cmd/caldiff/internal/caldiffcmd"
	"github.com/bufdev/caldiff/internal/caldiff/caldiffspan"
	"github.com/bufdev/caldiff/internal/pkg/caldatepb"
	"github.com/bufdev/caldiff/internal/pkg/cliio"
	"github.com/bufdev/caldiff/internal/pkg/protoio"
	"github.com/bufdev/caldiff/internal/standard/xos"
	"github.com/spf13/pflag"
	datepb "google.golang.org/genproto/googleapis/type/date"
)

// NewCommand returns a new span timeline command.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Count the days between consecutive dates in a google.type.Date JSON file",
		Long: `Count the days between consecutive dates in a google.type.Date JSON file.

The file holds one google.type.Date JSON object per line, as written by
"caldiff date export". The table format ends with the total number of days
from the first date to the last.`,
		Args: appcmd.NoArgs,
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
	// File is the google.type.Date JSON file.
	File string
	// Format is the output format (table, csv, json).
	Format string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.Dir, caldiffcmd.DirFlagName, ".", caldiffcmd.DirFlagUsage)
	flagSet.StringVar(&f.File, caldiffcmd.FileFlagName, "", "The google.type.Date JSON file (required)")
	flagSet.StringVar(&f.Format, caldiffcmd.FormatFlagName, "", caldiffcmd.FormatFlagUsage)
}

func run(_ context.Context, container appext.Container, flags *flags) error {
	if flags.File == "" {
		return appcmd.NewInvalidArgumentErrorf("--%s is required", caldiffcmd.FileFlagName)
	}
	filePath, err := xos.ExpandHome(flags.File)
	if err != nil {
		return err
	}
	config, err := caldiffcmd.ReadConfig(flags.Dir)
	if err != nil {
		return err
	}
	format, err := caldiffcmd.ResolveFormat(flags.Format, config)
	if err != nil {
		return err
	}
	protoDates, err := protoio.ReadMessagesJSON(filePath, func() *datepb.Date { return &datepb.Date{} })
	if err != nil {
		return fmt.Errorf("reading %s: %w", filePath, err)
	}
	dates, err := caldatepb.ProtosToDates(protoDates)
	if err != nil {
		return fmt.Errorf("reading %s: %w", filePath, err)
	}
	container.Logger().Debug("computing timeline", "file", filePath, "dates", len(dates))
	entries, err := caldiffspan.Timeline(dates)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, caldiffspan.TimelineEntryToRow(entry))
	}
	if format == cliio.FormatTable {
		return cliio.WriteTableWithTotals(
			container.Stdout(),
			caldiffspan.TimelineHeaders(),
			rows,
			caldiffspan.TimelineTotalsRow(entries),
		)
	}
	return cliio.WriteRecords(container.Stdout(), format, caldiffspan.TimelineHeaders(), rows, entries)
}
