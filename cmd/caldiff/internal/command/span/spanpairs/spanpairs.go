// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package spanpairs implements the "span pairs" command.
package spanpairs

import (
	"context"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/caldiff/cmd/caldiff/internal/caldiffcmd"
	"github.com/bufdev/caldiff/internal/caldiff/caldiffspan"
	"github.com/bufdev/caldiff/internal/pkg/cliio"
	"github.com/spf13/pflag"
)

// parallelismFlagName is the flag name for the number of spans computed at once.
const parallelismFlagName = "parallelism"

// defaultParallelism is the default number of spans computed at once.
const defaultParallelism = 8

// NewCommand returns a new span pairs command.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Count the days between each pair of dates in a CSV file",
		Long: `Count the days between each pair of dates in a CSV file.

Each record is first,second[,label] with dates written as Y-MM-DD and a
leading - for BC years. A header record starting with "first" is skipped, as
are blank lines and lines starting with #.

  first,second,label
  1977-10-01,2021-07-22,anniversary
  -44-03-15,1-01-01`,
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
	// File is the CSV file of date pairs.
	File string
	// Format is the output format (table, csv, json).
	Format string
	// Parallelism is the number of spans computed at once.
	Parallelism int
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.Dir, caldiffcmd.DirFlagName, ".", caldiffcmd.DirFlagUsage)
	flagSet.StringVar(&f.File, caldiffcmd.FileFlagName, "", "The CSV file of date pairs (required)")
	flagSet.StringVar(&f.Format, caldiffcmd.FormatFlagName, "", caldiffcmd.FormatFlagUsage)
	flagSet.IntVar(&f.Parallelism, parallelismFlagName, defaultParallelism, "The number of spans computed at once")
}

func run(ctx context.Context, container appext.Container, flags *flags) error {
	if flags.File == "" {
		return appcmd.NewInvalidArgumentErrorf("--%s is required", caldiffcmd.FileFlagName)
	}
	if flags.Parallelism < 1 {
		return appcmd.NewInvalidArgumentErrorf("--%s must be at least 1", parallelismFlagName)
	}
	config, err := caldiffcmd.ReadConfig(flags.Dir)
	if err != nil {
		return err
	}
	format, err := caldiffcmd.ResolveFormat(flags.Format, config)
	if err != nil {
		return err
	}
	pairs, err := caldiffspan.ParsePairsFile(flags.File)
	if err != nil {
		return err
	}
	logger := container.Logger()
	logger.Debug("computing spans", "file", flags.File, "pairs", len(pairs), "parallelism", flags.Parallelism)
	spans, err := caldiffspan.ComputeSpans(ctx, pairs, flags.Parallelism)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(spans))
	for _, span := range spans {
		rows = append(rows, caldiffspan.SpanToRow(span))
	}
	return cliio.WriteRecords(container.Stdout(), format, caldiffspan.SpanHeaders(), rows, spans)
}
