// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package dateexport implements the "date export" command.
package dateexport

import (
	"context"
	"fmt"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/caldiff/cmd/caldiff/internal/caldiffcmd"
	"github.com/bufdev/caldiff/internal/pkg/caldatepb"
	"github.com/bufdev/caldiff/internal/pkg/protoio"
	"github.com/bufdev/caldiff/internal/standard/xos"
	"github.com/spf13/pflag"
	datepb "google.golang.org/genproto/googleapis/type/date"
)

// NewCommand returns a new date export command that writes dates as google.type.Date JSON.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name + " <date>...",
		Short: "Export dates as newline-separated google.type.Date JSON",
		Long: `Export dates as newline-separated google.type.Date JSON.

The file can be read by "caldiff span timeline". google.type.Date cannot
represent BC years, so only dates in years 1 through 9999 can be exported.`,
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
	// File is the output file path.
	File string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.Dir, caldiffcmd.DirFlagName, ".", caldiffcmd.DirFlagUsage)
	flagSet.StringVar(&f.File, caldiffcmd.FileFlagName, "", "The output file path (required)")
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
	dates, err := caldiffcmd.ResolveDateArgs(container, config)
	if err != nil {
		return err
	}
	protoDates := make([]*datepb.Date, 0, len(dates))
	for _, date := range dates {
		protoDate, err := caldatepb.DateToProto(date)
		if err != nil {
			return err
		}
		protoDates = append(protoDates, protoDate)
	}
	container.Logger().Debug("exporting dates", "file", filePath, "dates", len(protoDates))
	if err := protoio.WriteMessagesJSON(filePath, protoDates); err != nil {
		return fmt.Errorf("writing %s: %w", filePath, err)
	}
	// Print the file path so the user knows where to find it.
	_, err = fmt.Fprintf(container.Stdout(), "%s\n", filePath)
	return err
}
