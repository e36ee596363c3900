// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package configvalidate implements the "config validate" command.
package configvalidate

import (
	"context"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/caldiff/internal/caldiff/caldiffconfig"
	"github.com/spf13/pflag"
)

// configFlagName is the flag name for the configuration file path.
const configFlagName = "config"

// NewCommand returns a new config validate command that validates a configuration file.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Validate a configuration file",
		Long: `Validate a configuration file.

Unknown keys, unsupported versions and formats, duplicate or malformed date
names, and dates that do not exist in the calendar are all reported.`,
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
	// Config is the path to the configuration file.
	Config string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(
		&f.Config,
		configFlagName,
		caldiffconfig.ConfigFileName,
		"The configuration file path",
	)
}

func run(_ context.Context, container appext.Container, flags *flags) error {
	if flags.Config == "" {
		return appcmd.NewInvalidArgumentErrorf("--%s is required", configFlagName)
	}
	if err := caldiffconfig.ValidateConfigFile(flags.Config); err != nil {
		return err
	}
	container.Logger().Debug("config file is valid", "path", flags.Config)
	return nil
}
