// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package configinit implements the "config init" command.
package configinit

import (
	"context"
	"fmt"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/caldiff/cmd/caldiff/internal/caldiffcmd"
	"github.com/bufdev/caldiff/internal/caldiff/caldiffconfig"
	"github.com/spf13/pflag"
)

// NewCommand returns a new config init command that creates a caldiff.yaml from a documented template.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Create a new caldiff.yaml",
		Args:  appcmd.NoArgs,
		Run: builder.NewRunFunc(
			func(ctx context.Context, container appext.Container) error {
				return run(ctx, container, flags)
			},
		),
		BindFlags: flags.Bind,
	}
}

type flags struct {
	// Dir is the caldiff directory to create caldiff.yaml in.
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
	filePath, err := caldiffconfig.InitConfig(flags.Dir)
	if err != nil {
		return err
	}
	container.Logger().Debug("created config file", "path", filePath)
	_, err = fmt.Fprintf(container.Stdout(), "%s\n", filePath)
	return err
}
