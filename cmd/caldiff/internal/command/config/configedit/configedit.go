// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package configedit implements the "config edit" command.
package configedit

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/caldiff/cmd/caldiff/internal/caldiffcmd"
	"github.com/bufdev/caldiff/internal/caldiff/caldiffconfig"
	"github.com/bufdev/caldiff/internal/standard/xos"
	"github.com/spf13/pflag"
)

// NewCommand returns a new config edit command that opens caldiff.yaml in an editor.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Edit caldiff.yaml in $EDITOR",
		Long: `Edit caldiff.yaml in $EDITOR.

The file is created from the default template if it does not exist. The
edited file is validated after the editor exits.`,
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
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.Dir, caldiffcmd.DirFlagName, ".", caldiffcmd.DirFlagUsage)
}

func run(ctx context.Context, container appext.Container, flags *flags) error {
	dirPath, err := xos.ExpandHome(flags.Dir)
	if err != nil {
		return err
	}
	configFilePath := caldiffconfig.ConfigFilePath(dirPath)
	if _, err := os.Stat(configFilePath); errors.Is(err, os.ErrNotExist) {
		if _, err := caldiffconfig.InitConfig(dirPath); err != nil {
			return err
		}
	}
	editor := container.Env("EDITOR")
	if editor == "" {
		return errors.New("EDITOR environment variable is not set")
	}
	cmd := exec.CommandContext(ctx, editor, configFilePath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running editor: %w", err)
	}
	if err := caldiffconfig.ValidateConfigFile(configFilePath); err != nil {
		return err
	}
	_, err = fmt.Fprintf(container.Stdout(), "%s\n", configFilePath)
	return err
}
