// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package year implements the "year" command group.
package year

import (
	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/caldiff/cmd/caldiff/internal/command/year/yeardays"
	"github.com/bufdev/caldiff/cmd/caldiff/internal/command/year/yearleap"
)

// NewCommand returns a new year command group with leap and days sub-commands.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	return &appcmd.Command{
		Use:   name,
		Short: "Inspect calendar years",
		Long: `Inspect calendar years.

Years are signed integers, negative years are BC. Put BC years after -- so
they are not read as flags.`,
		SubCommands: []*appcmd.Command{
			yearleap.NewCommand("leap", builder),
			yeardays.NewCommand("days", builder),
		},
	}
}
