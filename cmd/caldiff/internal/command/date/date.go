// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package date implements the "date" command group.
package date

import (
	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/caldiff/cmd/caldiff/internal/command/date/dateexport"
	"github.com/bufdev/caldiff/cmd/caldiff/internal/command/date/dateinfo"
	"github.com/bufdev/caldiff/cmd/caldiff/internal/command/date/datevalidate"
)

// NewCommand returns a new date command group with validate, info, and export sub-commands.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	return &appcmd.Command{
		Use:   name,
		Short: "Inspect calendar dates",
		SubCommands: []*appcmd.Command{
			datevalidate.NewCommand("validate", builder),
			dateinfo.NewCommand("info", builder),
			dateexport.NewCommand("export", builder),
		},
	}
}
