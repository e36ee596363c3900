// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package span implements the "span" command group.
package span

import (
	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/caldiff/cmd/caldiff/internal/command/span/spanpairs"
	"github.com/bufdev/caldiff/cmd/caldiff/internal/command/span/spantimeline"
)

// NewCommand returns a new span command group with pairs and timeline sub-commands.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	return &appcmd.Command{
		Use:   name,
		Short: "Count days between many dates read from files",
		SubCommands: []*appcmd.Command{
			spanpairs.NewCommand("pairs", builder),
			spantimeline.NewCommand("timeline", builder),
		},
	}
}
