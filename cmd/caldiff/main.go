// Copyright 2026 Peter Edge
//
// All rights reserved.

package main

import (
	"context"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/caldiff/cmd/caldiff/internal/command/between"
	"github.com/bufdev/caldiff/cmd/caldiff/internal/command/config"
	"github.com/bufdev/caldiff/cmd/caldiff/internal/command/date"
	"github.com/bufdev/caldiff/cmd/caldiff/internal/command/span"
	"github.com/bufdev/caldiff/cmd/caldiff/internal/command/year"
)

func main() {
	appcmd.Main(context.Background(), newRootCommand("caldiff"))
}

// newRootCommand creates the root caldiff command with all sub-commands.
func newRootCommand(name string) *appcmd.Command {
	builder := appext.NewBuilder(name)
	return &appcmd.Command{
		Use:   name,
		Short: "Count days between dates on the Julian and Gregorian calendars",
		Long: `Count days between dates on the Julian and Gregorian calendars.

Dates before October 15, 1582 are on the proleptic Julian calendar, dates from
October 15, 1582 onward are on the Gregorian calendar. October 5-14, 1582 never
occurred. There is no year 0: 1 BC is immediately followed by AD 1.

Dates are written as Y-MM-DD, with a leading - for BC years (-44-03-15 is
March 15, 44 BC). Named dates from caldiff.yaml can be used as @name.
Put BC dates after -- so they are not read as flags:

  caldiff between -- -44-03-15 1-01-01`,
		BindPersistentFlags: builder.BindRoot,
		SubCommands: []*appcmd.Command{
			between.NewCommand("between", builder),
			config.NewCommand("config", builder),
			date.NewCommand("date", builder),
			span.NewCommand("span", builder),
			year.NewCommand("year", builder),
		},
	}
}
