// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package module exposes each registry module as a subcommand that hands its
// arguments to a dispatcher untouched.
package module

import (
	"context"

	"github.com/matt-FFFFFF/celery/internal/commandregistry"
	"github.com/matt-FFFFFF/celery/internal/ctxlog"
	"github.com/matt-FFFFFF/celery/internal/dispatch"
	"github.com/urfave/cli/v3"
)

// Commands returns one subcommand per module, sorted by module id.
func Commands(registry *commandregistry.Registry) []*cli.Command {
	modules := registry.Modules()
	cmds := make([]*cli.Command, 0, len(modules))

	for _, id := range modules {
		cmds = append(cmds, New(registry, id))
	}

	return cmds
}

// New creates the subcommand for a single module.
func New(registry *commandregistry.Registry, id string) *cli.Command {
	return &cli.Command{
		Name:            id,
		Usage:           registry.Description(id),
		UsageText:       "celery " + id + " [command] [arguments...]",
		SkipFlagParsing: true,
		HideHelp:        true,
		HideHelpCommand: true,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctxlog.Debug(ctx, "module command", "module", id, "args", cmd.Args().Len())

			argv := append([]string{ProgramName(id)}, cmd.Args().Slice()...)

			return dispatch.New(registry, id, dispatch.WithWriter(cmd.Root().Writer)).Dispatch(ctx, argv)
		},
	}
}

// ProgramName is the program name shown in the usage lines of a module.
func ProgramName(id string) string {
	return "celery " + id
}
