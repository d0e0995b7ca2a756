// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"os"

	"github.com/matt-FFFFFF/celery"
	"github.com/matt-FFFFFF/celery/cmd/commands"
	"github.com/matt-FFFFFF/celery/cmd/module"
	"github.com/matt-FFFFFF/celery/cmd/shell"
	"github.com/matt-FFFFFF/celery/internal/commandregistry"
	"github.com/matt-FFFFFF/celery/internal/config"
	"github.com/urfave/cli/v3"
)

// NewRootCmd creates the root command with one subcommand per module in registry.
func NewRootCmd(registry *commandregistry.Registry, cfg *config.Config) *cli.Command {
	cmds := module.Commands(registry)
	cmds = append(cmds,
		commands.New(registry),
		shell.New(registry, cfg.Prompt),
	)

	return &cli.Command{
		Commands:  cmds,
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Name:      "celery",
		Description: `Celery runs small commands grouped into modules.
Every word after the module name is passed to the module's dispatcher:
positional values, key=value pairs and --flag or --flag=value options.`,
		Usage:     "celery math add 1 2",
		Version:   celery.VersionString(),
		Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
		Authors: []any{
			"Matt White (matt-FFFFFF)",
		},
	}
}
