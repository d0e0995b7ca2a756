// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package mathcmd

import (
	"github.com/matt-FFFFFF/celery/internal/command"
	"github.com/matt-FFFFFF/celery/internal/commandregistry"
	"github.com/matt-FFFFFF/celery/internal/usage"
)

// ModuleID is the registry module the math commands are registered under.
const ModuleID = "math"

const moduleDescription = "Integer arithmetic and expression evaluation."

// Register adds the math commands and their help command to r.
func Register(r *commandregistry.Registry) error {
	r.Document(ModuleID, moduleDescription)

	cmds := []*command.Builder{
		command.New("add", add).
			Positional("a", "b").
			Keyword("base", "10").
			Description("Add two integers written in the given base.\nThe result uses the same base."),
		command.New("xor", xor).
			Positional("a", "b").
			Description("Bitwise exclusive or of two integers."),
		command.New("sum", sum).
			Rest("numbers").
			Description("Sum any number of integers."),
		command.New("eval", eval).
			Positional("expr").
			Keyword("x", "0").
			Keyword("y", "0").
			Keyword("z", "0").
			Description("Evaluate an HCL expression.\nThe variables x, y and z can be set by name, e.g.\n    eval \"x * y\" x=3 y=4"),
	}

	for _, b := range cmds {
		cmd, err := b.Build()
		if err != nil {
			return err
		}

		if _, err := r.Register(ModuleID, cmd); err != nil {
			return err
		}
	}

	return usage.RegisterHelp(ModuleID)(r)
}
