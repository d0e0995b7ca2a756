// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package usage

import (
	"context"
	"errors"
	"strings"

	"github.com/matt-FFFFFF/celery/internal/command"
	"github.com/matt-FFFFFF/celery/internal/commandregistry"
)

// HelpCommandName is the name under which the built-in help command is registered.
const HelpCommandName = "help"

// ErrNoHelpContext is returned by the help command when it is invoked outside a dispatch.
var ErrNoHelpContext = errors.New("help renderer not found in context")

const helpDescription = `Get usage information about this program.
Pass a command name to see how to call it, e.g.
    help <command>`

// Help renders help text for the commands of one registry module.
type Help struct {
	// Program is the invocation name printed in usage lines.
	Program string
	// Module selects the registry module whose commands are listed.
	Module   string
	Registry *commandregistry.Registry
}

// Render returns help for the command named by the first argument,
// or the full listing of the module when no argument is given.
func (h *Help) Render(args ...string) string {
	if len(args) == 0 {
		return h.listing()
	}

	name := args[0]

	cmd, ok := h.lookup(name)
	if !ok {
		return h.listing() + "Command \"" + name + "\" not found :(\n"
	}

	d := cmd.Descriptor()
	sb := strings.Builder{}
	sb.WriteString("Usage: " + h.Program + " " + Signature(strings.ToLower(d.Name), d) + "\n")

	if text := strings.TrimSpace(d.Description); text != "" {
		sb.WriteString(Indent(text, commandIndent, TextBullet) + "\n")
	}

	return sb.String()
}

func (h *Help) lookup(name string) (command.Command, bool) {
	if h.Registry == nil {
		return nil, false
	}

	return h.Registry.Lookup(h.Module, name)
}

func (h *Help) listing() string {
	sb := strings.Builder{}
	sb.WriteString("Usage: " + h.Program + " [command]\n")

	var cmds []command.Command

	if h.Registry != nil {
		if text := strings.TrimSpace(h.Registry.Description(h.Module)); text != "" {
			sb.WriteString(Indent(text, commandIndent, TextBullet))
		}

		cmds = h.Registry.Commands(h.Module)
	}

	// Terminates the description, or leaves an empty line when there is none.
	sb.WriteString("\n")
	sb.WriteString("Available commands:\n")

	for _, cmd := range cmds {
		d := cmd.Descriptor()
		sb.WriteString(Indent(Signature(strings.ToLower(d.Name), d), commandIndent, CommandBullet) + "\n")

		if text := strings.TrimSpace(d.Description); text != "" {
			sb.WriteString(Indent(text, descriptionIndent, TextBullet) + "\n")
		}
	}

	return sb.String()
}

type helpKey struct{}

// NewContext returns a context carrying the help renderer.
func NewContext(ctx context.Context, h *Help) context.Context {
	return context.WithValue(ctx, helpKey{}, h)
}

// FromContext returns the help renderer carried by ctx, if any.
func FromContext(ctx context.Context) (*Help, bool) {
	h, ok := ctx.Value(helpKey{}).(*Help)
	return h, ok && h != nil
}

// HelpCommand returns the built-in help command.
// It renders help with the renderer the dispatcher places in the invocation context.
func HelpCommand() command.Command {
	return command.New(HelpCommandName, func(ctx context.Context, args *command.Args) (string, error) {
		h, ok := FromContext(ctx)
		if !ok {
			return "", ErrNoHelpContext
		}

		return h.Render(args.Rest()...), nil
	}).
		Rest("commands").
		Description(helpDescription).
		MustBuild()
}

// RegisterHelp returns a register function adding the help command to a module.
func RegisterHelp(moduleID string) commandregistry.RegisterFunc {
	return func(r *commandregistry.Registry) error {
		_, err := r.Register(moduleID, HelpCommand())
		return err
	}
}
