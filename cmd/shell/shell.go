// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package shell provides an interactive prompt that dispatches one command per line.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/matt-FFFFFF/celery/cmd/module"
	"github.com/matt-FFFFFF/celery/internal/commandregistry"
	"github.com/matt-FFFFFF/celery/internal/ctxlog"
	"github.com/matt-FFFFFF/celery/internal/dispatch"
	"github.com/mattn/go-shellwords"
	"github.com/peterh/liner"
	"github.com/urfave/cli/v3"
)

const moduleArg = "module"

var (
	// ErrUnknownModule is returned when the shell is started for a module that does not exist.
	ErrUnknownModule = errors.New("unknown module")
	// ErrCommandPanic is reported when a command panics inside the shell.
	ErrCommandPanic = errors.New("command panicked")
)

// LineReader reads input lines with history.
type LineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
	Close() error
}

// newLineReader is replaced in tests.
var newLineReader = func() LineReader {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	return line
}

// New creates the shell command for registry.
func New(registry *commandregistry.Registry, prompt string) *cli.Command {
	return &cli.Command{
		Name:  "shell",
		Usage: "Run commands of one module interactively",
		Description: `Start a prompt for a module. Each line is split like a shell would
and dispatched as one command. Type quit or exit, or press Ctrl+D, to leave.`,
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: moduleArg,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id := cmd.StringArg(moduleArg)
			if id == "" {
				return cli.Exit("a module name is required, e.g. celery shell math", 1)
			}

			return Run(ctx, registry, id, prompt, cmd.Root().Writer)
		},
	}
}

// Run reads lines until quit, exit, end of input or cancellation of ctx.
// Command errors are logged and the loop continues. Every log line of one run
// carries the same session id next to the invocation id of each dispatch.
func Run(ctx context.Context, registry *commandregistry.Registry, id, prompt string, w io.Writer) error {
	if !slices.Contains(registry.Modules(), id) {
		return fmt.Errorf("%w: %s", ErrUnknownModule, id)
	}

	session := uuid.NewString()
	ctx = ctxlog.New(ctx, ctxlog.Logger(ctx).With("session", session))

	line := newLineReader()
	defer func() {
		_ = line.Close()
	}()

	d := dispatch.New(registry, id, dispatch.WithWriter(w))
	program := module.ProgramName(id)

	fmt.Fprintf(w, "Entering %s shell, type `help` for commands, `quit` or `exit` to leave.\n", id) //nolint:errcheck

	for ctx.Err() == nil {
		input, err := line.Prompt(prompt)

		switch {
		case err == nil:
		case errors.Is(err, io.EOF), errors.Is(err, liner.ErrPromptAborted):
			return nil
		default:
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if input == "quit" || input == "exit" {
			return nil
		}

		line.AppendHistory(input)

		words, err := shellwords.Parse(input)
		if err != nil {
			ctxlog.Error(ctx, "cannot split input", "input", input, "error", err)
			continue
		}

		if err := dispatchLine(ctx, d, append([]string{program}, words...)); err != nil {
			ctxlog.Error(ctx, "command failed", "input", input, "error", err)
		}
	}

	return nil
}

// dispatchLine dispatches argv and turns a command panic into an error so the prompt survives it.
func dispatchLine(ctx context.Context, d *dispatch.Dispatcher, argv []string) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrCommandPanic, p)
		}
	}()

	return d.Dispatch(ctx, argv)
}
