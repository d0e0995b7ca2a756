// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/matt-FFFFFF/celery/internal/argparse"
	"github.com/matt-FFFFFF/celery/internal/commandregistry"
	"github.com/matt-FFFFFF/celery/internal/ctxlog"
	"github.com/matt-FFFFFF/celery/internal/usage"
)

// ErrWriteOutput is returned when help or command output cannot be written.
var ErrWriteOutput = errors.New("failed to write output")

type invocationKey struct{}

// InvocationID returns the id the dispatcher assigned to the running command.
// The same id is logged as the "invocation" attribute.
func InvocationID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(invocationKey{}).(string)
	return id, ok
}

// Dispatcher selects and invokes one command of a registry module per call to Dispatch.
type Dispatcher struct {
	registry *commandregistry.Registry
	module   string
	out      io.Writer
}

// Option configures a Dispatcher.
type Option func(d *Dispatcher)

// WithWriter sets where help text and command output are written. The default is os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(d *Dispatcher) {
		d.out = w
	}
}

// New creates a dispatcher for the commands registered under module.
func New(registry *commandregistry.Registry, module string, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry: registry,
		module:   module,
		out:      os.Stdout,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Dispatch runs the command named by argv[1] with the arguments in argv[2:].
// argv[0] is the program name used in usage lines.
//
// Without a command name the full help listing is written. An unknown name writes
// help for that name. If the command fails, the full listing is written and the
// command's error is returned unchanged; a panic is re-raised after the listing.
// Malformed argument tokens are reported before anything is invoked.
func (d *Dispatcher) Dispatch(ctx context.Context, argv []string) error {
	help := &usage.Help{Module: d.module, Registry: d.registry}
	if len(argv) > 0 {
		help.Program = argv[0]
	}

	id := uuid.NewString()
	logger := ctxlog.Logger(ctx).With("module", d.module, "invocation", id)

	if len(argv) < 2 {
		logger.Debug("no command given, showing help")
		return d.write(help.Render())
	}

	name := strings.ToLower(argv[1])
	logger = logger.With("command", name)

	cmd, ok := d.registry.Lookup(d.module, name)
	if !ok {
		logger.Debug("command not found, showing help")
		return d.write(help.Render(name))
	}

	args, err := argparse.Tokenize(argv[2:])
	if err != nil {
		logger.Debug("invalid arguments", "error", err)
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			logger.Error("command panicked", "panic", fmt.Sprint(p))
			_ = d.write(help.Render())

			panic(p)
		}
	}()

	logger.Debug("invoking command", "positional", args.Positional, "named", args.Named)

	ctx = context.WithValue(usage.NewContext(ctx, help), invocationKey{}, id)
	ctx = ctxlog.New(ctx, logger)

	out, err := cmd.Invoke(ctx, args.Positional, args.Named)
	if err != nil {
		logger.Debug("command failed", "error", err)
		_ = d.write(help.Render())

		return err
	}

	if out == "" {
		return nil
	}

	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}

	return d.write(out)
}

func (d *Dispatcher) write(s string) error {
	if _, err := io.WriteString(d.out, s); err != nil {
		return errors.Join(ErrWriteOutput, err)
	}

	return nil
}
