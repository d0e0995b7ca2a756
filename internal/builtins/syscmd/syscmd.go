// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package syscmd provides the sys command module.
package syscmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/matt-FFFFFF/celery"
	"github.com/matt-FFFFFF/celery/internal/command"
	"github.com/matt-FFFFFF/celery/internal/commandregistry"
	"github.com/matt-FFFFFF/celery/internal/ctxlog"
	"github.com/matt-FFFFFF/celery/internal/usage"
)

// ModuleID is the registry module the sys commands are registered under.
const ModuleID = "sys"

var (
	// ErrInvalidDuration is returned when sleep gets a duration it cannot use.
	ErrInvalidDuration = errors.New("invalid duration")
	// ErrNotSet is returned by env when the variable is unset and no default is given.
	ErrNotSet = errors.New("environment variable not set")
)

// Register adds the sys commands and their help command to r.
func Register(r *commandregistry.Registry) error {
	r.Document(ModuleID, "Process and environment information.")

	for _, b := range []*command.Builder{
		command.New("sleep", sleep).
			Positional("duration").
			Description("Wait for a duration such as 1s or 250ms.\nStops early when interrupted."),
		command.New("env", env).
			Positional("name").
			Keyword("default", "").
			Description("Print an environment variable, or default when it is unset."),
		command.New("version", version).
			Description("Print the program version."),
	} {
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

func sleep(ctx context.Context, args *command.Args) (string, error) {
	d, err := time.ParseDuration(args.String("duration"))
	if err != nil {
		return "", errors.Join(ErrInvalidDuration, err)
	}

	if d < 0 {
		return "", fmt.Errorf("%w: %s is negative", ErrInvalidDuration, d)
	}

	ctxlog.Debug(ctx, "sleeping", "duration", d)

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-t.C:
		return "slept " + d.String(), nil
	}
}

func env(_ context.Context, args *command.Args) (string, error) {
	name := args.String("name")

	if v, ok := os.LookupEnv(name); ok {
		return v, nil
	}

	if def := args.String("default"); def != "" {
		return def, nil
	}

	return "", fmt.Errorf("%w: %s", ErrNotSet, name)
}

func version(context.Context, *command.Args) (string, error) {
	return celery.VersionString(), nil
}
