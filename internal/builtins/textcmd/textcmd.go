// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package textcmd provides the text command module.
package textcmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/matt-FFFFFF/celery/internal/command"
	"github.com/matt-FFFFFF/celery/internal/commandregistry"
	"github.com/matt-FFFFFF/celery/internal/usage"
)

// ModuleID is the registry module the text commands are registered under.
const ModuleID = "text"

// maxRepeat bounds the output of repeat.
const maxRepeat = 10000

// ErrInvalidCount is returned when repeat is asked for a negative or excessive count.
var ErrInvalidCount = errors.New("invalid repeat count")

// Register adds the text commands and their help command to r.
func Register(r *commandregistry.Registry) error {
	r.Document(ModuleID, "Small string utilities.")

	for _, b := range []*command.Builder{
		command.New("upper", upper).
			Positional("text").
			Description("Print text in upper case."),
		command.New("lower", lower).
			Positional("text").
			Description("Print text in lower case."),
		command.New("repeat", repeat).
			Positional("text").
			Keyword("times", "2").
			Keyword("sep", " ").
			Description("Print text several times, joined by sep."),
		command.New("echo", echo).
			Rest("words").
			Description("Print the arguments separated by spaces."),
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

func upper(_ context.Context, args *command.Args) (string, error) {
	return strings.ToUpper(args.String("text")), nil
}

func lower(_ context.Context, args *command.Args) (string, error) {
	return strings.ToLower(args.String("text")), nil
}

func repeat(_ context.Context, args *command.Args) (string, error) {
	n, err := args.Int("times")
	if err != nil {
		return "", err
	}

	if n < 0 || n > maxRepeat {
		return "", fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}

	parts := make([]string, n)
	for i := range parts {
		parts[i] = args.String("text")
	}

	return strings.Join(parts, args.String("sep")), nil
}

func echo(_ context.Context, args *command.Args) (string, error) {
	return strings.Join(args.Rest(), " "), nil
}
