// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package commandregistry

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/celery/internal/command"
)

var (
	// ErrDuplicate is the sentinel matched by ErrDuplicateCommand.
	ErrDuplicate = errors.New("duplicate command")
	// ErrNilCommand is returned when a nil command is registered.
	ErrNilCommand = errors.New("command must not be nil")
	// ErrRegistration is returned by New when one or more register functions fail.
	ErrRegistration = errors.New("failed to register commands")
)

// ErrDuplicateCommand is returned when a command name is registered twice within a module.
type ErrDuplicateCommand struct {
	Module string
	Name   string
}

// Error implements the error interface for ErrDuplicateCommand.
func (e *ErrDuplicateCommand) Error() string {
	return fmt.Sprintf("duplicate definition for command %q in module %q", e.Name, e.Module)
}

// Is reports whether target is ErrDuplicate.
func (e *ErrDuplicateCommand) Is(target error) bool {
	return target == ErrDuplicate
}

// NewErrDuplicateCommand creates a new ErrDuplicateCommand error.
func NewErrDuplicateCommand(module, name string) error {
	return &ErrDuplicateCommand{Module: module, Name: name}
}

// RegisterFunc populates a registry, usually with the commands of one module.
type RegisterFunc func(r *Registry) error

type module struct {
	description string
	commands    map[string]command.Command
}

// Registry maps a module id and a lower-cased command name to a command.
// It is not safe for concurrent registration; populate it before dispatching.
type Registry struct {
	modules map[string]*module
}

// New creates a registry and runs every register function against it in order.
// Errors from all functions are collected and returned together.
func New(fns ...RegisterFunc) (*Registry, error) {
	r := &Registry{modules: make(map[string]*module)}

	var result *multierror.Error

	for _, fn := range fns {
		if err := fn(r); err != nil {
			result = multierror.Append(result, err)
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return r, errors.Join(ErrRegistration, err)
	}

	return r, nil
}

func (r *Registry) module(id string) *module {
	m, ok := r.modules[id]
	if !ok {
		m = &module{commands: make(map[string]command.Command)}
		r.modules[id] = m
	}

	return m
}

// Register stores cmd under its lower-cased name in the given module and returns it unchanged.
func (r *Registry) Register(moduleID string, cmd command.Command) (command.Command, error) {
	if cmd == nil {
		return nil, ErrNilCommand
	}

	name := strings.ToLower(cmd.Descriptor().Name)
	m := r.module(moduleID)

	if _, exists := m.commands[name]; exists {
		return nil, NewErrDuplicateCommand(moduleID, name)
	}

	m.commands[name] = cmd

	return cmd, nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(moduleID string, cmd command.Command) command.Command {
	c, err := r.Register(moduleID, cmd)
	if err != nil {
		panic(err)
	}

	return c
}

// Document sets the description text of a module, shown at the top of its help listing.
func (r *Registry) Document(moduleID, text string) {
	r.module(moduleID).description = text
}

// Description returns the description text of a module.
func (r *Registry) Description(moduleID string) string {
	if m, ok := r.modules[moduleID]; ok {
		return m.description
	}

	return ""
}

// Lookup finds a command by case-insensitive name.
func (r *Registry) Lookup(moduleID, name string) (command.Command, bool) {
	m, ok := r.modules[moduleID]
	if !ok {
		return nil, false
	}

	cmd, ok := m.commands[strings.ToLower(name)]

	return cmd, ok
}

// Names returns the registered command names of a module in ascending order.
func (r *Registry) Names(moduleID string) []string {
	m, ok := r.modules[moduleID]
	if !ok {
		return nil
	}

	return slices.Sorted(maps.Keys(m.commands))
}

// Commands returns the commands of a module sorted by name.
func (r *Registry) Commands(moduleID string) []command.Command {
	names := r.Names(moduleID)
	cmds := make([]command.Command, 0, len(names))

	for _, n := range names {
		cmds = append(cmds, r.modules[moduleID].commands[n])
	}

	return cmds
}

// Modules returns the known module ids in ascending order.
func (r *Registry) Modules() []string {
	return slices.Sorted(maps.Keys(r.modules))
}
