// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package command

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
)

var (
	// ErrTooManyArguments is returned when more positional values are supplied than the command accepts.
	ErrTooManyArguments = errors.New("too many positional arguments")
	// ErrMissingArgument is returned when a positional parameter receives no value.
	ErrMissingArgument = errors.New("missing required argument")
	// ErrUnexpectedKeyword is returned when a named value matches no parameter.
	ErrUnexpectedKeyword = errors.New("unexpected keyword argument")
	// ErrMultipleValues is returned when a parameter is given both positionally and by name.
	ErrMultipleValues = errors.New("multiple values for argument")
	// ErrUndeclaredParameter is returned by Args accessors for names the command does not declare.
	ErrUndeclaredParameter = errors.New("parameter not declared")
)

// Args holds the values bound to a command's declared parameters.
type Args struct {
	values map[string]string
	rest   []string
}

// NewArgs creates an Args from already bound values. It is mostly useful in tests.
func NewArgs(values map[string]string, rest ...string) *Args {
	if values == nil {
		values = make(map[string]string)
	}

	return &Args{values: values, rest: rest}
}

// String returns the value bound to name, or the empty string if name is not declared.
func (a *Args) String(name string) string {
	return a.values[name]
}

// Lookup returns the value bound to name and whether name is a declared parameter.
func (a *Args) Lookup(name string) (string, bool) {
	v, ok := a.values[name]
	return v, ok
}

// Int parses the value bound to name as a base 10 integer.
func (a *Args) Int(name string) (int, error) {
	v, ok := a.values[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUndeclaredParameter, name)
	}

	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("argument %s: %w", name, err)
	}

	return i, nil
}

// Rest returns the surplus positional values collected by the rest parameter.
func (a *Args) Rest() []string {
	return slices.Clone(a.rest)
}

// bind assigns values to parameters the way a call with positional and keyword arguments does:
// positional values fill parameters in declaration order, named values fill parameters by name,
// and keyword parameters that remain unset take their defaults.
func bind(d Descriptor, positional []string, named map[string]string) (*Args, error) {
	params := d.Parameters()
	args := &Args{values: make(map[string]string, len(params))}

	for i, v := range positional {
		if i >= len(params) {
			if d.Rest == "" {
				return nil, fmt.Errorf("%w: %s takes %d but %d were given",
					ErrTooManyArguments, d.Name, len(params), len(positional))
			}

			args.rest = append(args.rest, positional[i:]...)

			break
		}

		args.values[params[i]] = v
	}

	for _, k := range slices.Sorted(maps.Keys(named)) {
		if !slices.Contains(params, k) {
			return nil, fmt.Errorf("%w: %s got %q", ErrUnexpectedKeyword, d.Name, k)
		}

		if _, ok := args.values[k]; ok {
			return nil, fmt.Errorf("%w: %s got %q", ErrMultipleValues, d.Name, k)
		}

		args.values[k] = named[k]
	}

	for _, p := range d.Positional {
		if _, ok := args.values[p]; !ok {
			return nil, fmt.Errorf("%w: %s requires %q", ErrMissingArgument, d.Name, p)
		}
	}

	for _, kw := range d.Keywords {
		if _, ok := args.values[kw.Name]; !ok {
			args.values[kw.Name] = kw.Default
		}
	}

	return args, nil
}
