// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/hashicorp/go-multierror"
)

var (
	// ErrInvalidDefinition is returned when a command definition cannot be built.
	ErrInvalidDefinition = errors.New("invalid command definition")
	// ErrEmptyName is returned when a command or parameter has no name.
	ErrEmptyName = errors.New("name must not be empty")
	// ErrDuplicateParameter is returned when a parameter name is declared twice.
	ErrDuplicateParameter = errors.New("parameter declared more than once")
	// ErrInvalidName is returned when a name contains whitespace, '=' or a leading dash.
	ErrInvalidName = errors.New("name must not contain whitespace, '=' or start with '-'")
	// ErrNilHandler is returned when a command is built without a handler.
	ErrNilHandler = errors.New("command handler must not be nil")
)

var _ Command = (*Func)(nil)

// Command is the uniform invocation contract every registered command satisfies.
type Command interface {
	// Descriptor returns a copy of the command's declared metadata.
	Descriptor() Descriptor
	// Invoke binds the raw values to the declared parameters and runs the command.
	Invoke(ctx context.Context, positional []string, named map[string]string) (string, error)
}

// HandlerFunc is the function run by a command once its arguments are bound.
// The returned string, if not empty, is printed by the dispatcher.
type HandlerFunc func(ctx context.Context, args *Args) (string, error)

// Keyword is a parameter with a default value.
type Keyword struct {
	Name    string `json:"name" yaml:"name" toml:"name"`
	Default string `json:"default" yaml:"default" toml:"default"`
}

// Descriptor is the static metadata captured about a command when it is built.
type Descriptor struct {
	Name        string    `json:"name" yaml:"name" toml:"name"`
	Positional  []string  `json:"positional,omitempty" yaml:"positional,omitempty" toml:"positional,omitempty"`
	Keywords    []Keyword `json:"keywords,omitempty" yaml:"keywords,omitempty" toml:"keywords,omitempty"`
	Rest        string    `json:"rest,omitempty" yaml:"rest,omitempty" toml:"rest,omitempty"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
}

// Clone returns a deep copy of the descriptor.
func (d Descriptor) Clone() Descriptor {
	d.Positional = slices.Clone(d.Positional)
	d.Keywords = slices.Clone(d.Keywords)

	return d
}

// Parameters returns the names of the positional and keyword parameters in declaration order.
func (d Descriptor) Parameters() []string {
	params := make([]string, 0, len(d.Positional)+len(d.Keywords))
	params = append(params, d.Positional...)

	for _, kw := range d.Keywords {
		params = append(params, kw.Name)
	}

	return params
}

// Func is a command backed by a HandlerFunc.
type Func struct {
	desc Descriptor
	fn   HandlerFunc
}

// Descriptor implements Command.
func (f *Func) Descriptor() Descriptor {
	return f.desc.Clone()
}

// Invoke implements Command.
func (f *Func) Invoke(ctx context.Context, positional []string, named map[string]string) (string, error) {
	args, err := bind(f.desc, positional, named)
	if err != nil {
		return "", err
	}

	return f.fn(ctx, args)
}

// Builder collects the declaration of a command. Use New to create one.
type Builder struct {
	desc Descriptor
	fn   HandlerFunc
}

// New starts the declaration of a command with the given name and handler.
func New(name string, fn HandlerFunc) *Builder {
	return &Builder{
		desc: Descriptor{Name: name},
		fn:   fn,
	}
}

// Positional appends required positional parameters.
func (b *Builder) Positional(names ...string) *Builder {
	b.desc.Positional = append(b.desc.Positional, names...)
	return b
}

// Keyword appends an optional parameter with its default value.
func (b *Builder) Keyword(name, def string) *Builder {
	b.desc.Keywords = append(b.desc.Keywords, Keyword{Name: name, Default: def})
	return b
}

// Rest names the parameter that collects surplus positional values.
func (b *Builder) Rest(name string) *Builder {
	b.desc.Rest = name
	return b
}

// Description sets the free-form description text shown in help output.
func (b *Builder) Description(text string) *Builder {
	b.desc.Description = text
	return b
}

// Build validates the declaration and returns the command.
// All problems found are reported together.
func (b *Builder) Build() (*Func, error) {
	var result *multierror.Error

	if b.fn == nil {
		result = multierror.Append(result, ErrNilHandler)
	}

	if err := validateName(b.desc.Name); err != nil {
		result = multierror.Append(result, fmt.Errorf("command name %q: %w", b.desc.Name, err))
	}

	seen := make(map[string]struct{})
	params := b.desc.Parameters()

	if b.desc.Rest != "" {
		params = append(params, b.desc.Rest)
	}

	for _, p := range params {
		if err := validateName(p); err != nil {
			result = multierror.Append(result, fmt.Errorf("parameter %q: %w", p, err))
			continue
		}

		if _, ok := seen[p]; ok {
			result = multierror.Append(result, fmt.Errorf("%w: %s", ErrDuplicateParameter, p))
		}

		seen[p] = struct{}{}
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, errors.Join(ErrInvalidDefinition, err)
	}

	return &Func{desc: b.desc.Clone(), fn: b.fn}, nil
}

// MustBuild is like Build but panics if the declaration is invalid.
func (b *Builder) MustBuild() *Func {
	f, err := b.Build()
	if err != nil {
		panic(err)
	}

	return f
}

func validateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}

	if strings.HasPrefix(name, "-") || strings.ContainsAny(name, "= \t\r\n") {
		return ErrInvalidName
	}

	return nil
}
