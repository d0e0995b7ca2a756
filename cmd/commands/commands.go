// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package commands provides the command that lists the registered commands.
package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/TylerBrock/colorjson"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/celery/internal/color"
	"github.com/matt-FFFFFF/celery/internal/command"
	"github.com/matt-FFFFFF/celery/internal/commandregistry"
	"github.com/matt-FFFFFF/celery/internal/usage"
	"github.com/urfave/cli/v3"
)

const (
	formatFlag = "format"
	moduleFlag = "module"
)

// Output formats.
const (
	FormatText  = "text"
	FormatYAML  = "yaml"
	FormatJSON  = "json"
	FormatTOML  = "toml"
	FormatTable = "table"
)

var formats = []string{FormatText, FormatYAML, FormatJSON, FormatTOML, FormatTable}

var (
	// ErrUnknownFormat is returned for an output format that is not supported.
	ErrUnknownFormat = errors.New("unknown output format")
	// ErrUnknownModule is returned when the module filter matches no module.
	ErrUnknownModule = errors.New("unknown module")
	// ErrEncode is returned when the listing cannot be encoded.
	ErrEncode = errors.New("failed to encode command listing")
)

// Listing is the document written by the commands command.
type Listing struct {
	Modules []Module `json:"modules" yaml:"modules" toml:"modules"`
}

// Module describes one registry module and its commands.
type Module struct {
	Name        string               `json:"name" yaml:"name" toml:"name"`
	Description string               `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Commands    []command.Descriptor `json:"commands" yaml:"commands" toml:"commands"`
}

// New creates the commands command for registry.
func New(registry *commandregistry.Registry) *cli.Command {
	return &cli.Command{
		Name:  "commands",
		Usage: "List the registered commands of every module",
		Description: `List modules and their commands with call signatures.
Use --format to choose between text, yaml, json, toml and table output.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        formatFlag,
				Aliases:     []string{"f"},
				Usage:       "Output format: " + strings.Join(formats, ", "),
				DefaultText: FormatText,
				Value:       FormatText,
				OnlyOnce:    true,
			},
			&cli.StringFlag{
				Name:     moduleFlag,
				Aliases:  []string{"m"},
				Usage:    "Only list the commands of this module",
				OnlyOnce: true,
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			listing, err := Build(registry, cmd.String(moduleFlag))
			if err != nil {
				return err
			}

			return Write(cmd.Root().Writer, listing, cmd.String(formatFlag))
		},
	}
}

// Build collects the descriptors of the registry, optionally limited to one module.
func Build(registry *commandregistry.Registry, only string) (*Listing, error) {
	ids := registry.Modules()

	if only != "" {
		if !slices.Contains(ids, only) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownModule, only)
		}

		ids = []string{only}
	}

	listing := &Listing{Modules: make([]Module, 0, len(ids))}

	for _, id := range ids {
		m := Module{Name: id, Description: registry.Description(id)}

		for _, c := range registry.Commands(id) {
			m.Commands = append(m.Commands, c.Descriptor())
		}

		listing.Modules = append(listing.Modules, m)
	}

	return listing, nil
}

// Write encodes the listing to w in the given format.
func Write(w io.Writer, listing *Listing, format string) error {
	var (
		out []byte
		err error
	)

	switch strings.ToLower(format) {
	case FormatText, "":
		out = []byte(text(listing))
	case FormatYAML:
		out, err = yaml.Marshal(listing)
	case FormatJSON:
		out, err = marshalJSON(listing)
	case FormatTOML:
		buf := &bytes.Buffer{}
		err = toml.NewEncoder(buf).Encode(listing)
		out = buf.Bytes()
	case FormatTable:
		out = []byte(tableString(listing) + "\n")
	default:
		return fmt.Errorf("%w: %s (valid: %s)", ErrUnknownFormat, format, strings.Join(formats, ", "))
	}

	if err != nil {
		return errors.Join(ErrEncode, err)
	}

	if _, err := w.Write(out); err != nil {
		return errors.Join(ErrEncode, err)
	}

	return nil
}

func text(listing *Listing) string {
	sb := strings.Builder{}

	for i, m := range listing.Modules {
		if i > 0 {
			sb.WriteString("\n")
		}

		sb.WriteString(color.Colorize(m.Name, color.Bold))

		if m.Description != "" {
			sb.WriteString(": " + color.Colorize(m.Description, color.Faint))
		}

		sb.WriteString("\n")

		for _, d := range m.Commands {
			sb.WriteString(usage.Indent(color.Colorize(usage.Signature(d.Name, d), color.FgGreen), 2, usage.CommandBullet))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func marshalJSON(listing *Listing) ([]byte, error) {
	raw, err := json.Marshal(listing)
	if err != nil {
		return nil, err
	}

	var generic map[string]any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}

	f := colorjson.NewFormatter()
	f.Indent = 2
	f.DisabledColor = !color.Enabled()

	out, err := f.Marshal(generic)
	if err != nil {
		return nil, err
	}

	return append(out, '\n'), nil
}

func tableString(listing *Listing) string {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("MODULE", "SIGNATURE", "DESCRIPTION").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}

			return cell
		})

	for _, m := range listing.Modules {
		for _, d := range m.Commands {
			first, _, _ := strings.Cut(strings.TrimSpace(d.Description), "\n")
			t.Row(m.Name, usage.Signature(d.Name, d), first)
		}
	}

	return t.String()
}
