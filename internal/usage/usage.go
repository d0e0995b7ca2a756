// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package usage renders call signatures and help text from command descriptors.
package usage

import (
	"strings"

	"github.com/matt-FFFFFF/celery/internal/command"
)

const (
	// CommandBullet marks a command signature in the full listing.
	CommandBullet = "*"
	// TextBullet marks each line of description text.
	TextBullet = "-"

	commandIndent     = 2
	descriptionIndent = 4
)

// Signature renders the call signature of a command, e.g. "add <a> <b> [base=10]".
// Positional parameters come first, then keyword parameters with their defaults.
func Signature(name string, d command.Descriptor) string {
	parts := make([]string, 0, 1+len(d.Positional)+len(d.Keywords))
	parts = append(parts, name)

	for _, p := range d.Positional {
		parts = append(parts, "<"+p+">")
	}

	for _, kw := range d.Keywords {
		parts = append(parts, "["+kw.Name+"="+kw.Default+"]")
	}

	return strings.Join(parts, " ")
}

// Indent prefixes every line of text with width spaces and a bullet.
// A line that already starts with at least width spaces loses exactly width of them first,
// so text with its own nested indentation stays nested under the bullet.
func Indent(text string, width int, bullet string) string {
	pad := strings.Repeat(" ", width)
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	for i, line := range lines {
		lines[i] = pad + bullet + " " + strings.TrimPrefix(line, pad)
	}

	return strings.Join(lines, "\n")
}
