// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

const (
	// NoColor is the environment variable that disables color output.
	NoColor = "NO_COLOR"
	// ForceColor is the environment variable that forces color output.
	ForceColor = "FORCE_COLOR"

	escape = "\033["
	reset  = "\033[0m"
)

// Code is an ANSI SGR parameter.
type Code int

// Text attributes.
const (
	Bold  Code = 1
	Faint Code = 2
)

// Foreground colors.
const (
	FgRed    Code = 31
	FgGreen  Code = 32
	FgYellow Code = 33
	FgCyan   Code = 36
	FgWhite  Code = 37

	FgHiMagenta Code = 95
	FgHiWhite   Code = 97
)

var enabled = isColorCapable()

// Enabled reports whether Colorize emits escape codes.
// It is decided once at start-up from NO_COLOR, FORCE_COLOR and whether stdout is a terminal.
func Enabled() bool {
	return enabled
}

// SetEnabled overrides the start-up decision and returns a function restoring the previous value.
func SetEnabled(v bool) func() {
	prev := enabled
	enabled = v

	return func() { enabled = prev }
}

// Colorize wraps str in the given codes followed by a reset.
// It returns str unchanged when color output is disabled or no codes are given.
func Colorize(str string, codes ...Code) string {
	if !enabled || len(codes) == 0 {
		return str
	}

	params := make([]string, len(codes))
	for i, c := range codes {
		params[i] = strconv.Itoa(int(c))
	}

	return escape + strings.Join(params, ";") + "m" + str + reset
}

func isColorCapable() bool {
	if os.Getenv(NoColor) != "" {
		return false
	}

	if os.Getenv(ForceColor) != "" {
		return true
	}

	return term.IsTerminal(int(os.Stdout.Fd()))
}
