// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package argparse splits raw command-line tokens into positional and named arguments.
//
// A token names an argument when it is written as --key=value, --key, -key=value,
// -key or key=value. The bare --key and -key forms take their value from the next
// token, or the empty string when no token follows. Every other token is positional.
// Values are kept as text.
package argparse

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFormat is the sentinel matched by ErrInvalidArgumentFormat.
var ErrInvalidFormat = errors.New("invalid argument format")

// ErrInvalidArgumentFormat is returned when a named argument token is malformed,
// e.g. it holds more than one '=' or has an empty key.
type ErrInvalidArgumentFormat struct {
	Token string
}

// Error implements the error interface for ErrInvalidArgumentFormat.
func (e *ErrInvalidArgumentFormat) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidFormat, e.Token)
}

// Is reports whether target is ErrInvalidFormat.
func (e *ErrInvalidArgumentFormat) Is(target error) bool {
	return target == ErrInvalidFormat
}

// NewErrInvalidArgumentFormat creates a new ErrInvalidArgumentFormat for the token.
func NewErrInvalidArgumentFormat(token string) error {
	return &ErrInvalidArgumentFormat{Token: token}
}

// Args is the result of tokenizing.
type Args struct {
	Positional []string
	Named      map[string]string
}

// Tokenize classifies tokens left to right.
// A key given more than once keeps its last value.
func Tokenize(tokens []string) (Args, error) {
	args := Args{
		Positional: make([]string, 0, len(tokens)),
		Named:      make(map[string]string),
	}

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		body, dashed := stripDashes(tok)
		if !dashed && !strings.Contains(tok, "=") {
			args.Positional = append(args.Positional, tok)
			continue
		}

		key, value, inline, err := splitKeyValue(tok, body)
		if err != nil {
			return Args{}, err
		}

		if !inline {
			value = ""

			if i+1 < len(tokens) {
				i++
				value = tokens[i]
			}
		}

		args.Named[key] = value
	}

	return args, nil
}

// stripDashes removes a leading "--" or "-". The lone tokens "-" and "--" are not named arguments.
func stripDashes(tok string) (string, bool) {
	switch {
	case tok == "-" || tok == "--":
		return tok, false
	case strings.HasPrefix(tok, "--"):
		return tok[2:], true
	case strings.HasPrefix(tok, "-"):
		return tok[1:], true
	default:
		return tok, false
	}
}

func splitKeyValue(tok, body string) (key, value string, inline bool, err error) {
	switch strings.Count(body, "=") {
	case 0:
		key = body
	case 1:
		key, value, _ = strings.Cut(body, "=")
		inline = true
	default:
		return "", "", false, NewErrInvalidArgumentFormat(tok)
	}

	if key == "" {
		return "", "", false, NewErrInvalidArgumentFormat(tok)
	}

	return key, value, inline, nil
}
