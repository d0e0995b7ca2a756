// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package dispatch resolves a command line to a registered command and invokes it.
//
// A dispatcher is bound to one module of a fully populated registry. Each call to
// Dispatch handles exactly one command and falls back to the help text of the
// usage package when no command, an unknown command, or a failing command is seen.
package dispatch
