// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color applies ANSI colors to terminal output.
// Colors are on when stdout is a terminal, unless NO_COLOR is set.
// FORCE_COLOR turns them on for non-terminal output.
package color
