// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a slog logger in a context.Context.
//
// The default logger is a console handler that colours the level and prints
// attributes as indented JSON. All loggers created here share LevelVar, so the
// level can be changed once at start-up from configuration.
package ctxlog
