// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package command describes a callable command and the parameters it declares.
//
// A command is built once with New and the fluent Builder, which records the
// positional parameters, the keyword parameters with their defaults, an optional
// rest parameter and the description text. The resulting Descriptor is what the
// usage package renders, and Invoke binds raw argument values to the declared
// parameters before calling the handler.
//
// Argument values are never converted: handlers receive text and decide how to
// interpret it.
package command
