// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package commandregistry provides the registry of commands available to the dispatcher.
// Commands are grouped by module so that two modules may each declare a command with
// the same name. Within a module names are unique and case-insensitive.
package commandregistry
