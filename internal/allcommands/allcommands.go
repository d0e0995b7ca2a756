// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package allcommands collects the register functions of the built-in command modules.
package allcommands

import (
	"github.com/matt-FFFFFF/celery/internal/builtins/fscmd"
	"github.com/matt-FFFFFF/celery/internal/builtins/mathcmd"
	"github.com/matt-FFFFFF/celery/internal/builtins/syscmd"
	"github.com/matt-FFFFFF/celery/internal/builtins/textcmd"
	"github.com/matt-FFFFFF/celery/internal/commandregistry"
)

// RegisterFuncs returns the register functions of every built-in module.
func RegisterFuncs() []commandregistry.RegisterFunc {
	return []commandregistry.RegisterFunc{
		fscmd.Register,
		mathcmd.Register,
		syscmd.Register,
		textcmd.Register,
	}
}

// New creates a registry holding every built-in module.
func New() (*commandregistry.Registry, error) {
	return commandregistry.New(RegisterFuncs()...)
}
