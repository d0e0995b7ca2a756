// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the celery command-line interface (CLI).
package main

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/celery/cmd"
	"github.com/matt-FFFFFF/celery/internal/allcommands"
	"github.com/matt-FFFFFF/celery/internal/config"
	"github.com/matt-FFFFFF/celery/internal/ctxlog"
	"github.com/matt-FFFFFF/celery/internal/signalbroker"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)

	cfg, err := config.Load()
	if err != nil {
		ctxlog.Error(ctx, "failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, err := cfg.Logger(os.Stderr)
	if err != nil {
		ctxlog.Error(ctx, "failed to create logger", "error", err)
		os.Exit(1)
	}

	ctx = ctxlog.New(ctx, logger)

	sigCh := signalbroker.New(ctx)
	defer signalbroker.Stop(sigCh)

	go signalbroker.Watch(ctx, sigCh, cancel)

	registry, err := allcommands.New()
	if err != nil {
		ctxlog.Error(ctx, "failed to register commands", "error", err)
		os.Exit(1)
	}

	err = cmd.NewRootCmd(registry, cfg).Run(ctx, os.Args)

	if ctx.Err() != nil {
		ctxlog.Error(ctx, "command terminated due to cancellation", "error", ctx.Err())
		os.Exit(1)
	}

	if err != nil {
		ctxlog.Error(ctx, "command execution failed", "error", err)
		os.Exit(1)
	}

	ctxlog.Debug(ctx, "command completed successfully")
}
