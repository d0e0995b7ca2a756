// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/celery/internal/ctxlog"
)

// ExitCode is the status used when a second signal forces the process to end.
const ExitCode = 130

// exit is replaced in tests.
var exit = os.Exit

// Watch reads signals from sigCh until it is closed.
// The first signal of a given type cancels the context through cancel, giving the
// running command a chance to stop. A second signal of the same type exits the process.
func Watch(ctx context.Context, sigCh <-chan os.Signal, cancel context.CancelFunc) {
	seen := make(map[os.Signal]struct{})

	for sig := range sigCh {
		if _, ok := seen[sig]; ok {
			ctxlog.Logger(ctx).Warn("watchdog", "detail", "received second signal of type, forcefully terminating", "signal", sig.String())
			exit(ExitCode)

			return
		}

		ctxlog.Logger(ctx).Info("watchdog", "detail", "received first signal of type, cancelling", "signal", sig.String())

		seen[sig] = struct{}{}

		cancel()
	}
}
