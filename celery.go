// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package celery provides the version and commit information for the celery command dispatcher.
package celery

var (
	// Version is set during the build process.
	Version = "dev"
	// Commit is set during the build process.
	Commit = "unknown"
)

// VersionString returns the version and commit in one line.
func VersionString() string {
	return Version + " (commit: " + Commit + ")"
}
