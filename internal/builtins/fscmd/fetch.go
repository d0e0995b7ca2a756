// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package fscmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-getter/v2"
	"github.com/matt-FFFFFF/celery/internal/command"
	"github.com/matt-FFFFFF/celery/internal/ctxlog"
	"github.com/spf13/afero"
)

var (
	// ErrFetch is returned when a source cannot be retrieved.
	ErrFetch = errors.New("failed to fetch")
	// ErrNotAFile is returned when a source resolves to a directory.
	ErrNotAFile = errors.New("source is not a single file")
)

// fetch downloads src into a scratch directory on FS and prints the file.
// The getters write to the host filesystem, so FS must be backed by it for this command.
func fetch(ctx context.Context, args *command.Args) (string, error) {
	src := args.String("src")
	if src == "" {
		return "", fmt.Errorf("%w: empty source", ErrFetch)
	}

	scratch, err := afero.TempDir(FS, "", "celery-fetch-")
	if err != nil {
		return "", errors.Join(ErrFetch, err)
	}

	defer FS.RemoveAll(scratch) //nolint:errcheck

	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Join(ErrFetch, err)
	}

	req := &getter.Request{
		Src:     src,
		Dst:     filepath.Join(scratch, "content"),
		Pwd:     wd,
		GetMode: getter.ModeAny,
		Copy:    true,
	}

	ctxlog.Debug(ctx, "fetching", "src", src)

	res, err := (&getter.Client{DisableSymlinks: true}).Get(ctx, req)
	if err != nil {
		return "", errors.Join(ErrFetch, err)
	}

	fi, err := FS.Stat(res.Dst)
	if err != nil {
		return "", errors.Join(ErrFetch, err)
	}

	if fi.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNotAFile, src)
	}

	b, err := afero.ReadFile(FS, res.Dst)
	if err != nil {
		return "", errors.Join(ErrFetch, err)
	}

	return string(b), nil
}
