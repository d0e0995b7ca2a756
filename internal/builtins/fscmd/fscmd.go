// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package fscmd provides the fs command module for reading files and directories.
package fscmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/matt-FFFFFF/celery/internal/command"
	"github.com/matt-FFFFFF/celery/internal/commandregistry"
	"github.com/matt-FFFFFF/celery/internal/ctxlog"
	"github.com/matt-FFFFFF/celery/internal/usage"
	"github.com/spf13/afero"
)

// ModuleID is the registry module the fs commands are registered under.
const ModuleID = "fs"

// FS is the filesystem the commands read from.
var FS = afero.NewOsFs()

var (
	// ErrRead is returned when a file or directory cannot be read.
	ErrRead = errors.New("read failed")
	// ErrInvalidHead is returned when head is negative.
	ErrInvalidHead = errors.New("head must not be negative")
)

// Register adds the fs commands and their help command to r.
func Register(r *commandregistry.Registry) error {
	r.Document(ModuleID, "Read files and directories.")

	for _, b := range []*command.Builder{
		command.New("cat", cat).
			Positional("path").
			Keyword("head", "0").
			Description("Print a file.\nWith head set, print only that many lines."),
		command.New("ls", ls).
			Keyword("dir", ".").
			Description("List a directory. Directories end in a slash."),
		command.New("fetch", fetch).
			Positional("src").
			Description("Print a single file fetched from a path or URL, e.g.\n    fetch https://example.com/notes.txt"),
	} {
		cmd, err := b.Build()
		if err != nil {
			return err
		}

		if _, err := r.Register(ModuleID, cmd); err != nil {
			return err
		}
	}

	return usage.RegisterHelp(ModuleID)(r)
}

func cat(ctx context.Context, args *command.Args) (string, error) {
	head, err := args.Int("head")
	if err != nil {
		return "", err
	}

	if head < 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidHead, head)
	}

	path := args.String("path")
	ctxlog.Debug(ctx, "reading file", "path", path, "head", head)

	if head == 0 {
		b, err := afero.ReadFile(FS, path)
		if err != nil {
			return "", errors.Join(ErrRead, err)
		}

		return string(b), nil
	}

	f, err := FS.Open(path)
	if err != nil {
		return "", errors.Join(ErrRead, err)
	}
	defer f.Close() //nolint:errcheck

	sb := strings.Builder{}
	scanner := bufio.NewScanner(f)

	for i := 0; i < head && scanner.Scan(); i++ {
		sb.WriteString(scanner.Text())
		sb.WriteString("\n")
	}

	if err := scanner.Err(); err != nil {
		return "", errors.Join(ErrRead, err)
	}

	return sb.String(), nil
}

func ls(ctx context.Context, args *command.Args) (string, error) {
	dir := args.String("dir")
	ctxlog.Debug(ctx, "listing directory", "dir", dir)

	infos, err := afero.ReadDir(FS, dir)
	if err != nil {
		return "", errors.Join(ErrRead, err)
	}

	names := make([]string, 0, len(infos))

	for _, fi := range infos {
		name := fi.Name()
		if fi.IsDir() {
			name += "/"
		}

		names = append(names, name)
	}

	return strings.Join(names, "\n"), nil
}
