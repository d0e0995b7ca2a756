// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package fscmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(file, []byte("fetched content\n"), 0o644))

	tests := []struct {
		name    string
		src     string
		want    string
		wantErr error
	}{
		{name: "local file", src: file, want: "fetched content\n"},
		{name: "file url", src: "file://" + filepath.ToSlash(file), want: "fetched content\n"},
		{name: "directory", src: dir, wantErr: ErrNotAFile},
		{name: "missing file", src: filepath.Join(dir, "missing.txt"), wantErr: ErrFetch},
		{name: "empty", src: "", wantErr: ErrFetch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, "fetch", []string{tt.src}, nil)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type recordingFS struct {
	afero.Fs
	made    []string
	removed []string
}

func (r *recordingFS) Mkdir(name string, perm os.FileMode) error {
	r.made = append(r.made, name)
	return r.Fs.Mkdir(name, perm)
}

func (r *recordingFS) RemoveAll(path string) error {
	r.removed = append(r.removed, path)
	return r.Fs.RemoveAll(path)
}

func TestFetchUsesScratchDirectoryOnFS(t *testing.T) {
	rec := &recordingFS{Fs: afero.NewOsFs()}
	stubs := gostub.Stub(&FS, afero.Fs(rec))
	defer stubs.Reset()

	src := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(src, []byte("a"), 0o644))

	got, err := run(t, "fetch", []string{src}, nil)
	require.NoError(t, err)
	assert.Equal(t, "a", got)

	require.Len(t, rec.made, 1)
	assert.Equal(t, rec.made, rec.removed)

	_, err = os.Stat(rec.made[0])
	assert.True(t, os.IsNotExist(err), "scratch directory is removed")
}
