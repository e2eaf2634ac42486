// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides various utility functions for dealing with filesystems.
package fsx

import (
	"io/fs"
	"os"
	"path/filepath"

	"cogentcore.org/orbit/base/errors"
	"github.com/mitchellh/go-homedir"
)

// ResolvePath returns the given asset path with a leading ~ expanded to
// the home directory and, if still relative, joined onto dir.
// An empty path is returned unchanged.
func ResolvePath(dir, path string) (string, error) {
	if path == "" {
		return "", nil
	}
	ep, err := homedir.Expand(path)
	if err != nil {
		return path, err
	}
	if filepath.IsAbs(ep) || dir == "" {
		return filepath.Clean(ep), nil
	}
	return filepath.Join(dir, ep), nil
}

// FileExists checks whether given file exists, returning true if so,
// false if not, and error if there is an error in accessing the file.
func FileExists(filePath string) (bool, error) {
	fileInfo, err := os.Stat(filePath)
	if err == nil {
		return !fileInfo.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}
