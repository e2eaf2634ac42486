// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePath(t *testing.T) {
	p, err := ResolvePath("/scenes", "models/earth.obj")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/scenes", "models", "earth.obj"), p)

	p, err = ResolvePath("/scenes", "/abs/sky.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean("/abs/sky.png"), p)

	p, err = ResolvePath("/scenes", "")
	require.NoError(t, err)
	assert.Equal(t, "", p)

	home, err := homedir.Dir()
	require.NoError(t, err)
	p, err = ResolvePath("/scenes", "~/orbit/sat.obj")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "orbit", "sat.obj"), p)
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "a.txt")
	ok, err := FileExists(fn)
	assert.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, os.WriteFile(fn, []byte("x"), 0666))
	ok, err = FileExists(fn)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = FileExists(dir)
	assert.NoError(t, err)
	assert.False(t, ok)
}
