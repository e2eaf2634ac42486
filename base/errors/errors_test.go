// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"bytes"
	"io/fs"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	assert.NoError(t, Log(nil))
	assert.Empty(t, buf.String())

	err := New("no texture")
	assert.Equal(t, err, Log(err))
	assert.Contains(t, buf.String(), "no texture")
	assert.Contains(t, buf.String(), "TestLog")
}

func TestWrappers(t *testing.T) {
	err := Join(fs.ErrNotExist, nil)
	assert.True(t, Is(err, fs.ErrNotExist))
	var pe *fs.PathError
	assert.False(t, As(err, &pe))
	assert.Nil(t, Join(nil, nil))
}
