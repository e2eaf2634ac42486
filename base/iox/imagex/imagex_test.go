// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtToFormat(t *testing.T) {
	f, err := ExtToFormat(".JPG")
	assert.NoError(t, err)
	assert.Equal(t, JPEG, f)
	f, err = ExtToFormat("webp")
	assert.NoError(t, err)
	assert.Equal(t, WebP, f)
	_, err = ExtToFormat("")
	assert.Error(t, err)
	_, err = ExtToFormat(".obj")
	assert.Error(t, err)
	assert.Equal(t, "TIFF", TIFF.String())
}

func TestSaveOpen(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	img.Set(1, 1, color.RGBA{200, 100, 50, 255})
	dir := t.TempDir()
	for _, ext := range []string{".png", ".bmp", ".tiff"} {
		fn := filepath.Join(dir, "frame"+ext)
		require.NoError(t, Save(img, fn))
		got, _, err := Open(fn)
		require.NoError(t, err)
		assert.Equal(t, img.Bounds(), got.Bounds())
		assert.True(t, CompareColors(color.RGBA{200, 100, 50, 255}, color.RGBAModel.Convert(got.At(1, 1)).(color.RGBA), 0))
	}
	assert.Same(t, img, AsRGBA(img))
	assert.Nil(t, AsRGBA(nil))
	assert.Error(t, Write(img, io.Discard, WebP))
}

type recorder struct {
	errs []string
}

func (r *recorder) Errorf(format string, args ...any) {
	r.errs = append(r.errs, fmt.Sprintf(format, args...))
}

func TestAssert(t *testing.T) {
	t.Chdir(t.TempDir())
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{100, 100, 100, 255})

	r := &recorder{}
	Assert(r, img, "frame", 0)
	assert.Empty(t, r.errs)
	assert.FileExists(t, filepath.Join("testdata", "frame.png"))

	img.SetRGBA(0, 0, color.RGBA{104, 100, 100, 255})
	Assert(r, img, "frame", 5)
	assert.Empty(t, r.errs)

	Assert(r, img, "frame", 2)
	require.Len(t, r.errs, 1)
	assert.Contains(t, r.errs[0], "at (0, 0)")
	assert.FileExists(t, filepath.Join("testdata", "frame.fail.png"))
	diff, _, err := Open(filepath.Join("testdata", "frame.diff.png"))
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{4, 0, 0, 255}, AsRGBA(diff).RGBAAt(0, 0))
}
