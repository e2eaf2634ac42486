// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texture

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/orbit/base/iox/imagex"
	"cogentcore.org/orbit/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = color.RGBA{255, 0, 0, 255}
	blue = color.RGBA{0, 0, 255, 255}
)

// checker returns a 4x4 image whose top half is red and bottom half blue.
func checker() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if y < 2 {
				img.SetRGBA(x, y, red)
			} else {
				img.SetRGBA(x, y, blue)
			}
		}
	}
	return img
}

func TestMipChain(t *testing.T) {
	tx := New("checker", checker())
	require.Len(t, tx.Levels, 3)
	assert.Equal(t, image.Pt(4, 4), tx.Size())
	assert.Equal(t, image.Pt(2, 2), tx.Levels[1].Bounds().Size())
	assert.Equal(t, image.Pt(1, 1), tx.Levels[2].Bounds().Size())

	assert.Equal(t, tx.Levels[2], tx.Level(10))
	assert.Equal(t, tx.Levels[0], tx.Level(-1))
	assert.Equal(t, 0, tx.LevelFor(0.5))
	assert.Equal(t, 1, tx.LevelFor(2))
	assert.Equal(t, 2, tx.LevelFor(1000))
}

func TestSample(t *testing.T) {
	tx := New("checker", checker())
	// v = 0 is the bottom of the image
	assert.Equal(t, blue, tx.Sample(math32.Vec2(0.1, 0.1)))
	assert.Equal(t, red, tx.Sample(math32.Vec2(0.1, 0.9)))
	assert.Equal(t, red, tx.Sample(math32.Vec2(0.5, 1.0-0.01)))
	// wraps
	assert.Equal(t, red, tx.Sample(math32.Vec2(3.1, -0.1)))
	assert.Equal(t, blue, tx.Sample(math32.Vec2(-2.5, 2.25)))

	s := Solid(red)
	assert.Equal(t, red, s.Sample(math32.Vec2(0.7, 0.3)))
	assert.Equal(t, red, s.SampleLevel(math32.Vec2(0.7, 0.3), 4))
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "checker.png")
	require.NoError(t, imagex.Save(checker(), fn))

	tx, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(4, 4), tx.Size())
	assert.Equal(t, red, tx.Sample(math32.Vec2(0.9, 0.9)))

	txt := filepath.Join(dir, "notes.png")
	require.NoError(t, os.WriteFile(txt, []byte("plain text, not an image"), 0666))
	_, err = Open(txt)
	assert.ErrorContains(t, err, "not an image")

	_, err = Open(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
}
