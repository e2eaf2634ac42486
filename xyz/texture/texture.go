// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texture provides mip-mapped textures sampled
// by texture coordinates.
package texture

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"cogentcore.org/orbit/base/iox/imagex"
	"cogentcore.org/orbit/math32"
	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
)

// headerSize is the number of bytes filetype needs to match any type.
const headerSize = 261

// Texture is an image with a chain of successively halved mip levels.
// Levels[0] is the full resolution image and the last level is 1x1.
type Texture struct {
	Name   string
	Levels []*image.RGBA
}

// New returns a new texture for the given image.
func New(name string, img image.Image) *Texture {
	tx := &Texture{Name: name}
	lvl := imagex.AsRGBA(img)
	tx.Levels = append(tx.Levels, lvl)
	for {
		sz := lvl.Bounds().Size()
		if sz.X <= 1 && sz.Y <= 1 {
			break
		}
		lvl = transform.Resize(lvl, max(sz.X/2, 1), max(sz.Y/2, 1), transform.Linear)
		tx.Levels = append(tx.Levels, lvl)
	}
	return tx
}

// Solid returns a 1x1 texture of the given color.
func Solid(c color.RGBA) *Texture {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, c)
	return &Texture{Name: fmt.Sprintf("solid %v", c), Levels: []*image.RGBA{img}}
}

// Open loads the texture in the given image file, after checking
// from its contents that it is an image.
func Open(filename string) (*Texture, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	head := make([]byte, headerSize)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("texture %s: %w", filename, err)
	}
	head = head[:n]
	if !filetype.IsImage(head) {
		kind, _ := filetype.Match(head)
		return nil, fmt.Errorf("texture %s: not an image (detected %q)", filename, kind.Extension)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	img, _, err := imagex.Read(f)
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w", filename, err)
	}
	return New(filename, img), nil
}

// Size returns the size of the full resolution level.
func (tx *Texture) Size() image.Point {
	return tx.Levels[0].Bounds().Size()
}

// Level returns the mip level for the given level of detail,
// clamped to the available levels.
func (tx *Texture) Level(lod int) *image.RGBA {
	return tx.Levels[math32.Clamp(lod, 0, len(tx.Levels)-1)]
}

// LevelFor returns the level of detail at which one texel covers
// about texelsPerPixel texels of the full resolution image.
func (tx *Texture) LevelFor(texelsPerPixel float32) int {
	if !(texelsPerPixel > 1) {
		return 0
	}
	return min(int(math32.Log2(texelsPerPixel)), len(tx.Levels)-1)
}

// Sample returns the nearest texel of the full resolution level.
func (tx *Texture) Sample(uv math32.Vector2) color.RGBA {
	return tx.SampleLevel(uv, 0)
}

// SampleLevel returns the nearest texel of the given mip level at uv.
// Coordinates wrap around, and v = 0 is the bottom row of the image.
func (tx *Texture) SampleLevel(uv math32.Vector2, lod int) color.RGBA {
	img := tx.Level(lod)
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	u := uv.X - math32.Floor(uv.X)
	v := uv.Y - math32.Floor(uv.Y)
	x := min(int(u*float32(w)), w-1)
	y := min(int((1-v)*float32(h)), h-1)
	return img.RGBAAt(b.Min.X+x, b.Min.Y+y)
}
