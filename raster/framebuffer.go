// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image"
	"image/color"
	"image/draw"

	"cogentcore.org/orbit/math32"
)

// Framebuffer is a color image with a matching depth buffer.
type Framebuffer struct {

	// Color is the rendered image.
	Color *image.RGBA

	// Depth holds the normalized device depth of the nearest fragment
	// drawn at each pixel, row major.
	Depth []float32

	// Background is the color the image is cleared to.
	Background color.RGBA
}

// NewFramebuffer returns a new framebuffer of the given size
// with a black background.
func NewFramebuffer(size image.Point) *Framebuffer {
	fb := &Framebuffer{Background: color.RGBA{0, 0, 0, 255}}
	fb.Resize(size)
	return fb
}

// Size returns the size of the framebuffer in pixels.
func (fb *Framebuffer) Size() image.Point {
	return fb.Color.Bounds().Size()
}

// Resize reallocates the buffers if the size has changed,
// returning true if it did. Sizes are at least 1x1.
func (fb *Framebuffer) Resize(size image.Point) bool {
	size.X = max(size.X, 1)
	size.Y = max(size.Y, 1)
	if fb.Color != nil && fb.Size() == size {
		return false
	}
	fb.Color = image.NewRGBA(image.Rectangle{Max: size})
	fb.Depth = make([]float32, size.X*size.Y)
	fb.Clear()
	return true
}

// Clear fills the image with the background and resets the depth buffer.
func (fb *Framebuffer) Clear() {
	draw.Draw(fb.Color, fb.Color.Bounds(), image.NewUniform(fb.Background), image.Point{}, draw.Src)
	inf := math32.Inf(1)
	for i := range fb.Depth {
		fb.Depth[i] = inf
	}
}

// nearer returns the depth buffer index of x, y and whether z is
// nearer than the fragment already drawn there.
func (fb *Framebuffer) nearer(x, y int, z float32) (int, bool) {
	i := y*fb.Color.Stride/4 + x
	return i, z < fb.Depth[i]
}
