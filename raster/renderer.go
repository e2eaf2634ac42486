// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster is a software renderer that draws textured triangle
// meshes into a depth-buffered [image.RGBA], lit by the emissive
// solids of the scene acting as point lights.
package raster

import (
	"image"
	"image/color"

	"cogentcore.org/orbit/xyz/io/obj"
	"cogentcore.org/orbit/xyz/texture"
)

// Shading is how a solid computes the color of its fragments.
type Shading int32

const (
	// Lit solids are shaded by the diffuse light of all emissive solids
	// plus the ambient light.
	Lit Shading = iota

	// Emissive solids are drawn at full brightness tinted by their color,
	// and light the Lit solids as point lights at their position.
	Emissive

	// Unlit solids are drawn at full brightness tinted by their color.
	Unlit
)

// DefaultAmbient is the default ambient light level.
const DefaultAmbient = 0.1

// AlphaCutoff is the texel alpha below which fragments are discarded,
// so that textures with transparent regions can cut holes in a mesh.
const AlphaCutoff = 128

// Renderer draws solids into a [Framebuffer].
type Renderer struct {

	// FB is the framebuffer drawn into.
	FB *Framebuffer

	// Ambient is the light level of Lit solids facing away from all lights.
	Ambient float32

	// Triangles is the number of triangles rasterized since [Renderer.Begin].
	Triangles int

	lights []*Solid
}

// NewRenderer returns a new renderer with a framebuffer of the given size.
func NewRenderer(size image.Point) *Renderer {
	return &Renderer{FB: NewFramebuffer(size), Ambient: DefaultAmbient}
}

// NewSolid returns a new solid drawn by this renderer. The texture
// and normal map may be nil. Emissive solids become lights.
func (r *Renderer) NewSolid(ms *obj.Mesh, tex, normalMap *texture.Texture, clr color.RGBA, shading Shading) *Solid {
	if tex == nil {
		tex = texture.Solid(color.RGBA{255, 255, 255, 255})
	}
	s := &Solid{r: r, Mesh: ms, Texture: tex, NormalMap: normalMap, Color: clr, Shading: shading}
	if shading == Emissive {
		r.lights = append(r.lights, s)
	}
	return s
}

// Resize resizes the framebuffer, returning true if the size changed.
func (r *Renderer) Resize(size image.Point) bool {
	return r.FB.Resize(size)
}

// Begin starts a new frame, clearing the framebuffer.
func (r *Renderer) Begin() {
	r.FB.Clear()
	r.Triangles = 0
}

// Image returns the rendered image.
func (r *Renderer) Image() *image.RGBA {
	return r.FB.Color
}
