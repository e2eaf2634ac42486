// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image/color"

	"cogentcore.org/orbit/math32"
	"cogentcore.org/orbit/xyz/io/obj"
	"cogentcore.org/orbit/xyz/texture"
)

// Solid is a mesh with a texture, drawn by a [Renderer].
// It implements the xyz.Drawable interface.
type Solid struct {
	r *Renderer

	// Mesh is the triangle mesh in model coordinates.
	Mesh *obj.Mesh

	// Texture is the color texture.
	Texture *texture.Texture

	// NormalMap is an optional tangent space normal map.
	NormalMap *texture.Texture

	// Color tints the texture, and is the light color of Emissive solids.
	Color color.RGBA

	// Shading is how fragments are colored.
	Shading Shading

	// Position is the world position at the last Draw.
	Position math32.Vector3
}

// drawState holds the per-draw transforms.
type drawState struct {
	mvp    math32.Matrix4
	model  math32.Matrix4
	normal math32.Matrix4
	eye    math32.Vector3
}

// Draw rasterizes the mesh with the given transforms.
func (s *Solid) Draw(projection, view, model *math32.Matrix4) {
	s.Position = model.Position()
	if s.Mesh == nil {
		return
	}
	ds := drawState{
		mvp:   projection.Mul(*view).Mul(*model),
		model: *model,
	}
	if inv, err := model.Inverse(); err == nil {
		ds.normal = inv.Transpose()
	} else {
		ds.normal = *model
	}
	if iv, err := view.Inverse(); err == nil {
		ds.eye = iv.Position()
	}

	var poly, clipped [9]clipVertex
	ms := s.Mesh
	for ti := 0; ti < ms.NTriangles(); ti++ {
		a, b, c := ms.Triangle(ti)
		tri := poly[:3]
		tri[0] = ds.vertex(a)
		tri[1] = ds.vertex(b)
		tri[2] = ds.vertex(c)
		out := clipNear(tri, clipped[:0])
		if len(out) < 3 {
			continue
		}
		ts := s.triangleState(&ds, a, b, c)
		for i := 2; i < len(out); i++ {
			s.r.fillTriangle(&out[0], &out[i-1], &out[i], func(f *fragment) (color.RGBA, bool) {
				return s.shade(&ds, &ts, f)
			})
		}
	}
}

func (ds *drawState) vertex(v *obj.Vertex) clipVertex {
	return clipVertex{
		clip:   math32.Vector4FromVector3(v.Pos, 1).MulMatrix4(&ds.mvp),
		world:  v.Pos.MulMatrix4AsPoint(&ds.model),
		normal: v.Normal.MulMatrix4AsVector(&ds.normal),
		uv:     v.UV,
	}
}

// triangleState holds the per-triangle shading inputs.
type triangleState struct {
	lod                int
	tangent, bitangent math32.Vector3
	hasTangents        bool
}

func (s *Solid) triangleState(ds *drawState, a, b, c *obj.Vertex) triangleState {
	var ts triangleState
	du1, dv1 := b.UV.X-a.UV.X, b.UV.Y-a.UV.Y
	du2, dv2 := c.UV.X-a.UV.X, c.UV.Y-a.UV.Y
	det := du1*dv2 - du2*dv1

	sz := s.Texture.Size()
	uvArea := math32.Abs(det) / 2 * float32(sz.X*sz.Y)
	pa, pb, pc := ds.screen(a), ds.screen(b), ds.screen(c)
	if area := math32.Abs(edge(pa, pb, pc)) / 2 * s.r.pixelScale(); area > 0 {
		ts.lod = s.Texture.LevelFor(math32.Sqrt(uvArea / area))
	}

	if s.NormalMap == nil || math32.Abs(det) < 1e-12 {
		return ts
	}
	wa := a.Pos.MulMatrix4AsPoint(&ds.model)
	e1 := b.Pos.MulMatrix4AsPoint(&ds.model).Sub(wa)
	e2 := c.Pos.MulMatrix4AsPoint(&ds.model).Sub(wa)
	r := 1 / det
	ts.tangent = e1.MulScalar(dv2).Sub(e2.MulScalar(dv1)).MulScalar(r).Normal()
	ts.bitangent = e2.MulScalar(du1).Sub(e1.MulScalar(du2)).MulScalar(r).Normal()
	ts.hasTangents = true
	return ts
}

// screen returns the normalized device xy of v, for area estimates.
func (ds *drawState) screen(v *obj.Vertex) math32.Vector2 {
	c := math32.Vector4FromVector3(v.Pos, 1).MulMatrix4(&ds.mvp)
	if c.W <= 0 {
		return math32.Vector2{}
	}
	return math32.Vec2(c.X/c.W, c.Y/c.W)
}

// shade returns the color of a fragment, or false if the texel
// alpha is below [AlphaCutoff].
func (s *Solid) shade(ds *drawState, ts *triangleState, f *fragment) (color.RGBA, bool) {
	tx := s.Texture.SampleLevel(f.uv, ts.lod)
	if tx.A < AlphaCutoff {
		return color.RGBA{}, false
	}
	base := rgb(tx).mul(rgb(s.Color))
	if s.Shading != Lit || len(s.r.lights) == 0 {
		return base.rgba(), true
	}
	n := f.normal.Normal()
	if ts.hasTangents {
		m := rgb(s.NormalMap.SampleLevel(f.uv, ts.lod))
		n = ts.tangent.MulScalar(2*m.r - 1).
			Add(ts.bitangent.MulScalar(2*m.g - 1)).
			Add(n.MulScalar(2*m.b - 1)).Normal()
	}
	if n.Dot(ds.eye.Sub(f.world)) < 0 {
		n = n.Negate()
	}
	light := fcolor{s.r.Ambient, s.r.Ambient, s.r.Ambient}
	for _, l := range s.r.lights {
		d := n.Dot(l.Position.Sub(f.world).Normal())
		if d > 0 {
			light = light.add(rgb(l.Color).scale(d))
		}
	}
	return base.mul(light).rgba(), true
}

// fcolor is a linear color with components in [0, 1].
type fcolor struct {
	r, g, b float32
}

func rgb(c color.RGBA) fcolor {
	return fcolor{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}

func (c fcolor) mul(o fcolor) fcolor {
	return fcolor{c.r * o.r, c.g * o.g, c.b * o.b}
}

func (c fcolor) add(o fcolor) fcolor {
	return fcolor{c.r + o.r, c.g + o.g, c.b + o.b}
}

func (c fcolor) scale(s float32) fcolor {
	return fcolor{c.r * s, c.g * s, c.b * s}
}

func (c fcolor) rgba() color.RGBA {
	ch := func(v float32) uint8 {
		return uint8(math32.Clamp(v, 0, 1)*255 + 0.5)
	}
	return color.RGBA{ch(c.r), ch(c.g), ch(c.b), 255}
}
