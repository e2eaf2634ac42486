// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image/color"

	"cogentcore.org/orbit/math32"
)

// clipVertex is a vertex in clip space with the attributes
// that are interpolated across its triangles.
type clipVertex struct {
	clip   math32.Vector4
	world  math32.Vector3
	normal math32.Vector3
	uv     math32.Vector2
}

// fragment is the interpolated attributes at one pixel.
type fragment struct {
	world  math32.Vector3
	normal math32.Vector3
	uv     math32.Vector2
}

func lerp3(a, b math32.Vector3, t float32) math32.Vector3 {
	return a.Add(b.Sub(a).MulScalar(t))
}

func lerpVertex(a, b *clipVertex, t float32) clipVertex {
	return clipVertex{
		clip: math32.Vec4(
			a.clip.X+(b.clip.X-a.clip.X)*t,
			a.clip.Y+(b.clip.Y-a.clip.Y)*t,
			a.clip.Z+(b.clip.Z-a.clip.Z)*t,
			a.clip.W+(b.clip.W-a.clip.W)*t),
		world:  lerp3(a.world, b.world, t),
		normal: lerp3(a.normal, b.normal, t),
		uv:     math32.Vec2(a.uv.X+(b.uv.X-a.uv.X)*t, a.uv.Y+(b.uv.Y-a.uv.Y)*t),
	}
}

// clipNear clips the convex polygon in against the near plane z >= -w,
// appending the result to out. Nothing is clipped at the far plane:
// depth beyond it is clamped instead.
func clipNear(in, out []clipVertex) []clipVertex {
	n := len(in)
	for i := 0; i < n; i++ {
		a, b := &in[i], &in[(i+1)%n]
		da := a.clip.Z + a.clip.W
		db := b.clip.Z + b.clip.W
		if da >= 0 {
			out = append(out, *a)
		}
		if (da >= 0) != (db >= 0) {
			out = append(out, lerpVertex(a, b, da/(da-db)))
		}
	}
	return out
}

// edge returns twice the signed area of the triangle a, b, p.
func edge(a, b, p math32.Vector2) float32 {
	return (p.X-a.X)*(b.Y-a.Y) - (p.Y-a.Y)*(b.X-a.X)
}

// pixelScale is the number of pixels per unit of normalized device area.
func (r *Renderer) pixelScale() float32 {
	sz := r.FB.Size()
	return float32(sz.X*sz.Y) / 4
}

// screenVertex is a clipped vertex in window coordinates.
type screenVertex struct {
	pos  math32.Vector2
	z    float32
	invW float32
	v    *clipVertex
}

func (r *Renderer) toScreen(v *clipVertex) (screenVertex, bool) {
	if v.clip.W < 1e-6 {
		return screenVertex{}, false
	}
	sz := r.FB.Size()
	iw := 1 / v.clip.W
	return screenVertex{
		pos:  math32.Vec2((v.clip.X*iw+1)/2*float32(sz.X), (1-v.clip.Y*iw)/2*float32(sz.Y)),
		z:    math32.Clamp(v.clip.Z*iw, -1, 1),
		invW: iw,
		v:    v,
	}, true
}

// fillTriangle rasterizes the triangle a, b, c with a depth test,
// sampling pixel centers and coloring fragments with shade.
// Fragments for which shade returns false are discarded and leave
// the depth buffer unchanged. Both windings are drawn.
func (r *Renderer) fillTriangle(ca, cb, cc *clipVertex, shade func(f *fragment) (color.RGBA, bool)) {
	a, oka := r.toScreen(ca)
	b, okb := r.toScreen(cb)
	c, okc := r.toScreen(cc)
	if !oka || !okb || !okc {
		return
	}
	area := edge(a.pos, b.pos, c.pos)
	if math32.Abs(area) < 1e-9 {
		return
	}
	r.Triangles++

	sz := r.FB.Size()
	minX := max(int(math32.Floor(min(a.pos.X, b.pos.X, c.pos.X))), 0)
	maxX := min(int(math32.Floor(max(a.pos.X, b.pos.X, c.pos.X))), sz.X-1)
	minY := max(int(math32.Floor(min(a.pos.Y, b.pos.Y, c.pos.Y))), 0)
	maxY := min(int(math32.Floor(max(a.pos.Y, b.pos.Y, c.pos.Y))), sz.Y-1)

	inv := 1 / area
	img := r.FB.Color
	var f fragment
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := math32.Vec2(float32(x)+0.5, float32(y)+0.5)
			l0 := edge(b.pos, c.pos, p) * inv
			l1 := edge(c.pos, a.pos, p) * inv
			l2 := edge(a.pos, b.pos, p) * inv
			if l0 < 0 || l1 < 0 || l2 < 0 {
				continue
			}
			z := l0*a.z + l1*b.z + l2*c.z
			di, ok := r.FB.nearer(x, y, z)
			if !ok {
				continue
			}
			// perspective correct weights
			w0, w1, w2 := l0*a.invW, l1*b.invW, l2*c.invW
			iw := 1 / (w0 + w1 + w2)
			w0, w1, w2 = w0*iw, w1*iw, w2*iw
			f.world = a.v.world.MulScalar(w0).Add(b.v.world.MulScalar(w1)).Add(c.v.world.MulScalar(w2))
			f.normal = a.v.normal.MulScalar(w0).Add(b.v.normal.MulScalar(w1)).Add(c.v.normal.MulScalar(w2))
			f.uv = a.v.uv.MulScalar(w0).Add(b.v.uv.MulScalar(w1)).Add(c.v.uv.MulScalar(w2))
			clr, ok := shade(&f)
			if !ok {
				continue
			}
			r.FB.Depth[di] = z
			img.SetRGBA(x, y, clr)
		}
	}
}
