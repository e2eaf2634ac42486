// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/orbit/base/iox/imagex"
	"cogentcore.org/orbit/math32"
	"cogentcore.org/orbit/xyz/io/obj"
	"cogentcore.org/orbit/xyz/texture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	red   = color.RGBA{255, 0, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
)

// camera looks at the origin from z = 2 with a 90 degree field of view,
// so the unit quad covers the middle quarter of the image.
func camera() (prj, view math32.Matrix4) {
	prj = math32.Perspective4(math32.DegToRad(90), 1, 0.1, 100)
	view = math32.LookAt4(math32.Vec3(0, 0, 2), math32.Vector3{}, math32.Vector3Y)
	return
}

func halves() *texture.Texture {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if x < 2 {
				img.SetRGBA(x, y, red)
			} else {
				img.SetRGBA(x, y, blue)
			}
		}
	}
	return texture.New("halves", img)
}

func TestUnlitTexturedQuad(t *testing.T) {
	r := NewRenderer(image.Pt(32, 32))
	prj, view := camera()
	quad := r.NewSolid(obj.Quad(), halves(), nil, white, Unlit)
	model := math32.Identity4()

	r.Begin()
	quad.Draw(&prj, &view, &model)
	img := r.Image()
	assert.Equal(t, 2, r.Triangles)
	assert.Equal(t, black, img.RGBAAt(0, 0))
	assert.Equal(t, black, img.RGBAAt(31, 31))
	assert.Equal(t, red, img.RGBAAt(13, 16))
	assert.Equal(t, blue, img.RGBAAt(19, 16))
	imagex.Assert(t, img, "quad", 10)

	// cleared by the next frame
	r.Begin()
	assert.Equal(t, black, r.Image().RGBAAt(13, 16))
	assert.Equal(t, 0, r.Triangles)
}

func TestDepth(t *testing.T) {
	r := NewRenderer(image.Pt(32, 32))
	prj, view := camera()
	back := r.NewSolid(obj.Quad(), nil, nil, red, Unlit)
	front := r.NewSolid(obj.Quad(), nil, nil, blue, Unlit)
	bm := math32.Identity4()
	fm := math32.Translation4(math32.Vec3(0, 0, 0.5))

	r.Begin()
	front.Draw(&prj, &view, &fm)
	back.Draw(&prj, &view, &bm)
	assert.Equal(t, blue, r.Image().RGBAAt(16, 16))

	r.Begin()
	back.Draw(&prj, &view, &bm)
	front.Draw(&prj, &view, &fm)
	assert.Equal(t, blue, r.Image().RGBAAt(16, 16))
}

func TestLighting(t *testing.T) {
	r := NewRenderer(image.Pt(32, 32))
	prj, view := camera()
	sun := r.NewSolid(nil, nil, nil, white, Emissive)
	quad := r.NewSolid(obj.Quad(), nil, nil, white, Lit)
	model := math32.Identity4()

	front := math32.Translation4(math32.Vec3(0, 0, 5))
	r.Begin()
	sun.Draw(&prj, &view, &front)
	assert.Equal(t, math32.Vec3(0, 0, 5), sun.Position)
	quad.Draw(&prj, &view, &model)
	assert.Equal(t, white, r.Image().RGBAAt(16, 16))

	// light behind the quad leaves only the ambient light
	behind := math32.Translation4(math32.Vec3(0, 0, -5))
	r.Begin()
	sun.Draw(&prj, &view, &behind)
	quad.Draw(&prj, &view, &model)
	assert.Equal(t, color.RGBA{26, 26, 26, 255}, r.Image().RGBAAt(16, 16))
}

func TestClipNear(t *testing.T) {
	in := []clipVertex{
		{clip: math32.Vec4(0, 0, 0, 1)},
		{clip: math32.Vec4(1, 0, 0, 1)},
		{clip: math32.Vec4(0, 0, -3, 1)},
	}
	out := clipNear(in, nil)
	require.Len(t, out, 4)
	for _, v := range out {
		assert.GreaterOrEqual(t, v.clip.Z+v.clip.W, float32(-1e-6))
	}
	assert.Empty(t, clipNear([]clipVertex{
		{clip: math32.Vec4(0, 0, -3, 1)},
		{clip: math32.Vec4(1, 0, -3, 1)},
		{clip: math32.Vec4(0, 1, -3, 1)},
	}, nil))
}

func TestResize(t *testing.T) {
	fb := NewFramebuffer(image.Pt(0, 0))
	assert.Equal(t, image.Pt(1, 1), fb.Size())
	assert.True(t, fb.Resize(image.Pt(8, 4)))
	assert.False(t, fb.Resize(image.Pt(8, 4)))
	assert.Len(t, fb.Depth, 32)
}

func TestAlphaCutout(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 2; x < 4; x++ {
			img.SetRGBA(x, y, blue)
		}
	}
	r := NewRenderer(image.Pt(32, 32))
	prj, view := camera()
	front := r.NewSolid(obj.Quad(), texture.New("cutout", img), nil, white, Unlit)
	back := r.NewSolid(obj.Quad(), nil, nil, red, Unlit)
	fm := math32.Translation4(math32.Vec3(0, 0, 0.5))
	bm := math32.Identity4()

	r.Begin()
	front.Draw(&prj, &view, &fm)
	back.Draw(&prj, &view, &bm)
	// the transparent half of the front quad leaves the depth buffer alone
	assert.Equal(t, red, r.Image().RGBAAt(14, 16))
	assert.Equal(t, blue, r.Image().RGBAAt(19, 16))
}
