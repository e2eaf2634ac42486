// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package obj

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/orbit/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cubeFace = `# one face of a cube, as a quad
o face
v -1 -1 1
v 1 -1 1
v 1 1 1
v -1 1 1
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
usemtl unused
s off
f 1/1/1 2/2/1 3/3/1 4/4/1
`

func TestDecodeQuadFace(t *testing.T) {
	ms, err := Decode(strings.NewReader(cubeFace))
	require.NoError(t, err)
	assert.Len(t, ms.Vertices, 4)
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, ms.Indices)
	assert.Equal(t, 2, ms.NTriangles())

	a, b, c := ms.Triangle(1)
	assert.Equal(t, math32.Vec3(-1, -1, 1), a.Pos)
	assert.Equal(t, math32.Vec3(1, 1, 1), b.Pos)
	assert.Equal(t, math32.Vec2(0, 1), c.UV)
	assert.Equal(t, math32.Vec3(0, 0, 1), c.Normal)
}

func TestDecodeIndexForms(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 0 1 0
vt 0.5 0.5
f -3//  -2 -1/1
`
	ms, err := Decode(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, ms.Vertices, 3)
	assert.Equal(t, math32.Vec3(1, 0, 0), ms.Vertices[1].Pos)
	assert.Equal(t, math32.Vec2(0.5, 0.5), ms.Vertices[2].UV)
	// flat normal from the counter-clockwise winding
	for _, v := range ms.Vertices {
		assert.Equal(t, math32.Vec3(0, 0, 1), v.Normal)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []string{
		"v 0 0\n",
		"v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2\n",
		"v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n",
		"v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n",
		"v 0 0 x\n",
		"# nothing\n",
	}
	for _, src := range tests {
		_, err := Decode(strings.NewReader(src))
		assert.Error(t, err, src)
	}
}

func TestOpen(t *testing.T) {
	ms, err := Open("")
	require.NoError(t, err)
	assert.Equal(t, Quad(), ms)
	assert.Equal(t, []uint32{0, 1, 3, 1, 2, 3}, ms.Indices)

	fn := filepath.Join(t.TempDir(), "face.obj")
	require.NoError(t, os.WriteFile(fn, []byte(cubeFace), 0666))
	ms, err = Open(fn)
	require.NoError(t, err)
	assert.Equal(t, fn, ms.Name)
	assert.Equal(t, 2, ms.NTriangles())

	_, err = Open(filepath.Join(t.TempDir(), "missing.obj"))
	assert.Error(t, err)
}
