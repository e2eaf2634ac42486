// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This package is based extensively on https://github.com/g3n/engine :
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package obj parses the Wavefront OBJ file format (*.obj) into
// indexed triangle meshes. Only geometry is supported: materials (mtllib,
// usemtl) are ignored since entity textures come from the scene configuration.
// Basic format info: https://en.wikipedia.org/wiki/Wavefront_.obj_file
package obj

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"cogentcore.org/orbit/base/errors"
	"cogentcore.org/orbit/math32"
)

// Vertex is one mesh vertex.
type Vertex struct {
	Pos    math32.Vector3
	UV     math32.Vector2
	Normal math32.Vector3
}

// Mesh is an indexed triangle mesh: every three Indices form a triangle.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
}

// NTriangles returns the number of triangles in the mesh.
func (ms *Mesh) NTriangles() int {
	return len(ms.Indices) / 3
}

// Triangle returns the three vertices of triangle i.
func (ms *Mesh) Triangle(i int) (a, b, c *Vertex) {
	return &ms.Vertices[ms.Indices[3*i]], &ms.Vertices[ms.Indices[3*i+1]], &ms.Vertices[ms.Indices[3*i+2]]
}

// Quad returns the unit square in the XY plane centered at the origin,
// facing +Z, used for objects without a mesh file.
func Quad() *Mesh {
	nrm := math32.Vec3(0, 0, 1)
	return &Mesh{
		Name: "quad",
		Vertices: []Vertex{
			{math32.Vec3(0.5, 0.5, 0), math32.Vec2(1, 1), nrm},
			{math32.Vec3(0.5, -0.5, 0), math32.Vec2(1, 0), nrm},
			{math32.Vec3(-0.5, -0.5, 0), math32.Vec2(0, 0), nrm},
			{math32.Vec3(-0.5, 0.5, 0), math32.Vec2(0, 1), nrm},
		},
		Indices: []uint32{0, 1, 3, 1, 2, 3},
	}
}

// Open decodes the mesh in the given .obj file.
// An empty filename returns [Quad].
func Open(filename string) (*Mesh, error) {
	if filename == "" {
		return Quad(), nil
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ms, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("obj: %s: %w", filename, err)
	}
	ms.Name = filename
	return ms, nil
}

// Decode reads OBJ data from r and returns the mesh of all its faces.
func Decode(r io.Reader) (*Mesh, error) {
	dec := &Decoder{}
	if err := dec.parse(r); err != nil {
		return nil, err
	}
	for _, w := range dec.Warnings {
		slog.Debug("obj: " + w)
	}
	return dec.Mesh()
}

// Decoder contains all decoded data from an obj file.
type Decoder struct {
	Vertices []math32.Vector3 // vertex positions
	Normals  []math32.Vector3 // vertex normals
	UVs      []math32.Vector2 // vertex texture coordinates
	Faces    []Face           // faces, in file order
	Warnings []string         // warning messages
	line     int              // current line number
}

// Face holds the per-corner indices of one face.
// Missing UV or normal indices are -1.
type Face struct {
	Vertices []int
	UVs      []int
	Normals  []int
}

const blanks = "\r\n\t "

// parse reads the lines from the specified reader and dispatches them.
func (dec *Decoder) parse(reader io.Reader) error {
	bufin := bufio.NewReader(reader)
	dec.line = 1
	for {
		line, err := bufin.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		perr := dec.parseLine(strings.Trim(line, blanks))
		if perr != nil {
			return perr
		}
		if err == io.EOF {
			break
		}
		dec.line++
	}
	return nil
}

func (dec *Decoder) parseLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	ltype := fields[0]
	if strings.HasPrefix(ltype, "#") {
		return nil
	}
	switch ltype {
	case "v":
		v, err := dec.parseFloats(fields[1:], 3, "v")
		if err != nil {
			return err
		}
		dec.Vertices = append(dec.Vertices, math32.Vec3(v[0], v[1], v[2]))
	case "vn":
		v, err := dec.parseFloats(fields[1:], 3, "vn")
		if err != nil {
			return err
		}
		dec.Normals = append(dec.Normals, math32.Vec3(v[0], v[1], v[2]))
	case "vt":
		v, err := dec.parseFloats(fields[1:], 2, "vt")
		if err != nil {
			return err
		}
		dec.UVs = append(dec.UVs, math32.Vec2(v[0], v[1]))
	case "f":
		return dec.parseFace(fields[1:])
	case "o", "g", "s", "mtllib", "usemtl":
	default:
		dec.appendWarn("field not supported: " + ltype)
	}
	return nil
}

func (dec *Decoder) parseFloats(fields []string, n int, ltype string) ([]float32, error) {
	if len(fields) < n {
		return nil, dec.formatError(fmt.Sprintf("less than %d values in '%s' line", n, ltype))
	}
	vals := make([]float32, n)
	for i, f := range fields[:n] {
		val, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return nil, dec.formatError(err.Error())
		}
		vals[i] = float32(val)
	}
	return vals, nil
}

// parseFace parses a face description line:
// f v1[/vt1][/vn1] v2[/vt2][/vn2] v3[/vt3][/vn3] ...
func (dec *Decoder) parseFace(fields []string) error {
	if len(fields) < 3 {
		return dec.formatError("face line with less than 3 fields")
	}
	face := Face{
		Vertices: make([]int, len(fields)),
		UVs:      make([]int, len(fields)),
		Normals:  make([]int, len(fields)),
	}
	for pos, f := range fields {
		vfields := strings.Split(f, "/")
		vi, err := dec.parseIndex(vfields[0], len(dec.Vertices), "vertex")
		if err != nil {
			return err
		}
		face.Vertices[pos] = vi
		face.UVs[pos] = -1
		face.Normals[pos] = -1
		if len(vfields) > 1 && vfields[1] != "" {
			if face.UVs[pos], err = dec.parseIndex(vfields[1], len(dec.UVs), "uv"); err != nil {
				return err
			}
		}
		if len(vfields) > 2 && vfields[2] != "" {
			if face.Normals[pos], err = dec.parseIndex(vfields[2], len(dec.Normals), "normal"); err != nil {
				return err
			}
		}
	}
	dec.Faces = append(dec.Faces, face)
	return nil
}

// parseIndex converts a 1-based or negative (relative to the
// n elements parsed so far) OBJ index into a 0-based index.
func (dec *Decoder) parseIndex(s string, n int, what string) (int, error) {
	val, err := strconv.Atoi(s)
	if err != nil {
		return 0, dec.formatError(err.Error())
	}
	switch {
	case val > 0:
		val--
	case val < 0:
		val += n
	default:
		return 0, dec.formatError("face " + what + " index value equal to 0")
	}
	if val < 0 || val >= n {
		return 0, dec.formatError(fmt.Sprintf("face %s index %s out of range", what, s))
	}
	return val, nil
}

// Mesh triangulates the decoded faces as fans around their first corner.
// Corners without a normal get the flat normal of their face.
func (dec *Decoder) Mesh() (*Mesh, error) {
	if len(dec.Faces) == 0 {
		return nil, errors.New("no faces")
	}
	ms := &Mesh{}
	for fi := range dec.Faces {
		face := &dec.Faces[fi]
		base := uint32(len(ms.Vertices))
		for ci := range face.Vertices {
			ms.Vertices = append(ms.Vertices, dec.vertex(face, ci))
		}
		nc := uint32(len(face.Vertices))
		for ci := uint32(2); ci < nc; ci++ {
			ms.Indices = append(ms.Indices, base, base+ci-1, base+ci)
		}
		a, b, c := ms.Vertices[base].Pos, ms.Vertices[base+1].Pos, ms.Vertices[base+2].Pos
		nrm := math32.Normal(a, b, c)
		for ci := range face.Normals {
			if face.Normals[ci] < 0 {
				ms.Vertices[base+uint32(ci)].Normal = nrm
			}
		}
	}
	return ms, nil
}

func (dec *Decoder) vertex(face *Face, ci int) Vertex {
	v := Vertex{Pos: dec.Vertices[face.Vertices[ci]]}
	if ui := face.UVs[ci]; ui >= 0 {
		v.UV = dec.UVs[ui]
	}
	if ni := face.Normals[ci]; ni >= 0 {
		v.Normal = dec.Normals[ni]
	}
	return v
}

func (dec *Decoder) appendWarn(msg string) {
	dec.Warnings = append(dec.Warnings, fmt.Sprintf("line %d: %s", dec.line, msg))
}

func (dec *Decoder) formatError(msg string) error {
	return fmt.Errorf("format error at line %d: %s", dec.line, msg)
}
