// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Decomposition holds the components of a 4x4 transform as returned
// by [Matrix4.Decompose]. Applying them in the order
// perspective * translation * rotation * skew * scale reproduces the matrix.
type Decomposition struct {
	Translation Vector3
	Rotation    Quat
	Scale       Vector3

	// Skew holds the YZ, XZ and XY shear factors.
	Skew Vector3

	// Perspective is the perspective partition of the matrix,
	// (0, 0, 0, 1) for affine transforms.
	Perspective Vector4
}

// Decompose splits the matrix into translation, rotation, scale, skew and
// perspective components. It returns false if the matrix cannot be
// decomposed (zero w scale or a singular upper 3x3 block).
func (m Matrix4) Decompose() (Decomposition, bool) {
	var d Decomposition
	if m[15] == 0 {
		return d, false
	}
	for i := range m {
		m[i] /= m[15]
	}

	pm := m
	pm[3], pm[7], pm[11], pm[15] = 0, 0, 0, 1
	if pm.Determinant() == 0 {
		return d, false
	}

	if m[3] != 0 || m[7] != 0 || m[11] != 0 {
		rhs := Vec4(m[3], m[7], m[11], m[15])
		inv, err := pm.Inverse()
		if err != nil {
			return d, false
		}
		it := inv.Transpose()
		d.Perspective = rhs.MulMatrix4(&it)
		m[3], m[7], m[11], m[15] = 0, 0, 0, 1
	} else {
		d.Perspective = Vec4(0, 0, 0, 1)
	}

	d.Translation = m.Position()
	m[12], m[13], m[14] = 0, 0, 0

	// basis vectors, one per column
	var row [3]Vector3
	for i := 0; i < 3; i++ {
		row[i] = Vec3(m[i*4], m[i*4+1], m[i*4+2])
	}

	d.Scale.X = row[0].Length()
	row[0] = row[0].Normal()

	d.Skew.Z = row[0].Dot(row[1])
	row[1] = row[1].Sub(row[0].MulScalar(d.Skew.Z))

	d.Scale.Y = row[1].Length()
	row[1] = row[1].Normal()
	d.Skew.Z /= d.Scale.Y

	d.Skew.Y = row[0].Dot(row[2])
	row[2] = row[2].Sub(row[0].MulScalar(d.Skew.Y))
	d.Skew.X = row[1].Dot(row[2])
	row[2] = row[2].Sub(row[1].MulScalar(d.Skew.X))

	d.Scale.Z = row[2].Length()
	row[2] = row[2].Normal()
	d.Skew.Y /= d.Scale.Z
	d.Skew.X /= d.Scale.Z

	// coordinate system flip
	if row[0].Dot(row[1].Cross(row[2])) < 0 {
		d.Scale = d.Scale.Negate()
		for i := range row {
			row[i] = row[i].Negate()
		}
	}

	var rm Matrix4
	for i := 0; i < 3; i++ {
		rm[i*4] = row[i].X
		rm[i*4+1] = row[i].Y
		rm[i*4+2] = row[i].Z
	}
	rm[15] = 1
	d.Rotation.SetFromRotationMatrix(&rm)
	d.Rotation.Normalize()
	return d, true
}

// WorldPosition returns the translation component of the given model
// matrix, extracted through [Matrix4.Decompose]. A matrix that cannot be
// decomposed falls back to its raw translation column.
func WorldPosition(m *Matrix4) Vector3 {
	d, ok := m.Decompose()
	if !ok {
		return m.Position()
	}
	return d.Translation
}
