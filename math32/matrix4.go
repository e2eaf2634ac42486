// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import "errors"

// Matrix4 is 4x4 matrix organized internally as column matrix.
// Multiplication follows the usual math convention: a.Mul(b) applies
// b first and then a, so T.Mul(R).Mul(S) scales, rotates, then translates.
type Matrix4 [16]float32

// ErrSingular is returned when inverting a matrix with a zero determinant.
var ErrSingular = errors.New("math32: matrix is singular")

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation4 returns a translation matrix by the given vector.
func Translation4(v Vector3) Matrix4 {
	m := Identity4()
	m[12] = v.X
	m[13] = v.Y
	m[14] = v.Z
	return m
}

// Scale4 returns a scaling matrix with the given per-axis factors.
func Scale4(v Vector3) Matrix4 {
	m := Identity4()
	m[0] = v.X
	m[5] = v.Y
	m[10] = v.Z
	return m
}

// Rotation4 returns a rotation matrix of angle radians about the given axis,
// which is normalized first. A zero axis returns the identity matrix.
func Rotation4(axis Vector3, angle float32) Matrix4 {
	if axis.IsNil() {
		return Identity4()
	}
	a := axis.Normal()
	s, c := Sincos(angle)
	t := 1 - c
	x, y, z := a.X, a.Y, a.Z
	return Matrix4{
		t*x*x + c, t*x*y + s*z, t*x*z - s*y, 0,
		t*x*y - s*z, t*y*y + c, t*y*z + s*x, 0,
		t*x*z + s*y, t*y*z - s*x, t*z*z + c, 0,
		0, 0, 0, 1,
	}
}

// RotationY4 returns a rotation matrix of angle radians about the Y axis.
func RotationY4(angle float32) Matrix4 {
	return Rotation4(Vector3Y, angle)
}

// Mul returns the matrix product m * o.
func (m Matrix4) Mul(o Matrix4) Matrix4 {
	var r Matrix4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			r[col*4+row] = m[row]*o[col*4] + m[4+row]*o[col*4+1] + m[8+row]*o[col*4+2] + m[12+row]*o[col*4+3]
		}
	}
	return r
}

// Rotate returns m * Rotation4(axis, angle), rotating in the local frame of m.
func (m Matrix4) Rotate(axis Vector3, angle float32) Matrix4 {
	return m.Mul(Rotation4(axis, angle))
}

// Scale returns m * Scale4(v), scaling in the local frame of m.
func (m Matrix4) Scale(v Vector3) Matrix4 {
	return m.Mul(Scale4(v))
}

// Position returns the translation component of the matrix.
func (m Matrix4) Position() Vector3 {
	return Vec3(m[12], m[13], m[14])
}

// Transpose returns the transposed matrix.
func (m Matrix4) Transpose() Matrix4 {
	var r Matrix4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			r[row*4+col] = m[col*4+row]
		}
	}
	return r
}

// Determinant calculates and returns the determinant of this matrix.
func (m Matrix4) Determinant() float32 {
	n11 := m[0]
	n12 := m[4]
	n13 := m[8]
	n14 := m[12]
	n21 := m[1]
	n22 := m[5]
	n23 := m[9]
	n24 := m[13]
	n31 := m[2]
	n32 := m[6]
	n33 := m[10]
	n34 := m[14]
	n41 := m[3]
	n42 := m[7]
	n43 := m[11]
	n44 := m[15]

	return n41*(+n14*n23*n32-n13*n24*n32-n14*n22*n33+n12*n24*n33+n13*n22*n34-n12*n23*n34) +
		n42*(+n11*n23*n34-n11*n24*n33+n14*n21*n33-n13*n21*n34+n13*n24*n31-n14*n23*n31) +
		n43*(+n11*n24*n32-n11*n22*n34-n14*n21*n32+n12*n21*n34+n14*n22*n31-n12*n24*n31) +
		n44*(-n13*n22*n31-n11*n23*n32+n11*n22*n33+n13*n21*n32-n12*n21*n33+n12*n23*n31)
}

// Inverse returns the inverse of this matrix, or [ErrSingular]
// (with the identity matrix) if the determinant is zero.
func (m Matrix4) Inverse() (Matrix4, error) {
	n11 := m[0]
	n21 := m[1]
	n31 := m[2]
	n41 := m[3]
	n12 := m[4]
	n22 := m[5]
	n32 := m[6]
	n42 := m[7]
	n13 := m[8]
	n23 := m[9]
	n33 := m[10]
	n43 := m[11]
	n14 := m[12]
	n24 := m[13]
	n34 := m[14]
	n44 := m[15]

	t11 := n23*n34*n42 - n24*n33*n42 + n24*n32*n43 - n22*n34*n43 - n23*n32*n44 + n22*n33*n44
	t12 := n14*n33*n42 - n13*n34*n42 - n14*n32*n43 + n12*n34*n43 + n13*n32*n44 - n12*n33*n44
	t13 := n13*n24*n42 - n14*n23*n42 + n14*n22*n43 - n12*n24*n43 - n13*n22*n44 + n12*n23*n44
	t14 := n14*n23*n32 - n13*n24*n32 - n14*n22*n33 + n12*n24*n33 + n13*n22*n34 - n12*n23*n34

	det := n11*t11 + n21*t12 + n31*t13 + n41*t14
	if det == 0 {
		return Identity4(), ErrSingular
	}
	detInv := 1 / det

	var r Matrix4
	r[0] = t11 * detInv
	r[1] = (n24*n33*n41 - n23*n34*n41 - n24*n31*n43 + n21*n34*n43 + n23*n31*n44 - n21*n33*n44) * detInv
	r[2] = (n22*n34*n41 - n24*n32*n41 + n24*n31*n42 - n21*n34*n42 - n22*n31*n44 + n21*n32*n44) * detInv
	r[3] = (n23*n32*n41 - n22*n33*n41 - n23*n31*n42 + n21*n33*n42 + n22*n31*n43 - n21*n32*n43) * detInv

	r[4] = t12 * detInv
	r[5] = (n13*n34*n41 - n14*n33*n41 + n14*n31*n43 - n11*n34*n43 - n13*n31*n44 + n11*n33*n44) * detInv
	r[6] = (n14*n32*n41 - n12*n34*n41 - n14*n31*n42 + n11*n34*n42 + n12*n31*n44 - n11*n32*n44) * detInv
	r[7] = (n12*n33*n41 - n13*n32*n41 + n13*n31*n42 - n11*n33*n42 - n12*n31*n43 + n11*n32*n43) * detInv

	r[8] = t13 * detInv
	r[9] = (n14*n23*n41 - n13*n24*n41 - n14*n21*n43 + n11*n24*n43 + n13*n21*n44 - n11*n23*n44) * detInv
	r[10] = (n12*n24*n41 - n14*n22*n41 + n14*n21*n42 - n11*n24*n42 - n12*n21*n44 + n11*n22*n44) * detInv
	r[11] = (n13*n22*n41 - n12*n23*n41 - n13*n21*n42 + n11*n23*n42 + n12*n21*n43 - n11*n22*n43) * detInv

	r[12] = t14 * detInv
	r[13] = (n13*n24*n31 - n14*n23*n31 + n14*n21*n33 - n11*n24*n33 - n13*n21*n34 + n11*n23*n34) * detInv
	r[14] = (n14*n22*n31 - n12*n24*n31 - n14*n21*n32 + n11*n24*n32 + n12*n21*n34 - n11*n22*n34) * detInv
	r[15] = (n12*n23*n31 - n13*n22*n31 + n13*n21*n32 - n11*n23*n32 - n12*n21*n33 + n11*n22*n33) * detInv

	return r, nil
}

// IsFinite returns true if no element is NaN or infinite.
func (m Matrix4) IsFinite() bool {
	for _, v := range m {
		if !IsFinite(v) {
			return false
		}
	}
	return true
}

// ApproxEqual returns true if every element of m is within tol of o.
func (m Matrix4) ApproxEqual(o Matrix4, tol float32) bool {
	for i := range m {
		if Abs(m[i]-o[i]) > tol {
			return false
		}
	}
	return true
}

// LookAt4 returns a right-handed view matrix for a camera at eye looking
// at target, with the given up direction. If eye and target coincide, the
// view only translates; if the view direction is parallel to up, an
// alternative up axis is used.
func LookAt4(eye, target, up Vector3) Matrix4 {
	f := target.Sub(eye)
	if f.IsNil() {
		return Translation4(eye.Negate())
	}
	f = f.Normal()
	s := f.Cross(up)
	if s.LengthSquared() < 1e-12 {
		s = f.Cross(Vector3Z)
		if s.LengthSquared() < 1e-12 {
			s = f.Cross(Vector3X)
		}
	}
	s = s.Normal()
	u := s.Cross(f)

	return Matrix4{
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1,
	}
}

// Perspective4 returns a right-handed perspective projection matrix with
// clip-space depth in [-1, 1]. fovy is the vertical field of view in radians.
func Perspective4(fovy, aspect, near, far float32) Matrix4 {
	tanHalf := Tan(fovy / 2)
	var m Matrix4
	m[0] = 1 / (aspect * tanHalf)
	m[5] = 1 / tanHalf
	m[10] = -(far + near) / (far - near)
	m[11] = -1
	m[14] = -(2 * far * near) / (far - near)
	return m
}
