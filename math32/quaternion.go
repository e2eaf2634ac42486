// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import "fmt"

// Quat is quaternion with X,Y,Z and W components.
type Quat struct {
	X float32
	Y float32
	Z float32
	W float32
}

// NewQuatAxisAngle returns a new quaternion from given axis and angle rotation (radians).
// The axis does not need to be normalized.
func NewQuatAxisAngle(axis Vector3, angle float32) Quat {
	nq := Quat{}
	nq.SetFromAxisAngle(axis, angle)
	return nq
}

func (q Quat) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", q.X, q.Y, q.Z, q.W)
}

// SetIdentity sets this quanternion to the identity quaternion.
func (q *Quat) SetIdentity() {
	q.X = 0
	q.Y = 0
	q.Z = 0
	q.W = 1
}

// SetFromAxisAngle sets this quaternion with the rotation
// specified by the given axis and angle.
func (q *Quat) SetFromAxisAngle(axis Vector3, angle float32) {
	axis = axis.Normal()
	s, c := Sincos(angle / 2)
	q.X = axis.X * s
	q.Y = axis.Y * s
	q.Z = axis.Z * s
	q.W = c
}

// ToAxisAngle returns the Vector4 holding axis and angle of this Quaternion.
// The angle is in [0, 2*Pi]. The identity rotation returns the Y axis
// with a zero angle.
func (q Quat) ToAxisAngle() Vector4 {
	q.Normalize()
	if q.W > 1 {
		q.W = 1
	}
	angle := 2 * Atan2(Sqrt(q.X*q.X+q.Y*q.Y+q.Z*q.Z), q.W)
	s := Sqrt(1 - q.W*q.W)
	if s < 1e-6 {
		return Vec4(0, 1, 0, 0)
	}
	return Vec4(q.X/s, q.Y/s, q.Z/s, angle)
}

// AngleAbout returns the signed rotation angle of this quaternion about the
// given axis, wrapped into [-Pi, Pi). It is exact when the quaternion is a
// pure rotation about that axis.
func (q Quat) AngleAbout(axis Vector3) float32 {
	axis = axis.Normal()
	proj := q.X*axis.X + q.Y*axis.Y + q.Z*axis.Z
	return WrapAngle(2 * Atan2(proj, q.W))
}

// SetFromRotationMatrix sets this quaternion from the specified rotation matrix.
// The upper 3x3 of the matrix must be a pure rotation (unscaled).
func (q *Quat) SetFromRotationMatrix(m *Matrix4) {
	m11 := m[0]
	m12 := m[4]
	m13 := m[8]
	m21 := m[1]
	m22 := m[5]
	m23 := m[9]
	m31 := m[2]
	m32 := m[6]
	m33 := m[10]
	trace := m11 + m22 + m33

	var s float32
	if trace > 0 {
		s = 0.5 / Sqrt(trace+1.0)
		q.W = 0.25 / s
		q.X = (m32 - m23) * s
		q.Y = (m13 - m31) * s
		q.Z = (m21 - m12) * s
	} else if m11 > m22 && m11 > m33 {
		s = 2.0 * Sqrt(1.0+m11-m22-m33)
		q.W = (m32 - m23) / s
		q.X = 0.25 * s
		q.Y = (m12 + m21) / s
		q.Z = (m13 + m31) / s
	} else if m22 > m33 {
		s = 2.0 * Sqrt(1.0+m22-m11-m33)
		q.W = (m13 - m31) / s
		q.X = (m12 + m21) / s
		q.Y = 0.25 * s
		q.Z = (m23 + m32) / s
	} else {
		s = 2.0 * Sqrt(1.0+m33-m11-m22)
		q.W = (m21 - m12) / s
		q.X = (m13 + m31) / s
		q.Y = (m23 + m32) / s
		q.Z = 0.25 * s
	}
}

// Conjugate returns the conjugate of this quaternion.
func (q Quat) Conjugate() Quat {
	return Quat{-q.X, -q.Y, -q.Z, q.W}
}

// Length returns the length of this quaternion
func (q Quat) Length() float32 {
	return Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize normalizes this quaternion.
func (q *Quat) Normalize() {
	l := q.Length()
	if l == 0 {
		q.SetIdentity()
		return
	}
	l = 1 / l
	q.X *= l
	q.Y *= l
	q.Z *= l
	q.W *= l
}

// Mul returns the product of this quaternion with other (q * other).
func (q Quat) Mul(other Quat) Quat {
	qax, qay, qaz, qaw := q.X, q.Y, q.Z, q.W
	qbx, qby, qbz, qbw := other.X, other.Y, other.Z, other.W
	return Quat{
		qax*qbw + qaw*qbx + qay*qbz - qaz*qby,
		qay*qbw + qaw*qby + qaz*qbx - qax*qbz,
		qaz*qbw + qaw*qbz + qax*qby - qay*qbx,
		qaw*qbw - qax*qbx - qay*qby - qaz*qbz,
	}
}
