// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/orbit/input"
	"cogentcore.org/orbit/math32"
)

// OrbitCamera is a camera on a sphere around the origin, pointed at the
// tracked entity. Yaw and pitch are driven by the turn and pitch buttons,
// and yaw also follows the orbital motion of the scene. The distance is
// driven by the zoom buttons. Pitch and distance are kept within the
// bounds set in Params.
type OrbitCamera struct {
	Params CameraParams

	// Yaw is the angle about the Y axis, in radians.
	Yaw float32

	// Pitch is the angle above the XZ plane, in radians.
	Pitch float32

	// Distance is the radius of the camera sphere.
	Distance float32

	// Eye is the camera position from the last update.
	Eye math32.Vector3

	// View is the view matrix from the last update.
	View math32.Matrix4
}

// NewOrbitCamera returns a new camera with the given parameters,
// looking along the X axis from a distance of 5.
func NewOrbitCamera(params CameraParams) *OrbitCamera {
	return &OrbitCamera{Params: params, Distance: 5, View: math32.Identity4()}
}

// Update applies one frame of input and orbital coupling, clamps the
// camera to its bounds, and returns the new view matrix, which looks at
// the negated tracked position with the Y axis up.
func (oc *OrbitCamera) Update(in input.State, coupling float32, tracked math32.Vector3) math32.Matrix4 {
	p := &oc.Params
	oc.Yaw -= coupling

	if in.Held(input.TurnLeft) {
		oc.Yaw += p.RotationSpeed
	}
	if in.Held(input.TurnRight) {
		oc.Yaw -= p.RotationSpeed
	}
	if in.Held(input.PitchUp) {
		oc.Pitch += p.RotationSpeed
	}
	if in.Held(input.PitchDown) {
		oc.Pitch -= p.RotationSpeed
	}
	if in.Held(input.ZoomIn) {
		oc.Distance *= 1 - p.ZoomSpeed
	}
	if in.Held(input.ZoomOut) {
		oc.Distance *= 1 + p.ZoomSpeed
	}
	oc.Clamp()

	sy, cy := math32.Sincos(oc.Yaw)
	sp, cp := math32.Sincos(oc.Pitch)
	oc.Eye = math32.Vec3(cy*cp, sp, sy*cp).MulScalar(oc.Distance)
	oc.View = math32.LookAt4(oc.Eye, tracked.Negate(), math32.Vector3Y)
	return oc.View
}

// Clamp limits the pitch and distance to the configured bounds.
func (oc *OrbitCamera) Clamp() {
	p := &oc.Params
	oc.Pitch = math32.Clamp(oc.Pitch, -p.MaxPitch, p.MaxPitch)
	oc.Distance = math32.Clamp(oc.Distance, p.MinDistance, p.MaxDistance)
}

// Projection returns the perspective projection for a viewport of the
// given size in pixels.
func (oc *OrbitCamera) Projection(width, height int) math32.Matrix4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	p := &oc.Params
	return math32.Perspective4(math32.DegToRad(p.FOV), aspect, p.Near, math32.DegToRad(p.FarAngle))
}
