// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"testing"

	"cogentcore.org/orbit/input"
	"cogentcore.org/orbit/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCamera() *OrbitCamera {
	p := DefaultCameraParams()
	p.ZoomSpeed = 0.1
	return NewOrbitCamera(p)
}

func TestCameraZoomClamp(t *testing.T) {
	oc := testCamera()
	zoomIn := input.State{}.With(input.ZoomIn)
	for range 1000 {
		oc.Update(zoomIn, 0, math32.Vector3{})
		assert.GreaterOrEqual(t, oc.Distance, oc.Params.MinDistance)
	}
	assert.Equal(t, oc.Params.MinDistance, oc.Distance)

	zoomOut := input.State{}.With(input.ZoomOut)
	for range 1000 {
		oc.Update(zoomOut, 0, math32.Vector3{})
		assert.LessOrEqual(t, oc.Distance, oc.Params.MaxDistance)
	}
	assert.Equal(t, oc.Params.MaxDistance, oc.Distance)

	// a start outside the bounds is clamped on the first update
	oc.Distance = 1e-30
	oc.Update(input.State{}, 0, math32.Vector3{})
	assert.Equal(t, oc.Params.MinDistance, oc.Distance)
}

func TestCameraPitchClamp(t *testing.T) {
	oc := testCamera()
	up := input.State{}.With(input.PitchUp)
	for range 1000 {
		oc.Update(up, 0, math32.Vector3{})
		assert.LessOrEqual(t, oc.Pitch, oc.Params.MaxPitch)
	}
	assert.Equal(t, oc.Params.MaxPitch, oc.Pitch)

	down := input.State{}.With(input.PitchDown, input.ZoomIn, input.TurnLeft)
	for range 1000 {
		oc.Update(down, 0, math32.Vector3{})
		assert.GreaterOrEqual(t, oc.Pitch, -oc.Params.MaxPitch)
	}
	assert.Equal(t, -oc.Params.MaxPitch, oc.Pitch)
	assert.True(t, oc.View.IsFinite())
}

func TestCameraTurn(t *testing.T) {
	oc := testCamera()
	oc.Update(input.State{}.With(input.TurnLeft), 0, math32.Vector3{})
	assert.InDelta(t, oc.Params.RotationSpeed, oc.Yaw, 1e-7)
	oc.Update(input.State{}.With(input.TurnRight), 0, math32.Vector3{})
	assert.InDelta(t, 0, oc.Yaw, 1e-7)

	// opposite buttons cancel
	oc.Update(input.State{}.With(input.TurnLeft, input.TurnRight, input.PitchUp, input.PitchDown, input.ZoomIn, input.ZoomOut), 0, math32.Vector3{})
	assert.InDelta(t, 0, oc.Yaw, 1e-7)
	assert.InDelta(t, 0, oc.Pitch, 1e-7)
	assert.InDelta(t, 5*0.9*1.1, oc.Distance, 1e-5)

	// strafing does not move the orbit camera
	before := *oc
	oc.Update(input.State{}.With(input.StrafeLeft, input.StrafeRight), 0, math32.Vector3{})
	assert.Equal(t, before.Yaw, oc.Yaw)
	assert.Equal(t, before.Distance, oc.Distance)
}

func TestCameraYawCoupling(t *testing.T) {
	sc := testScene()
	require.NoError(t, sc.Resolve())
	an := NewAnimator(testSim())
	oc := testCamera()

	const dt = 0.25
	var sum float32
	for i := 1; i <= 40; i++ {
		st := an.Advance(sc, FrameTime{Delta: dt, Total: float32(i) * dt}, input.State{})
		before := oc.Yaw
		in := input.State{}
		if i%2 == 0 {
			// non-yaw input does not change the coupling
			in = in.With(input.PitchUp, input.ZoomOut)
		}
		oc.Update(in, st.CameraCoupling, sc.Tracked())
		assert.InDelta(t, -an.Phase(7, dt), oc.Yaw-before, 1e-6)
		sum += st.CameraCoupling
	}
	assert.InDelta(t, -an.Phase(7, 40*dt), oc.Yaw, 1e-4)
	assert.InDelta(t, an.Phase(7, 40*dt), sum, 1e-4)
}

func TestCameraView(t *testing.T) {
	oc := testCamera()
	view := oc.Update(input.State{}, 0, math32.Vector3{})
	assertVec := func(want, got math32.Vector3) {
		t.Helper()
		assert.InDelta(t, want.X, got.X, 1e-5)
		assert.InDelta(t, want.Y, got.Y, 1e-5)
		assert.InDelta(t, want.Z, got.Z, 1e-5)
	}
	assertVec(math32.Vec3(5, 0, 0), oc.Eye)
	assertVec(math32.Vec3(0, 0, -5), math32.Vector3{}.MulMatrix4AsPoint(&view))

	// the camera looks at the negated tracked position
	tracked := math32.Vec3(1, 2, 3)
	view = oc.Update(input.State{}, 0, tracked)
	tv := tracked.Negate().MulMatrix4AsPoint(&view)
	assert.InDelta(t, 0, tv.X, 1e-5)
	assert.InDelta(t, 0, tv.Y, 1e-5)
	assert.Less(t, tv.Z, float32(0))
	assert.InDelta(t, oc.Eye.DistanceTo(tracked.Negate()), -tv.Z, 1e-4)
}

func TestCameraProjection(t *testing.T) {
	oc := testCamera()
	prj := oc.Projection(200, 100)
	tanHalf := math32.Tan(math32.DegToRad(oc.Params.FOV) / 2)
	assert.InDelta(t, 1/(2*tanHalf), prj[0], 1e-5)
	assert.InDelta(t, 1/tanHalf, prj[5], 1e-5)

	// the far plane is the far angle in radians
	far := math32.DegToRad(oc.Params.FarAngle)
	fp := math32.Vec4(0, 0, -far, 1).MulMatrix4(&prj).PerspDiv()
	assert.InDelta(t, 1, fp.Z, 1e-3)

	assert.True(t, oc.Projection(0, 0).IsFinite())
}
