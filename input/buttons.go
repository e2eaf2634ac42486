// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package input provides the logical buttons that drive the scene,
// the per-frame snapshot of which are held, and the latch that
// platform drivers write key events into.
package input

//go:generate core generate

// Button is a logical input, independent of the physical key bound to it.
type Button int32 //enums:enum

const (
	// TurnLeft increases camera yaw.
	TurnLeft Button = iota

	// TurnRight decreases camera yaw.
	TurnRight

	// PitchUp increases camera pitch.
	PitchUp

	// PitchDown decreases camera pitch.
	PitchDown

	// ZoomIn moves the camera toward the tracked entity.
	ZoomIn

	// ZoomOut moves the camera away from the tracked entity.
	ZoomOut

	// StrafeLeft and StrafeRight are bound and reported,
	// but do not move the orbit camera.
	StrafeLeft
	StrafeRight

	// The thruster pairs rotate the satellite about its four
	// diagonal axes, in the positive and negative direction.
	ThrusterYPos
	ThrusterYNeg
	ThrusterUPos
	ThrusterUNeg
	ThrusterIPos
	ThrusterINeg
	ThrusterOPos
	ThrusterONeg
)
