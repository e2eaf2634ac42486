// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import "cogentcore.org/orbit/math32"

// SimParams are the simulation rates, fixed after the scene is loaded.
type SimParams struct {

	// DayHours is the length of one simulated day, and so the
	// orbital period of the Sun, in hours.
	DayHours float32

	// TimeMultiplier scales all simulated time relative to wall time.
	TimeMultiplier float32

	// SatelliteSpeedKmPerHour is the orbital speed of the satellite.
	SatelliteSpeedKmPerHour float32
}

// SatelliteSpeedPerSecond returns the satellite speed per second.
func (sp SimParams) SatelliteSpeedPerSecond() float32 {
	return sp.SatelliteSpeedKmPerHour / 3600
}

// SunAngle returns the orbital angle of the Sun after the given total
// elapsed seconds. A non-positive day length stops the Sun.
func (sp SimParams) SunAngle(total float32) float32 {
	if sp.DayHours <= 0 {
		return 0
	}
	return math32.TwoPi / (sp.DayHours * 3600) * sp.TimeMultiplier * total
}

// CameraParams are the orbit camera settings, fixed after load.
type CameraParams struct {

	// RotationSpeed is the yaw and pitch change per frame while a
	// turn or pitch button is held, in radians.
	RotationSpeed float32

	// ZoomSpeed is the fraction of the distance moved per frame
	// while a zoom button is held.
	ZoomSpeed float32

	// MinDistance and MaxDistance bound the distance from the target.
	MinDistance float32
	MaxDistance float32

	// MaxPitch bounds the pitch in both directions, in radians.
	MaxPitch float32

	// FOV is the vertical field of view in degrees.
	FOV float32

	// FarAngle sets the far clipping plane. It is given in degrees and
	// the plane is placed at its value in radians.
	FarAngle float32

	// Near is the near clipping plane.
	Near float32
}

// DefaultCameraParams returns the camera settings used
// when a scene does not give its own.
func DefaultCameraParams() CameraParams {
	return CameraParams{
		RotationSpeed: 0.02,
		ZoomSpeed:     0.02,
		MinDistance:   1,
		MaxDistance:   100,
		MaxPitch:      1.5,
		FOV:           45,
		FarAngle:      1000,
		Near:          0.1,
	}
}
