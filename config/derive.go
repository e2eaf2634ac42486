// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"image/color"
	"strings"
	"time"

	"cogentcore.org/orbit/math32"
	"cogentcore.org/orbit/xyz"
)

// Vector3 returns the vector as a [math32.Vector3].
func (v Vector) Vector3() math32.Vector3 {
	return math32.Vec3(v.X, v.Y, v.Z)
}

// BaseMatrix returns the model matrix of the entity: scaled,
// then rotated by Angle degrees about the rotation axis,
// then translated to the position.
func (e *Entity) BaseMatrix() math32.Matrix4 {
	axis := math32.Vec3(e.Rotate.X, e.Rotate.Y, e.Rotate.Z)
	return math32.Translation4(e.Position.Vector3()).
		Rotate(axis, math32.DegToRad(e.Rotate.Angle)).
		Scale(e.Scale.Vector3())
}

// EntityRole returns the explicit Role if set, ignoring case and
// spaces, and otherwise the role implied by the Name.
func (e *Entity) EntityRole() (xyz.Role, error) {
	if e.Role == "" {
		return xyz.RoleFromName(e.Name), nil
	}
	var r xyz.Role
	err := r.SetString(strings.ReplaceAll(e.Role, " ", ""))
	return r, err
}

// RGBA returns the color as an opaque [color.RGBA],
// clamping components to [0, 1].
func (c Color) RGBA() color.RGBA {
	ch := func(v float32) uint8 {
		return uint8(math32.Clamp(v, 0, 1)*255 + 0.5)
	}
	return color.RGBA{ch(c.R), ch(c.G), ch(c.B), 255}
}

// SimParams returns the simulation rates.
func (c *Config) SimParams() xyz.SimParams {
	return xyz.SimParams{
		DayHours:                c.Simulation.DayHours,
		TimeMultiplier:          c.Simulation.TimeMultiplier,
		SatelliteSpeedKmPerHour: c.Simulation.Satellite.OrbitalSpeed,
	}
}

// CameraParams returns the orbit camera settings.
func (c *Config) CameraParams() xyz.CameraParams {
	cam := c.View.Camera
	return xyz.CameraParams{
		RotationSpeed: cam.RotationSpeed,
		ZoomSpeed:     cam.ZoomSpeed,
		MinDistance:   cam.MinDistance,
		MaxDistance:   cam.MaxDistance,
		MaxPitch:      cam.MaxPitch,
		FOV:           c.View.FOV,
		FarAngle:      c.View.Distance,
		Near:          0.1,
	}
}

// HoldTimeoutDuration returns the key hold timeout.
func (r *Render) HoldTimeoutDuration() time.Duration {
	return time.Duration(r.HoldTimeout) * time.Millisecond
}

// FramePeriod returns the time between frames at the target frame rate.
func (r *Render) FramePeriod() time.Duration {
	if r.FPS <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(r.FPS)
}
