// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/orbit/input"
	"cogentcore.org/orbit/math32"
)

// MinOrbitDistance is the Earth to satellite distance below which the
// orbital phase is held at zero instead of dividing by the distance.
const MinOrbitDistance = 1e-6

const (
	// cloudDrift is the extra self-rotation rate of the clouds
	// relative to the Earth surface, in radians per second.
	cloudDrift = 0.0001

	// skyboxSpin is the spin rate of the skybox, in radians per second.
	skyboxSpin = 0.00005

	// thrusterRate is the satellite rotation rate of one
	// thruster pair, in radians per second.
	thrusterRate = 0.01
)

// thruster is a pair of buttons rotating the satellite
// in opposite directions about one axis of its own frame.
type thruster struct {
	pos, neg input.Button
	axis     math32.Vector3
}

var thrusters = [4]thruster{
	{input.ThrusterYPos, input.ThrusterYNeg, math32.Vec3(1, -1, 1)},
	{input.ThrusterUPos, input.ThrusterUNeg, math32.Vec3(1, -1, -1)},
	{input.ThrusterIPos, input.ThrusterINeg, math32.Vec3(-1, -1, -1)},
	{input.ThrusterOPos, input.ThrusterONeg, math32.Vec3(-1, -1, 1)},
}

// Step reports the results of one [Animator.Advance] call.
type Step struct {

	// CameraCoupling is the orbital phase advanced during this frame,
	// which the camera subtracts from its yaw to follow the orbit.
	CameraCoupling float32

	// Phase is the total orbital phase of the Earth about the satellite.
	Phase float32
}

// Animator computes the model matrix of every entity each frame.
//
// The Sun, Earth and clouds are recomputed from their base matrices and
// the total elapsed time, so they do not drift when the frame rate
// varies. The satellite and skybox integrate per-frame rotations onto
// their previous model matrix. Static entities are left unchanged.
type Animator struct {
	Sim SimParams
}

// NewAnimator returns a new animator with the given simulation rates.
func NewAnimator(sim SimParams) *Animator {
	return &Animator{Sim: sim}
}

// Phase returns the orbital phase of the Earth about the satellite after
// the given number of seconds, for an orbit of the given radius.
func (an *Animator) Phase(radius, seconds float32) float32 {
	if !(radius >= MinOrbitDistance) || math32.IsInf(radius, 0) {
		return 0
	}
	return an.Sim.SatelliteSpeedPerSecond() / radius * an.Sim.TimeMultiplier * seconds
}

// Advance updates all entities in the scene for the given frame time
// and held buttons. The satellite is advanced first since the orbit
// pivots on it, then the Earth and clouds, then the Sun, which pivots
// on the new Earth position, and then the skybox.
func (an *Animator) Advance(sc *Scene, ft FrameTime, in input.State) Step {
	var st Step
	tm := an.Sim.TimeMultiplier

	for _, e := range sc.Objects {
		if e.Role == RoleSatellite {
			an.advanceSatellite(e, ft.Delta, in)
		}
	}

	if sc.Orbital() {
		pivot := sc.Satellite.WorldPosition()
		// radius of the base pose, which the orbit preserves
		// for an Earth base centered on the origin
		radius := math32.WorldPosition(&sc.Earth.Base).DistanceTo(pivot)
		st.Phase = an.Phase(radius, ft.Total)
		st.CameraCoupling = an.Phase(radius, ft.Delta)

		orbit := math32.Translation4(pivot).Mul(math32.RotationY4(st.Phase)).Mul(math32.Translation4(pivot.Negate()))
		for _, e := range sc.Entities() {
			switch e.Role {
			case RoleEarth:
				e.Model = orbit.Mul(math32.RotationY4(-st.Phase)).Mul(e.Base)
			case RoleEarthClouds:
				e.Model = orbit.Mul(math32.RotationY4(-st.Phase - cloudDrift*tm*ft.Total)).Mul(e.Base)
			}
		}

		center := sc.Earth.WorldPosition()
		sun := math32.Translation4(center.Negate()).Mul(math32.RotationY4(an.Sim.SunAngle(ft.Total))).Mul(math32.Translation4(center))
		for _, e := range sc.Entities() {
			if e.Role == RoleSun {
				e.Model = sun.Mul(e.Base)
			}
		}
	}

	spin := math32.RotationY4(skyboxSpin * tm * ft.Delta)
	for _, e := range sc.Entities() {
		if e.Role == RoleSkybox {
			e.Model = spin.Mul(e.Model)
		}
	}
	return st
}

// advanceSatellite applies the thruster rotations for one frame
// in the satellite's own frame.
func (an *Animator) advanceSatellite(e *Entity, dt float32, in input.State) {
	for _, th := range thrusters {
		dir := in.Axis(th.pos, th.neg)
		if dir == 0 {
			continue
		}
		e.Model = e.Model.Rotate(th.axis, thrusterRate*an.Sim.TimeMultiplier*dt*dir)
	}
}
