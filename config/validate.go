// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"

	"cogentcore.org/orbit/base/errors"
	"cogentcore.org/orbit/input"
	"cogentcore.org/orbit/math32"
)

// Validate returns an error listing every invalid setting, or nil.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	switch c.Window.Type {
	case Windowed, Fullscreen, Borderless:
	default:
		bad("Window.Type %q must be %s, %s or %s", c.Window.Type, Windowed, Fullscreen, Borderless)
	}
	if c.Window.Size.Width <= 0 || c.Window.Size.Height <= 0 {
		bad("Window.Size %dx%d must be positive", c.Window.Size.Width, c.Window.Size.Height)
	}

	if !(c.View.FOV > 0 && c.View.FOV < 180) {
		bad("View.FOV %g must be between 0 and 180 degrees", c.View.FOV)
	}
	if !(c.View.Distance > 0) {
		bad("View.Distance %g must be positive", c.View.Distance)
	}
	cam := c.View.Camera
	if !(cam.MinDistance > 0) || !(cam.MinDistance <= cam.MaxDistance) || math32.IsInf(cam.MaxDistance, 0) {
		bad("View.Camera distances [%g, %g] must be positive, finite and ordered", cam.MinDistance, cam.MaxDistance)
	}
	if !(cam.MaxPitch >= 0 && cam.MaxPitch < math32.Pi/2) {
		bad("View.Camera.Max Pitch Radians %g must be in [0, Pi/2)", cam.MaxPitch)
	}
	if !(cam.ZoomSpeed >= 0 && cam.ZoomSpeed < 1) {
		bad("View.Camera.Zoom Speed %g must be in [0, 1)", cam.ZoomSpeed)
	}
	if !math32.IsFinite(cam.RotationSpeed) {
		bad("View.Camera.Rotation Speed must be finite")
	}

	sim := c.Simulation
	if !(sim.DayHours > 0) || math32.IsInf(sim.DayHours, 0) {
		bad("Simulation.Day Hours %g must be positive", sim.DayHours)
	}
	if !math32.IsFinite(sim.TimeMultiplier) || !math32.IsFinite(sim.Satellite.OrbitalSpeed) {
		bad("Simulation rates must be finite")
	}

	for _, el := range []struct {
		name string
		list EntityList
	}{{"Lights", c.Lights}, {"Objects", c.Objects}} {
		for i := range el.list {
			e := &el.list[i]
			if e.Name == "" {
				bad("%s[%d] has no Name", el.name, i)
			}
			if _, err := e.EntityRole(); err != nil {
				bad("%s[%d] %q: %w", el.name, i, e.Name, err)
			}
		}
	}

	if _, err := c.KeyMap(); err != nil {
		errs = append(errs, err)
	}

	switch c.Render.Driver {
	case DriverTerm, DriverOffscreen:
	default:
		bad("Render.Driver %q must be %s or %s", c.Render.Driver, DriverTerm, DriverOffscreen)
	}
	if c.Render.FPS <= 0 {
		bad("Render.FPS %d must be positive", c.Render.FPS)
	}
	if c.Render.Frames < 0 {
		bad("Render.Frames %d must not be negative", c.Render.Frames)
	}
	if _, err := c.HoldState(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// KeyMap returns the default key map with the Keys bindings applied.
func (c *Config) KeyMap() (input.KeyMap, error) {
	km := input.DefaultKeyMap()
	if err := km.Rebind(c.Keys); err != nil {
		return nil, err
	}
	return km, nil
}

// HoldState returns the buttons listed in Render.Hold.
func (c *Config) HoldState() (input.State, error) {
	var st input.State
	for _, name := range c.Render.Hold {
		var b input.Button
		if err := b.SetString(name); err != nil {
			return st, fmt.Errorf("Render.Hold: %w", err)
		}
		st[b] = true
	}
	return st, nil
}
