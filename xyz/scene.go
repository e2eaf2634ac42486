// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

//go:generate core generate

import (
	"fmt"
	"log/slog"

	"cogentcore.org/orbit/base/errors"
	"cogentcore.org/orbit/math32"
)

// Scene holds the lights and objects of the orbital scene, along with the
// two entities that all orbital motion is defined relative to.
// Lights are drawn before objects, each in configuration order.
type Scene struct {

	// Name is the scene name, shown as the window title.
	Name string

	// Lights are the light entities.
	Lights []*Entity

	// Objects are the object entities.
	Objects []*Entity

	// Earth is the orbit center, set by [Scene.Resolve].
	Earth *Entity

	// Satellite is the tracked entity, set by [Scene.Resolve].
	Satellite *Entity
}

// NewScene returns a new empty scene.
func NewScene(name string) *Scene {
	return &Scene{Name: name}
}

// Add adds the given entity to the lights or objects by its kind.
func (sc *Scene) Add(e *Entity) *Entity {
	if e.Kind == KindLight {
		sc.Lights = append(sc.Lights, e)
	} else {
		sc.Objects = append(sc.Objects, e)
	}
	return e
}

// Entities returns all lights followed by all objects.
func (sc *Scene) Entities() []*Entity {
	es := make([]*Entity, 0, len(sc.Lights)+len(sc.Objects))
	es = append(es, sc.Lights...)
	return append(es, sc.Objects...)
}

// EntityByName returns the first entity with the given name, or nil.
func (sc *Scene) EntityByName(name string) *Entity {
	for _, e := range sc.Entities() {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// Resolve finds the Earth and Satellite entities that orbital motion is
// computed from. If either is missing, the Sun, Earth and clouds stay
// static and a warning is logged here, once. If there is more than one
// of either, the first is used. The returned error lists all such
// problems; the scene remains usable either way.
func (sc *Scene) Resolve() error {
	sc.Earth, sc.Satellite = nil, nil
	var errs []error
	for _, e := range sc.Entities() {
		switch e.Role {
		case RoleEarth:
			if sc.Earth != nil {
				errs = append(errs, fmt.Errorf("xyz.Scene: more than one Earth entity: using %q, ignoring %q", sc.Earth.Name, e.Name))
				continue
			}
			sc.Earth = e
		case RoleSatellite:
			if sc.Satellite != nil {
				errs = append(errs, fmt.Errorf("xyz.Scene: more than one Satellite entity: using %q, ignoring %q", sc.Satellite.Name, e.Name))
				continue
			}
			sc.Satellite = e
		}
	}
	if sc.Earth == nil {
		errs = append(errs, errors.New("xyz.Scene: no Earth entity"))
	}
	if sc.Satellite == nil {
		errs = append(errs, errors.New("xyz.Scene: no Satellite entity"))
	}
	if !sc.Orbital() {
		slog.Warn("orbital motion disabled: Sun, Earth and clouds are static", "scene", sc.Name)
	}
	return errors.Join(errs...)
}

// Orbital returns whether both the Earth and the Satellite are resolved.
func (sc *Scene) Orbital() bool {
	return sc.Earth != nil && sc.Satellite != nil
}

// Tracked returns the world position of the satellite,
// or the origin if there is none.
func (sc *Scene) Tracked() math32.Vector3 {
	if sc.Satellite == nil {
		return math32.Vector3{}
	}
	return sc.Satellite.WorldPosition()
}

// Reset restores every entity to its base matrix.
func (sc *Scene) Reset() {
	for _, e := range sc.Entities() {
		e.Reset()
	}
}

// Draw draws every entity, lights first.
func (sc *Scene) Draw(projection, view *math32.Matrix4) {
	for _, e := range sc.Lights {
		e.Draw(projection, view)
	}
	for _, e := range sc.Objects {
		e.Draw(projection, view)
	}
}
