// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/orbit/math32"
)

// Drawable is a renderable handle for an entity, drawn once per frame
// with the camera projection and view and the entity's model matrix.
type Drawable interface {
	Draw(projection, view, model *math32.Matrix4)
}

// Entity is a named element of the scene with a model matrix
// that is positioned by the [Animator] and drawn by its [Drawable].
type Entity struct {

	// Name is the name from the scene configuration.
	Name string

	// Role selects the animation rule applied each frame.
	Role Role

	// Kind is whether this is a light or an object.
	Kind Kind

	// Base is the model matrix built from the configured position,
	// rotation and scale. Roles that are recomputed from total time
	// start from it every frame.
	Base math32.Matrix4

	// Model is the current model matrix.
	Model math32.Matrix4

	// Drawable draws the entity, and may be nil.
	Drawable Drawable
}

// NewEntity returns a new entity with its model matrix set to base.
func NewEntity(name string, kind Kind, role Role, base math32.Matrix4, d Drawable) *Entity {
	return &Entity{Name: name, Role: role, Kind: kind, Base: base, Model: base, Drawable: d}
}

// WorldPosition returns the translation of the current model matrix.
func (e *Entity) WorldPosition() math32.Vector3 {
	return math32.WorldPosition(&e.Model)
}

// Reset restores the model matrix to the base matrix.
func (e *Entity) Reset() {
	e.Model = e.Base
}

// Draw draws the entity with its current model matrix.
func (e *Entity) Draw(projection, view *math32.Matrix4) {
	if e.Drawable == nil {
		return
	}
	e.Drawable.Draw(projection, view, &e.Model)
}

func (e *Entity) String() string {
	return e.Kind.String() + " " + e.Name + " (" + e.Role.String() + ")"
}
