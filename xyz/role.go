// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

// Role determines which animation rule the [Animator] applies to an
// [Entity]. It is assigned once when the scene is loaded.
type Role int32 //enums:enum

const (
	// RoleStatic entities keep their model matrix unchanged.
	RoleStatic Role = iota

	// RoleSun orbits the Earth once per simulated day.
	RoleSun

	// RoleEarth is the orbit center. It circles the satellite pivot
	// while counter-rotating about its own axis.
	RoleEarth

	// RoleEarthClouds follows the Earth with an extra drift
	// in its self-rotation.
	RoleEarthClouds

	// RoleSatellite is the tracked entity, rotated by the thrusters.
	RoleSatellite

	// RoleSkybox spins slowly about the Y axis.
	RoleSkybox
)

// roleEntityNames are the entity names that imply a role
// when none is given explicitly.
var roleEntityNames = map[string]Role{
	"Sun":          RoleSun,
	"Earth":        RoleEarth,
	"Earth Clouds": RoleEarthClouds,
	"Satellite":    RoleSatellite,
	"Skybox":       RoleSkybox,
}

// RoleFromName returns the role implied by an entity name,
// and [RoleStatic] for any other name.
func RoleFromName(name string) Role {
	return roleEntityNames[name]
}

// Kind is the variant of drawable held by an [Entity].
type Kind int32 //enums:enum

const (
	// KindObject is a lit, textured mesh.
	KindObject Kind = iota

	// KindLight is an emissive mesh that also lights objects.
	KindLight
)
