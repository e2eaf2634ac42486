// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration structs for an orbital
// scene, and the loading, defaulting and validation of scene files.
package config

// Config is the main config struct, describing the window, the camera,
// the simulation rates, and every light and object of a scene.
// Field names and key names match the scene file format.
type Config struct {

	// OpenGL is the requested graphics API version.
	OpenGL OpenGL `yaml:"OpenGL"`

	// Window is the window type, title and size.
	Window Window `yaml:"Window"`

	// View is the projection and camera configuration.
	View View `yaml:"View"`

	// Simulation is the time scale and orbital rates.
	Simulation Simulation `yaml:"Simulation"`

	// Lights are the emissive entities that light the objects.
	Lights EntityList `yaml:"Lights"`

	// Objects are the lit, textured entities.
	Objects EntityList `yaml:"Objects"`

	// Keys rebinds buttons, mapping a button name such as "ZoomIn"
	// to a key name such as "e" or "up".
	Keys map[string]string `yaml:"Keys,omitempty" json:",omitempty" toml:",omitempty"`

	// Render selects how frames are presented.
	Render Render `yaml:"Render"`

	// Dir is the directory of the config file, which relative
	// asset paths are resolved against.
	Dir string `json:"-" toml:"-" yaml:"-"`
}

type OpenGL struct {
	Version Version `yaml:"Version"`
}

// Version is a major.minor API version.
type Version struct {
	Major int `yaml:"Major"`
	Minor int `yaml:"Minor"`
}

// Less returns whether v is an earlier version than o.
func (v Version) Less(o Version) bool {
	if v.Major != o.Major {
		return v.Major < o.Major
	}
	return v.Minor < o.Minor
}

// MinVersion is the lowest API version a scene may request.
var MinVersion = Version{Major: 3, Minor: 3}

// Window types
const (
	Windowed   = "Windowed"
	Fullscreen = "Fullscreen"
	Borderless = "Borderless"
)

type Window struct {

	// Type is one of Windowed, Fullscreen or Borderless.
	Type string `default:"Windowed" yaml:"Type"`

	Title string `default:"Orbit" yaml:"Title"`

	Size Size `yaml:"Size"`

	// MSAA is the number of samples per pixel.
	MSAA int `default:"4" yaml:"MSAA"`
}

type Size struct {
	Width  int `default:"1280" yaml:"Width"`
	Height int `default:"720" yaml:"Height"`
}

type View struct {

	// FOV is the vertical field of view in degrees.
	FOV float32 `default:"45" yaml:"FOV"`

	// Distance sets the far clipping plane: the plane is placed at
	// this value converted from degrees to radians.
	Distance float32 `default:"1000" yaml:"Distance"`

	Camera Camera `yaml:"Camera"`
}

type Camera struct {
	RotationSpeed float32 `default:"0.02" json:"Rotation Speed" toml:"Rotation Speed" yaml:"Rotation Speed"`
	ZoomSpeed     float32 `default:"0.02" json:"Zoom Speed" toml:"Zoom Speed" yaml:"Zoom Speed"`
	MinDistance   float32 `default:"1" json:"Min Distance" toml:"Min Distance" yaml:"Min Distance"`
	MaxDistance   float32 `default:"100" json:"Max Distance" toml:"Max Distance" yaml:"Max Distance"`
	MaxPitch      float32 `default:"1.5" json:"Max Pitch Radians" toml:"Max Pitch Radians" yaml:"Max Pitch Radians"`
}

type Simulation struct {
	DayHours       float32   `default:"24" json:"Day Hours" toml:"Day Hours" yaml:"Day Hours"`
	TimeMultiplier float32   `default:"1" json:"Time Multiplier" toml:"Time Multiplier" yaml:"Time Multiplier"`
	Satellite      Satellite `yaml:"Satellite"`
}

type Satellite struct {
	OrbitalSpeed float32 `default:"27600" json:"Orbital Speed[Km/h]" toml:"Orbital Speed[Km/h]" yaml:"Orbital Speed[Km/h]"`
}

// Render drivers
const (
	DriverTerm      = "term"
	DriverOffscreen = "offscreen"
)

type Render struct {

	// Driver is "term" to draw in the terminal, or "offscreen"
	// to write frames as image files.
	Driver string `default:"term" yaml:"Driver"`

	// Output is the directory offscreen frames are written to.
	Output string `default:"frames" yaml:"Output"`

	// Frames is the number of frames to render before closing,
	// or 0 to run until closed.
	Frames int `yaml:"Frames"`

	// FPS is the target frame rate. Offscreen rendering advances
	// simulated time by exactly one frame period per frame.
	FPS int `default:"30" yaml:"FPS"`

	// HoldTimeout is how long a key counts as held after its last
	// event, for terminals that do not report key releases.
	HoldTimeout int `default:"500" json:"Hold Timeout[ms]" toml:"Hold Timeout[ms]" yaml:"Hold Timeout[ms]"`

	// Hold lists the buttons held for every offscreen frame.
	Hold []string `yaml:"Hold,omitempty" json:",omitempty" toml:",omitempty"`
}

// Entity is the configuration of one light or object.
type Entity struct {
	Name string `yaml:"Name"`

	// Role optionally sets the animation role explicitly. By default
	// it follows from the Name: Sun, Earth, Earth Clouds, Satellite,
	// and Skybox have their own roles and all others are static.
	Role string `yaml:"Role,omitempty" json:",omitempty" toml:",omitempty"`

	Position Vector   `yaml:"Position"`
	Rotate   Rotation `yaml:"Rotate"`

	// Scale is the per-axis scale, where a zero vector means unit scale.
	Scale Vector `yaml:"Scale"`

	Shader Shader `yaml:"Shader"`

	// ObjFile is the Wavefront OBJ mesh; a unit quad is used if empty.
	ObjFile string `json:"Obj File" toml:"Obj File" yaml:"Obj File"`

	Texture   string `yaml:"Texture,omitempty" json:",omitempty" toml:",omitempty"`
	NormalMap string `json:"Normal_Map,omitempty" toml:"Normal_Map,omitempty" yaml:"Normal_Map,omitempty"`

	// Color is the light color, with components in [0, 1].
	// A zero color means white.
	Color Color `yaml:"Color"`
}

type Vector struct {
	X float32 `yaml:"X"`
	Y float32 `yaml:"Y"`
	Z float32 `yaml:"Z"`
}

// Rotation is a rotation of Angle degrees about the X, Y, Z axis.
type Rotation struct {
	X     float32 `yaml:"X"`
	Y     float32 `yaml:"Y"`
	Z     float32 `yaml:"Z"`
	Angle float32 `yaml:"Angle"`
}

type Shader struct {
	Vertex   string `yaml:"Vertex"`
	Fragment string `yaml:"Fragment"`
}

type Color struct {
	R float32 `yaml:"R"`
	G float32 `yaml:"G"`
	B float32 `yaml:"B"`
}
