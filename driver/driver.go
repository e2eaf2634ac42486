// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package driver defines the platform layer that the frame loop
// presents frames to and reads input from.
package driver

import (
	"image"
	"time"

	"cogentcore.org/orbit/input"
	"cogentcore.org/orbit/xyz"
)

// Driver is a platform surface: a place to present rendered frames,
// a source of button input, and the clock frames are timed by.
type Driver interface {

	// Size returns the size in pixels that frames should be rendered at.
	// It can change between frames when the surface is resized.
	Size() image.Point

	// Input returns the buttons held for the frame starting at now.
	Input(now time.Time) input.State

	// Present shows the rendered frame.
	Present(img *image.RGBA) error

	// ShouldClose returns true once the user or the driver
	// has asked for the application to end.
	ShouldClose() bool

	// Clock returns the clock that frames are timed by.
	Clock() xyz.Clock

	// Close releases the surface.
	Close() error
}
