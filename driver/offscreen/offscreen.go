// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package offscreen is a headless driver that saves every frame as a
// numbered PNG file, with a fixed set of held buttons and a clock that
// advances by exactly one frame period per frame.
package offscreen

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"cogentcore.org/orbit/base/iox/imagex"
	"cogentcore.org/orbit/input"
	"cogentcore.org/orbit/xyz"
)

// Epoch is the time of the first frame.
var Epoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// Driver is an offscreen driver.
type Driver struct {

	// Dir is the directory frames are saved in.
	Dir string

	// Frames is the number of frames to render before closing,
	// or 0 to render until canceled.
	Frames int

	// Hold is the input state of every frame.
	Hold input.State

	size  image.Point
	frame int
	clock *xyz.StepClock
}

// New returns a new offscreen driver rendering frames of the given size
// into dir, which is created if needed.
func New(dir string, size image.Point, frames int, period time.Duration, hold input.State) (*Driver, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, err
	}
	return &Driver{
		Dir:    dir,
		Frames: frames,
		Hold:   hold,
		size:   size,
		clock:  xyz.NewStepClock(Epoch, period),
	}, nil
}

// FrameFile returns the filename of the given frame.
func (d *Driver) FrameFile(frame int) string {
	return filepath.Join(d.Dir, fmt.Sprintf("frame%05d.png", frame))
}

// Frame returns the number of frames presented so far.
func (d *Driver) Frame() int {
	return d.frame
}

func (d *Driver) Size() image.Point {
	return d.size
}

func (d *Driver) Input(now time.Time) input.State {
	return d.Hold
}

// Present saves the frame.
func (d *Driver) Present(img *image.RGBA) error {
	if err := imagex.Save(img, d.FrameFile(d.frame)); err != nil {
		return fmt.Errorf("offscreen: %w", err)
	}
	d.frame++
	return nil
}

func (d *Driver) ShouldClose() bool {
	return d.Frames > 0 && d.frame >= d.Frames
}

func (d *Driver) Clock() xyz.Clock {
	return d.clock
}

func (d *Driver) Close() error {
	return nil
}
