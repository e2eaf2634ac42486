// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"sync"
	"time"
)

// Clock is a monotonic time source.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// StepClock advances by a fixed step on every call to Now,
// giving a deterministic frame rate for offscreen rendering and tests.
type StepClock struct {
	mu   sync.Mutex
	t    time.Time
	step time.Duration
}

// NewStepClock returns a new [StepClock] starting at start.
func NewStepClock(start time.Time, step time.Duration) *StepClock {
	return &StepClock{t: start, step: step}
}

func (sc *StepClock) Now() time.Time {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	t := sc.t
	sc.t = sc.t.Add(sc.step)
	return t
}

// FrameTime is the time of one frame, in seconds.
type FrameTime struct {

	// Delta is the time since the previous frame, never negative.
	Delta float32

	// Total is the time since the first frame.
	Total float32
}

// FrameClock measures frame times from a [Clock].
type FrameClock struct {
	Clock Clock

	// Prev is the time of the previous tick.
	Prev time.Time

	total   time.Duration
	started bool
}

// NewFrameClock returns a new frame clock reading from c,
// or the [SystemClock] if c is nil.
func NewFrameClock(c Clock) *FrameClock {
	if c == nil {
		c = SystemClock{}
	}
	return &FrameClock{Clock: c}
}

// Tick reads the clock and returns the frame time. The first tick has
// zero delta. A clock that goes backward gives zero delta rather than
// moving time in reverse.
func (fc *FrameClock) Tick() FrameTime {
	now := fc.Clock.Now()
	if !fc.started {
		fc.started = true
		fc.Prev = now
		return FrameTime{}
	}
	d := now.Sub(fc.Prev)
	if d < 0 {
		d = 0
	}
	fc.Prev = now
	fc.total += d
	return FrameTime{Delta: float32(d.Seconds()), Total: float32(fc.total.Seconds())}
}
