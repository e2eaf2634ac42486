// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import (
	"sync"
	"time"
)

// DefaultHoldTimeout is the default time a button stays held after its
// last key event when the driver does not report key releases.
const DefaultHoldTimeout = 500 * time.Millisecond

// Latch collects button events from a driver's event goroutine and hands
// the render loop one consistent [State] per frame through [Latch.Snapshot].
//
// Drivers that report releases use [Latch.Set]. Terminals only report key
// presses and their auto-repeat, so those drivers call [Latch.Touch] on every
// event and the button counts as held until HoldTimeout passes without one.
type Latch struct {

	// HoldTimeout is how long a touched button stays held.
	HoldTimeout time.Duration

	mu   sync.Mutex
	down State
	seen [ButtonN]time.Time
}

// NewLatch returns a new latch with the given hold timeout,
// or [DefaultHoldTimeout] if it is not positive.
func NewLatch(hold time.Duration) *Latch {
	if hold <= 0 {
		hold = DefaultHoldTimeout
	}
	return &Latch{HoldTimeout: hold}
}

// Set sets whether the given button is down, until changed again.
func (l *Latch) Set(b Button, down bool) {
	if !b.IsValid() {
		return
	}
	l.mu.Lock()
	l.down[b] = down
	if !down {
		l.seen[b] = time.Time{}
	}
	l.mu.Unlock()
}

// Touch records a press or repeat event for the given button at time now.
func (l *Latch) Touch(b Button, now time.Time) {
	if !b.IsValid() {
		return
	}
	l.mu.Lock()
	l.seen[b] = now
	l.mu.Unlock()
}

// Reset releases all buttons.
func (l *Latch) Reset() {
	l.mu.Lock()
	l.down = State{}
	l.seen = [ButtonN]time.Time{}
	l.mu.Unlock()
}

// Snapshot returns the buttons held at time now.
func (l *Latch) Snapshot(now time.Time) State {
	l.mu.Lock()
	defer l.mu.Unlock()
	st := l.down
	for i, t := range l.seen {
		if !t.IsZero() && now.Sub(t) < l.HoldTimeout {
			st[i] = true
		}
	}
	return st
}
