// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import "strings"

// State is a snapshot of which buttons are held, taken once per frame.
// It is a plain value so that a frame always sees one consistent set.
type State [ButtonN]bool

// Held returns true if the given button is held.
func (s State) Held(b Button) bool {
	if !b.IsValid() {
		return false
	}
	return s[b]
}

// Axis returns 1 if only pos is held, -1 if only neg is held,
// and 0 if both or neither are held.
func (s State) Axis(pos, neg Button) float32 {
	var v float32
	if s.Held(pos) {
		v++
	}
	if s.Held(neg) {
		v--
	}
	return v
}

// With returns a copy of the state with the given buttons held.
func (s State) With(bs ...Button) State {
	for _, b := range bs {
		if b.IsValid() {
			s[b] = true
		}
	}
	return s
}

// Any returns true if any button is held.
func (s State) Any() bool {
	for _, h := range s {
		if h {
			return true
		}
	}
	return false
}

func (s State) String() string {
	var held []string
	for i, h := range s {
		if h {
			held = append(held, Button(i).String())
		}
	}
	return "[" + strings.Join(held, " ") + "]"
}
