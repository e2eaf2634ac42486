// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// KeyMap maps key names to the buttons they drive. Key names are
// lower case: single characters for letter keys, and "up", "down",
// "left", "right" for the arrow keys.
type KeyMap map[string]Button

// DefaultKeyMap returns the standard bindings: the arrow keys turn and
// pitch the camera, w and s zoom, a and d strafe, and the
// y/h, u/j, i/k and o/l pairs fire the satellite thrusters.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		"left":  TurnLeft,
		"right": TurnRight,
		"up":    PitchUp,
		"down":  PitchDown,
		"w":     ZoomIn,
		"s":     ZoomOut,
		"a":     StrafeLeft,
		"d":     StrafeRight,
		"y":     ThrusterYPos,
		"h":     ThrusterYNeg,
		"u":     ThrusterUPos,
		"j":     ThrusterUNeg,
		"i":     ThrusterIPos,
		"k":     ThrusterINeg,
		"o":     ThrusterOPos,
		"l":     ThrusterONeg,
	}
}

// NormalizeKey returns the canonical form of a key name.
func NormalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Lookup returns the button bound to the given key, if any.
func (km KeyMap) Lookup(key string) (Button, bool) {
	b, ok := km[NormalizeKey(key)]
	return b, ok
}

// Keys returns the sorted keys bound to the given button.
func (km KeyMap) Keys(b Button) []string {
	var ks []string
	for k, kb := range km {
		if kb == b {
			ks = append(ks, k)
		}
	}
	slices.Sort(ks)
	return ks
}

// Rebind applies the given bindings from button name to key name,
// replacing any keys previously bound to those buttons. A key moved to
// a new button is removed from its old one. Bindings are applied in
// sorted button order so that the result does not depend on map order.
func (km KeyMap) Rebind(bindings map[string]string) error {
	for _, name := range slices.Sorted(maps.Keys(bindings)) {
		var b Button
		if err := b.SetString(name); err != nil {
			return fmt.Errorf("input.KeyMap.Rebind: %w", err)
		}
		key := NormalizeKey(bindings[name])
		if key == "" {
			return fmt.Errorf("input.KeyMap.Rebind: empty key for %v", b)
		}
		for k, kb := range km {
			if kb == b {
				delete(km, k)
			}
		}
		km[key] = b
	}
	return nil
}
