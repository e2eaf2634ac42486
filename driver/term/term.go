// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package term is a driver that draws frames into the terminal
// with two pixels per character cell, using the upper half block
// with the top pixel as foreground and the bottom pixel as background.
package term

import (
	"image"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"cogentcore.org/orbit/input"
	"cogentcore.org/orbit/xyz"
	"github.com/gdamore/tcell/v2"
)

// halfBlock is the upper half block character.
const halfBlock = '▀'

// Driver is a terminal driver.
type Driver struct {
	screen  tcell.Screen
	keys    input.KeyMap
	latch   *input.Latch
	closed  atomic.Bool
	resized atomic.Bool
	done    chan struct{}
}

// New initializes the terminal screen and starts reading its events.
// Terminals do not report key releases, so keys count as held until
// hold passes without a press or auto-repeat event.
func New(keys input.KeyMap, hold time.Duration) (*Driver, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen, keys, hold)
}

// NewWithScreen is like [New] but uses the given screen,
// which is initialized here.
func NewWithScreen(screen tcell.Screen, keys input.KeyMap, hold time.Duration) (*Driver, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()
	screen.Clear()
	d := &Driver{
		screen: screen,
		keys:   keys,
		latch:  input.NewLatch(hold),
		done:   make(chan struct{}),
	}
	go d.poll()
	return d, nil
}

func (d *Driver) poll() {
	defer close(d.done)
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}
		d.handle(ev)
	}
}

// handle applies one terminal event.
func (d *Driver) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			d.closed.Store(true)
			return
		}
		name := keyName(ev)
		if name == "" {
			return
		}
		if b, ok := d.keys.Lookup(name); ok {
			d.latch.Touch(b, ev.When())
		} else {
			slog.Debug("unbound key", "key", name)
		}
	case *tcell.EventResize:
		d.resized.Store(true)
	}
}

// keyName returns the key map name of a key event, or "".
func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyRune:
		return strings.ToLower(string(ev.Rune()))
	}
	return ""
}

// Size returns the terminal size in pixels: one pixel per column
// and two per row.
func (d *Driver) Size() image.Point {
	w, h := d.screen.Size()
	return image.Pt(w, 2*h)
}

func (d *Driver) Input(now time.Time) input.State {
	return d.latch.Snapshot(now)
}

// Present draws the image into the terminal cells.
func (d *Driver) Present(img *image.RGBA) error {
	if d.resized.Swap(false) {
		d.screen.Sync()
	}
	b := img.Bounds()
	w, h := d.screen.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			top := pixel(img, b.Min.X+x, b.Min.Y+2*y)
			bottom := pixel(img, b.Min.X+x, b.Min.Y+2*y+1)
			st := tcell.StyleDefault.Foreground(top).Background(bottom)
			d.screen.SetContent(x, y, halfBlock, nil, st)
		}
	}
	d.screen.Show()
	return nil
}

// pixel returns the color at x, y, or black outside of the image.
func pixel(img *image.RGBA, x, y int) tcell.Color {
	if !(image.Point{x, y}.In(img.Bounds())) {
		return tcell.ColorBlack
	}
	c := img.RGBAAt(x, y)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (d *Driver) ShouldClose() bool {
	return d.closed.Load()
}

func (d *Driver) Clock() xyz.Clock {
	return xyz.SystemClock{}
}

// closeWait is how long Close waits for the event reader to stop.
const closeWait = time.Second

// Close restores the terminal and waits for the event reader to stop.
func (d *Driver) Close() error {
	d.screen.Fini()
	select {
	case <-d.done:
	case <-time.After(closeWait):
		slog.Debug("terminal event reader did not stop")
	}
	return nil
}
