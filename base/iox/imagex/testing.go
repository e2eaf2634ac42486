// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/orbit/base/errors"
)

// TestingT is the subset of *testing.T used by [Assert].
type TestingT interface {
	Errorf(format string, args ...any)
}

// UpdateTestImages is whether [Assert] overwrites the golden frames
// instead of comparing against them. It is set by the environment
// variable ORBIT_UPDATE_TESTDATA=true, after a rendering change that
// alters the expected frames.
var UpdateTestImages = os.Getenv("ORBIT_UPDATE_TESTDATA") == "true"

// CompareColors returns whether every channel of a and b is within tol.
func CompareColors(a, b color.RGBA, tol int) bool {
	within := func(x, y uint8) bool {
		d := int(x) - int(y)
		return d >= -tol && d <= tol
	}
	return within(a.R, b.R) && within(a.G, b.G) && within(a.B, b.B) && within(a.A, b.A)
}

// DiffImage returns an opaque image of the per-channel absolute
// difference of a and b, over the bounds of a.
func DiffImage(a, b image.Image) *image.RGBA {
	diff := func(x, y uint8) uint8 {
		if x > y {
			return x - y
		}
		return y - x
	}
	bb := a.Bounds()
	di := image.NewRGBA(bb)
	for y := bb.Min.Y; y < bb.Max.Y; y++ {
		for x := bb.Min.X; x < bb.Max.X; x++ {
			ca := color.RGBAModel.Convert(a.At(x, y)).(color.RGBA)
			cb := color.RGBAModel.Convert(b.At(x, y)).(color.RGBA)
			di.SetRGBA(x, y, color.RGBA{diff(ca.R, cb.R), diff(ca.G, cb.G), diff(ca.B, cb.B), 255})
		}
	}
	return di
}

// mismatch returns a description of the first pixel at which got
// differs from want by more than tol, or "" if there is none.
func mismatch(got, want image.Image, tol int) string {
	if got.Bounds() != want.Bounds() {
		return fmt.Sprintf("bounds %v, expected %v", got.Bounds(), want.Bounds())
	}
	bb := got.Bounds()
	for y := bb.Min.Y; y < bb.Max.Y; y++ {
		for x := bb.Min.X; x < bb.Max.X; x++ {
			cg := color.RGBAModel.Convert(got.At(x, y)).(color.RGBA)
			cw := color.RGBAModel.Convert(want.At(x, y)).(color.RGBA)
			if !CompareColors(cg, cw, tol) {
				return fmt.Sprintf("color %v at (%d, %d), expected %v", cg, x, y, cw)
			}
		}
	}
	return ""
}

// Assert checks that img matches the golden frame testdata/<name>
// within the per-channel tolerance tol, adding ".png" if name has no
// extension. A missing golden frame is created. On a mismatch, the
// test fails and img and the difference are saved next to the golden
// frame with ".fail" and ".diff" suffixes.
func Assert(t TestingT, img image.Image, name string, tol int) {
	filename := filepath.Join("testdata", name)
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".png"
		filename += ext
	}
	base := strings.TrimSuffix(filename, ext)
	failFilename := base + ".fail" + ext
	diffFilename := base + ".diff" + ext
	clean := func() {
		os.Remove(failFilename)
		os.Remove(diffFilename)
	}

	if err := os.MkdirAll(filepath.Dir(filename), 0750); err != nil {
		t.Errorf("imagex.Assert: %v", err)
		return
	}
	want, _, err := Open(filename)
	if UpdateTestImages || errors.Is(err, fs.ErrNotExist) {
		if err := Save(img, filename); err != nil {
			t.Errorf("imagex.Assert: saving %s: %v", filename, err)
		}
		clean()
		return
	}
	if err != nil {
		t.Errorf("imagex.Assert: opening %s: %v", filename, err)
		return
	}
	msg := mismatch(img, want, tol)
	if msg == "" {
		clean()
		return
	}
	t.Errorf("imagex.Assert: %s differs from %s: %s", failFilename, filename, msg)
	if err := Save(img, failFilename); err != nil {
		t.Errorf("imagex.Assert: saving %s: %v", failFilename, err)
	}
	if err := Save(DiffImage(img, want), diffFilename); err != nil {
		t.Errorf("imagex.Assert: saving %s: %v", diffFilename, err)
	}
}
