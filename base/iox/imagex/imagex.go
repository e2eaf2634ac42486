// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagex reads scene textures and writes rendered frames in
// the image formats supported by the standard library and x/image.
package imagex

import (
	"bufio"
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Formats are the image file formats.
type Formats int32

const (
	None Formats = iota
	PNG
	JPEG
	GIF
	TIFF
	BMP

	// WebP can only be read.
	WebP
)

// JPEGQuality is the quality of written JPEG files.
const JPEGQuality = 90

var formatNames = [...]string{"None", "PNG", "JPEG", "GIF", "TIFF", "BMP", "WebP"}

func (f Formats) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Formats(%d)", int32(f))
	}
	return formatNames[f]
}

// formatExts maps lower case extensions and decoder names to formats.
var formatExts = map[string]Formats{
	"png":  PNG,
	"jpg":  JPEG,
	"jpeg": JPEG,
	"gif":  GIF,
	"tif":  TIFF,
	"tiff": TIFF,
	"bmp":  BMP,
	"webp": WebP,
}

var encoders = map[Formats]func(w io.Writer, im image.Image) error{
	PNG: png.Encode,
	JPEG: func(w io.Writer, im image.Image) error {
		return jpeg.Encode(w, im, &jpeg.Options{Quality: JPEGQuality})
	},
	GIF:  func(w io.Writer, im image.Image) error { return gif.Encode(w, im, nil) },
	TIFF: func(w io.Writer, im image.Image) error { return tiff.Encode(w, im, nil) },
	BMP:  bmp.Encode,
}

// ExtToFormat returns the format for a filename extension, with or
// without the leading dot.
func ExtToFormat(ext string) (Formats, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "" {
		return None, fmt.Errorf("imagex: no file extension")
	}
	if f, ok := formatExts[ext]; ok {
		return f, nil
	}
	return None, fmt.Errorf("imagex: extension %q not recognized", ext)
}

// Open decodes the image file, returning its detected format.
func Open(filename string) (image.Image, Formats, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, None, err
	}
	defer file.Close()
	return Read(bufio.NewReader(file))
}

// Read decodes an image in any supported format.
func Read(r io.Reader) (image.Image, Formats, error) {
	im, name, err := image.Decode(r)
	if err != nil {
		return nil, None, err
	}
	f, err := ExtToFormat(name)
	return im, f, err
}

// Save writes the image to the file, in the format of its extension.
func Save(im image.Image, filename string) error {
	f, err := ExtToFormat(filepath.Ext(filename))
	if err != nil {
		return err
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	bw := bufio.NewWriter(file)
	if err := Write(im, bw, f); err != nil {
		return err
	}
	return bw.Flush()
}

// Write encodes the image in the given format.
func Write(im image.Image, w io.Writer, f Formats) error {
	enc, ok := encoders[f]
	if !ok {
		return fmt.Errorf("imagex: cannot write %v", f)
	}
	return enc(w, im)
}

// AsRGBA returns src if it is an [image.RGBA], and otherwise an
// RGBA copy of it.
func AsRGBA(src image.Image) *image.RGBA {
	if src == nil {
		return nil
	}
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba
	}
	bb := src.Bounds()
	img := image.NewRGBA(bb)
	draw.Draw(img, bb, src, bb.Min, draw.Src)
	return img
}
