// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonx provides standard JSON Open, Read, Save and Write
// functions, with indented output.
package jsonx

import (
	"encoding/json"
	"io"

	"cogentcore.org/orbit/base/iox"
)

// Open reads the given object from the given filename using JSON encoding
func Open(v any, filename string) error {
	return iox.Open(v, filename, NewDecoder)
}

// Read reads the given object from the given reader,
// using JSON encoding
func Read(v any, reader io.Reader) error {
	return iox.Read(v, reader, NewDecoder)
}

// ReadBytes reads the given object from the given bytes,
// using JSON encoding
func ReadBytes(v any, data []byte) error {
	return iox.ReadBytes(v, data, NewDecoder)
}

// Save writes the given object to the given filename using JSON encoding
func Save(v any, filename string) error {
	return iox.Save(v, filename, NewEncoder)
}

// Write writes the given object using JSON encoding
func Write(v any, writer io.Writer) error {
	return iox.Write(v, writer, NewEncoder)
}

// WriteBytes writes the given object, returning bytes of the encoding,
// using JSON encoding
func WriteBytes(v any) ([]byte, error) {
	return iox.WriteBytes(v, NewEncoder)
}

// NewDecoder returns a new [iox.Decoder]
func NewDecoder(r io.Reader) iox.Decoder {
	return json.NewDecoder(r)
}

// NewEncoder returns a new [iox.Encoder] that indents with tabs
func NewEncoder(w io.Writer) iox.Encoder {
	e := json.NewEncoder(w)
	e.SetIndent("", "\t")
	return e
}
