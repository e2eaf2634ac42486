// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iox_test

import (
	"path/filepath"
	"testing"

	"cogentcore.org/orbit/base/iox/jsonx"
	"cogentcore.org/orbit/base/iox/tomlx"
	"cogentcore.org/orbit/base/iox/yamlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type camera struct {
	RotationSpeed float32 `json:"Rotation Speed" toml:"Rotation Speed" yaml:"Rotation Speed"`
	MaxPitch      float32 `json:"Max Pitch Radians" toml:"Max Pitch Radians" yaml:"Max Pitch Radians"`
}

func TestFormats(t *testing.T) {
	dir := t.TempDir()
	want := camera{RotationSpeed: 0.02, MaxPitch: 1.5}

	tests := []struct {
		ext  string
		save func(v any, filename string) error
		open func(v any, filename string) error
	}{
		{".json", jsonx.Save, jsonx.Open},
		{".toml", tomlx.Save, tomlx.Open},
		{".yaml", yamlx.Save, yamlx.Open},
	}
	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			fn := filepath.Join(dir, "camera"+tt.ext)
			require.NoError(t, tt.save(&want, fn))
			var got camera
			require.NoError(t, tt.open(&got, fn))
			assert.Equal(t, want, got)
		})
	}
}

func TestReadBytesKeys(t *testing.T) {
	var c camera
	require.NoError(t, jsonx.ReadBytes(&c, []byte(`{"Rotation Speed": 0.5}`)))
	assert.Equal(t, float32(0.5), c.RotationSpeed)

	c = camera{}
	require.NoError(t, tomlx.ReadBytes(&c, []byte(`"Max Pitch Radians" = 1.2`)))
	assert.Equal(t, float32(1.2), c.MaxPitch)

	c = camera{}
	require.NoError(t, yamlx.ReadBytes(&c, []byte("Rotation Speed: 0.25\n")))
	assert.Equal(t, float32(0.25), c.RotationSpeed)
}
