// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"bytes"
	"context"
	"image"
	"testing"

	"cogentcore.org/orbit/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracing(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	shutdown, err := InitTracing(ctx, &buf)
	require.NoError(t, err)
	t.Cleanup(func() {
		off, _ := InitTracing(ctx, nil)
		ShutdownWithTimeout(ctx, off)
	})

	cfg := testConfig(t)
	_, err = BuildScene(ctx, cfg, raster.NewRenderer(image.Pt(4, 4)))
	require.NoError(t, err)
	ShutdownWithTimeout(ctx, shutdown)

	out := buf.String()
	assert.Contains(t, out, `"Name": "BuildScene"`)
	assert.Contains(t, out, `"Name": "entity"`)
	assert.Contains(t, out, "Satellite")
	assert.Contains(t, out, "orbit")
}
