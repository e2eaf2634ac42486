// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"context"
	"image"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/orbit/config"
	"cogentcore.org/orbit/driver/offscreen"
	"cogentcore.org/orbit/input"
	"cogentcore.org/orbit/metrics"
	"cogentcore.org/orbit/raster"
	"cogentcore.org/orbit/xyz"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := Load(context.Background(), filepath.Join("testdata", "scene.yaml"))
	require.NoError(t, err)
	cfg.Render.Output = t.TempDir()
	return cfg
}

func TestBuildScene(t *testing.T) {
	cfg := testConfig(t)
	r := raster.NewRenderer(image.Pt(8, 8))
	sc, err := BuildScene(context.Background(), cfg, r)
	require.NoError(t, err)
	assert.Equal(t, "Test orbit", sc.Name)
	require.Len(t, sc.Lights, 1)
	require.Len(t, sc.Objects, 4)
	assert.True(t, sc.Orbital())
	assert.Equal(t, "Earth", sc.Earth.Name)
	assert.Equal(t, xyz.RoleSkybox, sc.Objects[0].Role)

	sky := sc.Objects[0].Drawable.(*raster.Solid)
	earth := sc.Earth.Drawable.(*raster.Solid)
	clouds := sc.Objects[2].Drawable.(*raster.Solid)
	assert.Equal(t, raster.Unlit, sky.Shading)
	assert.Equal(t, raster.Lit, earth.Shading)
	assert.Equal(t, raster.Emissive, sc.Lights[0].Drawable.(*raster.Solid).Shading)
	// meshes are shared between entities using the same file
	assert.Same(t, earth.Mesh, clouds.Mesh)
	assert.Equal(t, 8, earth.Mesh.NTriangles())
	assert.Equal(t, image.Pt(8, 4), earth.Texture.Size())
	// no mesh file gives the unit quad
	assert.Equal(t, 2, sc.Satellite.Drawable.(*raster.Solid).Mesh.NTriangles())
}

func TestBuildSceneMissingAsset(t *testing.T) {
	cfg := testConfig(t)
	cfg.Objects[1].Texture = filepath.Join(t.TempDir(), "missing.png")
	_, err := BuildScene(context.Background(), cfg, raster.NewRenderer(image.Pt(8, 8)))
	assert.ErrorContains(t, err, `Object "Earth"`)
}

func TestFrames(t *testing.T) {
	cfg := testConfig(t)
	drv, err := OpenDriver(cfg)
	require.NoError(t, err)
	a, err := New(context.Background(), cfg, drv)
	require.NoError(t, err)

	sc := a.Scene
	sat := sc.Satellite.WorldPosition()
	earth0 := sc.Earth.WorldPosition()
	radius := earth0.DistanceTo(sat)
	for i := 0; i < 5; i++ {
		require.NoError(t, a.Frame())
	}
	assert.Equal(t, 5, a.Frames())
	assert.Greater(t, a.Renderer.Triangles, 0)

	// the Earth orbits the satellite, which stays in place
	earth := sc.Earth.WorldPosition()
	assert.InDelta(t, radius, earth.DistanceTo(sc.Satellite.WorldPosition()), 1e-3)
	assert.Greater(t, earth0.DistanceTo(earth), float32(0.1))
	assert.Equal(t, sat, sc.Satellite.WorldPosition())
	// the camera follows the orbit
	assert.Less(t, a.Camera.Yaw, float32(0))
	assert.FileExists(t, drv.(*offscreen.Driver).FrameFile(4))
}

func TestRun(t *testing.T) {
	cfg := testConfig(t)
	mc, err := metrics.NewCollector(prometheus.NewRegistry())
	require.NoError(t, err)
	err = Run(context.Background(), cfg, Options{Driver: config.DriverOffscreen, Frames: 3, Metrics: mc})
	require.NoError(t, err)

	out := cfg.Render.Output
	assert.FileExists(t, filepath.Join(out, "frame00002.png"))
	assert.NoFileExists(t, filepath.Join(out, "frame00003.png"))
	assert.Equal(t, 3.0, testutil.ToFloat64(mc.Frames))
	assert.Greater(t, testutil.ToFloat64(mc.Triangles), 0.0)
	assert.Equal(t, 5.0, testutil.ToFloat64(mc.CameraDistance))

	cfg.Render.Driver = "window"
	assert.Error(t, Run(context.Background(), cfg, Options{}))
}

// fakeDriver records presented frames and resizes on request.
type fakeDriver struct {
	size     image.Point
	hold     input.State
	closeAt  int
	frames   []image.Point
	clock    *xyz.StepClock
	closed   bool
	resizeAt int
	resizeTo image.Point
}

func newFakeDriver(size image.Point, closeAt int) *fakeDriver {
	return &fakeDriver{size: size, closeAt: closeAt, clock: xyz.NewStepClock(offscreen.Epoch, 50*time.Millisecond)}
}

func (d *fakeDriver) Size() image.Point           { return d.size }
func (d *fakeDriver) Input(time.Time) input.State { return d.hold }
func (d *fakeDriver) ShouldClose() bool           { return len(d.frames) >= d.closeAt }
func (d *fakeDriver) Clock() xyz.Clock            { return d.clock }
func (d *fakeDriver) Close() error                { d.closed = true; return nil }
func (d *fakeDriver) Present(img *image.RGBA) error {
	d.frames = append(d.frames, img.Bounds().Size())
	if len(d.frames) == d.resizeAt {
		d.size = d.resizeTo
	}
	return nil
}

func TestResize(t *testing.T) {
	cfg := testConfig(t)
	cfg.Render.Frames = 0
	drv := newFakeDriver(image.Pt(16, 16), 4)
	drv.resizeAt, drv.resizeTo = 2, image.Pt(32, 8)
	a, err := New(context.Background(), cfg, drv)
	require.NoError(t, err)
	before := a.projection

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, []image.Point{{16, 16}, {16, 16}, {32, 8}, {32, 8}}, drv.frames)
	assert.NotEqual(t, before, a.projection)
	assert.Equal(t, a.Camera.Projection(32, 8), a.projection)
}

func TestRunCanceled(t *testing.T) {
	cfg := testConfig(t)
	cfg.Render.Frames = 0
	drv := newFakeDriver(image.Pt(4, 4), 1000)
	drv.hold = input.State{}.With(input.ZoomOut)
	a, err := New(context.Background(), cfg, drv)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, a.Run(ctx))
	assert.Len(t, drv.frames, 1)
	assert.Greater(t, a.Camera.Distance, float32(5))
}

func TestExampleScene(t *testing.T) {
	cfg, err := Load(context.Background(), filepath.Join("..", "examples", "earth", "scene.json"))
	require.NoError(t, err)
	cfg.Render.Output = t.TempDir()
	cfg.Window.Size.Width, cfg.Window.Size.Height = 96, 54
	require.NoError(t, Run(context.Background(), cfg, Options{Driver: config.DriverOffscreen, Frames: 2}))
	assert.FileExists(t, filepath.Join(cfg.Render.Output, "frame00001.png"))
}
