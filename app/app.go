// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app runs the frame loop of an orbital scene: each frame it
// samples input, advances the animation, updates the camera, draws
// the scene and presents it through a driver.
package app

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"time"

	"cogentcore.org/orbit/config"
	"cogentcore.org/orbit/driver"
	"cogentcore.org/orbit/driver/offscreen"
	"cogentcore.org/orbit/driver/term"
	"cogentcore.org/orbit/math32"
	"cogentcore.org/orbit/metrics"
	"cogentcore.org/orbit/raster"
	"cogentcore.org/orbit/xyz"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Options override the render settings of the configuration.
type Options struct {

	// Driver is the driver name, overriding Render.Driver if set.
	Driver string

	// Frames is the number of frames, overriding Render.Frames if positive.
	Frames int

	// Metrics records frame metrics, if non-nil.
	Metrics *metrics.Collector
}

// App is a running scene.
type App struct {
	Config   *config.Config
	Scene    *xyz.Scene
	Animator *xyz.Animator
	Camera   *xyz.OrbitCamera
	Renderer *raster.Renderer
	Driver   driver.Driver
	Metrics  *metrics.Collector

	// MaxFrames is the number of frames to run, or 0 for no limit.
	MaxFrames int

	// Pace is whether to wait for the frame period between frames.
	Pace bool

	clock      *xyz.FrameClock
	projection math32.Matrix4
	size       image.Point
	frames     int
}

// Load opens and validates the configuration file.
func Load(ctx context.Context, filename string) (*config.Config, error) {
	_, span := tracer.Start(ctx, "config.Open", trace.WithAttributes(attribute.String("file", filename)))
	defer span.End()
	cfg, err := config.Open(filename)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return cfg, nil
}

// OpenDriver opens the driver named in the configuration.
func OpenDriver(cfg *config.Config) (driver.Driver, error) {
	r := &cfg.Render
	switch r.Driver {
	case config.DriverTerm:
		km, err := cfg.KeyMap()
		if err != nil {
			return nil, err
		}
		return term.New(km, r.HoldTimeoutDuration())
	case config.DriverOffscreen:
		hold, err := cfg.HoldState()
		if err != nil {
			return nil, err
		}
		size := image.Pt(cfg.Window.Size.Width, cfg.Window.Size.Height)
		return offscreen.New(r.Output, size, r.Frames, r.FramePeriod(), hold)
	}
	return nil, fmt.Errorf("app: unknown driver %q", r.Driver)
}

// New returns a new app presenting the configured scene through drv.
func New(ctx context.Context, cfg *config.Config, drv driver.Driver) (*App, error) {
	rend := raster.NewRenderer(drv.Size())
	sc, err := BuildScene(ctx, cfg, rend)
	if err != nil {
		return nil, err
	}
	a := &App{
		Config:    cfg,
		Scene:     sc,
		Animator:  xyz.NewAnimator(cfg.SimParams()),
		Camera:    xyz.NewOrbitCamera(cfg.CameraParams()),
		Renderer:  rend,
		Driver:    drv,
		MaxFrames: cfg.Render.Frames,
		clock:     xyz.NewFrameClock(drv.Clock()),
	}
	a.resize(drv.Size())
	return a, nil
}

// resize resizes the framebuffer and recomputes the projection.
func (a *App) resize(size image.Point) {
	a.size = size
	a.Renderer.Resize(size)
	a.projection = a.Camera.Projection(size.X, size.Y)
	slog.Debug("resized", "width", size.X, "height", size.Y)
}

// Frame renders and presents one frame.
func (a *App) Frame() error {
	start := time.Now()
	if sz := a.Driver.Size(); sz != a.size {
		a.resize(sz)
	}
	ft := a.clock.Tick()
	in := a.Driver.Input(a.clock.Prev)
	step := a.Animator.Advance(a.Scene, ft, in)
	view := a.Camera.Update(in, step.CameraCoupling, a.Scene.Tracked())

	a.Renderer.Begin()
	a.Scene.Draw(&a.projection, &view)
	if err := a.Driver.Present(a.Renderer.Image()); err != nil {
		return err
	}
	a.frames++
	a.Metrics.ObserveFrame(time.Since(start), a.Renderer.Triangles)
	a.Metrics.SetScene(a.Camera.Distance, step.Phase)
	return nil
}

// Frames returns the number of frames presented.
func (a *App) Frames() int {
	return a.frames
}

// done returns whether the loop should stop.
func (a *App) done() bool {
	return a.Driver.ShouldClose() || (a.MaxFrames > 0 && a.frames >= a.MaxFrames)
}

// Run runs frames until the driver closes, the frame limit is
// reached, or the context is done.
func (a *App) Run(ctx context.Context) error {
	var tick <-chan time.Time
	if a.Pace {
		t := time.NewTicker(a.Config.Render.FramePeriod())
		defer t.Stop()
		tick = t.C
	}
	for !a.done() {
		if err := a.Frame(); err != nil {
			return err
		}
		if tick == nil {
			if err := ctx.Err(); err != nil {
				return nil
			}
			continue
		}
		select {
		case <-ctx.Done():
			return nil
		case <-tick:
		}
	}
	slog.Info("closed", "frames", a.frames)
	return nil
}

// Run opens the configured driver and runs the scene until it closes.
func Run(ctx context.Context, cfg *config.Config, opts Options) error {
	if opts.Driver != "" {
		cfg.Render.Driver = opts.Driver
	}
	if opts.Frames > 0 {
		cfg.Render.Frames = opts.Frames
	}
	drv, err := OpenDriver(cfg)
	if err != nil {
		return err
	}
	defer drv.Close()
	a, err := New(ctx, cfg, drv)
	if err != nil {
		return err
	}
	a.Metrics = opts.Metrics
	a.Pace = cfg.Render.Driver == config.DriverTerm
	return a.Run(ctx)
}
