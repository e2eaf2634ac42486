// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics exports Prometheus metrics of the frame loop.
package metrics

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"cogentcore.org/orbit/base/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the frame loop metrics. All methods are safe
// to call on a nil *Collector, which records nothing.
type Collector struct {
	gatherer prometheus.Gatherer

	Frames         prometheus.Counter
	FrameSeconds   prometheus.Histogram
	Triangles      prometheus.Gauge
	CameraDistance prometheus.Gauge
	SatellitePhase prometheus.Gauge
}

// NewCollector registers the metrics against the given registerer,
// defaulting to the global Prometheus registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}
	c := &Collector{gatherer: gatherer}
	var err error

	if c.Frames, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orbit_frames_total",
		Help: "Total number of frames rendered.",
	})); err != nil {
		return nil, err
	}
	if c.FrameSeconds, err = register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "orbit_frame_duration_seconds",
		Help:    "Time to animate, draw and present one frame, in seconds.",
		Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.0167, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	})); err != nil {
		return nil, err
	}
	if c.Triangles, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "orbit_frame_triangles",
		Help: "Number of triangles rasterized in the last frame.",
	})); err != nil {
		return nil, err
	}
	if c.CameraDistance, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "orbit_camera_distance",
		Help: "Distance of the camera from the tracked entity.",
	})); err != nil {
		return nil, err
	}
	if c.SatellitePhase, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "orbit_satellite_phase_radians",
		Help: "Orbital phase of the Earth about the satellite.",
	})); err != nil {
		return nil, err
	}
	return c, nil
}

// register registers the collector, returning the already registered
// one of the same type if there is one.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
			return c, fmt.Errorf("metrics: collector already registered with incompatible type: %w", err)
		}
		return c, err
	}
	return c, nil
}

// ObserveFrame records one rendered frame.
func (c *Collector) ObserveFrame(d time.Duration, triangles int) {
	if c == nil {
		return
	}
	c.Frames.Inc()
	c.FrameSeconds.Observe(d.Seconds())
	c.Triangles.Set(float64(triangles))
}

// SetScene records the camera distance and orbital phase.
func (c *Collector) SetScene(cameraDistance, phase float32) {
	if c == nil {
		return
	}
	c.CameraDistance.Set(float64(cameraDistance))
	c.SatellitePhase.Set(float64(phase))
}

// Handler returns the HTTP handler exposing the metrics.
func (c *Collector) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if c != nil && c.gatherer != nil {
		gatherer = c.gatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Serve serves the metrics at /metrics on the given address until
// the context is done. It returns once the listener is open.
func (c *Collector) Serve(ctx context.Context, addr string) (net.Addr, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("metrics server", "err", err)
		}
	}()
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(sctx)
	}()
	slog.Info("serving metrics", "addr", ln.Addr().String())
	return ln.Addr(), nil
}
