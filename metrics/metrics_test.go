// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveFrame(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)

	c.ObserveFrame(20*time.Millisecond, 120)
	c.ObserveFrame(10*time.Millisecond, 80)
	c.SetScene(5, 1.5)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.Frames))
	assert.Equal(t, 80.0, testutil.ToFloat64(c.Triangles))
	assert.Equal(t, 5.0, testutil.ToFloat64(c.CameraDistance))
	assert.Equal(t, 1.5, testutil.ToFloat64(c.SatellitePhase))
	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, mfs, 5)
	for _, mf := range mfs {
		if mf.GetName() == "orbit_frame_duration_seconds" {
			assert.Equal(t, uint64(2), mf.GetMetric()[0].GetHistogram().GetSampleCount())
		}
	}
}

func TestReregister(t *testing.T) {
	reg := prometheus.NewRegistry()
	c1, err := NewCollector(reg)
	require.NoError(t, err)
	c2, err := NewCollector(reg)
	require.NoError(t, err)
	c1.ObserveFrame(time.Millisecond, 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(c2.Frames))
}

func TestNilCollector(t *testing.T) {
	var c *Collector
	assert.NotPanics(t, func() {
		c.ObserveFrame(time.Millisecond, 1)
		c.SetScene(1, 1)
	})
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)
	c.ObserveFrame(time.Millisecond, 3)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "orbit_frames_total 1")
}

func TestServe(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr, err := c.Serve(ctx, "127.0.0.1:0")
	require.NoError(t, err)
	resp, err := http.Get("http://" + addr.String() + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "orbit_camera_distance"))
}
