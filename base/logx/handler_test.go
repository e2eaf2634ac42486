// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	var b bytes.Buffer
	level := slog.LevelInfo
	lg := slog.New(NewHandler(&b, &level))

	lg.Debug("this is debug")
	assert.Empty(t, b.String())

	lg.With("scene", "earth orbit").WithGroup("camera").Info("updated", "yaw", 0.5)
	assert.Equal(t, "INFO updated scene=\"earth orbit\" camera.yaw=0.5\n", b.String())

	b.Reset()
	lg.Warn("missing", slog.Group("entity", "name", "Satellite"))
	assert.Equal(t, "WARN missing entity.name=Satellite\n", b.String())
}

func TestDefaultLogger(t *testing.T) {
	UserLevel = slog.LevelDebug
	defer func() { UserLevel = slog.LevelWarn }()
	var b bytes.Buffer
	SetDefaultLogger(&b)

	slog.Debug("this is debug")
	slog.Info("this is info")
	slog.Warn("this is warn")
	assert.Contains(t, b.String(), "DEBUG this is debug")
	assert.Contains(t, b.String(), "WARN this is warn")
}
