// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command orbit renders an orbital scene of the Earth, its clouds, the
// Sun and a satellite, with an orbit camera tracking the satellite.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/orbit/app"
	"cogentcore.org/orbit/base/errors"
	"cogentcore.org/orbit/base/logx"
	"cogentcore.org/orbit/config"
	"cogentcore.org/orbit/metrics"
)

// flags
var (
	verbose     = flag.Bool("v", false, "show info messages")
	veryVerbose = flag.Bool("vv", false, "show debug messages")
	quiet       = flag.Bool("q", false, "only show errors")
	logFile     = flag.String("log", "", "write log messages to this file; with the term driver they are otherwise shown on exit")
	metricsAddr = flag.String("metrics", "", "serve Prometheus metrics at this address, e.g. :9090")
	traceFile   = flag.String("trace", "", "write scene loading trace spans to this file, or - for stdout")
	driverName  = flag.String("driver", "", "override the Render.Driver of the scene: term or offscreen")
	frames      = flag.Int("frames", 0, "override the Render.Frames of the scene")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: orbit [flags] [scene.json|scene.toml|scene.yaml]\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	os.Exit(run())
}

func run() int {
	logx.UserLevel = logx.LevelFromFlags(*veryVerbose, *verbose, *quiet)
	var deferred *bytes.Buffer
	switch {
	case *logFile != "":
		f, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer f.Close()
		logx.SetDefaultLogger(f)
	case *driverName != config.DriverOffscreen:
		// the terminal driver owns the screen until it closes
		deferred = &bytes.Buffer{}
		logx.SetDefaultLogger(deferred)
		defer func() { os.Stderr.Write(deferred.Bytes()) }()
	default:
		logx.SetDefaultLogger(nil)
	}

	filename := "scene.json"
	if flag.NArg() > 0 {
		filename = flag.Arg(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	shutdown, err := app.InitTracing(ctx, traceWriter())
	if errors.Log(err) != nil {
		return 1
	}
	defer app.ShutdownWithTimeout(context.Background(), shutdown)

	cfg, err := app.Load(ctx, filename)
	if errors.Log(err) != nil {
		return 1
	}
	if deferred != nil && *driverName == "" && cfg.Render.Driver == config.DriverOffscreen {
		// nothing owns the screen after all
		os.Stderr.Write(deferred.Bytes())
		deferred.Reset()
		logx.SetDefaultLogger(nil)
	}

	opts := app.Options{Driver: *driverName, Frames: *frames}
	if *metricsAddr != "" {
		mc, err := metrics.NewCollector(nil)
		if errors.Log(err) != nil {
			return 1
		}
		if _, err := mc.Serve(ctx, *metricsAddr); errors.Log(err) != nil {
			return 1
		}
		opts.Metrics = mc
	}

	if err := app.Run(ctx, cfg, opts); err != nil {
		slog.Error("orbit", "err", err)
		return 1
	}
	return 0
}

// traceWriter returns where trace spans are written, or nil.
func traceWriter() io.Writer {
	switch *traceFile {
	case "":
		return nil
	case "-":
		return os.Stdout
	}
	f, err := os.Create(*traceFile)
	if errors.Log(err) != nil {
		return nil
	}
	return f
}
