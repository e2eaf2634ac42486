// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes one line per record, with the
// level colored according to the color profile of the output. Colors are
// dropped automatically when the output is not a terminal.
type Handler struct {
	mu     *sync.Mutex
	w      io.Writer
	out    *termenv.Output
	level  slog.Leveler
	prefix string
	attrs  []byte
}

// NewHandler returns a new [Handler] writing to w, showing records at or
// above the given level.
func NewHandler(w io.Writer, level slog.Leveler) *Handler {
	return &Handler{
		mu:    &sync.Mutex{},
		w:     w,
		out:   termenv.NewOutput(w),
		level: level,
	}
}

// SetDefaultLogger sets the default [slog] logger to a [Handler] that
// writes to w (stderr if nil) and is filtered by [UserLevel].
func SetDefaultLogger(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	slog.SetDefault(slog.New(NewHandler(w, &UserLevel)))
}

func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	buf := make([]byte, 0, 256)
	buf = append(buf, h.levelString(r.Level)...)
	buf = append(buf, ' ')
	buf = append(buf, r.Message...)
	buf = append(buf, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		buf = h.appendAttr(buf, h.prefix, a)
		return true
	})
	buf = append(buf, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf)
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append([]byte(nil), h.attrs...)
	for _, a := range attrs {
		nh.attrs = h.appendAttr(nh.attrs, h.prefix, a)
	}
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.prefix = h.prefix + name + "."
	return &nh
}

// levelString returns the level name in the color for that level.
func (h *Handler) levelString(l slog.Level) string {
	var c termenv.Color
	switch {
	case l >= slog.LevelError:
		c = termenv.ANSIRed
	case l >= slog.LevelWarn:
		c = termenv.ANSIYellow
	case l >= slog.LevelInfo:
		c = termenv.ANSIGreen
	default:
		c = termenv.ANSIBlue
	}
	return h.out.String(l.String()).Foreground(c).Bold().String()
}

func (h *Handler) appendAttr(buf []byte, prefix string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return buf
	}
	if a.Value.Kind() == slog.KindGroup {
		gp := prefix
		if a.Key != "" {
			gp += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			buf = h.appendAttr(buf, gp, ga)
		}
		return buf
	}
	buf = append(buf, ' ')
	buf = append(buf, h.out.String(prefix+a.Key).Faint().String()...)
	buf = append(buf, '=')
	v := a.Value.String()
	if v == "" || strings.ContainsAny(v, " \t\n\"=") {
		v = strconv.Quote(v)
	}
	return append(buf, v...)
}
