// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestHandlerPlain(t *testing.T) {
	var buf bytes.Buffer
	lg := slog.New(NewHandler(&buf, slog.LevelInfo, termenv.WithProfile(termenv.Ascii)))
	lg.Debug("hidden")
	lg.Warn("shown", "stage", "vertex")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WARN msg=shown")
	assert.Contains(t, out, "stage=vertex")
	assert.NotContains(t, out, "time=")
	assert.NotContains(t, out, "\x1b[")
}

func TestHandlerColor(t *testing.T) {
	var buf bytes.Buffer
	lg := slog.New(NewHandler(&buf, slog.LevelDebug, termenv.WithProfile(termenv.ANSI)))
	lg.Error("failed")
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "ERROR")
}

func TestWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	lg := slog.New(NewHandler(&buf, slog.LevelInfo, termenv.WithProfile(termenv.Ascii)))
	lg.With("step", "triangle").WithGroup("gl").Info("ready", "version", "4.1")
	assert.Contains(t, buf.String(), "step=triangle")
	assert.Contains(t, buf.String(), "gl.version=4.1")
}
