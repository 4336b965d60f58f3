// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glwin opens a glfw window with an OpenGL 4.1 core context
// and runs a simple render loop on it.
//
// IMPORTANT: everything in this package must be called on the main
// initial thread, which must be locked with [runtime.LockOSThread].
package glwin

import (
	"context"
	"fmt"
	"log/slog"

	"cogentcore.org/glsteps/base/errors"
	"cogentcore.org/glsteps/config"
	"cogentcore.org/glsteps/gpu"
	"cogentcore.org/glsteps/gpu/gldriver"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is a glfw window whose context is current on the main thread.
type Window struct {
	*glfw.Window

	// Driver is the driver for the window's context.
	Driver gldriver.Driver
}

// Open initializes glfw and opens a window of the configured size, makes
// its context current, loads OpenGL, and sets the swap interval from
// [config.Config.VSync].
func Open(cfg config.Config) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Log(err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Log(err)
	}
	win.MakeContextCurrent()
	if err := gldriver.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, errors.Log(fmt.Errorf("glwin.Open: initializing OpenGL: %w", err))
	}
	glfw.SwapInterval(SwapInterval(cfg.VSync))

	w := &Window{Window: win}
	if err := gpu.RequireVersion(w.Driver, "4.1"); err != nil {
		w.Terminate()
		return nil, errors.Log(err)
	}
	glv, glsl := gpu.Version(w.Driver)
	slog.Info("glwin: opened", "gl", glv, "glsl", glsl, "vsync", cfg.VSync)
	return w, nil
}

// SwapInterval returns the glfw swap interval for the given vsync setting.
func SwapInterval(vsync bool) int {
	if vsync {
		return 1
	}
	return 0
}

// Run calls frame, swaps buffers and polls for events until the window
// should close, ctx is done, or frame returns an error, which is returned.
func (w *Window) Run(ctx context.Context, frame func() error) error {
	for !w.ShouldClose() {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		if err := frame(); err != nil {
			return err
		}
		w.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

// Terminate destroys the window and shuts down glfw.
// It should be the last thing called before quitting.
func (w *Window) Terminate() {
	w.Destroy()
	glfw.Terminate()
}
