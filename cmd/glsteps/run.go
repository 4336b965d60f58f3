// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"cogentcore.org/glsteps/base/errors"
	"cogentcore.org/glsteps/config"
	"cogentcore.org/glsteps/glwin"
	"cogentcore.org/glsteps/gpu"
	"cogentcore.org/glsteps/shader"
	"cogentcore.org/glsteps/steps"
	"github.com/spf13/cobra"
)

func newRunCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [step]",
		Short: "Open a window and run a step",
		Long:  "Open a window and run a step until the window is closed.\nSteps: " + fmt.Sprint(steps.Names()),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.loadConfig(cmd.Flags()); err != nil {
				return err
			}
			if len(args) == 1 {
				opts.cfg.Step = args[0]
			}
			if !steps.Valid(opts.cfg.Step) {
				return fmt.Errorf("unknown step %q; must be one of %v", opts.cfg.Step, steps.Names())
			}
			return run(cmd.Context(), opts.cfg)
		},
	}
	addConfigFlags(cmd.Flags(), &opts.cfg)
	return cmd
}

// run runs the configured step in a new window.
func run(ctx context.Context, cfg config.Config) error {
	st, err := steps.ByName(cfg.Step, cfg)
	if err != nil {
		return err
	}
	w, err := glwin.Open(cfg)
	if err != nil {
		return err
	}
	defer w.Terminate()
	d := w.Driver

	if err := st.Setup(d); err != nil {
		return err
	}
	defer st.Release(d)

	var watcher *shader.Watcher
	if cfg.Watch {
		watcher, err = shader.Watch(ctx, cfg.Shader)
		if err != nil {
			return err
		}
		defer watcher.Close()
		slog.Info("watching shader", "file", errors.Log1(filepath.Abs(cfg.Shader)))
	}

	return w.Run(ctx, func() error {
		if watcher != nil {
			if ps, ok := watcher.Latest(); ok {
				logReload(st.Reload(d, ps))
			}
			select {
			case err := <-watcher.Errors():
				// the file may be caught mid-replace, and is parsed again
				// on the next change
				slog.Warn("shader file not reloaded", "err", err)
			default:
			}
		}
		return st.Frame(d)
	})
}

// logReload logs the result of reloading a step. Compile and link
// errors have already been logged with the driver's info log when
// the program was built, so they are not repeated.
func logReload(err error) {
	if err == nil {
		return
	}
	var ce *gpu.CompileError
	var le *gpu.LinkError
	if errors.As(err, &ce) || errors.As(err, &le) {
		slog.Warn("keeping previous program")
		return
	}
	errors.Log(err)
}
