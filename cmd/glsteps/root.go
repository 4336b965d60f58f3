// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"cogentcore.org/glsteps/base/errors"
	"cogentcore.org/glsteps/base/logx"
	"cogentcore.org/glsteps/config"
	"cogentcore.org/glsteps/gpu"
	"cogentcore.org/glsteps/shader"
	"cogentcore.org/glsteps/steps"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// options are the settings shared by all commands.
type options struct {
	configFile string
	vv, v, q   bool

	cfg config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{cfg: config.Default()}
	root := &cobra.Command{
		Use:          "glsteps",
		Short:        "Run incremental OpenGL drawing steps",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(opts.vv, opts.v, opts.q)
			logx.SetDefaultLogger()
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&opts.configFile, "config", "", "TOML config `file`; flags override its settings")
	errors.Must(root.MarkPersistentFlagFilename("config", "toml"))
	pf.BoolVar(&opts.vv, "vv", false, "log debug messages")
	pf.BoolVarP(&opts.v, "verbose", "v", false, "log info messages")
	pf.BoolVarP(&opts.q, "quiet", "q", false, "only log errors")

	root.AddCommand(newRunCmd(opts), newParseCmd(), newStepsCmd(), newConfigCmd(opts))
	return root
}

// addConfigFlags adds flags for the settings of cfg.
func addConfigFlags(fs *pflag.FlagSet, cfg *config.Config) {
	fs.IntVar(&cfg.Width, "width", cfg.Width, "window width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "window height")
	fs.StringVar(&cfg.Title, "title", cfg.Title, "window title")
	fs.BoolVar(&cfg.VSync, "vsync", cfg.VSync, "pace buffer swaps to the display refresh rate")
	fs.StringVar(&cfg.Shader, "shader", cfg.Shader, "tagged shader `file` to use instead of the built-in one")
	fs.BoolVar(&cfg.Watch, "watch", cfg.Watch, "rebuild the program when the shader file changes")
	errors.Must(fs.SetAnnotation("shader", cobra.BashCompFilenameExt, []string{"shader"}))
}

// loadConfig overlays the config file, if any, on the defaults, and then
// reapplies the flags that were set on the command line.
func (o *options) loadConfig(fs *pflag.FlagSet) error {
	if o.configFile == "" {
		return o.finishConfig()
	}
	changed := map[string]string{}
	fs.Visit(func(f *pflag.Flag) {
		changed[f.Name] = f.Value.String()
	})
	fc, err := config.Open(o.configFile)
	if err != nil {
		return err
	}
	o.cfg = fc
	for name, val := range changed {
		if err := fs.Set(name, val); err != nil {
			return err
		}
	}
	return o.finishConfig()
}

func (o *options) finishConfig() error {
	if err := o.cfg.ExpandPaths(); err != nil {
		return err
	}
	return o.cfg.Validate()
}

func newStepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "steps",
		Short: "List the steps",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(steps.Names(), "\n"))
		},
	}
}

func newParseCmd() *cobra.Command {
	var stage string
	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a tagged shader file and print its stages",
		Long: `Parse a tagged shader file and print its stages.
The output is itself a tagged shader file, without any lines that
precede the first tag line.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, err := shader.ParseFile(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if stage == "" {
				for _, st := range gpu.Stages {
					fmt.Fprintf(out, "%s %s\n%s", shader.Tag, st, ps.Source(st))
				}
				return nil
			}
			for _, st := range gpu.Stages {
				if st.String() == stage {
					fmt.Fprint(out, ps.Source(st))
					return nil
				}
			}
			return fmt.Errorf("unknown stage %q; must be vertex or fragment", stage)
		},
	}
	cmd.Flags().StringVar(&stage, "stage", "", "only print the given stage (vertex or fragment)")
	return cmd
}

func newConfigCmd(opts *options) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective config as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.loadConfig(cmd.Flags()); err != nil {
				return err
			}
			if !steps.Valid(opts.cfg.Step) {
				return fmt.Errorf("unknown step %q; must be one of %v", opts.cfg.Step, steps.Names())
			}
			if output != "" {
				return opts.cfg.Save(output)
			}
			return opts.cfg.Write(cmd.OutOrStdout())
		},
	}
	addConfigFlags(cmd.Flags(), &opts.cfg)
	cmd.Flags().StringVarP(&output, "output", "o", "", "save the config to the given `file` instead of printing it")
	cmd.Flags().StringVar(&opts.cfg.Step, "step", opts.cfg.Step, "step to run")
	return cmd
}
