// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// struct for the glsteps tool.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"cogentcore.org/glsteps/base/errors"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// Config is the main config struct that contains all of the
// configuration options for running a step. It is read from a TOML
// file, and command line flags override it.
type Config struct {

	// the name of the step to run
	Step string `toml:"step"`

	// the width of the window in screen coordinates
	Width int `toml:"width"`

	// the height of the window in screen coordinates
	Height int `toml:"height"`

	// the title of the window
	Title string `toml:"title"`

	// whether to pace buffer swaps to the display refresh rate
	VSync bool `toml:"vsync"`

	// the tagged shader file to use for the steps that load one;
	// if empty, the built-in shader is used
	Shader string `toml:"shader"`

	// whether to rebuild the program when the shader file changes
	Watch bool `toml:"watch"`

	// the color the window is cleared to each frame
	ClearColor [4]float32 `toml:"clear_color"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Step:       "triangle",
		Width:      640,
		Height:     480,
		Title:      "Hello World",
		VSync:      true,
		ClearColor: [4]float32{0, 0, 0, 1},
	}
}

// Open returns the default configuration overlaid with the settings in
// the given TOML file. Unknown keys are an error. The result is not
// validated, as command line flags may still override it; call
// [Config.Validate] once all settings are applied.
func Open(path string) (Config, error) {
	cfg := Default()
	path, err := homedir.Expand(path)
	if err != nil {
		return cfg, fmt.Errorf("config.Open: %w", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config.Open: %w", err)
	}
	dec := toml.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config.Open %q: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to the given file as TOML.
func (c *Config) Save(path string) error {
	var b bytes.Buffer
	if err := c.Write(&b); err != nil {
		return err
	}
	return os.WriteFile(path, b.Bytes(), 0o644)
}

// Write writes the configuration to w as TOML.
func (c *Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// ExpandPaths expands a leading ~ in the file paths of the
// configuration to the user's home directory.
func (c *Config) ExpandPaths() error {
	sh, err := homedir.Expand(c.Shader)
	if err != nil {
		return err
	}
	c.Shader = sh
	return nil
}

// Validate returns an error if the configuration cannot be used,
// joining all of the problems found.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: invalid window size %dx%d", c.Width, c.Height))
	}
	if c.Step == "" {
		errs = append(errs, errors.New("config: no step"))
	}
	if c.Watch && c.Shader == "" {
		errs = append(errs, errors.New("config: watch requires a shader file"))
	}
	return errors.Join(errs...)
}
