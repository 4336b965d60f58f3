// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.True(t, cfg.VSync)
	assert.Equal(t, "triangle", cfg.Step)
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glsteps.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
step = "animate"
vsync = false
shader = "res/basic.shader"
clear_color = [0.1, 0.2, 0.3, 1.0]
`), 0o644))
	cfg, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, "animate", cfg.Step)
	assert.False(t, cfg.VSync)
	assert.Equal(t, "res/basic.shader", cfg.Shader)
	assert.Equal(t, [4]float32{0.1, 0.2, 0.3, 1}, cfg.ClearColor)
	// unset keys keep their defaults
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, "Hello World", cfg.Title)
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Open(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, fs.ErrNotExist)

	unknown := filepath.Join(dir, "unknown.toml")
	require.NoError(t, os.WriteFile(unknown, []byte("fps = 60\n"), 0o644))
	_, err = Open(unknown)
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("width = \"wide\"\n"), 0o644))
	_, err = Open(bad)
	assert.Error(t, err)
}

func TestOpenUnvalidated(t *testing.T) {
	// settings that are invalid on their own are left for the
	// command line to complete before validating
	dir := t.TempDir()
	watch := filepath.Join(dir, "watch.toml")
	require.NoError(t, os.WriteFile(watch, []byte("watch = true\n"), 0o644))
	cfg, err := Open(watch)
	require.NoError(t, err)
	assert.True(t, cfg.Watch)
	assert.Error(t, cfg.Validate())
	cfg.Shader = "basic.shader"
	assert.NoError(t, cfg.Validate())

	zero := filepath.Join(dir, "zero.toml")
	require.NoError(t, os.WriteFile(zero, []byte("width = 0\n"), 0o644))
	cfg, err = Open(zero)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Width)
	assert.ErrorContains(t, cfg.Validate(), "invalid window size 0x480")
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glsteps.toml")
	cfg := Default()
	cfg.Step = "uniform"
	cfg.Width = 800
	require.NoError(t, cfg.Save(path))
	got, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Watch = true
	assert.Error(t, cfg.Validate())
	cfg.Shader = "basic.shader"
	assert.NoError(t, cfg.Validate())
	cfg.Step = ""
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Width = 0
	cfg.Step = ""
	err := cfg.Validate()
	assert.ErrorContains(t, err, "invalid window size")
	assert.ErrorContains(t, err, "no step")
}

func TestExpandPaths(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	cfg := Default()
	cfg.Shader = "~/shaders/basic.shader"
	require.NoError(t, cfg.ExpandPaths())
	assert.Equal(t, filepath.Join(home, "shaders", "basic.shader"), cfg.Shader)

	cfg.Shader = ""
	require.NoError(t, cfg.ExpandPaths())
	assert.Empty(t, cfg.Shader)
}
