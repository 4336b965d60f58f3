// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package steps

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/glsteps/config"
	"cogentcore.org/glsteps/gpu"
	"cogentcore.org/glsteps/gpu/gputest"
	"cogentcore.org/glsteps/shader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSteps(t *testing.T) {
	counts := map[string]int32{"triangle": 3, "square": 6, "indexed": 6, "uniform": 6, "animate": 6}
	for _, nm := range Names() {
		t.Run(nm, func(t *testing.T) {
			d := gputest.NewDriver()
			st, err := ByName(nm, config.Default())
			require.NoError(t, err)
			assert.Equal(t, nm, st.Name())
			require.NoError(t, st.Setup(d))
			for range 3 {
				require.NoError(t, st.Frame(d))
			}
			require.Len(t, d.Draws, 3)
			dr := d.Draws[0]
			assert.Equal(t, counts[nm], dr.Count)
			assert.Equal(t, nm != "triangle" && nm != "square", dr.Indexed)
			assert.Equal(t, gpu.TRIANGLES, dr.Mode)
			assert.Len(t, d.ClearColors, 3)
			assert.Zero(t, d.Current)
			assert.Zero(t, d.BoundArray)
			st.Release(d)
			assert.Zero(t, d.Live())
		})
	}
}

func TestUniformStep(t *testing.T) {
	d := gputest.NewDriver()
	st, err := ByName("uniform", config.Default())
	require.NoError(t, err)
	require.NoError(t, st.Setup(d))
	defer st.Release(d)
	require.NoError(t, st.Frame(d))
	v, ok := d.Uniform(d.Draws[0].Program, ColorUniform)
	require.True(t, ok)
	assert.Equal(t, [4]float32{0.8, 0.3, 0.2, 1}, v)
}

func TestAnimateStep(t *testing.T) {
	d := gputest.NewDriver()
	st, err := ByName("animate", config.Default())
	require.NoError(t, err)
	require.NoError(t, st.Setup(d))
	defer st.Release(d)
	var reds []float32
	for range 25 {
		require.NoError(t, st.Frame(d))
		v, ok := d.Uniform(d.Draws[0].Program, ColorUniform)
		require.True(t, ok)
		assert.Equal(t, float32(0.2), v[1])
		reds = append(reds, v[0])
	}
	assert.Equal(t, float32(0), reds[0])
	assert.InDelta(t, 0.05, reds[1], 1e-6)
	assert.InDelta(t, 1.0, reds[20], 1e-5)
	// it turns around after passing 1
	assert.Less(t, reds[24], reds[22])
	for _, r := range reds {
		assert.LessOrEqual(t, r, float32(1), "red stays within the color range")
	}
}

func TestReload(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	d := gputest.NewDriver()
	st, err := ByName("uniform", config.Default())
	require.NoError(t, err)
	require.NoError(t, st.Setup(d))
	defer st.Release(d)
	require.NoError(t, st.Frame(d))
	old := d.Draws[0].Program

	bad := shader.ProgramSource{Vertex: InlineSource.Vertex, Fragment: "void main(){"}
	err = st.Reload(d, bad)
	var ce *gpu.CompileError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, gpu.FragmentShader, ce.Stage)
	assert.Contains(t, buf.String(), "fragment compilation failed")
	require.NoError(t, st.Frame(d))
	assert.Equal(t, old, d.Draws[1].Program, "previous program is kept")

	require.NoError(t, st.Reload(d, shader.ProgramSource{
		Vertex:   InlineSource.Vertex,
		Fragment: "uniform vec4 u_Color;\nvoid main(){}\n",
	}))
	require.NoError(t, st.Frame(d))
	assert.NotEqual(t, old, d.Draws[2].Program)
	_, live := d.Programs[old]
	assert.False(t, live, "previous program is deleted")
}

func TestShaderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.shader")
	require.NoError(t, os.WriteFile(path, []byte("#shader vertex\nvoid main(){}\n#shader fragment\nuniform vec4 u_Color;\nvoid main(){}\n"), 0o644))
	cfg := config.Default()
	cfg.Shader = path
	d := gputest.NewDriver()
	st, err := ByName("animate", cfg)
	require.NoError(t, err)
	require.NoError(t, st.Setup(d))
	require.NoError(t, st.Frame(d))
	st.Release(d)

	cfg.Shader = filepath.Join(t.TempDir(), "missing.shader")
	_, err = ByName("animate", cfg)
	assert.Error(t, err)
}

func TestUnknownStep(t *testing.T) {
	_, err := ByName("cube", config.Default())
	assert.ErrorContains(t, err, "unknown step")
	assert.False(t, Valid("cube"))
	assert.True(t, Valid("indexed"))
}

func TestSetupFailure(t *testing.T) {
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	defer slog.SetDefault(prev)

	d := gputest.NewDriver()
	d.FailLink = true
	st, err := ByName("square", config.Default())
	require.NoError(t, err)
	var le *gpu.LinkError
	require.ErrorAs(t, st.Setup(d), &le)
	assert.Zero(t, d.Live())
	assert.ErrorIs(t, st.Frame(d), gpu.ErrNoProgram)
}
