// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/glsteps/gpu"
	"cogentcore.org/glsteps/gpu/gputest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCounts(t *testing.T) {
	src := "#shader vertex\nv1\nv2\nv3\n#shader fragment\nf1\nf2\n"
	ps, err := ParseString(src)
	require.NoError(t, err)
	assert.Equal(t, "v1\nv2\nv3\n", ps.Vertex)
	assert.Equal(t, "f1\nf2\n", ps.Fragment)
	assert.Equal(t, 3, strings.Count(ps.Vertex, "\n"))
	assert.Equal(t, 2, strings.Count(ps.Fragment, "\n"))
}

func TestParseReversed(t *testing.T) {
	src := "#shader fragment\nf1\n#shader vertex\nv1\nv2"
	ps, err := ParseString(src)
	require.NoError(t, err)
	assert.Equal(t, "v1\nv2\n", ps.Vertex)
	assert.Equal(t, "f1\n", ps.Fragment)
}

func TestParsePreamble(t *testing.T) {
	src := "junk\nmore junk\n#shader vertex\nv1\n"
	ps, err := ParseString(src)
	require.NoError(t, err)
	assert.Equal(t, "v1\n", ps.Vertex)
	assert.Empty(t, ps.Fragment, "stage without a tag line is empty")
	assert.NotContains(t, ps.Vertex, "junk")

	ps, err = ParseString("no tags at all\n")
	require.NoError(t, err)
	assert.Empty(t, ps.Vertex)
	assert.Empty(t, ps.Fragment)
}

func TestParseTagLines(t *testing.T) {
	// tag lines are matched by substring and never emitted;
	// a tag naming neither stage leaves the stage unchanged
	src := "  #shader   vertex // main\nv1\n#shader other\nv2\n#shader fragment\n\nf1\n"
	ps, err := ParseString(src)
	require.NoError(t, err)
	assert.Equal(t, "v1\nv2\n", ps.Vertex)
	assert.Equal(t, "\nf1\n", ps.Fragment)
}

func TestParseVerbatim(t *testing.T) {
	src := "#shader vertex\n\t  indented  \n#shader fragment\r\nf1\r\n"
	ps, err := ParseString(src)
	require.NoError(t, err)
	assert.Equal(t, "\t  indented  \n", ps.Vertex)
	assert.Equal(t, "f1\n", ps.Fragment)
}

func TestParseFile(t *testing.T) {
	ps, err := ParseFile(filepath.Join("testdata", "basic.shader"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ps.Vertex, "#version 410 core\n"))
	assert.True(t, strings.HasPrefix(ps.Fragment, "#version 410 core\n"))
	assert.Contains(t, ps.Vertex, "gl_Position = position;")
	assert.Contains(t, ps.Fragment, "color = vec4(1.0, 0.0, 0.0, 1.0);")
	assert.NotContains(t, ps.Vertex, "preamble")
	assert.NotContains(t, ps.Vertex, "#shader")
	assert.Equal(t, ps.Vertex, ps.Source(gpu.VertexShader))
	assert.Equal(t, ps.Fragment, ps.Source(gpu.FragmentShader))
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.shader"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestParseLongLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "long.shader")
	require.NoError(t, os.WriteFile(path, []byte("#shader vertex\n"+strings.Repeat("x", 1<<17)+"\n"), 0o644))
	_, err := ParseFile(path)
	assert.Error(t, err)

	ps, err := ParseString("#shader vertex\n" + strings.Repeat("x", 1<<17) + "\n")
	assert.ErrorIs(t, err, bufio.ErrTooLong)
	assert.Empty(t, ps.Vertex)
}

func TestBuild(t *testing.T) {
	d := gputest.NewDriver()
	ps, err := ParseFile(filepath.Join("testdata", "basic.shader"))
	require.NoError(t, err)
	pr, err := ps.Build(d)
	require.NoError(t, err)
	assert.NotZero(t, pr.Handle())
	pr.Delete()
	assert.Zero(t, d.Live())
}
