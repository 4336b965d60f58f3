// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package steps has the incremental drawing steps: a triangle, a square
// from six vertices, an indexed square, a square colored by a uniform,
// and a square with an animated uniform color.
package steps

import (
	"embed"
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/glsteps/anim"
	"cogentcore.org/glsteps/base/errors"
	"cogentcore.org/glsteps/config"
	"cogentcore.org/glsteps/geom"
	"cogentcore.org/glsteps/gpu"
	"cogentcore.org/glsteps/shader"
	"github.com/go-gl/mathgl/mgl32"
)

//go:embed shaders/*.shader
var shaders embed.FS

// ColorUniform is the name of the color uniform of the built-in shader.
const ColorUniform = "u_Color"

// Step is one drawing step. All methods must be called on the thread
// that owns the rendering context.
type Step interface {
	// Name returns the name of the step.
	Name() string

	// Setup uploads the geometry and builds the program.
	Setup(d gpu.Driver) error

	// Frame draws one frame.
	Frame(d gpu.Driver) error

	// Reload rebuilds the program from the given source. On failure
	// the previous program is kept.
	Reload(d gpu.Driver, ps shader.ProgramSource) error

	// Release releases everything created by Setup.
	Release(d gpu.Driver)
}

// Names returns the names of all the steps, in order.
func Names() []string {
	return []string{"triangle", "square", "indexed", "uniform", "animate"}
}

// ByName returns a new step with the given name, configured from cfg.
func ByName(name string, cfg config.Config) (Step, error) {
	st := &scene{name: name, clear: mgl32.Vec4(cfg.ClearColor)}
	var file string
	switch name {
	case "triangle":
		st.mesh = geom.Triangle()
		st.source = InlineSource
	case "square":
		st.mesh = geom.SquareArrays()
		st.source = InlineSource
	case "indexed":
		st.mesh = geom.SquareIndexed()
		file = "shaders/plain.shader"
	case "uniform":
		st.mesh = geom.SquareIndexed()
		file = "shaders/basic.shader"
		st.color = func() mgl32.Vec4 { return mgl32.Vec4{0.8, 0.3, 0.2, 1} }
	case "animate":
		st.mesh = geom.SquareIndexed()
		file = "shaders/basic.shader"
		osc := anim.NewOscillator(0, 1, 0.05)
		st.color = func() mgl32.Vec4 {
			// the oscillator overshoots its bounds by up to one step
			r := osc.Clamped()
			osc.Next()
			return mgl32.Vec4{r, 0.2, 0.5, 1}
		}
	default:
		return nil, fmt.Errorf("steps: unknown step %q; must be one of %v", name, Names())
	}
	switch {
	case cfg.Shader != "":
		ps, err := shader.ParseFile(cfg.Shader)
		if err != nil {
			return nil, err
		}
		st.source = ps
	case file != "":
		ps, err := shader.ParseString(string(errors.Must1(shaders.ReadFile(file))))
		if err != nil {
			return nil, err
		}
		st.source = ps
	}
	return st, nil
}

// InlineSource is the fixed red shader used by the first steps.
var InlineSource = shader.ProgramSource{
	Vertex: `#version 410 core

layout(location = 0) in vec4 position;

void main()
{
   gl_Position = position;
}
`,
	Fragment: `#version 410 core

layout(location = 0) out vec4 color;

void main()
{
   color = vec4(1.0, 0.0, 0.0, 1.0);
}
`,
}

// scene draws one mesh with one program, optionally setting
// the color uniform each frame.
type scene struct {
	name   string
	mesh   geom.Mesh
	source shader.ProgramSource
	clear  mgl32.Vec4

	// color returns the color uniform value for the next frame;
	// nil if the program has no color uniform.
	color func() mgl32.Vec4

	prog *gpu.Program
	va   *gpu.VertexArray
}

func (sc *scene) Name() string {
	return sc.name
}

func (sc *scene) Setup(d gpu.Driver) error {
	var err error
	// the vertex array is created first, as validation
	// needs one bound on some drivers
	sc.va, err = gpu.NewMeshVertexArray(d, sc.mesh)
	if err != nil {
		return err
	}
	err = sc.va.Bind(func() error {
		sc.prog, err = sc.source.Build(d)
		return err
	})
	if err != nil {
		sc.Release(d)
		return err
	}
	slog.Info("steps: setup", "step", sc.name, "program", sc.prog.Handle(), "vertices", len(sc.mesh.Positions), "triangles", sc.mesh.Triangles())
	return nil
}

func (sc *scene) Frame(d gpu.Driver) error {
	if err := gpu.Clear(d, sc.clear); err != nil {
		return err
	}
	return sc.prog.Use(func(b *gpu.Bound) error {
		if sc.color != nil {
			if err := b.SetUniform4f(ColorUniform, sc.color()); err != nil {
				return err
			}
		}
		return b.Draw(sc.va)
	})
}

func (sc *scene) Reload(d gpu.Driver, ps shader.ProgramSource) error {
	var pr *gpu.Program
	err := sc.va.Bind(func() error {
		var err error
		pr, err = ps.Build(d)
		return err
	})
	if err != nil {
		return fmt.Errorf("steps: %s: keeping previous program: %w", sc.name, err)
	}
	sc.prog.Delete()
	sc.prog = pr
	sc.source = ps
	slog.Info("steps: reloaded", "step", sc.name, "program", pr.Handle())
	return nil
}

func (sc *scene) Release(d gpu.Driver) {
	sc.prog.Delete()
	sc.va.Release()
	sc.prog = nil
	sc.va = nil
}

// Valid returns whether name is the name of a step.
func Valid(name string) bool {
	return slices.Contains(Names(), name)
}
