// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"

	"cogentcore.org/glsteps/base/errors"
	"github.com/go-gl/mathgl/mgl32"
)

// Program is a linked vertex and fragment shader pair.
// It is owned by whoever created it, who must call [Program.Delete]
// when it is no longer needed.
type Program struct {
	d      Driver
	handle uint32

	// uniform locations by name, looked up on first use.
	unis map[string]int32
}

// CreateProgram compiles the given vertex and fragment sources and links
// them into a new program. The link and validation status are checked,
// and failures are reported as a [*LinkError]. On any failure every
// object created so far is released and a nil program is returned.
// The stage objects are always released once linked, as the program
// retains everything it needs.
func CreateProgram(d Driver, vertexSrc, fragmentSrc string) (*Program, error) {
	handle := d.CreateProgram()
	if handle == 0 {
		return nil, errors.Log(errors.New("gpu.CreateProgram: could not create program"))
	}
	srcs := map[Stage]string{VertexShader: vertexSrc, FragmentShader: fragmentSrc}
	var shaders []uint32
	release := func() {
		for _, sh := range shaders {
			d.DetachShader(handle, sh)
			d.DeleteShader(sh)
		}
		shaders = nil
	}
	for _, st := range Stages {
		sh, err := CompileShader(d, st, srcs[st])
		if err != nil {
			release()
			d.DeleteProgram(handle)
			return nil, err
		}
		err = Call(d, "AttachShader", func() { d.AttachShader(handle, sh) })
		shaders = append(shaders, sh)
		if err != nil {
			release()
			d.DeleteProgram(handle)
			return nil, errors.Log(err)
		}
	}

	d.LinkProgram(handle)
	var err error
	if !d.ProgramLinked(handle) {
		err = &LinkError{Op: "link", Log: d.ProgramInfoLog(handle)}
	} else {
		d.ValidateProgram(handle)
		if !d.ProgramValidated(handle) {
			err = &LinkError{Op: "validate", Log: d.ProgramInfoLog(handle)}
		}
	}
	release()
	if err != nil {
		d.DeleteProgram(handle)
		return nil, errors.Log(err)
	}
	slog.Debug("gpu.CreateProgram: linked", "program", handle)
	return &Program{d: d, handle: handle}, nil
}

// Handle returns the driver handle for the program, which is 0
// once the program has been deleted.
func (pr *Program) Handle() uint32 {
	if pr == nil {
		return 0
	}
	return pr.handle
}

// Use makes this the current program, calls fn with it bound, and then
// restores the default program, returning any error from either.
// Uniforms can only be set and draws issued through the [Bound] value,
// so the current program is always known at the call site.
func (pr *Program) Use(fn func(b *Bound) error) error {
	if pr.Handle() == 0 {
		return ErrNoProgram
	}
	d := pr.d
	if err := Call(d, "UseProgram", func() { d.UseProgram(pr.handle) }); err != nil {
		return err
	}
	defer d.UseProgram(0)
	return fn(&Bound{pr: pr})
}

// UniformLocation returns the location of the named uniform,
// or a [*UniformError] if it is not an active uniform.
func (pr *Program) UniformLocation(name string) (int32, error) {
	if loc, ok := pr.unis[name]; ok {
		return loc, nil
	}
	if pr.Handle() == 0 {
		return -1, ErrNoProgram
	}
	loc := pr.d.GetUniformLocation(pr.handle, name)
	if loc < 0 {
		return -1, &UniformError{Name: name, Program: pr.handle}
	}
	if pr.unis == nil {
		pr.unis = make(map[string]int32)
	}
	pr.unis[name] = loc
	return loc, nil
}

// Delete deletes the GPU resources associated with this program.
// It is safe to call more than once.
func (pr *Program) Delete() {
	if pr.Handle() == 0 {
		return
	}
	pr.d.DeleteProgram(pr.handle)
	pr.handle = 0
	pr.unis = nil
}

// Bound is a [Program] that is the current program for the duration
// of a [Program.Use] callback.
type Bound struct {
	pr *Program
}

// Program returns the bound program.
func (b *Bound) Program() *Program {
	return b.pr
}

// SetUniform4f sets the named vec4 uniform to the given value.
func (b *Bound) SetUniform4f(name string, v mgl32.Vec4) error {
	loc, err := b.pr.UniformLocation(name)
	if err != nil {
		return err
	}
	d := b.pr.d
	return Call(d, fmt.Sprintf("Uniform4f(%s)", name), func() { d.Uniform4f(loc, v[0], v[1], v[2], v[3]) })
}

// Draw draws the triangles of the given vertex array, using its index
// buffer if it has one.
func (b *Bound) Draw(va *VertexArray) error {
	d := b.pr.d
	return va.Bind(func() error {
		if va.Indexed() {
			return Call(d, "DrawElements", func() { d.DrawElements(TRIANGLES, va.Count(), UNSIGNED_INT, 0) })
		}
		return Call(d, "DrawArrays", func() { d.DrawArrays(TRIANGLES, 0, va.Count()) })
	})
}
