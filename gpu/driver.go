// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu builds shader programs and draws vertex arrays through a
// [Driver], which is the boundary to the graphics driver. Every call must be
// made on the thread that owns the rendering context.
//
// Driver state such as the current program or the bound vertex array is
// never relied upon across function boundaries: [Program.Use] and
// [VertexArray.Bind] make the object current only for the duration of
// a callback and restore the default afterwards.
package gpu

import "unsafe"

// Driver is the set of graphics driver calls needed to build programs
// and draw with them. It mirrors the corresponding OpenGL calls, with
// Go strings and bools in place of pointers and status queries.
// See gldriver for the OpenGL implementation.
type Driver interface {
	CreateShader(typ uint32) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)

	// ShaderCompiled returns the COMPILE_STATUS of the shader.
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)

	// ProgramLinked returns the LINK_STATUS of the program.
	ProgramLinked(program uint32) bool
	ValidateProgram(program uint32)

	// ProgramValidated returns the VALIDATE_STATUS of the program.
	ProgramValidated(program uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	GetUniformLocation(program uint32, name string) int32
	Uniform4f(location int32, v0, v1, v2, v3 float32)

	GenBuffer() uint32
	BindBuffer(target, buffer uint32)
	BufferData(target uint32, size int, data unsafe.Pointer, usage uint32)
	DeleteBuffer(buffer uint32)

	GenVertexArray() uint32
	BindVertexArray(array uint32)
	DeleteVertexArray(array uint32)
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr)

	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	DrawArrays(mode uint32, first, count int32)
	DrawElements(mode uint32, count int32, xtype uint32, offset uintptr)

	GetError() uint32
	GetString(name uint32) string
}
