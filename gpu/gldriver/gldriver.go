// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gldriver implements [gpu.Driver] on OpenGL 4.1 core.
// A context must be current on the calling thread, and [Init]
// must have been called once it is.
package gldriver

import (
	"strings"
	"unsafe"

	"cogentcore.org/glsteps/gpu"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Init loads the OpenGL function pointers for the current context.
func Init() error {
	return gl.Init()
}

// Driver is the OpenGL [gpu.Driver].
type Driver struct{}

var _ gpu.Driver = Driver{}

func (Driver) CreateShader(typ uint32) uint32 {
	return gl.CreateShader(typ)
}

// ShaderSource sets the source of the shader. The source does not need to
// be null terminated, but that skips the extra step of adding the terminator.
func (Driver) ShaderSource(shader uint32, src string) {
	if !strings.HasSuffix(src, "\x00") {
		src += "\x00"
	}
	csources, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (Driver) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (Driver) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (Driver) ShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	msg := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (Driver) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (Driver) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (Driver) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (Driver) DetachShader(program, shader uint32) {
	gl.DetachShader(program, shader)
}

func (Driver) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (Driver) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (Driver) ValidateProgram(program uint32) {
	gl.ValidateProgram(program)
}

func (Driver) ProgramValidated(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.VALIDATE_STATUS, &status)
	return status != gl.FALSE
}

func (Driver) ProgramInfoLog(program uint32) string {
	var lgLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &lgLength)
	if lgLength == 0 {
		return ""
	}
	lg := strings.Repeat("\x00", int(lgLength+1))
	gl.GetProgramInfoLog(program, lgLength, nil, gl.Str(lg))
	return strings.TrimRight(lg, "\x00")
}

func (Driver) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (Driver) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (Driver) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (Driver) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	gl.Uniform4f(location, v0, v1, v2, v3)
}

func (Driver) GenBuffer() uint32 {
	var b uint32
	gl.GenBuffers(1, &b)
	return b
}

func (Driver) BindBuffer(target, buffer uint32) {
	gl.BindBuffer(target, buffer)
}

func (Driver) BufferData(target uint32, size int, data unsafe.Pointer, usage uint32) {
	gl.BufferData(target, size, data, usage)
}

func (Driver) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (Driver) GenVertexArray() uint32 {
	var a uint32
	gl.GenVertexArrays(1, &a)
	return a
}

func (Driver) BindVertexArray(array uint32) {
	gl.BindVertexArray(array)
}

func (Driver) DeleteVertexArray(array uint32) {
	gl.DeleteVertexArrays(1, &array)
}

func (Driver) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (Driver) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointer(index, size, xtype, normalized, stride, gl.PtrOffset(int(offset)))
}

func (Driver) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (Driver) Clear(mask uint32) {
	gl.Clear(mask)
}

func (Driver) DrawArrays(mode uint32, first, count int32) {
	gl.DrawArrays(mode, first, count)
}

func (Driver) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	gl.DrawElements(mode, count, xtype, gl.PtrOffset(int(offset)))
}

func (Driver) GetError() uint32 {
	return gl.GetError()
}

func (Driver) GetString(name uint32) string {
	s := gl.GetString(name)
	if s == nil {
		return ""
	}
	return gl.GoStr(s)
}
