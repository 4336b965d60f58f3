// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gputest provides an in-memory [gpu.Driver] for tests,
// which tracks the objects it creates, checks shader sources with a
// minimal syntax check, and reports GL errors for invalid usage.
package gputest

import (
	"fmt"
	"strings"
	"unsafe"

	"cogentcore.org/glsteps/gpu"
)

// Shader is a fake shader object.
type Shader struct {
	Type     uint32
	Source   string
	Compiled bool
	Log      string
}

// Program is a fake program object.
type Program struct {
	Shaders   []uint32
	Linked    bool
	Validated bool
	Log       string

	// Uniforms maps active uniform names to locations, set on link.
	Uniforms map[string]int32

	// Values are the uniform values set by location.
	Values map[int32][4]float32
}

// Buffer is a fake buffer object.
type Buffer struct {
	Target uint32
	Data   []byte
}

// VertexArray is a fake vertex array object.
type VertexArray struct {
	// Attribs are the enabled attribute indexes.
	Attribs map[uint32]bool

	// ArrayBuffer is the buffer bound when attribute 0 was specified.
	ArrayBuffer uint32

	// ElementBuffer is the element buffer recorded by the array.
	ElementBuffer uint32
}

// Draw records one draw call.
type Draw struct {
	Mode        uint32
	Program     uint32
	VertexArray uint32
	Count       int32
	Indexed     bool
}

// Driver is an in-memory [gpu.Driver].
type Driver struct {
	Shaders      map[uint32]*Shader
	Programs     map[uint32]*Program
	Buffers      map[uint32]*Buffer
	VertexArrays map[uint32]*VertexArray

	// Current is the current program.
	Current uint32

	// BoundArray is the bound vertex array.
	BoundArray uint32

	// BoundBuffers are the bound buffers by target.
	BoundBuffers map[uint32]uint32

	Draws       []Draw
	ClearColors [][4]float32

	// FailLink and FailValidate force link or validation failures.
	FailLink     bool
	FailValidate bool

	next uint32
	errs []uint32
}

var _ gpu.Driver = (*Driver)(nil)

// NewDriver returns a new fake driver.
func NewDriver() *Driver {
	return &Driver{
		Shaders:      map[uint32]*Shader{},
		Programs:     map[uint32]*Program{},
		Buffers:      map[uint32]*Buffer{},
		VertexArrays: map[uint32]*VertexArray{},
		BoundBuffers: map[uint32]uint32{},
	}
}

func (d *Driver) id() uint32 {
	d.next++
	return d.next
}

// PushError queues an error code as if the driver had raised it.
func (d *Driver) PushError(code uint32) {
	d.errs = append(d.errs, code)
}

// Live returns the number of live shaders, programs, buffers and
// vertex arrays, for checking that everything was released.
func (d *Driver) Live() int {
	return len(d.Shaders) + len(d.Programs) + len(d.Buffers) + len(d.VertexArrays)
}

func (d *Driver) CreateShader(typ uint32) uint32 {
	if typ != gpu.VERTEX_SHADER && typ != gpu.FRAGMENT_SHADER {
		d.PushError(gpu.INVALID_ENUM)
		return 0
	}
	h := d.id()
	d.Shaders[h] = &Shader{Type: typ}
	return h
}

func (d *Driver) shader(h uint32) *Shader {
	sh, ok := d.Shaders[h]
	if !ok {
		d.PushError(gpu.INVALID_VALUE)
	}
	return sh
}

func (d *Driver) ShaderSource(h uint32, src string) {
	if sh := d.shader(h); sh != nil {
		sh.Source = src
	}
}

func (d *Driver) CompileShader(h uint32) {
	sh := d.shader(h)
	if sh == nil {
		return
	}
	sh.Log = CheckSource(sh.Source)
	sh.Compiled = sh.Log == ""
}

func (d *Driver) ShaderCompiled(h uint32) bool {
	sh := d.shader(h)
	return sh != nil && sh.Compiled
}

func (d *Driver) ShaderInfoLog(h uint32) string {
	if sh := d.shader(h); sh != nil {
		return sh.Log
	}
	return ""
}

func (d *Driver) DeleteShader(h uint32) {
	if h == 0 {
		return
	}
	if d.shader(h) == nil {
		return
	}
	delete(d.Shaders, h)
}

func (d *Driver) CreateProgram() uint32 {
	h := d.id()
	d.Programs[h] = &Program{Values: map[int32][4]float32{}}
	return h
}

func (d *Driver) program(h uint32) *Program {
	pr, ok := d.Programs[h]
	if !ok {
		d.PushError(gpu.INVALID_VALUE)
	}
	return pr
}

func (d *Driver) AttachShader(p, s uint32) {
	pr := d.program(p)
	if pr == nil || d.shader(s) == nil {
		return
	}
	for _, h := range pr.Shaders {
		if h == s {
			d.PushError(gpu.INVALID_OPERATION)
			return
		}
	}
	pr.Shaders = append(pr.Shaders, s)
}

func (d *Driver) DetachShader(p, s uint32) {
	pr := d.program(p)
	if pr == nil {
		return
	}
	for i, h := range pr.Shaders {
		if h == s {
			pr.Shaders = append(pr.Shaders[:i], pr.Shaders[i+1:]...)
			return
		}
	}
	d.PushError(gpu.INVALID_OPERATION)
}

func (d *Driver) LinkProgram(p uint32) {
	pr := d.program(p)
	if pr == nil {
		return
	}
	pr.Linked = false
	pr.Uniforms = map[string]int32{}
	if d.FailLink {
		pr.Log = "error: forced link failure"
		return
	}
	stages := map[uint32]bool{}
	for _, h := range pr.Shaders {
		sh, ok := d.Shaders[h]
		if !ok || !sh.Compiled {
			pr.Log = fmt.Sprintf("error: shader %d is not compiled", h)
			return
		}
		stages[sh.Type] = true
		for _, nm := range Uniforms(sh.Source) {
			if _, has := pr.Uniforms[nm]; !has {
				pr.Uniforms[nm] = int32(len(pr.Uniforms))
			}
		}
	}
	if !stages[gpu.VERTEX_SHADER] || !stages[gpu.FRAGMENT_SHADER] {
		pr.Log = "error: program needs both a vertex and a fragment shader"
		return
	}
	pr.Log = ""
	pr.Linked = true
}

func (d *Driver) ProgramLinked(p uint32) bool {
	pr := d.program(p)
	return pr != nil && pr.Linked
}

func (d *Driver) ValidateProgram(p uint32) {
	pr := d.program(p)
	if pr == nil {
		return
	}
	pr.Validated = pr.Linked && !d.FailValidate
	if !pr.Validated {
		pr.Log = "error: validation failed"
	}
}

func (d *Driver) ProgramValidated(p uint32) bool {
	pr := d.program(p)
	return pr != nil && pr.Validated
}

func (d *Driver) ProgramInfoLog(p uint32) string {
	if pr := d.program(p); pr != nil {
		return pr.Log
	}
	return ""
}

func (d *Driver) UseProgram(p uint32) {
	if p == 0 {
		d.Current = 0
		return
	}
	pr := d.program(p)
	if pr == nil {
		return
	}
	if !pr.Linked {
		d.PushError(gpu.INVALID_OPERATION)
		return
	}
	d.Current = p
}

func (d *Driver) DeleteProgram(p uint32) {
	if p == 0 {
		return
	}
	if d.program(p) == nil {
		return
	}
	delete(d.Programs, p)
	if d.Current == p {
		d.Current = 0
	}
}

func (d *Driver) GetUniformLocation(p uint32, name string) int32 {
	pr := d.program(p)
	if pr == nil {
		return -1
	}
	if !pr.Linked {
		d.PushError(gpu.INVALID_OPERATION)
		return -1
	}
	loc, ok := pr.Uniforms[name]
	if !ok {
		return -1
	}
	return loc
}

func (d *Driver) Uniform4f(loc int32, v0, v1, v2, v3 float32) {
	if d.Current == 0 {
		d.PushError(gpu.INVALID_OPERATION)
		return
	}
	if loc == -1 {
		return
	}
	pr := d.Programs[d.Current]
	if int(loc) >= len(pr.Uniforms) || loc < 0 {
		d.PushError(gpu.INVALID_OPERATION)
		return
	}
	pr.Values[loc] = [4]float32{v0, v1, v2, v3}
}

// Uniform returns the value of the named uniform of the given program.
func (d *Driver) Uniform(p uint32, name string) ([4]float32, bool) {
	pr, ok := d.Programs[p]
	if !ok {
		return [4]float32{}, false
	}
	loc, ok := pr.Uniforms[name]
	if !ok {
		return [4]float32{}, false
	}
	v, ok := pr.Values[loc]
	return v, ok
}

func (d *Driver) GenBuffer() uint32 {
	h := d.id()
	d.Buffers[h] = &Buffer{}
	return h
}

func (d *Driver) BindBuffer(target, b uint32) {
	if target != gpu.ARRAY_BUFFER && target != gpu.ELEMENT_ARRAY_BUFFER {
		d.PushError(gpu.INVALID_ENUM)
		return
	}
	if b != 0 {
		if _, ok := d.Buffers[b]; !ok {
			d.PushError(gpu.INVALID_OPERATION)
			return
		}
		d.Buffers[b].Target = target
	}
	d.BoundBuffers[target] = b
	if target == gpu.ELEMENT_ARRAY_BUFFER && d.BoundArray != 0 {
		d.VertexArrays[d.BoundArray].ElementBuffer = b
	}
}

func (d *Driver) BufferData(target uint32, size int, data unsafe.Pointer, usage uint32) {
	b := d.BoundBuffers[target]
	if b == 0 {
		d.PushError(gpu.INVALID_OPERATION)
		return
	}
	if size < 0 {
		d.PushError(gpu.INVALID_VALUE)
		return
	}
	buf := make([]byte, size)
	if data != nil {
		copy(buf, unsafe.Slice((*byte)(data), size))
	}
	d.Buffers[b].Data = buf
}

// Floats returns the contents of the given buffer as float32s.
func (d *Driver) Floats(b uint32) []float32 {
	buf, ok := d.Buffers[b]
	if !ok || len(buf.Data) == 0 {
		return nil
	}
	return append([]float32(nil), unsafe.Slice((*float32)(unsafe.Pointer(&buf.Data[0])), len(buf.Data)/4)...)
}

// Uint32s returns the contents of the given buffer as uint32s.
func (d *Driver) Uint32s(b uint32) []uint32 {
	buf, ok := d.Buffers[b]
	if !ok || len(buf.Data) == 0 {
		return nil
	}
	return append([]uint32(nil), unsafe.Slice((*uint32)(unsafe.Pointer(&buf.Data[0])), len(buf.Data)/4)...)
}

func (d *Driver) DeleteBuffer(b uint32) {
	if b == 0 {
		return
	}
	delete(d.Buffers, b)
	for t, h := range d.BoundBuffers {
		if h == b {
			d.BoundBuffers[t] = 0
		}
	}
}

func (d *Driver) GenVertexArray() uint32 {
	h := d.id()
	d.VertexArrays[h] = &VertexArray{Attribs: map[uint32]bool{}}
	return h
}

func (d *Driver) BindVertexArray(a uint32) {
	if a != 0 {
		if _, ok := d.VertexArrays[a]; !ok {
			d.PushError(gpu.INVALID_OPERATION)
			return
		}
	}
	d.BoundArray = a
	if a == 0 {
		d.BoundBuffers[gpu.ELEMENT_ARRAY_BUFFER] = 0
		return
	}
	d.BoundBuffers[gpu.ELEMENT_ARRAY_BUFFER] = d.VertexArrays[a].ElementBuffer
}

func (d *Driver) DeleteVertexArray(a uint32) {
	if a == 0 {
		return
	}
	delete(d.VertexArrays, a)
	if d.BoundArray == a {
		d.BoundArray = 0
	}
}

func (d *Driver) EnableVertexAttribArray(index uint32) {
	if d.BoundArray == 0 {
		d.PushError(gpu.INVALID_OPERATION)
		return
	}
	d.VertexArrays[d.BoundArray].Attribs[index] = true
}

func (d *Driver) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	if d.BoundArray == 0 || d.BoundBuffers[gpu.ARRAY_BUFFER] == 0 {
		d.PushError(gpu.INVALID_OPERATION)
		return
	}
	if size < 1 || size > 4 || stride < 0 {
		d.PushError(gpu.INVALID_VALUE)
		return
	}
	if index == 0 {
		d.VertexArrays[d.BoundArray].ArrayBuffer = d.BoundBuffers[gpu.ARRAY_BUFFER]
	}
}

func (d *Driver) ClearColor(r, g, b, a float32) {
	d.ClearColors = append(d.ClearColors, [4]float32{r, g, b, a})
}

func (d *Driver) Clear(mask uint32) {
	if mask&^gpu.COLOR_BUFFER_BIT != 0 {
		d.PushError(gpu.INVALID_VALUE)
	}
}

func (d *Driver) draw(mode uint32, count int32, indexed bool) {
	if d.Current == 0 || d.BoundArray == 0 {
		d.PushError(gpu.INVALID_OPERATION)
		return
	}
	if count < 0 {
		d.PushError(gpu.INVALID_VALUE)
		return
	}
	d.Draws = append(d.Draws, Draw{Mode: mode, Program: d.Current, VertexArray: d.BoundArray, Count: count, Indexed: indexed})
}

func (d *Driver) DrawArrays(mode uint32, first, count int32) {
	d.draw(mode, count, false)
}

func (d *Driver) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	if d.BoundArray != 0 && d.VertexArrays[d.BoundArray].ElementBuffer == 0 {
		d.PushError(gpu.INVALID_OPERATION)
		return
	}
	d.draw(mode, count, true)
}

func (d *Driver) GetError() uint32 {
	if len(d.errs) == 0 {
		return gpu.NO_ERROR
	}
	code := d.errs[0]
	d.errs = d.errs[1:]
	return code
}

func (d *Driver) GetString(name uint32) string {
	switch name {
	case gpu.VERSION:
		return "4.1 gputest"
	case gpu.SHADING_LANGUAGE_VERSION:
		return "4.10"
	}
	d.PushError(gpu.INVALID_ENUM)
	return ""
}

// CheckSource does a minimal syntax check of shader source: it must
// define main, and its braces and parentheses must balance. It returns
// a driver-style info log, which is empty if the source is valid.
func CheckSource(src string) string {
	if strings.TrimSpace(src) == "" {
		return "0:1(1): error: empty shader source"
	}
	var stack []rune
	line := 1
	pairs := map[rune]rune{')': '(', '}': '{'}
	for _, r := range src {
		switch r {
		case '\n':
			line++
		case '(', '{':
			stack = append(stack, r)
		case ')', '}':
			if len(stack) == 0 || stack[len(stack)-1] != pairs[r] {
				return fmt.Sprintf("0:%d(1): error: syntax error, unexpected '%c'", line, r)
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		return fmt.Sprintf("0:%d(1): error: syntax error, unexpected end of file", line)
	}
	if !strings.Contains(src, "main(") {
		return "0:1(1): error: function `main' is not defined"
	}
	return ""
}

// Uniforms returns the names of the uniforms declared in the source,
// from lines of the form "uniform <type> <name>;".
func Uniforms(src string) []string {
	var nms []string
	for _, ln := range strings.Split(src, "\n") {
		fs := strings.Fields(strings.TrimSpace(ln))
		if len(fs) < 3 || fs[0] != "uniform" {
			continue
		}
		nm := strings.TrimSuffix(fs[len(fs)-1], ";")
		if i := strings.IndexByte(nm, '['); i >= 0 {
			nm = nm[:i]
		}
		nms = append(nms, nm)
	}
	return nms
}
