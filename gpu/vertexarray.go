// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/glsteps/base/errors"
	"cogentcore.org/glsteps/geom"
)

// VertexArray is a vertex array object with one float position
// attribute at location 0, and an optional index buffer.
type VertexArray struct {
	d      Driver
	handle uint32

	vertices *Buffer
	indices  *Buffer

	// components is the number of floats per vertex position.
	components int32
}

// NewVertexArray uploads the given positions, with components floats per
// vertex, as attribute 0 of a new vertex array. If indices is non-empty
// an index buffer is attached too.
func NewVertexArray(d Driver, positions []float32, components int32, indices []uint32) (*VertexArray, error) {
	if components < 1 || components > 4 {
		return nil, fmt.Errorf("gpu.NewVertexArray: invalid number of components %d", components)
	}
	if len(positions)%int(components) != 0 {
		return nil, fmt.Errorf("gpu.NewVertexArray: %d floats is not a multiple of %d components", len(positions), components)
	}
	handle := d.GenVertexArray()
	if handle == 0 {
		return nil, errors.New("gpu.NewVertexArray: could not generate vertex array")
	}
	va := &VertexArray{d: d, handle: handle, components: components}
	err := va.Bind(func() error {
		var err error
		va.vertices, err = NewVertexBuffer(d, positions)
		if err != nil {
			return err
		}
		err = Call(d, "VertexAttribPointer", func() {
			d.EnableVertexAttribArray(0)
			d.VertexAttribPointer(0, components, FLOAT, false, components*4, 0)
		})
		d.BindBuffer(ARRAY_BUFFER, 0)
		if err != nil {
			return err
		}
		if len(indices) > 0 {
			va.indices, err = NewIndexBuffer(d, indices)
		}
		return err
	})
	if err != nil {
		va.Release()
		return nil, err
	}
	return va, nil
}

// NewMeshVertexArray uploads the given mesh to a new vertex array.
func NewMeshVertexArray(d Driver, m geom.Mesh) (*VertexArray, error) {
	return NewVertexArray(d, m.Floats(), 2, m.Indices)
}

// Handle returns the driver handle of the vertex array.
func (va *VertexArray) Handle() uint32 {
	return va.handle
}

// Indexed returns whether the vertex array has an index buffer.
func (va *VertexArray) Indexed() bool {
	return va.indices != nil
}

// Count returns the number of vertices drawn: the number of indices
// if indexed, otherwise the number of vertices.
func (va *VertexArray) Count() int32 {
	if va.indices != nil {
		return int32(va.indices.Len)
	}
	if va.vertices == nil {
		return 0
	}
	return int32(va.vertices.Len) / va.components
}

// Bind binds the vertex array, calls fn, and then unbinds it.
func (va *VertexArray) Bind(fn func() error) error {
	if va.handle == 0 {
		return errors.New("gpu: vertex array has been released")
	}
	d := va.d
	if err := Call(d, "BindVertexArray", func() { d.BindVertexArray(va.handle) }); err != nil {
		return err
	}
	defer d.BindVertexArray(0)
	return fn()
}

// Release deletes the vertex array and its buffers.
// It is safe to call more than once.
func (va *VertexArray) Release() {
	if va == nil || va.handle == 0 {
		return
	}
	va.d.DeleteVertexArray(va.handle)
	va.handle = 0
	va.vertices.Release()
	va.indices.Release()
	va.vertices = nil
	va.indices = nil
}
