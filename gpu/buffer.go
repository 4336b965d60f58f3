// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"unsafe"

	"cogentcore.org/glsteps/base/errors"
)

// Buffer is a driver buffer object holding static vertex or index data.
type Buffer struct {
	d      Driver
	handle uint32
	target uint32

	// Len is the number of elements uploaded.
	Len int
}

// newBuffer generates a buffer for the given target and uploads size bytes
// from data. The buffer is left bound to the target, as element buffer
// bindings are vertex array state.
func newBuffer(d Driver, target uint32, n, size int, data unsafe.Pointer) (*Buffer, error) {
	if n == 0 {
		return nil, errors.New("gpu: cannot create an empty buffer")
	}
	handle := d.GenBuffer()
	if handle == 0 {
		return nil, errors.New("gpu: could not generate buffer")
	}
	err := Call(d, fmt.Sprintf("BufferData(0x%04X)", target), func() {
		d.BindBuffer(target, handle)
		d.BufferData(target, size, data, STATIC_DRAW)
	})
	if err != nil {
		d.DeleteBuffer(handle)
		return nil, err
	}
	return &Buffer{d: d, handle: handle, target: target, Len: n}, nil
}

// NewVertexBuffer uploads the given vertex data to a new ARRAY_BUFFER.
func NewVertexBuffer(d Driver, data []float32) (*Buffer, error) {
	if len(data) == 0 {
		return newBuffer(d, ARRAY_BUFFER, 0, 0, nil)
	}
	return newBuffer(d, ARRAY_BUFFER, len(data), len(data)*4, unsafe.Pointer(&data[0]))
}

// NewIndexBuffer uploads the given indices to a new ELEMENT_ARRAY_BUFFER.
// A vertex array must be bound, as it records the element buffer.
func NewIndexBuffer(d Driver, data []uint32) (*Buffer, error) {
	if len(data) == 0 {
		return newBuffer(d, ELEMENT_ARRAY_BUFFER, 0, 0, nil)
	}
	return newBuffer(d, ELEMENT_ARRAY_BUFFER, len(data), len(data)*4, unsafe.Pointer(&data[0]))
}

// Handle returns the driver handle of the buffer.
func (b *Buffer) Handle() uint32 {
	return b.handle
}

// Release deletes the buffer. It is safe to call more than once.
func (b *Buffer) Release() {
	if b == nil || b.handle == 0 {
		return
	}
	b.d.DeleteBuffer(b.handle)
	b.handle = 0
}
