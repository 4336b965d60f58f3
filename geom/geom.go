// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom has the hardcoded 2D meshes drawn by the steps.
package geom

import "github.com/go-gl/mathgl/mgl32"

// Mesh is a set of 2D vertex positions in normalized device coordinates,
// drawn as triangles. If Indices is non-empty, each triangle is made of
// three indices into Positions; otherwise each three positions make one.
type Mesh struct {
	Positions []mgl32.Vec2
	Indices   []uint32
}

// Triangle returns a single triangle.
func Triangle() Mesh {
	return Mesh{Positions: []mgl32.Vec2{
		{-0.5, -0.5},
		{0, 0.5},
		{0.5, -0.5},
	}}
}

// SquareArrays returns a square as two triangles with six vertices,
// repeating the two shared corners.
func SquareArrays() Mesh {
	return SquareIndexed().Expand()
}

// SquareIndexed returns a square as four vertices and six indices.
func SquareIndexed() Mesh {
	return Mesh{
		Positions: []mgl32.Vec2{
			{-0.5, -0.5}, // 0
			{0.5, -0.5},  // 1
			{0.5, 0.5},   // 2
			{-0.5, 0.5},  // 3
		},
		Indices: []uint32{
			0, 1, 2,
			2, 3, 0,
		},
	}
}

// Indexed returns whether the mesh is drawn through indices.
func (m Mesh) Indexed() bool {
	return len(m.Indices) > 0
}

// Floats returns the positions flattened to x, y pairs.
func (m Mesh) Floats() []float32 {
	fs := make([]float32, 0, 2*len(m.Positions))
	for _, p := range m.Positions {
		fs = append(fs, p.X(), p.Y())
	}
	return fs
}

// Triangles returns the number of triangles in the mesh.
func (m Mesh) Triangles() int {
	if m.Indexed() {
		return len(m.Indices) / 3
	}
	return len(m.Positions) / 3
}

// Expand returns the non-indexed equivalent of the mesh, with one
// position per index.
func (m Mesh) Expand() Mesh {
	if !m.Indexed() {
		return m
	}
	ps := make([]mgl32.Vec2, len(m.Indices))
	for i, ix := range m.Indices {
		ps[i] = m.Positions[ix]
	}
	return Mesh{Positions: ps}
}
