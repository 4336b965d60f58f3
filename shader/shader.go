// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shader parses shader programs written as a single tagged text
// file, with the vertex and fragment sources in sections introduced by
// tag lines:
//
//	#shader vertex
//	...vertex source...
//	#shader fragment
//	...fragment source...
package shader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"cogentcore.org/glsteps/gpu"
)

// Tag is the keyword that marks a tag line.
const Tag = "#shader"

// ProgramSource is the source code of the two stages of a program.
type ProgramSource struct {
	Vertex   string
	Fragment string
}

// Source returns the source of the given stage.
func (ps ProgramSource) Source(st gpu.Stage) string {
	if st == gpu.FragmentShader {
		return ps.Fragment
	}
	return ps.Vertex
}

// Build compiles and links the sources into a new program.
func (ps ProgramSource) Build(d gpu.Driver) (*gpu.Program, error) {
	return gpu.CreateProgram(d, ps.Vertex, ps.Fragment)
}

// ParseFile parses the tagged shader file at the given path.
// An unreadable file is an error, not an empty source.
func ParseFile(path string) (ProgramSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return ProgramSource{}, fmt.Errorf("shader.ParseFile: %w", err)
	}
	defer f.Close()
	ps, err := Parse(f)
	if err != nil {
		return ProgramSource{}, fmt.Errorf("shader.ParseFile %q: %w", path, err)
	}
	return ps, nil
}

// ParseString parses the given tagged shader source.
func ParseString(src string) (ProgramSource, error) {
	return Parse(strings.NewReader(src))
}

// Parse reads tagged shader source from r. A line containing [Tag]
// switches the current stage to the stage it names, "vertex" or
// "fragment", and is otherwise dropped. Every other line is appended,
// with a trailing newline, to the source of the current stage. Lines
// before the first tag line belong to no stage and are dropped, and a
// stage without a tag line has empty source.
func Parse(r io.Reader) (ProgramSource, error) {
	var bufs [2]strings.Builder
	cur := -1
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		ln := sc.Text()
		if strings.Contains(ln, Tag) {
			if st, ok := tagStage(ln); ok {
				cur = int(st)
			}
			continue
		}
		if cur < 0 {
			continue
		}
		bufs[cur].WriteString(ln)
		bufs[cur].WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return ProgramSource{}, err
	}
	return ProgramSource{Vertex: bufs[gpu.VertexShader].String(), Fragment: bufs[gpu.FragmentShader].String()}, nil
}

// tagStage returns the stage named on a tag line, checking for
// "vertex" before "fragment".
func tagStage(ln string) (gpu.Stage, bool) {
	for _, st := range gpu.Stages {
		if strings.Contains(ln, st.String()) {
			return st, true
		}
	}
	return 0, false
}
