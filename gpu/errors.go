// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"strings"

	"cogentcore.org/glsteps/base/errors"
)

// ErrNoProgram is returned when a program that was never built, or
// has been deleted, is made current.
var ErrNoProgram = errors.New("gpu: no program")

// CompileError is returned when a shader stage fails to compile.
type CompileError struct {
	Stage Stage

	// Log is the raw info log from the driver.
	Log string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s compilation failed\n%s", e.Stage, e.Log)
}

// LinkError is returned when a program fails to link or validate.
type LinkError struct {
	// Op is "link" or "validate".
	Op string

	// Log is the raw info log from the driver.
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("program %s failed\n%s", e.Op, e.Log)
}

// CallError is returned by [Call] when the driver reports one or
// more errors after a call.
type CallError struct {
	// Call is the name of the call that was checked.
	Call string

	// Codes are the error codes, in the order reported.
	Codes []uint32
}

func (e *CallError) Error() string {
	nms := make([]string, len(e.Codes))
	for i, c := range e.Codes {
		nms[i] = fmt.Sprintf("%s (0x%04X)", ErrorName(c), c)
	}
	return fmt.Sprintf("gpu: %s: %s", e.Call, strings.Join(nms, ", "))
}

// Has returns whether the given error code was reported.
func (e *CallError) Has(code uint32) bool {
	for _, c := range e.Codes {
		if c == code {
			return true
		}
	}
	return false
}

// UniformError is returned when a named uniform is not an active
// uniform of the program.
type UniformError struct {
	Name    string
	Program uint32
}

func (e *UniformError) Error() string {
	return fmt.Sprintf("gpu: uniform %q not found in program %d", e.Name, e.Program)
}
