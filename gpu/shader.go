// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/glsteps/base/errors"
)

// CompileShader compiles the given source code as a shader of the given
// stage, returning the handle of the new shader object.
// If compilation fails, the driver's info log is reported to the operator,
// the shader object is deleted, and 0 is returned along with a
// [*CompileError]. A 0 handle must never be attached to a program.
// Context must be set.
func CompileShader(d Driver, stage Stage, src string) (uint32, error) {
	handle := d.CreateShader(stage.GLType())
	if handle == 0 {
		return 0, errors.Log(fmt.Errorf("gpu.CompileShader: could not create %s shader", stage))
	}
	d.ShaderSource(handle, src)
	d.CompileShader(handle)

	if !d.ShaderCompiled(handle) {
		err := &CompileError{Stage: stage, Log: d.ShaderInfoLog(handle)}
		errors.Log(err)
		d.DeleteShader(handle)
		return 0, err
	}
	return handle, nil
}
