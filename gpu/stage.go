// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// Stage is one stage of a shader program, compiled independently
// before linking.
type Stage int32

const (
	// VertexShader is the vertex stage.
	VertexShader Stage = iota

	// FragmentShader is the fragment stage.
	FragmentShader
)

// String returns the lowercase stage name used in tag lines and
// diagnostics.
func (st Stage) String() string {
	switch st {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	}
	return "unknown"
}

// GLType returns the GL shader type enum for the stage.
func (st Stage) GLType() uint32 {
	return glStages[st]
}

// Stages lists all stages in link order.
var Stages = []Stage{VertexShader, FragmentShader}

var glStages = map[Stage]uint32{
	VertexShader:   VERTEX_SHADER,
	FragmentShader: FRAGMENT_SHADER,
}
