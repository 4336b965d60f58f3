// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// GL enum values used across the [Driver] boundary.
// See: https://registry.khronos.org/OpenGL/api/GL/glcorearb.h
const (
	NO_ERROR                      uint32 = 0
	INVALID_ENUM                  uint32 = 0x0500
	INVALID_VALUE                 uint32 = 0x0501
	INVALID_OPERATION             uint32 = 0x0502
	STACK_OVERFLOW                uint32 = 0x0503
	STACK_UNDERFLOW               uint32 = 0x0504
	OUT_OF_MEMORY                 uint32 = 0x0505
	INVALID_FRAMEBUFFER_OPERATION uint32 = 0x0506

	TRIANGLES uint32 = 0x0004

	UNSIGNED_INT uint32 = 0x1405
	FLOAT        uint32 = 0x1406

	VERSION                  uint32 = 0x1F02
	SHADING_LANGUAGE_VERSION uint32 = 0x8B8C

	COLOR_BUFFER_BIT uint32 = 0x00004000

	ARRAY_BUFFER         uint32 = 0x8892
	ELEMENT_ARRAY_BUFFER uint32 = 0x8893
	STATIC_DRAW          uint32 = 0x88E4

	FRAGMENT_SHADER uint32 = 0x8B30
	VERTEX_SHADER   uint32 = 0x8B31
)

// ErrorName returns the GL name of the given error code.
func ErrorName(code uint32) string {
	if nm, ok := errorNames[code]; ok {
		return nm
	}
	return "GL_UNKNOWN_ERROR"
}

var errorNames = map[uint32]string{
	NO_ERROR:                      "GL_NO_ERROR",
	INVALID_ENUM:                  "GL_INVALID_ENUM",
	INVALID_VALUE:                 "GL_INVALID_VALUE",
	INVALID_OPERATION:             "GL_INVALID_OPERATION",
	STACK_OVERFLOW:                "GL_STACK_OVERFLOW",
	STACK_UNDERFLOW:               "GL_STACK_UNDERFLOW",
	OUT_OF_MEMORY:                 "GL_OUT_OF_MEMORY",
	INVALID_FRAMEBUFFER_OPERATION: "GL_INVALID_FRAMEBUFFER_OPERATION",
}
