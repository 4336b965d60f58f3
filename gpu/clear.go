// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "github.com/go-gl/mathgl/mgl32"

// Clear clears the color buffer to the given color.
func Clear(d Driver, c mgl32.Vec4) error {
	return Call(d, "Clear", func() {
		d.ClearColor(c[0], c[1], c[2], c[3])
		d.Clear(COLOR_BUFFER_BIT)
	})
}
