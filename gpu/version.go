// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version returns the driver's GL and shading language versions.
func Version(d Driver) (gl, glsl string) {
	return d.GetString(VERSION), d.GetString(SHADING_LANGUAGE_VERSION)
}

// ParseVersion parses the version number at the start of a GL version
// string, which is followed by vendor-specific information,
// as in "4.1 Metal - 83.1" or "4.6.0 NVIDIA 535.54".
func ParseVersion(s string) (*semver.Version, error) {
	fs := strings.Fields(s)
	if len(fs) == 0 {
		return nil, fmt.Errorf("gpu: empty version string")
	}
	v, err := semver.NewVersion(fs[0])
	if err != nil {
		return nil, fmt.Errorf("gpu: invalid version string %q: %w", s, err)
	}
	return v, nil
}

// RequireVersion returns an error if the driver's GL version is
// older than the given minimum, such as "4.1".
func RequireVersion(d Driver, minimum string) error {
	glv, _ := Version(d)
	v, err := ParseVersion(glv)
	if err != nil {
		return err
	}
	c, err := semver.NewConstraint(">= " + minimum)
	if err != nil {
		return err
	}
	if !c.Check(v) {
		return fmt.Errorf("gpu: OpenGL %s is required, but the driver provides %q", minimum, glv)
	}
	return nil
}
