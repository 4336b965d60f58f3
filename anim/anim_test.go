// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOscillator(t *testing.T) {
	o := NewOscillator(0, 1, 0.25)
	var got []float32
	for range 12 {
		got = append(got, o.Next())
	}
	// the value passes each bound by one step before turning
	want := []float32{0, 0.25, 0.5, 0.75, 1, 1.25, 1, 0.75, 0.5, 0.25, 0, -0.25}
	assert.Equal(t, want, got)
	assert.Equal(t, float32(0), o.Value)
	assert.Equal(t, float32(0.25), o.Step)
}

func TestOscillatorClamped(t *testing.T) {
	o := &Oscillator{Value: 1.25, Step: 0.25, Min: 0, Max: 1}
	assert.Equal(t, float32(1), o.Clamped())
	o.Value = -0.5
	assert.Equal(t, float32(0), o.Clamped())
	o.Value = 0.5
	assert.Equal(t, float32(0.5), o.Clamped())
}

func TestOscillatorNegativeStep(t *testing.T) {
	o := NewOscillator(0, 1, -0.5)
	assert.Equal(t, float32(0.5), o.Step)
	o.Next()
	assert.Equal(t, float32(0.5), o.Value)
}
