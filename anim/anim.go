// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim has per-frame animated values.
package anim

import "github.com/chewxy/math32"

// Oscillator is a value that moves back and forth between Min and Max by
// Step each frame. The direction flips once the value has passed a bound,
// so it overshoots by up to one step before turning around.
type Oscillator struct {
	Value float32
	Step  float32
	Min   float32
	Max   float32
}

// NewOscillator returns an oscillator starting at lo and moving up
// towards hi by step per frame.
func NewOscillator(lo, hi, step float32) *Oscillator {
	return &Oscillator{Value: lo, Step: math32.Abs(step), Min: lo, Max: hi}
}

// Next returns the current value and then advances it by one step.
func (o *Oscillator) Next() float32 {
	v := o.Value
	if o.Value > o.Max {
		o.Step = -math32.Abs(o.Step)
	} else if o.Value < o.Min {
		o.Step = math32.Abs(o.Step)
	}
	o.Value += o.Step
	return v
}

// Clamped returns the current value clamped to [Min, Max].
func (o *Oscillator) Clamped() float32 {
	return math32.Max(o.Min, math32.Min(o.Max, o.Value))
}
