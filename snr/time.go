// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snr

import "math"

// snr.Time contains the timing state and parameters for running a simulation.
// The simulated time of the neuron itself is kept in Neuron.Time.
type Time struct {

	// integration time step, in msec
	Dt float64 `def:"0.025"`

	// number of whole steps covering one msec of simulated time, ceil(1 / Dt).
	// Used for per-msec bookkeeping such as cancellation checks only:
	// step counts and stimulus steps use Dt directly.
	StepsPerMs int `inactive:"+"`

	// step counter within the current run
	Step int
}

// StepSnapTol is the relative tolerance within which a time / Dt ratio is
// taken as the nearby whole number of steps, so that, e.g., 0.7 / 0.1
// counts as 7 steps despite rounding
const StepSnapTol = 1.0e-9

// NewTime returns a new Time struct with default parameters
func NewTime() *Time {
	tm := &Time{}
	tm.Defaults()
	return tm
}

// Defaults sets default values
func (tm *Time) Defaults() {
	tm.Dt = 0.025
	tm.Update()
}

// SetDt sets the integration time step and updates StepsPerMs
func (tm *Time) SetDt(dt float64) {
	tm.Dt = dt
	tm.Update()
}

// Update updates computed values
func (tm *Time) Update() {
	tm.StepsPerMs = int(math.Ceil(1 / tm.Dt))
	if tm.StepsPerMs < 1 {
		tm.StepsPerMs = 1
	}
}

// RunStart starts a new run
func (tm *Time) RunStart() {
	tm.Step = 0
}

// StepInc increments at the step level
func (tm *Time) StepInc() {
	tm.Step++
}

// StepsOf returns t / Dt, the time t (msec) in units of steps,
// snapped to the nearest whole number within StepSnapTol
func (tm *Time) StepsOf(t float64) float64 {
	x := t / tm.Dt
	r := math.Round(x)
	if math.Abs(x-r) <= StepSnapTol*math.Max(1, math.Abs(r)) {
		return r
	}
	return x
}

// NSteps returns the number of steps to run for given duration in msec:
// ceil(durMs / Dt)
func (tm *Time) NSteps(durMs float64) int {
	return int(math.Ceil(tm.StepsOf(durMs)))
}

// StepOfMs returns the index of the step i whose time interval
// [i * Dt, (i+1) * Dt) contains time t (msec).
// Negative, infinite and NaN times return -1.
func (tm *Time) StepOfMs(t float64) int {
	x := tm.StepsOf(t)
	if !(x >= 0) || math.IsInf(x, 1) {
		return -1
	}
	return int(math.Floor(x))
}
