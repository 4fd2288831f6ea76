// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snr

import "sort"

// Schedule holds the pulse times, in msec, of each stimulus source for one run.
// A pulse at time t is delivered on the single step i whose interval
// [i * Dt, (i+1) * Dt) contains t.  Negative times never fire,
// so -1 is conventionally used for "no pulse".
type Schedule struct {

	// pulse times per stimulus source, in msec
	Times [StimsN][]float64

	// compiled step indexes per source, sorted ascending, from Compile
	steps [StimsN][]int

	// next index into steps per source, advanced by Apply
	next [StimsN]int
}

// NewSchedule returns a schedule with single GPe and striatal pulse times,
// either of which may be negative for none
func NewSchedule(gpe, str float64) *Schedule {
	sc := &Schedule{}
	sc.Add(GPe, gpe)
	sc.Add(Str, str)
	return sc
}

// Add adds pulse times for given source
func (sc *Schedule) Add(st Stims, times ...float64) {
	sc.Times[st] = append(sc.Times[st], times...)
}

// Compile converts the pulse times into step indexes for given timing,
// and rewinds the schedule to the start of a run
func (sc *Schedule) Compile(tm *Time) {
	for st := range sc.Times {
		stp := sc.steps[st][:0]
		for _, t := range sc.Times[st] {
			if i := tm.StepOfMs(t); i >= 0 {
				stp = append(stp, i)
			}
		}
		sort.Ints(stp)
		sc.steps[st] = stp
		sc.next[st] = 0
	}
}

// Apply sets the stimulus flags of nrn for step i.  Steps must be visited
// in increasing order after Compile.
func (sc *Schedule) Apply(nrn *Neuron, i int) {
	for st := range sc.steps {
		stp := sc.steps[st]
		nx := sc.next[st]
		for nx < len(stp) && stp[nx] < i {
			nx++
		}
		on := false
		for nx < len(stp) && stp[nx] == i {
			on = true
			nx++
		}
		sc.next[st] = nx
		nrn.Stim[st] = on
	}
}

// NPulses returns the number of pulses of given source that fall
// within the first nsteps steps, as compiled
func (sc *Schedule) NPulses(st Stims, nsteps int) int {
	n := 0
	prv := -1
	for _, i := range sc.steps[st] {
		if i < nsteps && i != prv {
			n++
		}
		prv = i
	}
	return n
}
