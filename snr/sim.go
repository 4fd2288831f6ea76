// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snr

import (
	"context"
	"math"

	"github.com/emer/snr/chans"
)

// SpikesInitCap is the initial capacity of the spike time buffer of a run
var SpikesInitCap = 256

// RunConfig configures one simulation run
type RunConfig struct {
	Duration float64   `def:"2000" desc:"simulated duration, in msec"`
	Dt       float64   `def:"0.025" desc:"integration time step, in msec"`
	Sched    *Schedule `view:"-" desc:"stimulus pulse times -- nil for no stimulation"`
	Record   bool      `desc:"record a full Trace of every step"`
}

func (rc *RunConfig) Defaults() {
	rc.Duration = 2000
	rc.Dt = 0.025
}

// Validate checks the time step and duration
func (rc *RunConfig) Validate() error {
	if !(rc.Dt > 0) || math.IsInf(rc.Dt, 1) {
		return &chans.DegenerateParamError{Owner: "RunConfig", Param: "Dt", Value: rc.Dt, Reason: "time step must be > 0 and finite"}
	}
	if !(rc.Duration >= 0) || math.IsInf(rc.Duration, 1) {
		return &chans.DegenerateParamError{Owner: "RunConfig", Param: "Duration", Value: rc.Duration, Reason: "duration must be >= 0 and finite"}
	}
	return nil
}

// Result is the outcome of one run
type Result struct {

	// spike times in msec, in increasing order
	Spikes []float64

	// number of steps run
	NSteps int

	// number of pulses scheduled within the run, per stimulus source
	NPulses [StimsN]int

	// full trace, if recorded
	Trace *Trace
}

// NSpikes returns the number of spikes
func (rs *Result) NSpikes() int {
	return len(rs.Spikes)
}

// Run validates the configuration and then runs nrn for cfg.Duration msec,
// delivering the stimuli of cfg.Sched.  The context is checked once per
// simulated msec: on cancellation the partial result is returned with the
// context error.
func Run(ctx context.Context, nrn *Neuron, pr *Params, cfg *RunConfig) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := pr.Validate(); err != nil {
		return nil, err
	}
	if err := nrn.Validate(); err != nil {
		return nil, err
	}
	return run(ctx, nrn, pr, cfg)
}

// Simulate runs nrn for durMs msec with time step dt, delivering the
// stimuli of sched (may be nil), and returns the spike times.
// No validation is done: see Run.
func Simulate(nrn *Neuron, pr *Params, durMs, dt float64, sched *Schedule) []float64 {
	res, _ := run(context.Background(), nrn, pr, &RunConfig{Duration: durMs, Dt: dt, Sched: sched})
	return res.Spikes
}

func run(ctx context.Context, nrn *Neuron, pr *Params, cfg *RunConfig) (*Result, error) {
	tm := NewTime()
	tm.SetDt(cfg.Dt)
	nsteps := tm.NSteps(cfg.Duration)
	res := &Result{Spikes: make([]float64, 0, SpikesInitCap)}
	if cfg.Record {
		res.Trace = NewTrace(nsteps)
	}
	sc := cfg.Sched
	if sc != nil {
		sc.Compile(tm)
		for st := range res.NPulses {
			res.NPulses[st] = sc.NPulses(Stims(st), nsteps)
		}
	} else {
		nrn.ClearStims()
	}
	tm.RunStart()
	for i := 0; i < nsteps; i++ {
		if i%tm.StepsPerMs == 0 {
			if err := ctx.Err(); err != nil {
				res.NSteps = i
				return res, err
			}
		}
		if sc != nil {
			sc.Apply(nrn, i)
		}
		if pr.Step(nrn, cfg.Dt) {
			res.Spikes = append(res.Spikes, nrn.Time)
		}
		if res.Trace != nil {
			res.Trace.Record(i, nrn, pr)
		}
		tm.StepInc()
	}
	res.NSteps = nsteps
	return res, nil
}
