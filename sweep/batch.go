// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweep

import (
	"context"
	"fmt"

	"github.com/emer/snr/snr"
)

// BatchParams configure a batch of stimulation trials, one per
// (current, conductance) pair, all with the same synaptic parameters
type BatchParams struct {
	Site     HCNSites `desc:"where the HCN conductance of each pair is placed"`
	WGPe     float64  `desc:"GPe pulse weight"`
	WStr     float64  `desc:"striatal pulse weight"`
	Tau      float64  `desc:"decay time constant of both somatic and dendritic GABA conductances, in msec"`
	GPeStim  float64  `def:"1000" desc:"GPe pulse time in msec -- negative for none"`
	StrStim  float64  `def:"1000" desc:"striatal pulse time in msec -- negative for none"`
	Duration float64  `def:"2000" desc:"duration of each trial, in msec"`
	Dt       float64  `def:"0.025" desc:"integration time step, in msec"`
	NThreads int      `def:"0" desc:"number of worker threads -- 0 = one per CPU"`
}

func (bp *BatchParams) Defaults() {
	bp.Site = Zero
	bp.GPeStim = 1000
	bp.StrStim = 1000
	bp.Duration = 2000
	bp.Dt = 0.025
}

// Neuron returns a fresh default neuron configured for given pair
func (bp *BatchParams) Neuron(iapp, g float64) *snr.Neuron {
	nrn := snr.NewNeuron()
	nrn.Syn.WGPe = bp.WGPe
	nrn.Syn.WStr = bp.WStr
	nrn.Syn.SetTau(bp.Tau)
	nrn.Iapp = iapp
	bp.Site.SetGHCN(nrn, g)
	return nrn
}

// Schedule returns the stimulus schedule of one trial
func (bp *BatchParams) Schedule() *snr.Schedule {
	return snr.NewSchedule(bp.GPeStim, bp.StrStim)
}

// Batch runs one trial per (is[k], gs[k]) pair and returns the spike times of
// each trial, in pair order.  Trials are spread over the worker threads of
// this process: under MPI, give each process its own pairs.
func Batch(ctx context.Context, bp *BatchParams, pr *snr.Params, is, gs []float64) ([][]float64, error) {
	if len(is) != len(gs) {
		return nil, fmt.Errorf("sweep: %d currents for %d conductances", len(is), len(gs))
	}
	if err := pr.Validate(); err != nil {
		return nil, err
	}
	rc := snr.RunConfig{Duration: bp.Duration, Dt: bp.Dt}
	if err := rc.Validate(); err != nil {
		return nil, err
	}
	if err := bp.Neuron(0, 0).Validate(); err != nil {
		return nil, err
	}
	trials := make([][]float64, len(is))
	pl := NewPool(bp.NThreads)
	err := pl.Run(ctx, 0, len(is), func(k int) {
		nrn := bp.Neuron(is[k], gs[k])
		trials[k] = snr.Simulate(nrn, pr, bp.Duration, bp.Dt, bp.Schedule())
	})
	if err != nil {
		return nil, err
	}
	return trials, nil
}
