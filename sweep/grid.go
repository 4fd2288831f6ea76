// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweep

import (
	"context"
	"fmt"

	"github.com/emer/etable/v2/minmax"
	"github.com/emer/snr/snr"
	"gonum.org/v1/gonum/floats"
)

// GridParams configure the grid search of firing rate
// over HCN conductance and applied current
type GridParams struct {
	GRange   minmax.F64 `desc:"range of HCN conductances (nS/pF), spaced evenly in log2"`
	NG       int        `def:"32" desc:"number of HCN conductance values"`
	IRange   minmax.F64 `desc:"range of applied currents (pA), spaced linearly"`
	NI       int        `def:"300" desc:"number of applied current values"`
	InitMs   float64    `def:"1000" desc:"settling time before the firing rate window, in msec"`
	TestMs   float64    `def:"1000" desc:"duration of the firing rate window, in msec"`
	Dt       float64    `def:"0.025" desc:"integration time step, in msec"`
	NThreads int        `def:"0" desc:"number of worker threads -- 0 = one per CPU"`
}

func (gp *GridParams) Defaults() {
	gp.GRange.Set(1.0/128, 4)
	gp.NG = 32
	gp.IRange.Set(-100, 100)
	gp.NI = 300
	gp.InitMs = 1000
	gp.TestMs = 1000
	gp.Dt = 0.025
	gp.NThreads = 0
}

// Validate checks the grid dimensions and ranges
func (gp *GridParams) Validate() error {
	switch {
	case gp.NG < 1 || gp.NI < 1:
		return fmt.Errorf("sweep: grid must have at least one value per axis: NG = %d, NI = %d", gp.NG, gp.NI)
	case !(gp.GRange.Min > 0) || gp.GRange.Max < gp.GRange.Min:
		return fmt.Errorf("sweep: conductance range must be positive and ordered for log spacing: %v", gp.GRange)
	case gp.IRange.Max < gp.IRange.Min:
		return fmt.Errorf("sweep: current range is reversed: %v", gp.IRange)
	case !(gp.TestMs > 0):
		return fmt.Errorf("sweep: firing rate window must be > 0: %v", gp.TestMs)
	}
	return nil
}

// GValues returns the conductance values, evenly spaced in log2
func (gp *GridParams) GValues() []float64 {
	g := make([]float64, gp.NG)
	if gp.NG == 1 {
		g[0] = gp.GRange.Min
		return g
	}
	return floats.LogSpan(g, gp.GRange.Min, gp.GRange.Max)
}

// IValues returns the applied current values, spaced linearly
func (gp *GridParams) IValues() []float64 {
	iv := make([]float64, gp.NI)
	if gp.NI == 1 {
		iv[0] = gp.IRange.Min
		return iv
	}
	return floats.Span(iv, gp.IRange.Min, gp.IRange.Max)
}

// Grid holds the firing rates of a grid search
type Grid struct {

	// HCN conductance values
	G []float64

	// applied current values
	I []float64

	// firing rate without HCN, per current
	R0 []float64

	// firing rate with somatic HCN, [g][I]
	RSom [][]float64

	// firing rate with dendritic HCN, [g][I]
	RDen [][]float64
}

// NewGrid returns a grid with values and rate storage allocated for gp
func NewGrid(gp *GridParams) *Grid {
	gr := &Grid{G: gp.GValues(), I: gp.IValues()}
	gr.R0 = make([]float64, len(gr.I))
	gr.RSom = make([][]float64, len(gr.G))
	gr.RDen = make([][]float64, len(gr.G))
	for i := range gr.G {
		gr.RSom[i] = make([]float64, len(gr.I))
		gr.RDen[i] = make([]float64, len(gr.I))
	}
	return gr
}

// Rates returns the rates for given site: RSom, RDen, or R0 repeated
// for every conductance for Zero
func (gr *Grid) Rates(site HCNSites) [][]float64 {
	switch site {
	case Som:
		return gr.RSom
	case Den:
		return gr.RDen
	}
	rz := make([][]float64, len(gr.G))
	for i := range rz {
		rz[i] = gr.R0
	}
	return rz
}

// Flat returns the [g][I] rates of given site as one slice, g-major
func (gr *Grid) Flat(site HCNSites) []float64 {
	rs := gr.Rates(site)
	fl := make([]float64, 0, len(gr.G)*len(gr.I))
	for _, r := range rs {
		fl = append(fl, r...)
	}
	return fl
}

// cellRate runs one fresh default neuron and returns its firing rate
func cellRate(gp *GridParams, pr *snr.Params, site HCNSites, g, iapp float64) float64 {
	nrn := snr.NewNeuron()
	nrn.Iapp = iapp
	site.SetGHCN(nrn, g)
	spk := snr.Simulate(nrn, pr, gp.InitMs+gp.TestMs, gp.Dt, nil)
	return FiringRate(spk, gp.InitMs, gp.TestMs)
}

// RunGrid computes the firing rate of a fresh default neuron for every
// applied current without HCN, and for every (conductance, current) pair
// with somatic and then dendritic HCN.  Cells are spread over the MPI
// processes and the worker threads of each process.
func RunGrid(ctx context.Context, gp *GridParams, pr *snr.Params) (*Grid, error) {
	if err := gp.Validate(); err != nil {
		return nil, err
	}
	if err := pr.Validate(); err != nil {
		return nil, err
	}
	rc := snr.RunConfig{Duration: gp.InitMs + gp.TestMs, Dt: gp.Dt}
	if err := rc.Validate(); err != nil {
		return nil, err
	}
	gr := NewGrid(gp)
	ng := len(gr.G)
	ni := len(gr.I)
	ncell := ni * (1 + 2*ng)
	// flat layout: R0, then RSom [g][I], then RDen [g][I]
	flat := make([]float64, ncell)
	st, ed, err := mpiRange(ncell)
	if err != nil {
		return nil, err
	}
	pl := NewPool(gp.NThreads)
	err = pl.Run(ctx, st, ed, func(job int) {
		site := Zero
		gi := 0
		ji := job % ni
		if job >= ni {
			k := job - ni
			site = Som
			if k >= ng*ni {
				site = Den
				k -= ng * ni
			}
			gi = k / ni
		}
		g := 0.0
		if site != Zero {
			g = gr.G[gi]
		}
		flat[job] = cellRate(gp, pr, site, g, gr.I[ji])
	})
	if err != nil {
		return nil, err
	}
	if err := mpiSum(flat); err != nil {
		return nil, err
	}
	copy(gr.R0, flat[:ni])
	for i := 0; i < ng; i++ {
		copy(gr.RSom[i], flat[ni+i*ni:ni+(i+1)*ni])
		copy(gr.RDen[i], flat[ni+(ng+i)*ni:ni+(ng+i+1)*ni])
	}
	return gr, nil
}

// OptimalG returns, for every current index j, the conductance g[i] whose
// rate rx[i][j] is closest to r0[j] / blockRatio, i.e., the HCN conductance
// at which blocking HCN leaves blockRatio of the firing rate.
// Ties go to the lowest conductance index.
func OptimalG(g, r0 []float64, rx [][]float64, blockRatio float64) []float64 {
	opt := make([]float64, len(r0))
	if len(g) == 0 {
		return opt
	}
	for j := range r0 {
		opt[j] = g[floats.MinIdx(absDiffs(r0[j]/blockRatio, rx, j))]
	}
	return opt
}
