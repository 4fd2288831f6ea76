// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweep

import (
	"sort"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/stat/distuv"
)

// TargetParams describe the distribution of baseline firing rates that the
// selected (current, conductance) pairs should reproduce: a normal
// distribution truncated above at MaxHz
type TargetParams struct {
	N          int     `def:"1000" desc:"number of target rates"`
	MeanHz     float64 `def:"25" desc:"mean of the normal distribution of rates"`
	SDHz       float64 `def:"12" desc:"standard deviation of the normal distribution of rates"`
	MaxHz      float64 `def:"60" desc:"rates at or above this are rejected"`
	BlockRatio float64 `def:"0.68" desc:"fraction of the firing rate left after blocking HCN"`
	Seed       uint64  `def:"1" desc:"random seed"`
}

func (tp *TargetParams) Defaults() {
	tp.N = 1000
	tp.MeanHz = 25
	tp.SDHz = 12
	tp.MaxHz = 60
	tp.BlockRatio = 0.68
	tp.Seed = 1
}

// Rates samples the target rates
func (tp *TargetParams) Rates() []float64 {
	nd := distuv.Normal{Mu: tp.MeanHz, Sigma: tp.SDHz, Src: rand.NewSource(tp.Seed)}
	rs := make([]float64, 0, tp.N)
	for len(rs) < tp.N {
		r := nd.Rand()
		if r < tp.MaxHz {
			rs = append(rs, r)
		}
	}
	return rs
}

// Pairs are the (current, conductance) pairs selected for a site, with
// the firing rate each is expected to produce
type Pairs struct {
	Site HCNSites
	I    []float64
	G    []float64
	R    []float64
}

// interpFn returns piecewise linear interpolation over (xs, ys), with xs
// sorted and duplicate xs dropped, clamped to the end values outside the range
// (as numpy interp does).
func interpFn(xs, ys []float64) func(x float64) float64 {
	n := len(xs)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return xs[idx[a]] < xs[idx[b]] })
	sx := make([]float64, 0, n)
	sy := make([]float64, 0, n)
	for _, i := range idx {
		if len(sx) > 0 && xs[i] == sx[len(sx)-1] {
			continue
		}
		sx = append(sx, xs[i])
		sy = append(sy, ys[i])
	}
	if len(sx) == 0 {
		return func(x float64) float64 { return 0 }
	}
	if len(sx) == 1 {
		return func(x float64) float64 { return sy[0] }
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(sx, sy); err != nil {
		return func(x float64) float64 { return sy[0] }
	}
	lo, hi := sx[0], sx[len(sx)-1]
	return func(x float64) float64 {
		switch {
		case x <= lo:
			return sy[0]
		case x >= hi:
			return sy[len(sy)-1]
		}
		return pl.Predict(x)
	}
}

// SelectPairs returns the pairs that produce the target rates for given site.
// For Zero, the HCN-blocked rate curve R0 is inverted at rates * blockRatio
// and g is 0.  For Som and Den, the curve of optimal conductances
// (see OptimalG) is inverted at the target rates.
func SelectPairs(gr *Grid, site HCNSites, rates []float64, blockRatio float64) *Pairs {
	ps := &Pairs{Site: site}
	n := len(rates)
	ps.I = make([]float64, n)
	ps.G = make([]float64, n)
	ps.R = make([]float64, n)
	if site == Zero {
		tar := make([]float64, n)
		copy(tar, rates)
		floats.Scale(blockRatio, tar)
		fi := interpFn(gr.R0, gr.I)
		fr := interpFn(gr.R0, gr.R0)
		for k, r := range tar {
			ps.I[k] = fi(r)
			ps.R[k] = fr(r)
		}
		return ps
	}
	rx := gr.Rates(site)
	optG := OptimalG(gr.G, gr.R0, rx, blockRatio)
	optR := make([]float64, len(gr.I))
	for j := range gr.I {
		i := floats.MinIdx(absDiffs(gr.R0[j]/blockRatio, rx, j))
		optR[j] = rx[i][j]
	}
	fg := interpFn(optR, optG)
	fi := interpFn(optR, gr.I)
	fr := interpFn(optR, optR)
	for k, r := range rates {
		ps.G[k] = fg(r)
		ps.I[k] = fi(r)
		ps.R[k] = fr(r)
	}
	return ps
}

// absDiffs returns |tar - rx[i][j]| over conductance index i
func absDiffs(tar float64, rx [][]float64, j int) []float64 {
	dif := make([]float64, len(rx))
	for i := range rx {
		d := tar - rx[i][j]
		if d < 0 {
			d = -d
		}
		dif[i] = d
	}
	return dif
}
