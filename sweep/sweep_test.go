// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweep

import (
	"context"
	"math"
	"sync/atomic"
	"testing"

	"github.com/emer/snr/snr"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = 1.0e-12

func TestFiringRate(t *testing.T) {
	tests := []struct {
		name string
		spk  []float64
		want float64
	}{
		{"none", nil, 0},
		{"all settling", []float64{10, 200, 900}, 1},
		{"only final in window", []float64{100, 500, 1500}, 1},
		{"window", []float64{500, 1100, 1200, 1300}, 3},
		{"all in window", []float64{1000, 1250, 1500, 1750}, 4},
	}
	for _, tt := range tests {
		if r := FiringRate(tt.spk, 1000, 1000); r != tt.want {
			t.Errorf("%s: rate %v, want %v", tt.name, r, tt.want)
		}
	}
	if r := FiringRate([]float64{1, 60, 70, 80, 90}, 50, 50); math.Abs(r-80) > difTol {
		t.Errorf("short window rate %v, want 80", r)
	}
}

func TestSites(t *testing.T) {
	for s := Som; s < HCNSitesN; s++ {
		if ps := ParseSite(s.Key()); ps != s {
			t.Errorf("ParseSite(%q) = %v, want %v", s.Key(), ps, s)
		}
	}
	if ParseSite("DEN") != Den || ParseSite("axon") != Zero {
		t.Errorf("ParseSite case / default handling")
	}
	nrn := snr.NewNeuron()
	Som.SetGHCN(nrn, 0.5)
	Den.SetGHCN(nrn, 0.25)
	Zero.SetGHCN(nrn, 1)
	if nrn.GHCNSom != 0.5 || nrn.GHCNDen != 0.25 {
		t.Errorf("SetGHCN: som %v den %v", nrn.GHCNSom, nrn.GHCNDen)
	}
}

func TestGridValues(t *testing.T) {
	gp := &GridParams{}
	gp.Defaults()
	if err := gp.Validate(); err != nil {
		t.Fatal(err)
	}
	g := gp.GValues()
	if len(g) != 32 || math.Abs(g[0]-1.0/128) > difTol || math.Abs(g[31]-4) > 1.0e-9 {
		t.Errorf("GValues ends: %v .. %v", g[0], g[len(g)-1])
	}
	step := math.Log2(g[1] / g[0])
	for i := 1; i < len(g); i++ {
		if dif := math.Abs(math.Log2(g[i]/g[i-1]) - step); dif > 1.0e-9 {
			t.Errorf("GValues not evenly spaced in log2 at %d", i)
		}
	}
	iv := gp.IValues()
	if len(iv) != 300 || iv[0] != -100 || iv[299] != 100 {
		t.Errorf("IValues ends: %v .. %v", iv[0], iv[len(iv)-1])
	}
	gp.NG = 1
	if g := gp.GValues(); len(g) != 1 || g[0] != gp.GRange.Min {
		t.Errorf("single conductance: %v", g)
	}

	bad := *gp
	bad.GRange.Min = 0
	if bad.Validate() == nil {
		t.Errorf("zero conductance in log range should not validate")
	}
	bad = *gp
	bad.NI = 0
	if bad.Validate() == nil {
		t.Errorf("empty current axis should not validate")
	}
}

func TestOptimalG(t *testing.T) {
	g := []float64{1, 2, 3}
	r0 := []float64{10, 20}
	rx := [][]float64{{20, 21}, {14, 40}, {11, 28}}
	opt := OptimalG(g, r0, rx, 0.5)
	if opt[0] != 1 || opt[1] != 2 {
		t.Errorf("OptimalG: %v, want [1 2]", opt)
	}
	if opt := OptimalG(nil, r0, nil, 0.5); len(opt) != 2 || opt[0] != 0 || opt[1] != 0 {
		t.Errorf("OptimalG without conductances: %v", opt)
	}
}

func TestInterpFn(t *testing.T) {
	f := interpFn([]float64{3, 1, 2, 2}, []float64{30, 10, 20, 25})
	tests := []struct{ x, want float64 }{
		{0, 10}, {1, 10}, {1.5, 15}, {2, 20}, {2.5, 25}, {3, 30}, {5, 30},
	}
	for _, tt := range tests {
		if y := f(tt.x); math.Abs(y-tt.want) > 1.0e-9 {
			t.Errorf("interp(%v) = %v, want %v", tt.x, y, tt.want)
		}
	}
	if y := interpFn(nil, nil)(3); y != 0 {
		t.Errorf("empty interp: %v", y)
	}
	if y := interpFn([]float64{1}, []float64{7})(3); y != 7 {
		t.Errorf("single point interp: %v", y)
	}
}

func TestTargetRates(t *testing.T) {
	tp := &TargetParams{}
	tp.Defaults()
	rs := tp.Rates()
	if len(rs) != tp.N {
		t.Fatalf("number of rates: %d", len(rs))
	}
	sum := 0.0
	for _, r := range rs {
		if r >= tp.MaxHz {
			t.Errorf("rate %v above max", r)
		}
		sum += r
	}
	if mn := sum / float64(len(rs)); math.Abs(mn-tp.MeanHz) > 2 {
		t.Errorf("mean rate %v far from %v", mn, tp.MeanHz)
	}
	rs2 := tp.Rates()
	for i := range rs {
		if rs[i] != rs2[i] {
			t.Fatalf("rates differ for the same seed at %d", i)
		}
	}
}

func TestSelectPairs(t *testing.T) {
	gr := &Grid{
		G:    []float64{1, 2},
		I:    []float64{0, 10},
		R0:   []float64{10, 20},
		RSom: [][]float64{{15, 30}, {20, 40}},
		RDen: [][]float64{{20, 25}, {25, 30}},
	}
	ps := SelectPairs(gr, Zero, []float64{30}, 0.5)
	if ps.G[0] != 0 || math.Abs(ps.I[0]-5) > 1.0e-9 || math.Abs(ps.R[0]-15) > 1.0e-9 {
		t.Errorf("zero site pair: I %v g %v r %v", ps.I[0], ps.G[0], ps.R[0])
	}
	ps = SelectPairs(gr, Som, []float64{30, 10, 50}, 0.5)
	wantI := []float64{5, 0, 10}
	wantR := []float64{30, 20, 40}
	for k := range wantI {
		if ps.G[k] != 2 || math.Abs(ps.I[k]-wantI[k]) > 1.0e-9 || math.Abs(ps.R[k]-wantR[k]) > 1.0e-9 {
			t.Errorf("som pair %d: I %v g %v r %v", k, ps.I[k], ps.G[k], ps.R[k])
		}
	}
	if ps.Site != Som {
		t.Errorf("site: %v", ps.Site)
	}
}

func TestPool(t *testing.T) {
	for _, nthr := range []int{1, 4} {
		pl := NewPool(nthr)
		res := make([]int, 100)
		var cnt int64
		err := pl.Run(context.Background(), 10, 100, func(j int) {
			res[j] = j * j
			atomic.AddInt64(&cnt, 1)
		})
		if err != nil {
			t.Fatal(err)
		}
		if cnt != 90 || res[9] != 0 || res[50] != 2500 {
			t.Errorf("%d threads: ran %d jobs", nthr, cnt)
		}
		tot := 0
		for _, n := range pl.ThrJobs {
			tot += n
		}
		if tot != 90 {
			t.Errorf("%d threads: ThrJobs total %d", nthr, tot)
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		cnt = 0
		err = pl.Run(ctx, 0, 100, func(j int) { atomic.AddInt64(&cnt, 1) })
		if err != context.Canceled || cnt != 0 {
			t.Errorf("%d threads: cancelled run: err %v, ran %d", nthr, err, cnt)
		}
	}
}

// TestMPIRange checks the job allocation of a single process run
func TestMPIRange(t *testing.T) {
	st, ed, err := mpiRange(37)
	if err != nil {
		t.Fatal(err)
	}
	if st != 0 || ed != 37 {
		t.Errorf("single process range: [%d, %d)", st, ed)
	}
}

func smallGrid() *GridParams {
	gp := &GridParams{}
	gp.Defaults()
	gp.NG = 2
	gp.GRange.Set(0.25, 1)
	gp.NI = 3
	gp.IRange.Set(-100, 50)
	gp.InitMs = 50
	gp.TestMs = 100
	return gp
}

func TestRunGrid(t *testing.T) {
	pr := snr.NewParams()
	gp := smallGrid()
	gp.NThreads = 1
	ser, err := RunGrid(context.Background(), gp, pr)
	if err != nil {
		t.Fatal(err)
	}
	gp.NThreads = 4
	par, err := RunGrid(context.Background(), gp, pr)
	if err != nil {
		t.Fatal(err)
	}
	for site := Som; site < HCNSitesN; site++ {
		fs, fp := ser.Flat(site), par.Flat(site)
		if len(fs) != gp.NG*gp.NI {
			t.Fatalf("%v: flat size %d", site, len(fs))
		}
		for k := range fs {
			if fs[k] != fp[k] {
				t.Errorf("%v cell %d: serial %v != parallel %v", site, k, fs[k], fp[k])
			}
		}
	}
	if ser.R0[0] != 0 {
		t.Errorf("hyperpolarized cell should be silent: %v", ser.R0[0])
	}
	if ser.R0[2] <= 1 {
		t.Errorf("depolarized cell should fire: %v", ser.R0[2])
	}

	bad := smallGrid()
	bad.Dt = 0
	if _, err := RunGrid(context.Background(), bad, pr); err == nil {
		t.Errorf("zero time step should fail")
	}
}

func TestBatch(t *testing.T) {
	pr := snr.NewParams()
	bp := &BatchParams{}
	bp.Defaults()
	bp.Site = Som
	bp.WGPe = 1
	bp.WStr = 1
	bp.Tau = 5
	bp.GPeStim = 100
	bp.StrStim = -1
	bp.Duration = 200
	bp.NThreads = 2
	is := []float64{0, 50, -100}
	gs := []float64{0.5, 0.25, 1}
	trials, err := Batch(context.Background(), bp, pr, is, gs)
	if err != nil {
		t.Fatal(err)
	}
	if len(trials) != len(is) {
		t.Fatalf("trials: %d", len(trials))
	}
	for k := range is {
		nrn := snr.NewNeuron()
		nrn.Syn.WGPe, nrn.Syn.WStr = 1, 1
		nrn.Syn.SetTau(5)
		nrn.Iapp = is[k]
		nrn.SetGHCN(snr.Som, gs[k])
		want := snr.Simulate(nrn, pr, 200, 0.025, snr.NewSchedule(100, -1))
		if len(want) != len(trials[k]) {
			t.Errorf("pair %d: %d spikes, want %d", k, len(trials[k]), len(want))
			continue
		}
		for i := range want {
			if want[i] != trials[k][i] {
				t.Errorf("pair %d spike %d: %v, want %v", k, i, trials[k][i], want[i])
			}
		}
	}
	if _, err := Batch(context.Background(), bp, pr, is, gs[:2]); err == nil {
		t.Errorf("mismatched pairs should fail")
	}
}
