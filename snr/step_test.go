// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snr

import (
	"math"
	"testing"
)

func TestStepTime(t *testing.T) {
	nrn := NewNeuron()
	pr := NewParams()
	dt := 0.025
	want := 0.0
	for i := 0; i < 100; i++ {
		pr.Step(nrn, dt)
		want += dt
	}
	if nrn.Time != want {
		t.Errorf("time should advance by exactly dt per step: %v, want %v", nrn.Time, want)
	}
}

// TestGPePulse checks that the pulse conductance uses the depression value
// from before the pulse, and that the pulse then depresses D.
func TestGPePulse(t *testing.T) {
	for _, ord := range []StepOrders{GatesFirst, SnapshotCurrents} {
		nrn := NewNeuron()
		pr := NewParams()
		pr.Order = ord
		nrn.Dm = .67
		nrn.Stim[GPe] = true
		pr.Step(nrn, 0.025)
		if nrn.GGABASom != nrn.Syn.WGPe {
			t.Errorf("%v: GGABASom: %v, want %v", ord, nrn.GGABASom, nrn.Syn.WGPe)
		}
		dm := nrn.Dm
		want := 1 + pr.STP.AlphaD*(dm-1)
		if dif := math.Abs(nrn.D - want); dif > difTol {
			t.Errorf("%v: D: %v, want %v", ord, nrn.D, want)
		}
		if nrn.GGABADen != 0 || nrn.F != 1 {
			t.Errorf("%v: dendrite should be untouched: %v %v", ord, nrn.GGABADen, nrn.F)
		}

		if nrn.Stim[GPe] {
			t.Errorf("%v: stimulus flag should be cleared by the step", ord)
		}

		// a second pulse is scaled by the depressed value
		d := nrn.D
		g := nrn.GGABASom * math.Exp(-0.025/nrn.Syn.TauSom)
		nrn.Stim[GPe] = true
		pr.Step(nrn, 0.025)
		drel := d + (nrn.D0-d)*(1-math.Exp(-0.025/pr.STP.TauD))
		if dif := math.Abs(nrn.GGABASom - (g + nrn.Syn.WGPe*drel)); dif > difTol {
			t.Errorf("%v: second pulse GGABASom: %v, want %v", ord, nrn.GGABASom, g+nrn.Syn.WGPe*drel)
		}
	}
}

func TestStrSNrPulse(t *testing.T) {
	nrn := NewNeuron()
	pr := NewParams()
	nrn.Fm = 2
	nrn.Stim[Str] = true
	nrn.Stim[SNr] = true
	pr.Step(nrn, 0.025)
	if nrn.GGABADen != nrn.Syn.WStr {
		t.Errorf("GGABADen: %v, want %v", nrn.GGABADen, nrn.Syn.WStr)
	}
	if nrn.GGABASom != nrn.Syn.WSNr {
		t.Errorf("SNr pulse has no plasticity: %v, want %v", nrn.GGABASom, nrn.Syn.WSNr)
	}
	if dif := math.Abs(nrn.F - 1.125); dif > difTol {
		t.Errorf("F: %v", nrn.F)
	}
	if nrn.D != 1 {
		t.Errorf("D should be untouched: %v", nrn.D)
	}
}

// TestStimsConsumed checks that a stimulus flag delivers one pulse only
func TestStimsConsumed(t *testing.T) {
	nrn := NewNeuron()
	pr := NewParams()
	nrn.Dm, nrn.Fm = .67, 2
	nrn.Stim[GPe] = true
	nrn.Stim[Str] = true
	nrn.Stim[SNr] = true
	pr.Step(nrn, 0.025)
	for st := GPe; st < StimsN; st++ {
		if nrn.Stim[st] {
			t.Errorf("%v flag should be cleared after the step", st)
		}
	}
	gs, gd, d, f := nrn.GGABASom, nrn.GGABADen, nrn.D, nrn.F
	pr.Step(nrn, 0.025)
	if nrn.GGABASom >= gs || nrn.GGABADen >= gd {
		t.Errorf("conductances should only decay without new stimuli: %v %v", nrn.GGABASom, nrn.GGABADen)
	}
	if nrn.D <= d || nrn.F >= f {
		t.Errorf("D and F should relax back toward 1: %v %v", nrn.D, nrn.F)
	}
}

func TestStepOrders(t *testing.T) {
	// from the same state, both orders update the gates identically
	// and differ only in the currents used for the voltage update
	pr := NewParams()
	n1 := NewNeuron()
	n2 := NewNeuron()
	n1.Iapp = 100
	n2.Iapp = 100
	pr.Order = GatesFirst
	pr.Step(n1, 0.025)
	pr.Order = SnapshotCurrents
	pr.Step(n2, 0.025)
	if n1.MNaF != n2.MNaF || n1.MHCNDen != n2.MHCNDen {
		t.Errorf("gate updates should not depend on order")
	}
	if n1.Vs == n2.Vs {
		t.Errorf("voltage updates should use different currents: %v", n1.Vs)
	}

	// snapshot order uses the start-of-step currents for the voltage update
	n3 := NewNeuron()
	n3.Iapp = 100
	var cr Currents
	pr.CurrentsFmNeuron(n3, &cr)
	if dif := math.Abs(n2.Vs - (-60 + 0.025*cr.DVs)); dif > difTol {
		t.Errorf("snapshot Vs: %v, want %v", n2.Vs, -60+0.025*cr.DVs)
	}
}

func TestChlorideConstantWithoutGABA(t *testing.T) {
	nrn := NewNeuron()
	pr := NewParams()
	for i := 0; i < 4000; i++ {
		pr.Step(nrn, 0.025)
	}
	if nrn.ClSom != 6 || nrn.ClDen != 6 {
		t.Errorf("chloride should not change without GABA or KCC2: %v %v", nrn.ClSom, nrn.ClDen)
	}
	if nrn.CaIn == 2.5e-4 {
		t.Errorf("calcium should change")
	}
}

func BenchmarkStep(b *testing.B) {
	nrn := NewNeuron()
	pr := NewParams()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pr.Step(nrn, 0.025)
	}
}
