// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gaba

import (
	"errors"
	"math"
	"testing"

	"github.com/emer/snr/chans"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = 1.0e-9

func TestSynDecay(t *testing.T) {
	sp := SynParams{}
	sp.Defaults()
	gs, gd := 1.0, 2.0
	sp.Decay(&gs, &gd, 3)
	if dif := math.Abs(gs - math.Exp(-1)); dif > difTol {
		t.Errorf("soma decay: %v", gs)
	}
	if dif := math.Abs(gd - 2*math.Exp(-3/7.2)); dif > difTol {
		t.Errorf("dendrite decay: %v", gd)
	}
	sp.SetTau(0)
	if err := sp.Validate(); err != nil {
		t.Errorf("zero tau should be valid: %v", err)
	}
	sp.Decay(&gs, &gd, 0.025)
	if gs != 0 || gd != 0 {
		t.Errorf("zero tau should clear the conductance in one step: %v %v", gs, gd)
	}
	sp.TauDen = -1
	var de *chans.DegenerateParamError
	if err := sp.Validate(); !errors.As(err, &de) || de.Param != "TauDen" {
		t.Errorf("negative tau: %v", err)
	}
}

func TestSTP(t *testing.T) {
	sp := STPParams{}
	sp.Defaults()
	d, f := 1.0, 1.0
	sp.Depress(&d, 0.67)
	if dif := math.Abs(d - (1 + 0.565*(0.67-1))); dif > difTol {
		t.Errorf("depression: %v", d)
	}
	sp.Facilitate(&f, 2)
	if dif := math.Abs(f - 1.125); dif > difTol {
		t.Errorf("facilitation: %v", f)
	}
	// one recovery time constant covers 1 - 1/e of the distance
	d0 := d
	sp.Relax(&d, &f, 1, 1, 1000)
	want := d0 + (1-d0)*(1-math.Exp(-1))
	if dif := math.Abs(d - want); dif > difTol {
		t.Errorf("relax D: %v, want %v", d, want)
	}
	// repeated pulses converge on the target, not past it
	for i := 0; i < 100; i++ {
		sp.Depress(&d, 0.67)
	}
	if dif := math.Abs(d - 0.67); dif > difTol {
		t.Errorf("repeated depression: %v", d)
	}
}

func TestClReversal(t *testing.T) {
	cp := ClParams{}
	cp.Defaults()
	vt := 26.54
	ecl := cp.ECl(vt, 6)
	eg := cp.EGABA(vt, 6)
	if dif := math.Abs(ecl - (-79.506735)); dif > 1.0e-3 {
		t.Errorf("ECl at 6 mM: %v", ecl)
	}
	if dif := math.Abs(eg - (-70.241044)); dif > 1.0e-3 {
		t.Errorf("EGABA at 6 mM: %v", eg)
	}
	chi := cp.Chi(eg, ecl)
	if chi <= 0 || chi >= 1 {
		t.Errorf("chi should be a fraction: %v", chi)
	}
	// chloride accumulation depolarizes EGABA
	if cp.EGABA(vt, 12) <= eg {
		t.Errorf("EGABA should rise with intracellular chloride")
	}
	if ic := cp.IChi(chi, 0, 0, -50, ecl); ic != 0 {
		t.Errorf("no conductance should give no chloride current: %v", ic)
	}
	if ik := cp.IKCC2(0, -90, ecl); ik != 0 {
		t.Errorf("default KCC2 is off: %v", ik)
	}
}

func TestClExchange(t *testing.T) {
	cp := ClParams{}
	cp.Defaults()
	som, den := 6.0, 6.0
	for i := 0; i < 1000; i++ {
		cp.Exchange(&som, &den, 0.025)
	}
	if som != 6 || den != 6 {
		t.Errorf("equal concentrations should not change: %v %v", som, den)
	}
	som, den = 10, 6
	cp.Exchange(&som, &den, 1)
	wsom := 10 + (6.0-10)/200
	wden := 6 + (wsom-6)/80
	if dif := math.Abs(som - wsom); dif > difTol {
		t.Errorf("soma exchange: %v, want %v", som, wsom)
	}
	if dif := math.Abs(den - wden); dif > difTol {
		t.Errorf("dendrite exchange uses updated soma: %v, want %v", den, wden)
	}
	cl := 6.0
	cp.Load(&cl, cp.AlphaDen, 0, 1000, 1)
	if dif := math.Abs(cl - (6 + 2.3e-3)); dif > difTol {
		t.Errorf("chloride load: %v", cl)
	}
	cp.TauDS = 0
	if err := cp.Validate(); err == nil {
		t.Errorf("zero TauDS should be degenerate")
	}
}
