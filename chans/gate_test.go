// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chans

import (
	"errors"
	"math"
	"testing"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = 1.0e-12

func TestGateZinf(t *testing.T) {
	gt := Gate{}
	gt.Set(-57, -4, 0.154, -34, 10, 17, 26, -31.9)
	// at V = Vz the logistic is exactly half of its maximum
	if dif := math.Abs(gt.Zinf(-57) - (1-0.154)/2); dif > difTol {
		t.Errorf("Zinf at Vz: %v, want %v", gt.Zinf(-57), (1-0.154)/2)
	}
	// inactivation gate (Kz < 0): decreasing with voltage
	if gt.Zinf(-80) <= gt.Zinf(-20) {
		t.Errorf("inactivation gate should decrease with V: %v <= %v", gt.Zinf(-80), gt.Zinf(-20))
	}
	if mx := gt.Zinf(-1000); math.Abs(mx-(1-0.154)) > 1.0e-9 {
		t.Errorf("Zinf max: %v, want %v", mx, 1-0.154)
	}
}

func TestGateTau(t *testing.T) {
	gt := Gate{}
	gt.Set(-30, 3, 0, 0, 0.5, 0.5, 1, 1)
	for _, v := range []float64{-90, -60, -30, 0, 30} {
		if tau := gt.Tau(v); tau != 0.5 {
			t.Errorf("constant tau at V %v: %v, want 0.5", v, tau)
		}
	}
	// symmetric bell: at Vtau with Sig0 = -Sig1, tau = Tau0 + (Tau1 - Tau0) / 2
	gt.Set(-76.4, -3.3, 0, -60, 0, 3625, 6.56, -7.48)
	if dif := math.Abs(gt.Tau(-60) - 3625.0/2); dif > difTol {
		t.Errorf("HCN tau at Vtau: %v, want %v", gt.Tau(-60), 3625.0/2)
	}
	if gt.Tau(-120) >= gt.Tau(-60) || gt.Tau(0) >= gt.Tau(-60) {
		t.Errorf("HCN tau should peak at Vtau: %v %v %v", gt.Tau(-120), gt.Tau(-60), gt.Tau(0))
	}
}

func TestGateZFmV(t *testing.T) {
	gt := Gate{}
	tau := 2.0
	gt.Set(-40, 5, 0, 0, tau, tau, 1, 1)
	z0 := gt.Zinf(-40)   // 0.5
	dt := tau * math.Ln2 // relaxes exactly half-way
	z := gt.ZFmV(0.1, -40, dt)
	want := 0.1 + (z0-0.1)*0.5
	if dif := math.Abs(z - want); dif > difTol {
		t.Errorf("half-way relaxation: %v, want %v", z, want)
	}
	zu := 0.1
	gt.Update(&zu, -40, dt)
	if zu != z {
		t.Errorf("Update: %v != ZFmV: %v", zu, z)
	}
}

// TestGateConvergence checks geometric convergence toward the steady state
// for dt well below, equal to, and far above the time constant.
func TestGateConvergence(t *testing.T) {
	tau := 0.05
	gt := Gate{}
	gt.Set(-30.2, 6.2, 0, 1, tau, tau, 1, 1)
	v := -20.0
	z0 := gt.Zinf(v)
	for _, dt := range []float64{0.001, 0.025, tau, 0.2, 5, 100} {
		z := 0.9
		prv := math.Abs(z - z0)
		for i := 0; i < 200; i++ {
			z = gt.ZFmV(z, v, dt)
			if math.IsNaN(z) || math.IsInf(z, 0) {
				t.Fatalf("dt %v step %v: non-finite z %v", dt, i, z)
			}
			if (z-z0)*(0.9-z0) < -difTol {
				t.Fatalf("dt %v step %v: overshoot z %v past z0 %v", dt, i, z, z0)
			}
			dif := math.Abs(z - z0)
			if dif > prv+difTol {
				t.Fatalf("dt %v step %v: |z - z0| increased: %v > %v", dt, i, dif, prv)
			}
			if prv > 1.0e-6 {
				// constant contraction factor exp(-dt/tau)
				ratio := dif / prv
				if math.Abs(ratio-math.Exp(-dt/tau)) > 1.0e-6 {
					t.Fatalf("dt %v step %v: contraction %v, want %v", dt, i, ratio, math.Exp(-dt/tau))
				}
			}
			prv = dif
		}
	}
}

func TestGateValidate(t *testing.T) {
	gt := Gate{}
	gt.Set(-76.4, -3.3, 0, -60, 0, 3625, 6.56, -7.48)
	if err := gt.Validate(); err != nil {
		t.Errorf("HCN gate should be valid: %v", err)
	}
	bad := []struct {
		param string
		set   func(g *Gate)
	}{
		{"Kz", func(g *Gate) { g.Kz = 0 }},
		{"Sig0", func(g *Gate) { g.Sig0 = 0 }},
		{"Sig1", func(g *Gate) { g.Sig1 = 0 }},
		{"Tau0", func(g *Gate) { g.Tau0 = -1 }},
		{"Tau1", func(g *Gate) { g.Tau1 = -0.5 }},
		{"Tau1", func(g *Gate) { g.Tau1 = 0 }},
		{"Tau1", func(g *Gate) { g.Tau0, g.Tau1, g.Sig0, g.Sig1 = 10, 0, 1, 1 }},
		{"Tau1", func(g *Gate) { g.Tau0, g.Tau1, g.Sig0, g.Sig1 = 10, 2, -5, -3 }},
	}
	for _, bd := range bad {
		g := gt
		bd.set(&g)
		err := WithOwner(g.Validate(), "HCN")
		var de *DegenerateParamError
		if !errors.As(err, &de) {
			t.Errorf("%s: expected DegenerateParamError, got %v", bd.param, err)
			continue
		}
		if de.Param != bd.param || de.Owner != "HCN" {
			t.Errorf("%s: got param %q owner %q", bd.param, de.Param, de.Owner)
		}
	}

	// same-sign slope factors with Tau1 < Tau0 reach negative time constants
	neg := gt
	neg.Tau0, neg.Tau1, neg.Sig0, neg.Sig1 = 10, 0, 1, 1
	if tau := neg.Tau(neg.Vtau + 10); tau >= 0 {
		t.Errorf("expected a negative time constant: %v", tau)
	}

	// opposite-sign slope factors keep Tau within [Tau1, Tau0]
	ok := gt
	ok.Tau0, ok.Tau1 = 10, 0
	if err := ok.Validate(); err != nil {
		t.Errorf("opposite-sign Tau1 < Tau0 should be valid: %v", err)
	}
	for v := -150.0; v <= 50; v += 0.5 {
		if tau := ok.Tau(v); !(tau > 0) || tau > 10 {
			t.Errorf("v = %v: tau %v out of (0, 10]", v, tau)
			break
		}
	}
}
