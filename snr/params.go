// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snr

import (
	"math"

	"github.com/emer/snr/chans"
	"github.com/emer/snr/gaba"
)

///////////////////////////////////////////////////////////////////////
//  params.go contains the fixed model constants of the SNr neuron

// ErevParams are the fixed reversal potentials, in mV.
// Calcium, chloride and GABA reversals depend on concentrations
// and are computed each step.
type ErevParams struct {
	Na    float64 `def:"50" desc:"sodium reversal potential"`
	K     float64 `def:"-90" desc:"potassium reversal potential"`
	TRPC3 float64 `def:"-37" desc:"TRPC3 channel reversal potential"`
	HCN   float64 `def:"-30" desc:"HCN channel reversal potential"`
}

func (ev *ErevParams) Defaults() {
	ev.Na = 50
	ev.K = -90
	ev.TRPC3 = -37
	ev.HCN = -30
}

// CaParams control intracellular calcium and the calcium-activated
// potassium (SK) channel
type CaParams struct {
	Out   float64 `def:"4" desc:"extracellular calcium concentration (mM)"`
	Min   float64 `def:"5e-08" desc:"intracellular calcium level that concentration relaxes to (mM)"`
	Tau   float64 `def:"250" desc:"time constant (ms) of calcium relaxation toward Min"`
	Alpha float64 `def:"9.25e-08" desc:"current to calcium concentration conversion factor"`
	KSK   float64 `def:"0.4" desc:"half-activation calcium concentration of the SK channel"`
	NSK   float64 `def:"4" desc:"Hill coefficient of the SK channel"`
}

func (cp *CaParams) Defaults() {
	cp.Out = 4
	cp.Min = 5e-8
	cp.Tau = 250
	cp.Alpha = .925e-7
	cp.KSK = .4
	cp.NSK = 4
}

// CapParams are the compartment capacitances and the coupling conductance
type CapParams struct {
	Som float64 `def:"100" desc:"somatic membrane capacitance (pF)"`
	Den float64 `def:"40" desc:"dendritic membrane capacitance (pF)"`
	GC  float64 `def:"26.5" desc:"somato-dendritic coupling conductance (nS)"`
}

func (cp *CapParams) Defaults() {
	cp.Som = 100
	cp.Den = 40
	cp.GC = 26.5
}

// Params are all the fixed constants of the model.  They are shared by
// all neurons in a sweep and are read-only while stepping.
type Params struct {
	VT    float64        `def:"26.54" desc:"thermal voltage RT/F, in mV"`
	Gbar  chans.Chans    `view:"inline" desc:"maximal conductances (nS/pF) of the intrinsic channels"`
	Erev  ErevParams     `view:"inline" desc:"fixed reversal potentials"`
	Ca    CaParams       `view:"inline" desc:"intracellular calcium and SK channel"`
	Cap   CapParams      `view:"inline" desc:"capacitances and somato-dendritic coupling"`
	Cl    gaba.ClParams  `view:"inline" desc:"chloride dynamics and GABA-A reversal"`
	STP   gaba.STPParams `view:"inline" desc:"short-term depression and facilitation of GABAergic inputs"`
	Order StepOrders     `desc:"when currents are evaluated within one step"`
}

// NewParams returns a new Params with default values
func NewParams() *Params {
	pr := &Params{}
	pr.Defaults()
	return pr
}

func (pr *Params) Defaults() {
	pr.VT = 26.54
	pr.Gbar.Defaults()
	pr.Erev.Defaults()
	pr.Ca.Defaults()
	pr.Cap.Defaults()
	pr.Cl.Defaults()
	pr.STP.Defaults()
	pr.Order = GatesFirst
}

// Validate returns a *chans.DegenerateParamError for any constant that would be
// used as a zero divisor, or a non-positive time constant.
func (pr *Params) Validate() error {
	switch {
	case pr.VT == 0 || math.IsNaN(pr.VT):
		return &chans.DegenerateParamError{Owner: "Params", Param: "VT", Value: pr.VT, Reason: "thermal voltage must be nonzero"}
	case pr.Cap.Som == 0 || math.IsNaN(pr.Cap.Som):
		return &chans.DegenerateParamError{Owner: "Cap", Param: "Som", Value: pr.Cap.Som, Reason: "capacitance is a divisor"}
	case pr.Cap.Den == 0 || math.IsNaN(pr.Cap.Den):
		return &chans.DegenerateParamError{Owner: "Cap", Param: "Den", Value: pr.Cap.Den, Reason: "capacitance is a divisor"}
	case pr.Ca.Tau == 0 || math.IsNaN(pr.Ca.Tau):
		return &chans.DegenerateParamError{Owner: "Ca", Param: "Tau", Value: pr.Ca.Tau, Reason: "time constant is a divisor"}
	case pr.Order < 0 || pr.Order >= StepOrdersN:
		return &chans.DegenerateParamError{Owner: "Params", Param: "Order", Value: float64(pr.Order), Reason: "unknown step order"}
	}
	if err := pr.Cl.Validate(); err != nil {
		return err
	}
	return pr.STP.Validate()
}
