// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package gaba provides the GABAergic synaptic input machinery of the SNr
neuron: synaptic weights and exponential conductance decay for the three
input sources (GPe and SNr collaterals onto the soma, striatum onto the
dendrite), short-term depression / facilitation of the pulse amplitudes,
and the chloride dynamics that set the GABA-A reversal potential
(HCO3- permeability, KCC2 extrusion, chloride load through open
GABA-A channels, and somato-dendritic chloride exchange).
*/
package gaba

import (
	"math"

	"github.com/emer/snr/chans"
)

// SynParams are the per-run synaptic parameters: pulse weights for each input
// source and the decay time constants of the somatic and dendritic GABA
// conductances.
type SynParams struct {
	WGPe   float64 `def:"0.2" desc:"conductance increment (nS/pF) per GPe pulse onto the soma, before depression scaling"`
	WStr   float64 `def:"0.4" desc:"conductance increment (nS/pF) per striatal pulse onto the dendrite, before facilitation scaling"`
	WSNr   float64 `def:"0.1" desc:"conductance increment (nS/pF) per SNr collateral pulse onto the soma -- no plasticity"`
	TauSom float64 `def:"3" min:"0" desc:"decay time constant (ms) of the somatic GABA conductance"`
	TauDen float64 `def:"7.2" min:"0" desc:"decay time constant (ms) of the dendritic GABA conductance"`
}

func (sp *SynParams) Defaults() {
	sp.WGPe = 0.2
	sp.WStr = 0.4
	sp.WSNr = 0.1
	sp.TauSom = 3
	sp.TauDen = 7.2
}

// SetTau sets both decay time constants to the same value
func (sp *SynParams) SetTau(tau float64) {
	sp.TauSom = tau
	sp.TauDen = tau
}

// Decay decays the somatic and dendritic conductances over dt msec
func (sp *SynParams) Decay(gsom, gden *float64, dt float64) {
	*gsom *= math.Exp(-dt / sp.TauSom)
	*gden *= math.Exp(-dt / sp.TauDen)
}

// Validate returns a *chans.DegenerateParamError for a negative or NaN decay
// time constant.  A zero time constant is allowed: the conductance then
// lasts for the single step of the pulse.
func (sp *SynParams) Validate() error {
	if sp.TauSom < 0 || math.IsNaN(sp.TauSom) {
		return &chans.DegenerateParamError{Owner: "Syn", Param: "TauSom", Value: sp.TauSom, Reason: "time constant must be >= 0"}
	}
	if sp.TauDen < 0 || math.IsNaN(sp.TauDen) {
		return &chans.DegenerateParamError{Owner: "Syn", Param: "TauDen", Value: sp.TauDen, Reason: "time constant must be >= 0"}
	}
	return nil
}
