// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gaba

import (
	"math"

	"github.com/emer/snr/chans"
)

// Valences of the ions carried through GABA-A receptors
const (
	ZCl   = -1
	ZGABA = -1
)

// ClParams control the chloride (and bicarbonate) dynamics that determine
// the GABA-A reversal potential in each compartment.  Intracellular chloride
// is loaded by current through open GABA-A (and tonic) channels, scaled by the
// fraction chi carried by chloride, extruded by KCC2, and exchanged
// between soma and dendrite.
type ClParams struct {
	ClOut    float64 `def:"120" desc:"extracellular chloride concentration (mM)"`
	HCO3In   float64 `def:"11.8" desc:"intracellular bicarbonate concentration (mM)"`
	HCO3Out  float64 `def:"25" desc:"extracellular bicarbonate concentration (mM)"`
	PCl      float64 `def:"4" desc:"relative GABA-A permeability to chloride"`
	PHCO3    float64 `def:"1" desc:"relative GABA-A permeability to bicarbonate"`
	EHCO3    float64 `def:"-20" desc:"bicarbonate reversal potential (mV)"`
	GKCC2Som float64 `def:"0" desc:"somatic KCC2 chloride extrusion conductance"`
	GKCC2Den float64 `def:"0" desc:"dendritic KCC2 chloride extrusion conductance"`
	GTonSom  float64 `def:"0" desc:"somatic tonic GABA conductance (nS/pF)"`
	GTonDen  float64 `def:"0" desc:"dendritic tonic GABA conductance (nS/pF)"`
	AlphaSom float64 `def:"1.85e-7" desc:"current to somatic chloride concentration conversion factor"`
	AlphaDen float64 `def:"2.3e-6" desc:"current to dendritic chloride concentration conversion factor"`
	TauSD    float64 `def:"200" desc:"time constant (ms) of chloride diffusion from dendrite into soma"`
	TauDS    float64 `def:"80" desc:"time constant (ms) of chloride diffusion from soma into dendrite"`
}

func (cp *ClParams) Defaults() {
	cp.ClOut = 120
	cp.HCO3In = 11.8
	cp.HCO3Out = 25
	cp.PCl = 4
	cp.PHCO3 = 1
	cp.EHCO3 = -20
	cp.GKCC2Som = 0
	cp.GKCC2Den = 0
	cp.GTonSom = 0
	cp.GTonDen = 0
	cp.AlphaSom = 1.85e-7
	cp.AlphaDen = 2.3e-6
	cp.TauSD = 200
	cp.TauDS = 80
}

// ECl returns the chloride reversal potential (mV) at intracellular
// concentration cl, for thermal voltage vt
func (cp *ClParams) ECl(vt, cl float64) float64 {
	return chans.Nernst(vt, cp.ClOut, cl, ZCl)
}

// EGABA returns the GABA-A reversal potential (mV) at intracellular chloride cl,
// including the bicarbonate permeability
func (cp *ClParams) EGABA(vt, cl float64) float64 {
	return chans.GHK2(vt, ZGABA, cp.PCl, cp.ClOut, cl, cp.PHCO3, cp.HCO3Out, cp.HCO3In)
}

// Chi returns the fraction of GABA-A current carried by chloride, given the
// GABA-A and chloride reversal potentials.  It is undefined when ecl == EHCO3.
func (cp *ClParams) Chi(egaba, ecl float64) float64 {
	return (cp.EHCO3 - egaba) / (cp.EHCO3 - ecl)
}

// IChi returns the chloride loading current through GABA-A channels with
// phasic conductance g plus tonic conductance gton, at membrane potential v
func (cp *ClParams) IChi(chi, g, gton, v, ecl float64) float64 {
	return chi * (g + gton) * (v - ecl)
}

// IKCC2 returns the KCC2 extrusion current for conductance gkcc2
// and potassium reversal ek
func (cp *ClParams) IKCC2(gkcc2, ek, ecl float64) float64 {
	return gkcc2 * (ek - ecl)
}

// Exchange applies dt msec of somato-dendritic chloride diffusion.
// The soma is updated first and the dendrite sees the new somatic value.
func (cp *ClParams) Exchange(clSom, clDen *float64, dt float64) {
	*clSom += dt * (*clDen - *clSom) / cp.TauSD
	*clDen += dt * (*clSom - *clDen) / cp.TauDS
}

// Load applies dt msec of chloride flux from the given KCC2 and chi currents
// in one compartment with conversion factor alpha
func (cp *ClParams) Load(cl *float64, alpha, ikcc2, ichi, dt float64) {
	*cl += dt * alpha * (ikcc2 + ichi)
}

// Validate checks the diffusion time constants, which are divisors
func (cp *ClParams) Validate() error {
	if cp.TauSD == 0 || math.IsNaN(cp.TauSD) {
		return &chans.DegenerateParamError{Owner: "Cl", Param: "TauSD", Value: cp.TauSD, Reason: "time constant is a divisor"}
	}
	if cp.TauDS == 0 || math.IsNaN(cp.TauDS) {
		return &chans.DegenerateParamError{Owner: "Cl", Param: "TauDS", Value: cp.TauDS, Reason: "time constant is a divisor"}
	}
	return nil
}
