// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snr

///////////////////////////////////////////////////////////////////////
//  step.go contains the single time-step update of the neuron

// Step advances nrn by dt msec, applying the stimulus flags currently set in
// nrn.Stim and then clearing them, and returns true if the somatic voltage crossed Vth upward
// during the step.  Step does no validation and no allocation:
// degenerate values propagate as NaN / Inf.
func (pr *Params) Step(nrn *Neuron, dt float64) bool {
	var cr Currents
	if pr.Order == SnapshotCurrents {
		pr.CurrentsFmNeuron(nrn, &cr)
	}

	nrn.Time += dt
	nrn.Gates.Update(nrn, dt)

	if pr.Order == GatesFirst {
		pr.CurrentsFmNeuron(nrn, &cr)
	}
	pr.CaFmCurrents(nrn, &cr, dt)
	pr.ClFmCurrents(nrn, &cr, dt)

	nrn.Syn.Decay(&nrn.GGABASom, &nrn.GGABADen, dt)
	pr.STP.Relax(&nrn.D, &nrn.F, nrn.D0, nrn.F0, dt)
	pr.SynFmStims(nrn)
	nrn.ClearStims()

	if pr.Order == GatesFirst {
		pr.CurrentsFmNeuron(nrn, &cr)
	}
	v0 := nrn.Vs
	nrn.Vs += dt * cr.DVs
	nrn.Vd += dt * cr.DVd
	return SpikeFmV(v0, nrn.Vs, nrn.Vth)
}

// CaFmCurrents relaxes intracellular calcium toward its minimum and adds
// the influx carried by the calcium current
func (pr *Params) CaFmCurrents(nrn *Neuron, cr *Currents, dt float64) {
	nrn.CaIn += dt * (pr.Ca.Min - nrn.CaIn) / pr.Ca.Tau
	nrn.CaIn -= dt * pr.Ca.Alpha * pr.Cap.Som * cr.ICa
}

// ClFmCurrents exchanges chloride between the compartments, then applies
// the KCC2 and GABA-A chloride fluxes
func (pr *Params) ClFmCurrents(nrn *Neuron, cr *Currents, dt float64) {
	cl := &pr.Cl
	cl.Exchange(&nrn.ClSom, &nrn.ClDen, dt)
	cl.Load(&nrn.ClSom, cl.AlphaSom, cr.IKCC2Som, cr.IChiSom, dt)
	cl.Load(&nrn.ClDen, cl.AlphaDen, cr.IKCC2Den, cr.IChiDen, dt)
}

// SynFmStims adds the conductance pulses of the stimuli flagged in nrn.Stim.
// GPe and striatal pulses are scaled by the depression and facilitation
// values before those are updated by the pulse.
func (pr *Params) SynFmStims(nrn *Neuron) {
	if nrn.Stim[SNr] {
		nrn.GGABASom += nrn.Syn.WSNr
	}
	if nrn.Stim[GPe] {
		nrn.GGABASom += nrn.Syn.WGPe * nrn.D
		pr.STP.Depress(&nrn.D, nrn.Dm)
	}
	if nrn.Stim[Str] {
		nrn.GGABADen += nrn.Syn.WStr * nrn.F
		pr.STP.Facilitate(&nrn.F, nrn.Fm)
	}
}

// SpikeFmV returns true if the voltage crossed threshold vth upward,
// going from v0 strictly below to v at or above it
func SpikeFmV(v0, v, vth float64) bool {
	return v0 < vth && v >= vth
}
