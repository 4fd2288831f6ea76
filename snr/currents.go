// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snr

import (
	"math"

	"github.com/emer/snr/chans"
)

// Currents are the instantaneous reversal potentials and currents derived
// from a Neuron state.  Currents are in pA/pF (= mV/ms), outward positive.
// They are recomputed every step and never stored in the Neuron.
type Currents struct {
	ECa      float64 `desc:"calcium reversal potential (mV)"`
	EClSom   float64 `desc:"somatic chloride reversal potential (mV)"`
	EClDen   float64 `desc:"dendritic chloride reversal potential (mV)"`
	EGABASom float64 `desc:"somatic GABA-A reversal potential (mV)"`
	EGABADen float64 `desc:"dendritic GABA-A reversal potential (mV)"`

	INaF     float64 `desc:"fast Na+ current"`
	INaP     float64 `desc:"persistent Na+ current"`
	IK       float64 `desc:"delayed rectifier K+ current"`
	ICa      float64 `desc:"Ca++ current"`
	ILeak    float64 `desc:"leak current"`
	MSK      float64 `desc:"SK channel calcium activation"`
	ISK      float64 `desc:"calcium-activated K+ current"`
	IDS      float64 `desc:"coupling current out of the soma into the dendrite"`
	IHCNSom  float64 `desc:"somatic HCN current"`
	IGABASom float64 `desc:"somatic GABA current"`

	ISD      float64 `desc:"coupling current out of the dendrite into the soma"`
	ITRPC3   float64 `desc:"dendritic TRPC3 current"`
	IHCNDen  float64 `desc:"dendritic HCN current"`
	IGABADen float64 `desc:"dendritic GABA current"`

	ChiSom   float64 `desc:"fraction of somatic GABA-A current carried by chloride"`
	ChiDen   float64 `desc:"fraction of dendritic GABA-A current carried by chloride"`
	IChiSom  float64 `desc:"somatic chloride loading current"`
	IChiDen  float64 `desc:"dendritic chloride loading current"`
	IKCC2Som float64 `desc:"somatic KCC2 extrusion current"`
	IKCC2Den float64 `desc:"dendritic KCC2 extrusion current"`

	DVs float64 `desc:"rate of change of the somatic voltage (mV/ms)"`
	DVd float64 `desc:"rate of change of the dendritic voltage (mV/ms)"`
}

// CurrentsFmNeuron computes all the currents of nrn into cr.
// It is a pure function of nrn and the params.
func (pr *Params) CurrentsFmNeuron(nrn *Neuron, cr *Currents) {
	vt := pr.VT
	gb := &pr.Gbar
	ev := &pr.Erev
	cl := &pr.Cl

	cr.ECa = chans.Nernst(vt, pr.Ca.Out, nrn.CaIn, 2)
	cr.EClSom = cl.ECl(vt, nrn.ClSom)
	cr.EClDen = cl.ECl(vt, nrn.ClDen)
	cr.EGABASom = cl.EGABA(vt, nrn.ClSom)
	cr.EGABADen = cl.EGABA(vt, nrn.ClDen)

	vs := nrn.Vs
	vd := nrn.Vd
	cr.INaF = gb.NaF * math.Pow(nrn.MNaF, 3) * nrn.HNaF * nrn.SNaF * (vs - ev.Na)
	cr.INaP = gb.NaP * math.Pow(nrn.MNaP, 3) * nrn.HNaP * (vs - ev.Na)
	cr.IK = gb.K * math.Pow(nrn.MK, 4) * nrn.HK * (vs - ev.K)
	cr.ICa = gb.Ca * nrn.MCa * nrn.HCa * (vs - cr.ECa)
	cr.ILeak = gb.Leak * (vs - nrn.Eleak)
	cr.IDS = pr.Cap.GC / pr.Cap.Som * (vs - vd)
	cr.IHCNSom = nrn.GHCNSom * nrn.MHCNSom * (vs - ev.HCN)
	cr.IGABASom = nrn.GGABASom * (vs - cr.EGABASom)
	cr.MSK = chans.Hill(nrn.CaIn, pr.Ca.KSK, pr.Ca.NSK)
	cr.ISK = gb.SK * cr.MSK * (vs - ev.K)

	cr.ISD = pr.Cap.GC / pr.Cap.Den * (vd - vs)
	cr.ITRPC3 = gb.TRPC3 * (vd - ev.TRPC3)
	cr.IHCNDen = nrn.GHCNDen * nrn.MHCNDen * (vd - ev.HCN)
	cr.IGABADen = nrn.GGABADen * (vd - cr.EGABADen)

	cr.ChiSom = cl.Chi(cr.EGABASom, cr.EClSom)
	cr.ChiDen = cl.Chi(cr.EGABADen, cr.EClDen)
	cr.IChiSom = cl.IChi(cr.ChiSom, nrn.GGABASom, cl.GTonSom, vs, cr.EClSom)
	cr.IChiDen = cl.IChi(cr.ChiDen, nrn.GGABADen, cl.GTonDen, vd, cr.EClDen)
	cr.IKCC2Som = cl.IKCC2(cl.GKCC2Som, ev.K, cr.EClSom)
	cr.IKCC2Den = cl.IKCC2(cl.GKCC2Den, ev.K, cr.EClDen)

	cr.DVs = -(cr.INaF + cr.INaP + cr.IK + cr.ICa + cr.ILeak + cr.ISK + cr.IDS + cr.IHCNSom + cr.IGABASom) + nrn.Iapp/pr.Cap.Som
	cr.DVd = -(cr.ISD + cr.ITRPC3 + cr.IHCNDen + cr.IGABADen) + nrn.Iden/pr.Cap.Den
}
