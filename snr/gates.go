// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snr

import "github.com/emer/snr/chans"

// GateSet holds the gating parameters of every voltage-gated channel.
// The single HCN gate drives both the somatic and dendritic HCN levels,
// each at its own compartment's voltage.
type GateSet struct {
	MNaF chans.Gate `desc:"fast Na+ activation"`
	HNaF chans.Gate `desc:"fast Na+ inactivation"`
	SNaF chans.Gate `desc:"fast Na+ slow inactivation"`
	MNaP chans.Gate `desc:"persistent Na+ activation"`
	HNaP chans.Gate `desc:"persistent Na+ inactivation"`
	MK   chans.Gate `desc:"delayed rectifier K+ activation"`
	HK   chans.Gate `desc:"delayed rectifier K+ inactivation"`
	MCa  chans.Gate `desc:"Ca++ activation"`
	HCa  chans.Gate `desc:"Ca++ inactivation"`
	HCN  chans.Gate `desc:"HCN activation, shared by soma and dendrite"`
}

// Defaults sets the published gate parameters.  The HCN gate is centered
// on the leak reversal potential eleak.
func (gs *GateSet) Defaults(eleak float64) {
	gs.MNaF.Set(-30.2, 6.2, 0, 1, .05, .05, 1, 1)
	gs.HNaF.Set(-63.3, -8.1, 0, -43, .59, 35.1, 10, -5)
	gs.SNaF.Set(-30, -0.4, .15, -40, 10, 50, 18.3, -10)
	gs.MNaP.Set(-50, 3, 0, -42.6, .03, .146, 14.4, -14.4)
	gs.HNaP.Set(-57, -4, .154, -34, 10, 17, 26, -31.9)
	gs.MK.Set(-26, 7.8, 0, -26, .1, 14, 13, -12)
	gs.HK.Set(-20, -10, .6, 0, 5, 20, 10, -10)
	gs.MCa.Set(-27.5, 3, 0, 0, .5, .5, 1, 1)
	gs.HCa.Set(-52.5, -5.2, 0, 0, 18, 18, 1, 1)
	gs.HCN.Set(-76.4, -3.3, 0, -76.4, 0, 3625, 6.56, -7.48)
	gs.HCN.Vtau = eleak
	gs.HCN.Vz = eleak
}

// Gates returns pointers to all the gates with their names, in canonical order
func (gs *GateSet) Gates() ([]*chans.Gate, []string) {
	return []*chans.Gate{&gs.MNaF, &gs.HNaF, &gs.SNaF, &gs.MNaP, &gs.HNaP, &gs.MK, &gs.HK, &gs.MCa, &gs.HCa, &gs.HCN},
		[]string{"MNaF", "HNaF", "SNaF", "MNaP", "HNaP", "MK", "HK", "MCa", "HCa", "HCN"}
}

// Validate returns the first degenerate gate parameter found,
// as a *chans.DegenerateParamError owned by the gate name
func (gs *GateSet) Validate() error {
	gts, nms := gs.Gates()
	for i, gt := range gts {
		if err := gt.Validate(); err != nil {
			return chans.WithOwner(err, nms[i])
		}
	}
	return nil
}

// Update advances all eleven gating levels of nrn by dt msec, using the
// current somatic voltage for all but the dendritic HCN level.
func (gs *GateSet) Update(nrn *Neuron, dt float64) {
	vs := nrn.Vs
	gs.MNaF.Update(&nrn.MNaF, vs, dt)
	gs.HNaF.Update(&nrn.HNaF, vs, dt)
	gs.SNaF.Update(&nrn.SNaF, vs, dt)
	gs.MNaP.Update(&nrn.MNaP, vs, dt)
	gs.HNaP.Update(&nrn.HNaP, vs, dt)
	gs.MK.Update(&nrn.MK, vs, dt)
	gs.HK.Update(&nrn.HK, vs, dt)
	gs.MCa.Update(&nrn.MCa, vs, dt)
	gs.HCa.Update(&nrn.HCa, vs, dt)
	gs.HCN.Update(&nrn.MHCNSom, vs, dt)
	gs.HCN.Update(&nrn.MHCNDen, nrn.Vd, dt)
}
