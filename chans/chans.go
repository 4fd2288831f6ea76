// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package chans provides the voltage-gated conductance channel machinery for
conductance-based (Hodgkin-Huxley style) neuron models: gating variables with
logistic steady-state activation and bell-shaped time constants, updated by
exact exponential relaxation, plus reversal potential helpers
(Nernst and Goldman-Hodgkin-Katz style) and the Hill activation function.
*/
package chans

// Chans holds the maximal conductances, in nS/pF, of the intrinsic channels
// of the soma and dendrite.  Synaptic and HCN conductances are set per run
// and are not part of this record.
type Chans struct {
	NaF   float64 `def:"35" desc:"fast, inactivating sodium (Na+) channel"`
	NaP   float64 `def:"0.175" desc:"persistent sodium (Na+) channel"`
	K     float64 `def:"50" desc:"delayed rectifier potassium (K+) channel"`
	Ca    float64 `def:"0.7" desc:"voltage-gated calcium (Ca++) channel"`
	Leak  float64 `def:"0.04" desc:"constant leak channel, reversal at E_leak of the neuron"`
	SK    float64 `def:"0" desc:"small-conductance calcium-activated potassium channel"`
	TRPC3 float64 `def:"0.1" desc:"dendritic TRPC3 channel, voltage-independent conductance"`
}

// Defaults sets the published SNr model values
func (ch *Chans) Defaults() {
	ch.SetAll(35, 0.175, 50, 0.7, 0.04, 0, 0.1)
}

// SetAll sets all the values
func (ch *Chans) SetAll(naf, nap, k, ca, leak, sk, trpc3 float64) {
	ch.NaF, ch.NaP, ch.K, ch.Ca, ch.Leak, ch.SK, ch.TRPC3 = naf, nap, k, ca, leak, sk, trpc3
}
