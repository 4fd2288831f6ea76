// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package snr implements a two-compartment (soma + dendrite) conductance-based
model of a substantia nigra pars reticulata (SNr) neuron, with
Hodgkin-Huxley style sodium, potassium and calcium channels, HCN channels
in both compartments, and GABAergic inputs from GPe, striatum and local SNr
collaterals with short-term depression and facilitation.

The Neuron holds the full dynamic state.  Params holds the fixed model
constants, and Params.Step advances a Neuron by one time step, reporting
whether a spike occurred.  Run and Simulate drive a Neuron for a given
duration with a stimulus Schedule, collecting spike times and optionally
a full Trace.
*/
package snr
