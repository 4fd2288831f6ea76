// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package snr is the overall repository for a conductance-based model of a
substantia nigra pars reticulata (SNr) neuron, implemented in the Go language
(golang): a two-compartment (soma + dendrite) neuron with Hodgkin-Huxley style
gating, HCN channels, and GABAergic synapses from the GPe and striatum with
short-term depression and facilitation.

This top-level of the repository has no functional code -- everything is organized
into the following sub-repositories:

* chans: voltage-gated gates, reversal potentials, and the maximal conductances
of the intrinsic channels.

* gaba: GABA-A synaptic conductances, short-term plasticity, and chloride
dynamics with the HCO3-permeable reversal potential.

* snr: the neuron state, the single time-step update, stimulus schedules,
spike detection, full traces, and the simulation loop.

* datafile: raw float64 binary files and the CSV raster and trace formats.

* sweep: grid search of firing rate over HCN conductance and current,
selection of (current, conductance) pairs, and batches of stimulation trials,
on worker threads and MPI processes.

* resultdb: SQLite store of runs and spike times.

* examples: these actually compile into runnable programs: snr (single runs
and batches), gridsearch, gateplot (GUI), and bench.
*/
package snr
