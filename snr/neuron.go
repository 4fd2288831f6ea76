// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snr

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/emer/snr/chans"
	"github.com/emer/snr/gaba"
)

// NeuronVarStart is the byte offset of fields in the Neuron structure
// where the float64 named variables start.
// Note: all non-float64 infrastructure variables must be at the end!
const NeuronVarStart = 0

// snr.Neuron holds the complete dynamic state of one two-compartment SNr neuron,
// together with its per-run parameters (HCN conductances, synaptic weights,
// applied currents) and the gate parameters it was configured with.
// All variables accessible via VarByName must be float64 and start at the top,
// in contiguous order matching NeuronVars.
type Neuron struct {

	// simulated time, in msec, advanced by exactly dt each step
	Time float64

	// somatic membrane potential (mV)
	Vs float64

	// dendritic membrane potential (mV)
	Vd float64

	////////////////////////////
	// Gating levels

	// fast Na+ activation
	MNaF float64

	// fast Na+ inactivation
	HNaF float64

	// fast Na+ slow inactivation
	SNaF float64

	// persistent Na+ activation
	MNaP float64

	// persistent Na+ inactivation
	HNaP float64

	// delayed rectifier K+ activation
	MK float64

	// delayed rectifier K+ inactivation
	HK float64

	// Ca++ activation
	MCa float64

	// Ca++ inactivation
	HCa float64

	// somatic HCN activation, driven by Vs
	MHCNSom float64

	// dendritic HCN activation, driven by Vd
	MHCNDen float64

	////////////////////////////
	// Plasticity

	// depression factor scaling GPe pulses
	D float64

	// facilitation factor scaling striatal pulses
	F float64

	// baseline that D recovers to
	D0 float64

	// target that each GPe pulse moves D toward
	Dm float64

	// baseline that F recovers to
	F0 float64

	// target that each striatal pulse moves F toward
	Fm float64

	////////////////////////////
	// Concentrations and conductances

	// intracellular calcium (mM)
	CaIn float64

	// somatic intracellular chloride (mM)
	ClSom float64

	// dendritic intracellular chloride (mM)
	ClDen float64

	// somatic GABA conductance (nS/pF)
	GGABASom float64

	// dendritic GABA conductance (nS/pF)
	GGABADen float64

	// somatic HCN maximal conductance (nS/pF), set per run
	GHCNSom float64

	// dendritic HCN maximal conductance (nS/pF), set per run
	GHCNDen float64

	////////////////////////////
	// Run parameters

	// spike detection threshold on the somatic voltage (mV)
	Vth float64

	// current applied to the soma (pA)
	Iapp float64

	// current applied to the dendrite (pA)
	Iden float64

	// leak reversal potential (mV), also the resting voltage and HCN gate center
	Eleak float64

	// stimulus pulse flags for the current step, set by the caller before stepping
	Stim [StimsN]bool

	// synaptic weights and decay time constants
	Syn gaba.SynParams

	// gate parameters, set once at configuration
	Gates GateSet
}

var NeuronVars = []string{"Time", "Vs", "Vd", "MNaF", "HNaF", "SNaF", "MNaP", "HNaP", "MK", "HK", "MCa", "HCa", "MHCNSom", "MHCNDen", "D", "F", "D0", "Dm", "F0", "Fm", "CaIn", "ClSom", "ClDen", "GGABASom", "GGABADen", "GHCNSom", "GHCNDen", "Vth", "Iapp", "Iden", "Eleak"}

var NeuronVarsMap map[string]int

func init() {
	NeuronVarsMap = make(map[string]int, len(NeuronVars))
	for i, v := range NeuronVars {
		NeuronVarsMap[v] = i
	}
}

// NewNeuron returns a new Neuron in the canonical resting state
func NewNeuron() *Neuron {
	nrn := &Neuron{}
	nrn.Defaults()
	return nrn
}

// Defaults sets the canonical initial state: all variables at rest,
// default synaptic weights, no HCN, no applied current.
func (nrn *Neuron) Defaults() {
	*nrn = Neuron{}
	nrn.Eleak = -60
	nrn.Vth = -30
	nrn.Gates.Defaults(nrn.Eleak)
	nrn.Syn.Defaults()

	nrn.MNaF = .1
	nrn.HNaF = .9
	nrn.SNaF = .9
	nrn.MNaP = .01
	nrn.HNaP = .04
	nrn.MK = .01
	nrn.HK = .9
	nrn.MCa = .001
	nrn.HCa = .001
	nrn.MHCNSom = .01
	nrn.MHCNDen = .01

	nrn.ClSom = 6
	nrn.ClDen = 6
	nrn.CaIn = 2.5e-4

	nrn.D0, nrn.F0 = 1, 1
	nrn.Dm, nrn.Fm = 1, 1
	nrn.D = nrn.D0
	nrn.F = nrn.F0

	nrn.Vs = nrn.Eleak
	nrn.Vd = nrn.Eleak
}

// Validate checks the gate and synaptic parameters, and the concentrations
// that appear as logarithm arguments
func (nrn *Neuron) Validate() error {
	if err := nrn.Gates.Validate(); err != nil {
		return err
	}
	if err := nrn.Syn.Validate(); err != nil {
		return err
	}
	switch {
	case !(nrn.CaIn > 0):
		return &chans.DegenerateParamError{Owner: "Neuron", Param: "CaIn", Value: nrn.CaIn, Reason: "concentration must be > 0"}
	case !(nrn.ClSom > 0):
		return &chans.DegenerateParamError{Owner: "Neuron", Param: "ClSom", Value: nrn.ClSom, Reason: "concentration must be > 0"}
	case !(nrn.ClDen > 0):
		return &chans.DegenerateParamError{Owner: "Neuron", Param: "ClDen", Value: nrn.ClDen, Reason: "concentration must be > 0"}
	}
	return nil
}

// Vm returns the membrane potential of given compartment
func (nrn *Neuron) Vm(cmp Compartments) float64 {
	if cmp == Den {
		return nrn.Vd
	}
	return nrn.Vs
}

// SetGHCN sets the HCN maximal conductance of given compartment
func (nrn *Neuron) SetGHCN(cmp Compartments, g float64) {
	if cmp == Den {
		nrn.GHCNDen = g
	} else {
		nrn.GHCNSom = g
	}
}

// ClearStims turns off all stimulus flags
func (nrn *Neuron) ClearStims() {
	for i := range nrn.Stim {
		nrn.Stim[i] = false
	}
}

func (nrn *Neuron) VarNames() []string {
	return NeuronVars
}

// NeuronVarIdxByName returns the index of the variable in the Neuron, or error
func NeuronVarIdxByName(varNm string) (int, error) {
	i, ok := NeuronVarsMap[varNm]
	if !ok {
		return -1, fmt.Errorf("Neuron VarByName: variable name: %v not valid", varNm)
	}
	return i, nil
}

// VarByIndex returns variable using index (0 = first variable in NeuronVars list)
func (nrn *Neuron) VarByIndex(idx int) float64 {
	fv := (*float64)(unsafe.Pointer(uintptr(unsafe.Pointer(nrn)) + uintptr(NeuronVarStart+8*idx)))
	return *fv
}

// VarByName returns variable by name, or error
func (nrn *Neuron) VarByName(varNm string) (float64, error) {
	i, err := NeuronVarIdxByName(varNm)
	if err != nil {
		return math.NaN(), err
	}
	return nrn.VarByIndex(i), nil
}
