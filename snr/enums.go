// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snr

import "github.com/goki/ki/kit"

//////////////////////////////////////////////////////////////////////////////////////
//  Compartments

// Compartments are the two electrical compartments of the neuron
type Compartments int

//go:generate stringer -type=Compartments

var KiT_Compartments = kit.Enums.AddEnum(CompartmentsN, kit.NotBitFlag, nil)

func (ev Compartments) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Compartments) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Som is the soma, where spikes are generated and GPe / SNr inputs land
	Som Compartments = iota

	// Den is the dendrite, where striatal inputs land
	Den

	CompartmentsN
)

//////////////////////////////////////////////////////////////////////////////////////
//  Stims

// Stims are the exogenous GABAergic pulse sources
type Stims int

//go:generate stringer -type=Stims

var KiT_Stims = kit.Enums.AddEnum(StimsN, kit.NotBitFlag, nil)

func (ev Stims) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Stims) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// GPe is the globus pallidus externa input onto the soma, with depression
	GPe Stims = iota

	// Str is the striatal (direct pathway) input onto the dendrite, with facilitation
	Str

	// SNr is the local SNr collateral input onto the soma, without plasticity
	SNr

	StimsN
)

//////////////////////////////////////////////////////////////////////////////////////
//  StepOrders

// StepOrders select when the currents are evaluated within one update step
type StepOrders int

//go:generate stringer -type=StepOrders

var KiT_StepOrders = kit.Enums.AddEnum(StepOrdersN, kit.NotBitFlag, nil)

func (ev StepOrders) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *StepOrders) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// GatesFirst updates the gating levels first, then computes the calcium
	// and chloride currents from the updated gates, and recomputes all currents
	// from the updated concentrations and conductances before integrating
	// the voltages.
	GatesFirst StepOrders = iota

	// SnapshotCurrents computes every current once from the state at the
	// start of the step, and uses it for all the updates of that step.
	SnapshotCurrents

	StepOrdersN
)
