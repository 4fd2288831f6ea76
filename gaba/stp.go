// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gaba

import (
	"math"

	"github.com/emer/snr/chans"
)

// STPParams control short-term plasticity of the pulse amplitudes:
// the GPe input depresses (D) and the striatal input facilitates (F).
// Between pulses D and F relax exponentially toward their baselines,
// and each pulse moves them a fixed fraction toward their targets.
// Neither is clamped: a target beyond the baseline simply moves the value there.
type STPParams struct {
	TauD   float64 `def:"1000" min:"0" desc:"recovery time constant (ms) of depression D toward its baseline"`
	TauF   float64 `def:"1000" min:"0" desc:"recovery time constant (ms) of facilitation F toward its baseline"`
	AlphaD float64 `def:"0.565" desc:"fraction of the distance to the depression target Dm covered by each GPe pulse"`
	AlphaF float64 `def:"0.125" desc:"fraction of the distance to the facilitation target Fm covered by each striatal pulse"`
}

func (sp *STPParams) Defaults() {
	sp.TauD = 1000
	sp.TauF = 1000
	sp.AlphaD = 0.565
	sp.AlphaF = 0.125
}

// Relax relaxes d toward d0 and f toward f0 over dt msec
func (sp *STPParams) Relax(d, f *float64, d0, f0, dt float64) {
	*d += (d0 - *d) * (1 - math.Exp(-dt/sp.TauD))
	*f += (f0 - *f) * (1 - math.Exp(-dt/sp.TauF))
}

// Depress applies one GPe pulse to d, moving it toward target dm
func (sp *STPParams) Depress(d *float64, dm float64) {
	*d += sp.AlphaD * (dm - *d)
}

// Facilitate applies one striatal pulse to f, moving it toward target fm
func (sp *STPParams) Facilitate(f *float64, fm float64) {
	*f += sp.AlphaF * (fm - *f)
}

// Validate checks for negative or NaN recovery time constants
func (sp *STPParams) Validate() error {
	if sp.TauD < 0 || math.IsNaN(sp.TauD) {
		return &chans.DegenerateParamError{Owner: "STP", Param: "TauD", Value: sp.TauD, Reason: "time constant must be >= 0"}
	}
	if sp.TauF < 0 || math.IsNaN(sp.TauF) {
		return &chans.DegenerateParamError{Owner: "STP", Param: "TauF", Value: sp.TauF, Reason: "time constant must be >= 0"}
	}
	return nil
}
