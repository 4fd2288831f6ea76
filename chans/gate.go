// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chans

import (
	"fmt"
	"math"
)

// Gate holds the parameters of one voltage-dependent gating variable:
// a logistic steady-state activation with a floor, and a bell-shaped
// voltage-dependent time constant.  Gates are set once when a neuron is
// configured and are never modified by the update step.
type Gate struct {
	Vz   float64 `desc:"half-maximal activation voltage, in mV"`
	Kz   float64 `desc:"slope of the steady-state logistic, in mV -- negative for inactivation gates.  must not be 0"`
	Xmin float64 `desc:"inactivation floor: (1 - Xmin) is the maximal activation"`
	Vtau float64 `desc:"voltage at which the time constant is centered, in mV"`
	Tau0 float64 `min:"0" desc:"asymptotic time constant far from Vtau, in ms"`
	Tau1 float64 `min:"0" desc:"time constant approached at Vtau, in ms"`
	Sig0 float64 `desc:"slope factor of the first exponential of the time constant, in mV.  must not be 0"`
	Sig1 float64 `desc:"slope factor of the second exponential of the time constant, in mV.  must not be 0"`
}

// Set sets all the parameters, in the canonical order
func (gt *Gate) Set(vz, kz, xmin, vtau, tau0, tau1, sig0, sig1 float64) {
	gt.Vz, gt.Kz, gt.Xmin, gt.Vtau = vz, kz, xmin, vtau
	gt.Tau0, gt.Tau1, gt.Sig0, gt.Sig1 = tau0, tau1, sig0, sig1
}

// Zinf returns the steady-state activation at membrane potential v (mV)
func (gt *Gate) Zinf(v float64) float64 {
	return (1 - gt.Xmin) / (1 + math.Exp((gt.Vz-v)/gt.Kz))
}

// Tau returns the time constant, in ms, at membrane potential v (mV)
func (gt *Gate) Tau(v float64) float64 {
	return gt.Tau0 + (gt.Tau1-gt.Tau0)/(math.Exp((gt.Vtau-v)/gt.Sig0)+math.Exp((gt.Vtau-v)/gt.Sig1))
}

// ZFmV returns the activation level z advanced by dt msec at membrane
// potential v, relaxing exactly toward Zinf(v) with time constant Tau(v).
// The exponential form stays stable when dt is larger than the time constant,
// which a forward Euler step on the gate equation does not.
// A time constant that evaluates to zero or below yields Inf / NaN,
// which is not checked here: use Validate when configuring.
func (gt *Gate) ZFmV(z, v, dt float64) float64 {
	z0 := gt.Zinf(v)
	tau := gt.Tau(v)
	return z + (z0-z)*(1-math.Exp(-dt/tau))
}

// Update advances the activation level in place -- see ZFmV
func (gt *Gate) Update(z *float64, v, dt float64) {
	*z = gt.ZFmV(*z, v, dt)
}

// Validate returns a *DegenerateParamError if any parameter
// would be used as a zero divisor or gives a negative time constant.
// With opposite-sign slope factors the exponential sum stays above 1,
// so Tau(v) lies between Tau0 and Tau1.  With same-sign factors it spans
// (0, Inf), and Tau1 < Tau0 sends Tau(v) to -Inf.
func (gt *Gate) Validate() error {
	switch {
	case gt.Kz == 0:
		return &DegenerateParamError{Param: "Kz", Value: gt.Kz, Reason: "slope is a divisor"}
	case gt.Sig0 == 0:
		return &DegenerateParamError{Param: "Sig0", Value: gt.Sig0, Reason: "slope factor is a divisor"}
	case gt.Sig1 == 0:
		return &DegenerateParamError{Param: "Sig1", Value: gt.Sig1, Reason: "slope factor is a divisor"}
	case gt.Tau0 < 0 || math.IsNaN(gt.Tau0):
		return &DegenerateParamError{Param: "Tau0", Value: gt.Tau0, Reason: "time constant must be >= 0"}
	case gt.Tau1 < 0 || math.IsNaN(gt.Tau1):
		return &DegenerateParamError{Param: "Tau1", Value: gt.Tau1, Reason: "time constant must be >= 0"}
	case gt.Tau0 == 0 && gt.Tau1 == 0:
		return &DegenerateParamError{Param: "Tau1", Value: gt.Tau1, Reason: "time constant is 0 at every voltage"}
	case gt.Tau1 < gt.Tau0 && (gt.Sig0 > 0) == (gt.Sig1 > 0):
		return &DegenerateParamError{Param: "Tau1", Value: gt.Tau1, Reason: "time constant goes negative: Tau1 < Tau0 with same-sign slope factors"}
	}
	return nil
}

// DegenerateParamError reports a parameter value that makes the model
// arithmetic undefined (division by zero, non-positive time constant).
type DegenerateParamError struct {

	// Owner is the name of the structure holding the parameter, e.g., the gate name
	Owner string

	// Param is the parameter name
	Param string

	// Value is the offending value
	Value float64

	// Reason says why the value is degenerate
	Reason string
}

func (e *DegenerateParamError) Error() string {
	if e.Owner == "" {
		return fmt.Sprintf("degenerate parameter %s = %g: %s", e.Param, e.Value, e.Reason)
	}
	return fmt.Sprintf("degenerate parameter %s.%s = %g: %s", e.Owner, e.Param, e.Value, e.Reason)
}

// WithOwner returns err with the Owner field set, if err is a *DegenerateParamError
// without an owner.  Other errors are returned unchanged.
func WithOwner(err error, owner string) error {
	if de, ok := err.(*DegenerateParamError); ok && de.Owner == "" {
		de.Owner = owner
	}
	return err
}
