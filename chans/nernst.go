// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chans

import "math"

// Nernst returns the reversal potential (mV) of an ion with valence z,
// outside concentration cout and inside concentration cin (same units),
// where vt is the thermal voltage RT/F in mV.
func Nernst(vt, cout, cin, z float64) float64 {
	return vt * math.Log(cout/cin) / z
}

// GHK2 returns the reversal potential (mV) of a channel permeable to two
// ions of the same valence z (e.g., Cl- and HCO3- through GABA-A receptors),
// with relative permeabilities pa, pb and outside / inside concentrations.
func GHK2(vt, z, pa, aout, ain, pb, bout, bin float64) float64 {
	return vt * math.Log((pa*aout+pb*bout)/(pa*ain+pb*bin)) / z
}

// Hill returns the Hill activation c^n / (c^n + k^n) for concentration c,
// half-activation k and coefficient n, computed as 1 / (1 + (k/c)^n).
func Hill(c, k, n float64) float64 {
	return 1 / (1 + math.Pow(k/c, n))
}
