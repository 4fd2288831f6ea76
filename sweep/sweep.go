// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package sweep runs families of SNr neuron simulations: the grid search of
firing rate over HCN conductance and applied current, selection of the
HCN conductance that reproduces a given fraction of the HCN-blocked rate,
sampling of (current, conductance) pairs for target firing rates, and batch
runs of stimulation trials over such pairs.

Independent simulations are spread over a pool of worker goroutines and,
when built with MPI, across processes: each process runs its share of
the cells and the results are merged with an all-reduce.
*/
package sweep

import (
	"strings"

	"github.com/emer/snr/snr"
	"github.com/goki/ki/kit"
)

// HCNSites are where HCN channels are placed in a simulation
type HCNSites int

//go:generate stringer -type=HCNSites

var KiT_HCNSites = kit.Enums.AddEnum(HCNSitesN, kit.NotBitFlag, nil)

func (ev HCNSites) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *HCNSites) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Som places HCN in the soma only
	Som HCNSites = iota

	// Den places HCN in the dendrite only
	Den

	// Zero is the HCN-blocked condition: no HCN anywhere
	Zero

	HCNSitesN
)

// Key returns the lower-case name used in file names and command lines
func (ev HCNSites) Key() string {
	return strings.ToLower(ev.String())
}

// ParseSite returns the site for given name, case-insensitive.
// Any name other than som or den is Zero.
func ParseSite(s string) HCNSites {
	switch strings.ToLower(s) {
	case "som":
		return Som
	case "den":
		return Den
	}
	return Zero
}

// SetGHCN sets the HCN conductance g on nrn at given site
func (ev HCNSites) SetGHCN(nrn *snr.Neuron, g float64) {
	switch ev {
	case Som:
		nrn.SetGHCN(snr.Som, g)
	case Den:
		nrn.SetGHCN(snr.Den, g)
	}
}

// FiringRate returns the firing rate in Hz over the test window of a run
// made of initMs msec of settling followed by testMs msec of test, from the
// spike times spk.  It is 0 with no spikes at all, and 1 when there is no
// spike in the test window or only the final spike of the run falls there.
func FiringRate(spk []float64, initMs, testMs float64) float64 {
	n := len(spk)
	if n == 0 {
		return 0
	}
	first := n - 1
	for i, t := range spk {
		if t >= initMs {
			first = i
			break
		}
	}
	if first >= n-1 {
		return 1
	}
	return 1e3 * float64(n-first) / testMs
}
