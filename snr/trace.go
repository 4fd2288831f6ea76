// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snr

import (
	"strconv"

	"github.com/c2h5oh/datasize"
	"github.com/emer/etable/v2/etable"
	"github.com/emer/etable/v2/etensor"
)

// LogPrec is precision for saving float values in traces
const LogPrec = 6

// TraceCols are the columns of a full Trace, recorded after every step
var TraceCols = []string{"Time", "Vs", "Vd", "I_HCN_som", "m_HCN_som", "g_HCN_som", "I_app", "I_TRPC3", "I_HCN_den", "m_HCN_den", "g_HCN_den", "I_GABA_som", "E_GABA_som", "g_GABA_som", "D", "I_GABA_den", "E_GABA_den", "g_GABA_den", "F"}

// Trace records the neuron state and key currents after every step of a run,
// as one row per step of an etable.Table
type Trace struct {

	// the trace table, one float64 column per TraceCols entry
	Table *etable.Table `view:"no-inline"`

	// column values, cached for recording
	cols [][]float64
	cmap map[string]int
}

// NewTrace returns a new trace with nrows rows allocated
func NewTrace(nrows int) *Trace {
	tr := &Trace{}
	tr.Config(nrows)
	return tr
}

// Config configures the table for nrows rows
func (tr *Trace) Config(nrows int) {
	dt := &etable.Table{}
	dt.SetMetaData("name", "SNrTrace")
	dt.SetMetaData("read-only", "true")
	dt.SetMetaData("precision", strconv.Itoa(LogPrec))

	sch := make(etable.Schema, len(TraceCols))
	for i, nm := range TraceCols {
		sch[i] = etable.Column{nm, etensor.FLOAT64, nil, nil}
	}
	dt.SetFromSchema(sch, nrows)
	tr.Table = dt
	tr.cols = make([][]float64, len(TraceCols))
	tr.cmap = make(map[string]int, len(TraceCols))
	for i, nm := range TraceCols {
		tr.cols[i] = dt.Cols[i].(*etensor.Float64).Values
		tr.cmap[nm] = i
	}
}

// Rows returns the number of rows in the trace
func (tr *Trace) Rows() int {
	return tr.Table.Rows
}

// Record records the state of nrn into given row, computing the currents
// from the state with params pr
func (tr *Trace) Record(row int, nrn *Neuron, pr *Params) {
	var cr Currents
	pr.CurrentsFmNeuron(nrn, &cr)
	vals := [...]float64{nrn.Time, nrn.Vm(Som), nrn.Vm(Den),
		cr.IHCNSom, nrn.MHCNSom, nrn.GHCNSom, nrn.Iapp,
		cr.ITRPC3, cr.IHCNDen, nrn.MHCNDen, nrn.GHCNDen,
		cr.IGABASom, cr.EGABASom, nrn.GGABASom, nrn.D,
		cr.IGABADen, cr.EGABADen, nrn.GGABADen, nrn.F}
	for ci, v := range vals {
		tr.cols[ci][row] = v
	}
}

// Floats returns the values of the named column, or nil if there is no
// such column.  The slice is owned by the table.
func (tr *Trace) Floats(name string) []float64 {
	ci, ok := tr.cmap[name]
	if !ok {
		return nil
	}
	return tr.cols[ci]
}

// MemSize returns the memory used by the trace values
func (tr *Trace) MemSize() datasize.ByteSize {
	return datasize.ByteSize(8 * len(TraceCols) * tr.Rows())
}
