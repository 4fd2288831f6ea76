// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datafile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
)

// EndMarker closes every CSV record written here
const EndMarker = "END"

// EncodeRaster writes the spike rasters of all trials: for each trial the
// spike count then the spike times in %f format, each followed by a comma,
// then the END marker and a newline
func EncodeRaster(w io.Writer, trials [][]float64) error {
	bw := bufio.NewWriter(w)
	for _, spk := range trials {
		fmt.Fprintf(bw, "%d,", len(spk))
		for _, t := range spk {
			fmt.Fprintf(bw, "%f,", t)
		}
	}
	bw.WriteString(EndMarker + "\n")
	return bw.Flush()
}

// WriteRaster writes the spike rasters of all trials to the file
func WriteRaster(fname string, trials [][]float64) error {
	return writeFile(fname, func(w io.Writer) error { return EncodeRaster(w, trials) })
}

// EncodeTrace writes vals in %f format, each followed by a comma,
// then the END marker and a newline
func EncodeTrace(w io.Writer, vals []float64) error {
	bw := bufio.NewWriter(w)
	for _, v := range vals {
		fmt.Fprintf(bw, "%f,", v)
	}
	bw.WriteString(EndMarker + "\n")
	return bw.Flush()
}

// WriteTrace writes one recorded variable to the file
func WriteTrace(fname string, vals []float64) error {
	return writeFile(fname, func(w io.Writer) error { return EncodeTrace(w, vals) })
}

func writeFile(fname string, enc func(w io.Writer) error) error {
	fp, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("datafile: create %s: %w", fname, err)
	}
	err = enc(fp)
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("datafile: write %s: %w", fname, err)
	}
	return nil
}

// csvFields returns the comma-separated fields of the first line of b up to
// the END marker.  A missing END marker is accepted at the end of the data.
func csvFields(b []byte) []string {
	if i := bytes.IndexByte(b, '\n'); i >= 0 {
		b = b[:i]
	}
	b = bytes.TrimRight(b, "\r")
	var flds []string
	for _, f := range bytes.Split(b, []byte{','}) {
		fs := string(bytes.TrimSpace(f))
		if fs == EndMarker {
			return flds
		}
		if fs == "" {
			continue
		}
		flds = append(flds, fs)
	}
	return flds
}

// DecodeRaster parses raster data as written by EncodeRaster
func DecodeRaster(b []byte) ([][]float64, error) {
	flds := csvFields(b)
	var trials [][]float64
	for i := 0; i < len(flds); {
		n, err := strconv.Atoi(flds[i])
		if err != nil {
			return nil, fmt.Errorf("field %d: spike count: %w", i, err)
		}
		if n < 0 || i+1+n > len(flds) {
			return nil, fmt.Errorf("field %d: spike count %d exceeds the %d remaining values", i, n, len(flds)-i-1)
		}
		spk := make([]float64, n)
		for j := range spk {
			spk[j], err = strconv.ParseFloat(flds[i+1+j], 64)
			if err != nil {
				return nil, fmt.Errorf("field %d: %w", i+1+j, err)
			}
		}
		trials = append(trials, spk)
		i += 1 + n
	}
	return trials, nil
}

// ReadRaster reads the spike rasters of all trials from the file
func ReadRaster(fname string) ([][]float64, error) {
	b, err := os.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("datafile: read %s: %w", fname, err)
	}
	trials, err := DecodeRaster(b)
	if err != nil {
		return nil, fmt.Errorf("datafile: %s: %w", fname, err)
	}
	return trials, nil
}

// DecodeTrace parses trace data as written by EncodeTrace
func DecodeTrace(b []byte) ([]float64, error) {
	flds := csvFields(b)
	var err error
	vals := make([]float64, len(flds))
	for i, f := range flds {
		vals[i], err = strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i, err)
		}
	}
	return vals, nil
}
