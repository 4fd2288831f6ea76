// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package datafile reads and writes the data files exchanged between the
simulation programs and the analysis scripts:

  - raw arrays of little-endian float64 values with no header
    (compatible with numpy tofile / fromfile);
  - spike raster CSV: for each trial the spike count followed by the spike
    times, all comma-terminated on a single line, closed by END;
  - trace CSV: comma-terminated values of one recorded variable, closed by END.
*/
package datafile

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

// WriteFloats writes vals to the file, truncating any existing content
func WriteFloats(fname string, vals []float64) error {
	return writeFloats(fname, vals, os.O_CREATE|os.O_WRONLY|os.O_TRUNC)
}

// AppendFloats appends vals to the end of the file, creating it if needed
func AppendFloats(fname string, vals []float64) error {
	return writeFloats(fname, vals, os.O_CREATE|os.O_WRONLY|os.O_APPEND)
}

func writeFloats(fname string, vals []float64, flag int) error {
	fp, err := os.OpenFile(fname, flag, 0666)
	if err != nil {
		return fmt.Errorf("datafile: open %s: %w", fname, err)
	}
	bw := bufio.NewWriter(fp)
	err = EncodeFloats(bw, vals)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("datafile: write %s: %w", fname, err)
	}
	return nil
}

// EncodeFloats writes vals as raw little-endian float64 values
func EncodeFloats(w io.Writer, vals []float64) error {
	var b [8]byte
	for _, v := range vals {
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
		if _, err := w.Write(b[:]); err != nil {
			return err
		}
	}
	return nil
}

// ReadFloats reads all the float64 values in the file.
// Trailing bytes that do not make up a whole value are an error.
func ReadFloats(fname string) ([]float64, error) {
	b, err := os.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("datafile: read %s: %w", fname, err)
	}
	vals, err := DecodeFloats(b)
	if err != nil {
		return nil, fmt.Errorf("datafile: read %s: %w", fname, err)
	}
	return vals, nil
}

// ErrPartialValue is returned when raw data does not hold a whole number of values
var ErrPartialValue = errors.New("data length is not a multiple of 8 bytes")

// DecodeFloats decodes raw little-endian float64 values
func DecodeFloats(b []byte) ([]float64, error) {
	if len(b)%8 != 0 {
		return nil, ErrPartialValue
	}
	vals := make([]float64, len(b)/8)
	for i := range vals {
		vals[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[8*i:]))
	}
	return vals, nil
}
