// Copyright 2026 The Permfit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from FEM result tables and (.cmp) JSON files
package inp

import (
	"math"
	"strings"

	"github.com/tritiumtools/permfit/fit"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Table holds the columns of a derived-quantities file: comma-separated
// values with a header row, as dumped by the FEM simulations
type Table struct {
	Keys []string             // column names, in file order
	Cols map[string][]float64 // columns accessed by name
}

// ReadTable reads a derived-quantities file
func ReadTable(fn string) (o *Table, err error) {
	b, err := io.ReadFile(fn)
	if err != nil {
		return nil, err
	}
	o = &Table{Cols: make(map[string][]float64)}
	for i, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(o.Keys) == 0 { // header
			for _, f := range fields {
				o.Keys = append(o.Keys, strings.TrimSpace(f))
			}
			continue
		}
		if len(fields) != len(o.Keys) {
			return nil, chk.Err("file %q: line %d has %d values; %d are required", fn, i+1, len(fields), len(o.Keys))
		}
		for k, f := range fields {
			key := o.Keys[k]
			o.Cols[key] = append(o.Cols[key], io.Atof(strings.TrimSpace(f)))
		}
	}
	if len(o.Keys) == 0 {
		return nil, chk.Err("file %q has no header row", fn)
	}
	return
}

// Col returns one column by name
func (o *Table) Col(key string) ([]float64, error) {
	col, ok := o.Cols[key]
	if !ok {
		return nil, chk.Err("column %q is not available. keys=%v", key, o.Keys)
	}
	return col, nil
}

// FluxSeries assembles a flux series from the time and flux columns; the
// flux magnitudes are divided by the permeating area to match the units of
// the analytical model
func (o *Table) FluxSeries(timeKey, fluxKey string, area float64) (s fit.Series, err error) {
	if area <= 0 {
		return s, chk.Err("permeating area must be positive. area=%g is incorrect", area)
	}
	t, err := o.Col(timeKey)
	if err != nil {
		return
	}
	f, err := o.Col(fluxKey)
	if err != nil {
		return
	}
	s.T = t
	s.J = make([]float64, len(f))
	for i, v := range f {
		s.J[i] = math.Abs(v) / area
	}
	return
}

// DiskArea returns the area of the top/bottom permeating surface π・(d/2)²
func DiskArea(diameter float64) float64 {
	return math.Pi * diameter * diameter / 4.0
}

// WallArea returns the lateral area of the cylindrical wall π・d・ℓ
func WallArea(diameter, thickness float64) float64 {
	return math.Pi * diameter * thickness
}
