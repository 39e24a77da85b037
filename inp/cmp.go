// Copyright 2026 The Permfit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/tritiumtools/permfit/fit"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// RangeData defines a linear sweep range
type RangeData struct {
	Min float64 `json:"min"` // first value
	Max float64 `json:"max"` // last value
	N   int     `json:"n"`   // number of values
}

// Vals returns the equally spaced values of this range
func (o RangeData) Vals() []float64 {
	return utl.LinSpace(o.Min, o.Max, o.N)
}

// Cmp holds the definition of one comparison run, read from a (.cmp) JSON file
type Cmp struct {

	// global information
	Desc   string `json:"desc"`   // description of comparison run
	DirRes string `json:"dirres"` // root directory holding the FEM results
	DirOut string `json:"dirout"` // directory for output; e.g. /tmp/permfit

	// material correlations
	Material string   `json:"material"` // name of correlation model; e.g. "flibe"
	MatPrms  fun.Prms `json:"matprms"`  // correlation parameters; e.g. for "arrhenius"

	// result table layout
	TimeKey string `json:"timekey"` // name of the time column; e.g. "ts"
	FluxKey string `json:"fluxkey"` // name of the downstream flux column
	LatKey  string `json:"latkey"`  // name of the lateral flux column (optional)

	// experiment conditions
	Temp      float64   `json:"temp"`      // temperature [K]
	Pup       float64   `json:"pup"`       // upstream pressure [Pa]
	Thickness RangeData `json:"thickness"` // salt thickness range [m]
	Diameter  RangeData `json:"diameter"`  // crucible diameter range [m]

	// fitter settings
	NmaxIt int     `json:"nmaxit"` // number of max iterations
	Tol    float64 `json:"tol"`    // convergence tolerance
	ShowR  bool    `json:"showr"`  // show residuals during iterations
	Policy string  `json:"policy"` // per-point failure policy: "failfast" or "skip"
}

// ReadCmp reads a comparison definition from a .cmp JSON file
func ReadCmp(fn string) (o *Cmp, err error) {
	b, err := io.ReadFile(fn)
	if err != nil {
		return nil, err
	}
	o = new(Cmp)
	if err = json.Unmarshal(b, o); err != nil {
		return nil, chk.Err("cannot decode comparison file %q:\n%v", fn, err)
	}
	if err = o.SetDefaults(); err != nil {
		return nil, err
	}
	return
}

// SetDefaults fills in unset fields and validates the definition
func (o *Cmp) SetDefaults() error {
	if o.TimeKey == "" {
		o.TimeKey = "ts"
	}
	if o.FluxKey == "" {
		o.FluxKey = "solute_flux_surface_3"
	}
	if o.DirOut == "" {
		o.DirOut = "/tmp/permfit"
	}
	if o.NmaxIt < 1 {
		o.NmaxIt = 200
	}
	if o.Tol <= 0 {
		o.Tol = 1e-9
	}
	if o.Material == "" {
		return chk.Err("material correlation name must be given")
	}
	if o.Temp <= 0 || o.Pup <= 0 {
		return chk.Err("temperature and upstream pressure must be positive. temp=%g, pup=%g is incorrect", o.Temp, o.Pup)
	}
	if o.Thickness.N < 1 || o.Diameter.N < 1 {
		return chk.Err("thickness and diameter ranges must have at least one value. n=%d, n=%d is incorrect", o.Thickness.N, o.Diameter.N)
	}
	if o.Thickness.Min <= 0 || o.Diameter.Min <= 0 {
		return chk.Err("thickness and diameter must be positive. min=%g, min=%g is incorrect", o.Thickness.Min, o.Diameter.Min)
	}
	return nil
}

// Thicknesses returns the thickness sweep values
func (o Cmp) Thicknesses() []float64 {
	return o.Thickness.Vals()
}

// Diameters returns the diameter sweep values
func (o Cmp) Diameters() []float64 {
	return o.Diameter.Vals()
}

// ResDir returns the directory holding one grid point's result tables;
// e.g. <dirres>/5.00mm_thick_60.00mm_wide/2d
func (o Cmp) ResDir(thickness, diameter float64, sub string) string {
	point := io.Sf("%.2fmm_thick_%.2fmm_wide", thickness*1000.0, diameter*1000.0)
	return filepath.Join(o.DirRes, point, sub)
}

// SweepPolicy parses the per-point failure policy
func (o Cmp) SweepPolicy() (fit.Policy, error) {
	switch o.Policy {
	case "", "failfast":
		return fit.FailFast, nil
	case "skip":
		return fit.SkipAndMark, nil
	}
	return fit.FailFast, chk.Err("policy %q is incorrect; must be \"failfast\" or \"skip\"", o.Policy)
}
