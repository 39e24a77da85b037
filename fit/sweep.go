// Copyright 2026 The Permfit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// Policy defines how the sweep driver reacts to per-point failures
type Policy int

const (
	// FailFast aborts the sweep at the first failing grid point, surfacing
	// the typed error unmodified
	FailFast Policy = iota

	// SkipAndMark records NaN for failing grid points and keeps going
	SkipAndMark
)

// LoadFunc supplies the observed flux series of one grid point; i indexes
// thicknesses and j indexes diameters
type LoadFunc func(i, j int) (Series, error)

// Grid holds sweep results over thickness × diameter. All matrices are
// indexed [j][i] = [diameter][thickness], matching the contour layout
type Grid struct {
	Thicknesses []float64   // thickness values [m]
	Diameters   []float64   // diameter values [m]
	Phi         [][]float64 // fitted permeabilities
	D           [][]float64 // fitted diffusivities
	Ediff       [][]float64 // diffusivity errors [%]
	Esol        [][]float64 // solubility errors [%]
	Eperm       [][]float64 // permeability errors [%]
	Nfailed     int         // number of grid points marked as missing
}

// Sweep runs one independent fit per (thickness, diameter) grid point and
// aggregates the error values. No state is shared between points; results
// are explicit return values
type Sweep struct {
	Fit    *Fitter // fitter used at every grid point
	Policy Policy  // reaction to per-point failures
	Temp   float64 // temperature (absolute scale)
	Pup    float64 // upstream pressure
}

// Run performs the sweep. The load function is called once per grid point
// to supply that point's observed flux series
func (o *Sweep) Run(thicknesses, diameters []float64, load LoadFunc) (g *Grid, err error) {
	nt, nd := len(thicknesses), len(diameters)
	g = &Grid{
		Thicknesses: thicknesses,
		Diameters:   diameters,
		Phi:         la.MatAlloc(nd, nt),
		D:           la.MatAlloc(nd, nt),
		Ediff:       la.MatAlloc(nd, nt),
		Esol:        la.MatAlloc(nd, nt),
		Eperm:       la.MatAlloc(nd, nt),
	}
	for j := 0; j < nd; j++ {
		for i := 0; i < nt; i++ {
			obs, e := load(i, j)
			if e == nil {
				var res Result
				var rep Report
				res, rep, e = o.Fit.Run(obs, thicknesses[i], o.Temp, o.Pup)
				if e == nil {
					g.Phi[j][i] = res.Phi
					g.D[j][i] = res.D
					g.Ediff[j][i] = rep.Ediff
					g.Esol[j][i] = rep.Esol
					g.Eperm[j][i] = rep.Eperm
					continue
				}
			}
			if o.Policy == FailFast {
				return nil, e
			}
			g.Phi[j][i] = math.NaN()
			g.D[j][i] = math.NaN()
			g.Ediff[j][i] = math.NaN()
			g.Esol[j][i] = math.NaN()
			g.Eperm[j][i] = math.NaN()
			g.Nfailed++
		}
	}
	return
}
