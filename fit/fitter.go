// Copyright 2026 The Permfit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fit recovers effective transport coefficients from observed
// permeation flux transients by nonlinear least squares
package fit

import (
	"github.com/tritiumtools/permfit/ana"

	"github.com/cpmech/gosl/io"
)

// nprms is the number of free fit parameters: ln(Φ) and ln(D)
const nprms = 2

// Reference defines the injected material-property lookup used to seed the
// fit and to compute the error report. It decouples the fitter from any
// particular correlations database
type Reference interface {
	Diffusivity(T float64) float64 // Diffusivity returns D(T)
	Solubility(T float64) float64  // Solubility returns S(T)
}

// Result holds the two transport coefficients recovered by the fit
type Result struct {
	Phi float64 // effective permeability
	D   float64 // effective diffusivity
}

// Sol returns the derived solubility Φ/D. The solubility is never fit
// directly: Φ and S are not independent
func (o Result) Sol() float64 {
	return o.Phi / o.D
}

// Report holds signed relative errors [%] of the fitted coefficients
// against the reference correlations. Positive values mean the fit
// underestimates the reference
type Report struct {
	Ediff float64 // diffusivity error [%]
	Esol  float64 // solubility error [%]
	Eperm float64 // permeability error [%]
}

// Fitter fits the analytical downstream-flux model to an observed transient
// with upstream pressure and barrier thickness held fixed. Only Φ and D are
// free; fitting 2 of 4 parameters avoids the Φ/S non-identifiability
type Fitter struct {
	Ref    Reference // reference correlations (seed + error report)
	NmaxIt int       // maximum number of iterations
	Tol    float64   // convergence tolerance on the log-parameter step
	ShowR  bool      // show residuals during iterations
}

// NewFitter returns a fitter with default settings
func NewFitter(ref Reference) *Fitter {
	return &Fitter{Ref: ref, NmaxIt: 200, Tol: 1e-9}
}

// Run fits the analytical model to the observed flux series and reports the
// errors against the reference correlations at the given temperature.
//   obs       -- observed downstream flux transient
//   thickness -- barrier thickness (fixed during fitting)
//   temp      -- temperature (absolute scale)
//   pup       -- upstream pressure (fixed during fitting)
func (o *Fitter) Run(obs Series, thickness, temp, pup float64) (res Result, rep Report, err error) {

	// check input
	if thickness <= 0 || temp <= 0 || pup <= 0 {
		err = &InvalidInputError{io.Sf("thickness, temperature and pressure must be positive. L=%g, T=%g, Pup=%g is incorrect", thickness, temp, pup)}
		return
	}
	if len(obs.T) < nprms {
		err = &InsufficientDataError{len(obs.T), nprms, io.Sf("%d data points are insufficient to fit %d parameters", len(obs.T), nprms)}
		return
	}
	if err = obs.Check(); err != nil {
		return
	}
	y, ymax := obs.AbsFlux()
	if ymax == 0 {
		err = &InvalidInputError{"flux series has no signal; all values are zero"}
		return
	}

	// seed near the physically expected regime
	Dref := o.Ref.Diffusivity(temp)
	Sref := o.Ref.Solubility(temp)
	model := &ana.Permeation{Pup: pup, L: thickness, Phi: Dref * Sref, D: Dref}
	if err = model.Init(nil); err != nil {
		err = &InvalidInputError{io.Sf("reference correlations give a non-physical seed: %v", err)}
		return
	}

	// least-squares fit
	res, err = o.lsqFit(model, obs.T, y)
	if err != nil {
		return
	}
	rep = o.Errors(res, temp)
	return
}

// Errors compares fitted coefficients to the reference correlations at the
// given temperature. All three errors follow (reference - fitted)/reference
func (o *Fitter) Errors(res Result, temp float64) (rep Report) {
	Dref := o.Ref.Diffusivity(temp)
	Sref := o.Ref.Solubility(temp)
	Pref := Dref * Sref
	rep.Ediff = (Dref - res.D) / Dref * 100.0
	rep.Esol = (Sref - res.Sol()) / Sref * 100.0
	rep.Eperm = (Pref - res.Phi) / Pref * 100.0
	return
}
