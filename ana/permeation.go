// Copyright 2026 The Permfit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions for permeation through a plane barrier
package ana

import (
	"math"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// constants controlling the truncation of the Fourier series
var (
	nmaxTerms = 400   // maximum number of series terms
	termTol   = 1e-12 // absolute truncation tolerance for series terms
)

// Permeation computes the downstream flux through a plane barrier of
// thickness L subjected to a constant upstream pressure Pup, with the
// downstream side held at zero pressure. Dissolution follows Henry's law;
// thus the permeability is Φ = D・S and the steady flux is Φ・Pup/L
//
//              Pup (upstream)
//          ~~~~~~~~~~~~~~~~~~~~~
//      L   |      Φ = D・S     |      J(t) → Φ・Pup/L
//          ~~~~~~~~~~~~~~~~~~~~~
//               0 (downstream)
//
//   J(t) = (Φ・Pup/L)・[ 1 + 2・Σ (-1)ⁿ exp(-n²π²・D・t/L²) ]
//
type Permeation struct {
	Pup float64 // upstream partial pressure
	L   float64 // barrier thickness
	Phi float64 // permeability Φ = D・S
	D   float64 // diffusivity
}

// Init initialises this structure
func (o *Permeation) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "pup":
			o.Pup = p.V
		case "l":
			o.L = p.V
		case "phi":
			o.Phi = p.V
		case "d":
			o.D = p.V
		default:
			return chk.Err("permeation: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Pup <= 0 || o.L <= 0 || o.Phi <= 0 || o.D <= 0 {
		return chk.Err("permeation: parameters must be positive. Pup=%g, L=%g, Phi=%g, D=%g is incorrect", o.Pup, o.L, o.Phi, o.D)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Permeation) GetPrms(example bool) dbf.Params {
	if example {
		return []*dbf.P{
			&dbf.P{N: "pup", V: 1000},
			&dbf.P{N: "l", V: 0.005},
			&dbf.P{N: "phi", V: 1e-10},
			&dbf.P{N: "d", V: 5e-9},
		}
	}
	return []*dbf.P{
		&dbf.P{N: "pup", V: o.Pup},
		&dbf.P{N: "l", V: o.L},
		&dbf.P{N: "phi", V: o.Phi},
		&dbf.P{N: "d", V: o.D},
	}
}

// SteadyFlux returns the steady-state downstream flux Φ・Pup/L
func (o Permeation) SteadyFlux() float64 {
	return o.Phi * o.Pup / o.L
}

// TimeLag returns the permeation time lag L²/(6・D); i.e. the intercept of
// the cumulative-release asymptote with the time axis
func (o Permeation) TimeLag() float64 {
	return o.L * o.L / (6.0 * o.D)
}

// earlyTime reports whether the Fourier series cannot be resolved within
// nmaxTerms. Below this β the exact flux is zero to machine precision, so
// the truncated partial sum must not be used
func earlyTime(β float64) bool {
	return β*float64(nmaxTerms*nmaxTerms) < -math.Log(termTol)
}

// Flux computes the instantaneous downstream flux at time t
func (o Permeation) Flux(t float64) float64 {
	if t <= 0 {
		return 0
	}
	β := math.Pi * math.Pi * o.D * t / (o.L * o.L)
	if earlyTime(β) {
		return 0
	}
	sum, sign := 0.0, -1.0
	for n := 1; n <= nmaxTerms; n++ {
		term := sign * math.Exp(-β*float64(n*n))
		sum += term
		if math.Abs(term) < termTol {
			break
		}
		sign = -sign
	}
	J := o.SteadyFlux() * (1.0 + 2.0*sum)
	if J < 0 { // truncated partial sums may dip below zero at small times
		return 0
	}
	return J
}

// CumFlux computes the cumulative release Q(t) = ∫₀ᵗ J dt. The asymptote of
// Q is SteadyFlux・(t - TimeLag)
func (o Permeation) CumFlux(t float64) float64 {
	if t <= 0 {
		return 0
	}
	β := math.Pi * math.Pi * o.D * t / (o.L * o.L)
	if earlyTime(β) {
		return 0
	}
	sum, sign := 0.0, -1.0
	for n := 1; n <= nmaxTerms; n++ {
		nn := float64(n * n)
		term := sign * math.Exp(-β*nn) / nn
		sum += term
		if math.Abs(term) < termTol {
			break
		}
		sign = -sign
	}
	c := 2.0 * o.L * o.L / (math.Pi * math.Pi * o.D)
	Q := o.SteadyFlux() * (t - o.TimeLag() - c*sum)
	if Q < 0 {
		return 0
	}
	return Q
}

// DfluxDphi computes ∂J/∂Φ at time t. The flux is linear in Φ
func (o Permeation) DfluxDphi(t float64) float64 {
	return o.Flux(t) / o.Phi
}

// DfluxDd computes ∂J/∂D at time t
func (o Permeation) DfluxDd(t float64) float64 {
	if t <= 0 {
		return 0
	}
	β := math.Pi * math.Pi * o.D * t / (o.L * o.L)
	if earlyTime(β) {
		return 0
	}
	sum, sign := 0.0, -1.0
	for n := 1; n <= nmaxTerms; n++ {
		nn := float64(n * n)
		term := sign * nn * math.Exp(-β*nn)
		sum += term
		if math.Abs(term) < termTol && nn*β > 1 {
			break
		}
		sign = -sign
	}
	c := 2.0 * math.Pi * math.Pi * t / (o.L * o.L)
	return -o.SteadyFlux() * c * sum
}

// CheckFlux checks the flux at time t against a given value
func (o Permeation) CheckFlux(tst *testing.T, t, J, tol float64) {
	chk.Scalar(tst, io.Sf("J(%g)", t), tol, J, o.Flux(t))
}
