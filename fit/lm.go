// Copyright 2026 The Permfit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"math"

	"github.com/tritiumtools/permfit/ana"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// damping limits for the Levenberg-Marquardt iterations
const (
	lamIni = 1e-3  // initial damping factor
	lamMin = 1e-12 // minimum damping factor
	lamMax = 1e+12 // damping factor beyond which the step is considered stuck
)

// lsqFit minimises Σᵢ (J(tᵢ;Φ,D) - yᵢ)² over (ln Φ, ln D) with the
// Levenberg-Marquardt method, starting from the coefficients held by the
// model. The log parameterisation keeps both coefficients positive and
// conditions the 2×2 normal matrix; Pup and L stay fixed
func (o *Fitter) lsqFit(m *ana.Permeation, t, y []float64) (res Result, err error) {

	// residuals norm at current coefficients
	ssrFcn := func() (ssr float64) {
		for i, ti := range t {
			r := m.Flux(ti) - y[i]
			ssr += r * r
		}
		return
	}

	// normal matrix A = GᵀG and gradient g = Gᵀr in log-parameter space:
	// ∂J/∂lnΦ = J and ∂J/∂lnD = D・∂J/∂D
	A := la.MatAlloc(nprms, nprms)
	g := make([]float64, nprms)
	asmFcn := func() {
		A[0][0], A[0][1], A[1][1] = 0, 0, 0
		g[0], g[1] = 0, 0
		for i, ti := range t {
			Ji := m.Flux(ti)
			r := Ji - y[i]
			j0 := Ji
			j1 := m.D * m.DfluxDd(ti)
			A[0][0] += j0 * j0
			A[0][1] += j0 * j1
			A[1][1] += j1 * j1
			g[0] += j0 * r
			g[1] += j1 * r
		}
		A[1][0] = A[0][1]
	}

	// iterations
	lam, ssr := lamIni, ssrFcn()
	asmFcn()
	if o.ShowR {
		io.PfYel("%6s%15s%15s%18s%12s\n", "it", "Φ", "D", "ssr", "λ")
	}
	var it int
	for it = 0; it < o.NmaxIt; it++ {
		if o.ShowR {
			io.Pfyel("%6d%15.8e%15.8e%18.10e%12.4e\n", it, m.Phi, m.D, ssr, lam)
		}

		// step from damped normal equations
		a00 := A[0][0] * (1.0 + lam)
		a11 := A[1][1] * (1.0 + lam)
		a01 := A[0][1]
		det := a00*a11 - a01*a01
		if det <= 0 || math.IsNaN(det) {
			return res, &ConvergenceError{it, io.Sf("normal matrix became singular (det=%g) after %d iterations", det, it)}
		}
		δ0 := (-g[0]*a11 + g[1]*a01) / det
		δ1 := (-g[1]*a00 + g[0]*a01) / det

		// trial coefficients
		φold, dold := m.Phi, m.D
		m.Phi = φold * math.Exp(δ0)
		m.D = dold * math.Exp(δ1)
		ssrNew := ssrFcn()
		if math.IsNaN(ssrNew) {
			return res, &ConvergenceError{it, io.Sf("NaN found: Φ=%g D=%g ssr=%g", m.Phi, m.D, ssrNew)}
		}

		// accept or reject
		if ssrNew <= ssr {
			ssr = ssrNew
			asmFcn()
			lam /= 10.0
			if lam < lamMin {
				lam = lamMin
			}
			if math.Max(math.Abs(δ0), math.Abs(δ1)) < o.Tol {
				res.Phi, res.D = m.Phi, m.D
				if o.ShowR {
					io.Pfgrey("  converged with %d iterations\n", it+1)
				}
				return
			}
		} else {
			m.Phi, m.D = φold, dold
			lam *= 10.0
			if lam > lamMax {
				return res, &ConvergenceError{it, io.Sf("cannot reduce residuals any further (ssr=%g) after %d iterations", ssr, it)}
			}
		}
	}
	return res, &ConvergenceError{it, io.Sf("fit failed to converge after %d iterations (ssr=%g)", it, ssr)}
}
