// Copyright 2026 The Permfit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
)

// TimeLagEstimate recovers (Φ, D) without curve fitting, from the asymptote
// of the cumulative release:
//
//   Q(t) → Jss・(t - τ)   with   Jss = Φ・Pup/L   and   τ = L²/(6・D)
//
// The observed flux is integrated by the trapezoidal rule and the last half
// of the cumulative release is fit with a straight line. The series must
// reach steady state for the estimate to be meaningful; this is an
// independent cross-check of the least-squares fit
func TimeLagEstimate(obs Series, thickness, pup float64) (res Result, err error) {

	// check input
	if thickness <= 0 || pup <= 0 {
		err = &InvalidInputError{io.Sf("thickness and pressure must be positive. L=%g, Pup=%g is incorrect", thickness, pup)}
		return
	}
	n := len(obs.T)
	if n < 4 {
		err = &InsufficientDataError{n, 4, io.Sf("%d data points are insufficient for a time-lag estimate; at least 4 are required", n)}
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

	// cumulative release by accumulating trapezoid increments
	Q := make([]float64, n)
	for i := 1; i < n; i++ {
		Q[i] = Q[i-1] + 0.5*(y[i-1]+y[i])*(obs.T[i]-obs.T[i-1])
	}

	// straight line through the tail of the transient
	h := n / 2
	a, b := num.LinFit(obs.T[h:], Q[h:])
	if b <= 0 || a >= 0 {
		err = &ConvergenceError{0, io.Sf("steady state not reached: slope=%g, intercept=%g", b, a)}
		return
	}
	τ := -a / b
	res.Phi = b * thickness / pup
	res.D = thickness * thickness / (6.0 * τ)
	return
}
