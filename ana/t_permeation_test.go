// Copyright 2026 The Permfit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_perm01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("perm01. transient flux limits")

	var mdl Permeation
	err := mdl.Init([]*dbf.P{
		&dbf.P{N: "pup", V: 1000},
		&dbf.P{N: "l", V: 0.005},
		&dbf.P{N: "phi", V: 1e-10},
		&dbf.P{N: "d", V: 5e-9},
	})
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}

	// steady flux and time lag
	chk.Scalar(tst, "Jss", 1e-17, mdl.SteadyFlux(), 1e-10*1000/0.005)
	chk.Scalar(tst, "tlag", 1e-12, mdl.TimeLag(), 0.005*0.005/(6.0*5e-9))

	// early and late time limits
	chk.Scalar(tst, "J(0)", 1e-17, mdl.Flux(0), 0)
	chk.Scalar(tst, "J(-1)", 1e-17, mdl.Flux(-1), 0)
	chk.Scalar(tst, "J(t→∞)", 1e-8*mdl.SteadyFlux(), mdl.Flux(1e6), mdl.SteadyFlux())

	// flux is monotone along the transient
	tt := 0.0
	for i := 0; i < 50; i++ {
		tnext := tt + 200.0
		if mdl.Flux(tnext) < mdl.Flux(tt) {
			tst.Errorf("flux is not monotone between t=%g and t=%g\n", tt, tnext)
			return
		}
		tt = tnext
	}

	// cumulative release asymptote: Q(t) → Jss・(t - tlag)
	tbig := 50000.0
	chk.Scalar(tst, "Q asymptote", 1e-8*mdl.CumFlux(tbig), mdl.CumFlux(tbig), mdl.SteadyFlux()*(tbig-mdl.TimeLag()))
	chk.Scalar(tst, "Q(0)", 1e-17, mdl.CumFlux(0), 0)

	// invalid parameters
	err = mdl.Init([]*dbf.P{&dbf.P{N: "wrong", V: 1}})
	if err == nil {
		tst.Errorf("Init should have failed with unknown parameter\n")
		return
	}
	bad := Permeation{Pup: 1000, L: -0.005, Phi: 1e-10, D: 5e-9}
	err = bad.Init(nil)
	if err == nil {
		tst.Errorf("Init should have failed with negative thickness\n")
	}
}

func Test_perm02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("perm02. flux derivatives")

	// dimensionless barrier: times are in units of L²/D
	mdl := Permeation{Pup: 1, L: 1, Phi: 1, D: 1}
	if err := mdl.Init(nil); err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}

	for _, t := range []float64{0.02, 0.05, 0.1, 0.3, 1.0} {

		// ∂J/∂Φ via scaled variable s: J(Φ₀・s) at s=1
		dana := mdl.Phi * mdl.DfluxDphi(t)
		chk.DerivScaSca(tst, io.Sf("Φ・∂J/∂Φ (t=%g)", t), 1e-6, dana, 1.0, 1e-3, chk.Verbose, func(s float64) (float64, error) {
			m := mdl
			m.Phi = mdl.Phi * s
			return m.Flux(t), nil
		})

		// ∂J/∂D via scaled variable s: J(D₀・s) at s=1
		dana = mdl.D * mdl.DfluxDd(t)
		chk.DerivScaSca(tst, io.Sf("D・∂J/∂D (t=%g)", t), 1e-6, dana, 1.0, 1e-3, chk.Verbose, func(s float64) (float64, error) {
			m := mdl
			m.D = mdl.D * s
			return m.Flux(t), nil
		})
	}
}

func Test_perm03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("perm03. cumulative release vs integrated flux")

	mdl := Permeation{Pup: 1000, L: 0.005, Phi: 1e-10, D: 5e-9}
	if err := mdl.Init(nil); err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}

	// trapezoidal integration of J must match CumFlux
	dt, Q := 1.0, 0.0
	for i := 0; i < 5000; i++ {
		ta, tb := float64(i)*dt, float64(i+1)*dt
		Q += 0.5 * (mdl.Flux(ta) + mdl.Flux(tb)) * dt
	}
	tol := 1e-4 * mdl.CumFlux(5000)
	if math.Abs(Q-mdl.CumFlux(5000)) > tol {
		tst.Errorf("integrated flux does not match CumFlux: %g != %g\n", Q, mdl.CumFlux(5000))
	}
}

func Test_perm04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("perm04. vanishing flux before breakthrough")

	// dimensionless barrier with slow diffusion: these times sit far below
	// the time lag, where the Fourier series cannot be resolved term by term
	mdl := Permeation{Pup: 1, L: 1, Phi: 1, D: 1e-7}
	if err := mdl.Init(nil); err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}
	chk.Scalar(tst, "J(1)", 1e-17, mdl.Flux(1), 0)
	chk.Scalar(tst, "Q(1)", 1e-17, mdl.CumFlux(1), 0)
	chk.Scalar(tst, "dJdD(1)", 1e-17, mdl.DfluxDd(1), 0)

	// the flux must never jump to steady state along the early transient,
	// on either side of the series cutoff
	for _, t := range []float64{1, 10, 100, 1000, 10000} {
		if mdl.Flux(t) > 1e-6*mdl.SteadyFlux() {
			tst.Errorf("early flux J(%g)=%g is spurious; steady flux is %g\n", t, mdl.Flux(t), mdl.SteadyFlux())
			return
		}
	}
}
