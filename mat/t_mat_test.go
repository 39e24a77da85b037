// Copyright 2026 The Permfit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

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

func Test_mat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat01. flibe correlations")

	mdl, err := New("flibe")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	if err = mdl.Init(nil); err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}

	T := 800.0
	Dref := 9.3e-7 * math.Exp(-42e3/(Rgas*T))
	Sref := 7.9e-2 * Navo * math.Exp(-35e3/(Rgas*T))
	chk.Scalar(tst, "D(800)", 1e-17*Dref, mdl.Diffusivity(T), Dref)
	chk.Scalar(tst, "S(800)", 1e-17*Sref, mdl.Solubility(T), Sref)
	chk.Scalar(tst, "Φ=D・S", 1e-17*Dref*Sref, mdl.Permeability(T), mdl.Diffusivity(T)*mdl.Solubility(T))

	// diffusivity and solubility decrease with decreasing temperature
	if mdl.Diffusivity(700) >= mdl.Diffusivity(900) {
		tst.Errorf("diffusivity must increase with temperature\n")
	}
}

func Test_mat02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat02. generic arrhenius model")

	mdl, err := New("arrhenius")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	prms := []*dbf.P{
		&dbf.P{N: "d0", V: 1e-7},
		&dbf.P{N: "ed", V: 40e3},
		&dbf.P{N: "s0", V: 1e22},
		&dbf.P{N: "es", V: 30e3},
	}
	if err = mdl.Init(prms); err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}
	a := mdl.(*Arrhenius)
	chk.Scalar(tst, "d0", 1e-15, a.D0, 1e-7)
	chk.Scalar(tst, "ed", 1e-15, a.Ed, 40e3)
	chk.Scalar(tst, "s0", 1e7, a.S0, 1e22)
	chk.Scalar(tst, "es", 1e-15, a.Es, 30e3)

	// failure cases
	if _, err = New("kryptonite"); err == nil {
		tst.Errorf("New should have failed with unknown correlation\n")
		return
	}
	if err = mdl.Init([]*dbf.P{&dbf.P{N: "wrong", V: 1}}); err == nil {
		tst.Errorf("Init should have failed with unknown parameter\n")
		return
	}
	var empty Arrhenius
	if err = empty.Init(nil); err == nil {
		tst.Errorf("Init should have failed with missing pre-exponential factors\n")
	}
}
