// Copyright 2026 The Permfit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"github.com/tritiumtools/permfit/ana"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// refvals implements Reference with constant values; temperature is ignored
type refvals struct {
	d, s float64
}

func (o refvals) Diffusivity(T float64) float64 { return o.d }
func (o refvals) Solubility(T float64) float64  { return o.s }

// genSeries samples the analytical model to produce a synthetic observation
func genSeries(phi, d, thickness, pup, tmax float64, np int) Series {
	m := ana.Permeation{Pup: pup, L: thickness, Phi: phi, D: d}
	t := utl.LinSpace(0, tmax, np)
	j := make([]float64, np)
	for i, ti := range t {
		j[i] = m.Flux(ti)
	}
	return Series{T: t, J: j}
}
