// Copyright 2026 The Permfit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// constants
const (
	Rgas = 8.314462618   // universal gas constant [J/(mol・K)]
	Navo = 6.02214076e23 // Avogadro constant [1/mol]
)

// Arrhenius implements Arrhenius-type correlations for diffusivity and
// solubility
//
//   D(T) = D0・exp(-Ed/(R・T))      [m²/s]
//   S(T) = S0・exp(-Es/(R・T))      [m⁻³・Pa⁻¹] (Henry's law, particle basis)
//
type Arrhenius struct {
	D0 float64 // diffusivity pre-exponential factor
	Ed float64 // diffusion activation energy [J/mol]
	S0 float64 // solubility pre-exponential factor
	Es float64 // dissolution enthalpy [J/mol]
}

// add model to factory
func init() {
	allocators["arrhenius"] = func() Model { return new(Arrhenius) }
}

// Init initialises this structure
func (o *Arrhenius) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "d0":
			o.D0 = p.V
		case "ed":
			o.Ed = p.V
		case "s0":
			o.S0 = p.V
		case "es":
			o.Es = p.V
		default:
			return chk.Err("arrhenius: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.D0 <= 0 || o.S0 <= 0 {
		return chk.Err("arrhenius: pre-exponential factors must be positive. D0=%g, S0=%g is incorrect", o.D0, o.S0)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Arrhenius) GetPrms(example bool) dbf.Params {
	if example {
		return []*dbf.P{
			&dbf.P{N: "d0", V: 9.3e-7},
			&dbf.P{N: "ed", V: 42e3},
			&dbf.P{N: "s0", V: 7.9e-2 * Navo},
			&dbf.P{N: "es", V: 35e3},
		}
	}
	return []*dbf.P{
		&dbf.P{N: "d0", V: o.D0},
		&dbf.P{N: "ed", V: o.Ed},
		&dbf.P{N: "s0", V: o.S0},
		&dbf.P{N: "es", V: o.Es},
	}
}

// Diffusivity returns D(T)
func (o Arrhenius) Diffusivity(T float64) float64 {
	return o.D0 * math.Exp(-o.Ed/(Rgas*T))
}

// Solubility returns S(T)
func (o Arrhenius) Solubility(T float64) float64 {
	return o.S0 * math.Exp(-o.Es/(Rgas*T))
}

// Permeability returns Φ(T) = D(T)・S(T)
func (o Arrhenius) Permeability(T float64) float64 {
	return o.Diffusivity(T) * o.Solubility(T)
}
