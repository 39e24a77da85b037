// Copyright 2026 The Permfit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

// Flibe implements Calderoni's correlations for tritium transport in molten
// 2LiF-BeF₂ (flibe). Solubility is converted from mol・m⁻³・Pa⁻¹ to the
// particle basis
type Flibe struct {
	Arrhenius
}

// add model to factory
func init() {
	allocators["flibe"] = func() Model {
		o := new(Flibe)
		o.Arrhenius = Arrhenius{
			D0: 9.3e-7,        // [m²/s]
			Ed: 42e3,          // [J/mol]
			S0: 7.9e-2 * Navo, // [m⁻³・Pa⁻¹]
			Es: 35e3,          // [J/mol]
		}
		return o
	}
}
