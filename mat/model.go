// Copyright 2026 The Permfit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mat implements material property correlations for hydrogen transport
package mat

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines transport property correlations as functions of temperature
type Model interface {
	Init(prms dbf.Params) error        // Init initialises this structure
	GetPrms(example bool) dbf.Params   // gets (an example) of parameters
	Diffusivity(T float64) float64     // Diffusivity returns D(T)
	Solubility(T float64) float64      // Solubility returns S(T)
	Permeability(T float64) float64    // Permeability returns Φ(T) = D(T)・S(T)
}

// New material correlation model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("correlation %q is not available in 'mat' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
