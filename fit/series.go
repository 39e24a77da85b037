// Copyright 2026 The Permfit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// Series holds an observed downstream flux transient. The sign of the flux
// carries direction only; fitting always works on magnitudes
type Series struct {
	T []float64 // times
	J []float64 // fluxes
}

// Check validates this series
func (o Series) Check() error {
	if len(o.T) != len(o.J) {
		return &InvalidInputError{io.Sf("lengths of time and flux arrays differ. len(T)=%d != len(J)=%d", len(o.T), len(o.J))}
	}
	if len(o.T) < 1 {
		return &InvalidInputError{"flux series is empty"}
	}
	for i := 1; i < len(o.T); i++ {
		if o.T[i] <= o.T[i-1] {
			return &InvalidInputError{io.Sf("times must be strictly increasing. T[%d]=%g ≤ T[%d]=%g is incorrect", i, o.T[i], i-1, o.T[i-1])}
		}
	}
	return nil
}

// AbsFlux returns the flux magnitudes and the largest magnitude
func (o Series) AbsFlux() (y []float64, ymax float64) {
	y = make([]float64, len(o.J))
	for i, j := range o.J {
		y[i] = math.Abs(j)
		if y[i] > ymax {
			ymax = y[i]
		}
	}
	return
}
