// Copyright 2026 The Permfit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

func Test_sweep01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sweep01. policies and grid aggregation")

	pup, temp := 1000.0, 800.0
	ref := refvals{d: 5e-9, s: 0.02}
	thicknesses := utl.LinSpace(0.002, 0.006, 3)
	diameters := utl.LinSpace(0.02, 0.04, 2)

	// each grid point observes the reference model at its own thickness;
	// point (1,0) yields a degenerate series
	load := func(i, j int) (Series, error) {
		if i == 1 && j == 0 {
			return Series{T: utl.LinSpace(0, 1000, 11), J: make([]float64, 11)}, nil
		}
		return genSeries(ref.d*ref.s, ref.d, thicknesses[i], pup, 30000, 151), nil
	}

	// skip-and-mark keeps going and marks the bad point with NaN
	sweep := Sweep{Fit: NewFitter(ref), Policy: SkipAndMark, Temp: temp, Pup: pup}
	g, err := sweep.Run(thicknesses, diameters, load)
	if err != nil {
		tst.Errorf("sweep failed: %v\n", err)
		return
	}
	chk.IntAssert(g.Nfailed, 1)
	for j := range diameters {
		for i := range thicknesses {
			if i == 1 && j == 0 {
				if !math.IsNaN(g.Eperm[j][i]) {
					tst.Errorf("failed grid point must be marked with NaN\n")
					return
				}
				continue
			}
			chk.Scalar(tst, "Ediff", 1e-4, g.Ediff[j][i], 0)
			chk.Scalar(tst, "Esol", 1e-4, g.Esol[j][i], 0)
			chk.Scalar(tst, "Eperm", 1e-4, g.Eperm[j][i], 0)
		}
	}

	// fail-fast surfaces the typed error unmodified
	sweep.Policy = FailFast
	_, err = sweep.Run(thicknesses, diameters, load)
	if _, ok := err.(*InvalidInputError); !ok {
		tst.Errorf("FailFast must surface the typed error unmodified; got %v\n", err)
	}
}
