// Copyright 2026 The Permfit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"
	"path/filepath"

	"github.com/tritiumtools/permfit/ana"
	"github.com/tritiumtools/permfit/fit"
	"github.com/tritiumtools/permfit/inp"
	"github.com/tritiumtools/permfit/mat"
	"github.com/tritiumtools/permfit/out"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, fnkey := io.ArgToFilename(0, "", ".cmp", true)
	verbose := io.ArgToBool(1, true)
	doplot := io.ArgToBool(2, true)
	dofluxplots := io.ArgToBool(3, false)

	// message
	if verbose {
		io.PfWhite("\nPermfit -- 1D/2D permeation comparison and property fitting\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"render error contour maps", "doplot", doplot,
			"render per-point flux overlays", "dofluxplots", dofluxplots,
		))
	}

	// comparison definition
	cmp, err := inp.ReadCmp(fnamepath)
	if err != nil {
		chk.Panic("cannot read comparison file:\n%v", err)
	}

	// material correlations
	ref, err := mat.New(cmp.Material)
	if err != nil {
		chk.Panic("cannot allocate material correlations:\n%v", err)
	}
	if err = ref.Init(cmp.MatPrms); err != nil {
		chk.Panic("cannot initialise material correlations:\n%v", err)
	}

	// sweep
	thicknesses := cmp.Thicknesses()
	diameters := cmp.Diameters()
	policy, err := cmp.SweepPolicy()
	if err != nil {
		chk.Panic("cannot parse sweep policy:\n%v", err)
	}
	fitter := fit.NewFitter(ref)
	fitter.NmaxIt = cmp.NmaxIt
	fitter.Tol = cmp.Tol
	fitter.ShowR = cmp.ShowR
	sweep := fit.Sweep{Fit: fitter, Policy: policy, Temp: cmp.Temp, Pup: cmp.Pup}
	load := func(i, j int) (fit.Series, error) {
		fn := filepath.Join(cmp.ResDir(thicknesses[i], diameters[j], "2d"), "derived_quantities.csv")
		tab, e := inp.ReadTable(fn)
		if e != nil {
			return fit.Series{}, e
		}
		return tab.FluxSeries(cmp.TimeKey, cmp.FluxKey, inp.DiskArea(diameters[j]))
	}
	grid, err := sweep.Run(thicknesses, diameters, load)
	if err != nil {
		chk.Panic("sweep failed:\n%v", err)
	}

	// results table
	if verbose {
		io.Pf("\n")
		io.Pforan("%10s%10s%14s%14s%12s%12s%12s\n", "ℓ [mm]", "d [mm]", "Φ", "D", "Ediff [%]", "Esol [%]", "Eperm [%]")
		for j := range diameters {
			for i := range thicknesses {
				io.Pf("%10.2f%10.2f%14.4e%14.4e%12.4f%12.4f%12.4f\n",
					thicknesses[i]*1000, diameters[j]*1000,
					grid.Phi[j][i], grid.D[j][i],
					grid.Ediff[j][i], grid.Esol[j][i], grid.Eperm[j][i])
			}
		}
		if grid.Nfailed > 0 {
			io.PfYel("%d grid point(s) marked as missing\n", grid.Nfailed)
		}
	}

	// error contour maps
	if doplot {
		cm := out.ContourMap{Title: "Permeability error by varying salt thickness and diameter", GuideRatio: 10}
		cm.Save(thicknesses, diameters, grid.Eperm, cmp.DirOut, fnkey+"_eperm")
		cm = out.ContourMap{Title: "Diffusivity error by varying salt thickness and diameter"}
		cm.Save(thicknesses, diameters, grid.Ediff, cmp.DirOut, fnkey+"_ediff")
		cm = out.ContourMap{Title: "Solubility error by varying salt thickness and diameter"}
		cm.Save(thicknesses, diameters, grid.Esol, cmp.DirOut, fnkey+"_esol")
	}

	// top-vs-lateral flux difference map
	if doplot && cmp.LatKey != "" {
		diff := la.MatAlloc(len(diameters), len(thicknesses))
		for j := range diameters {
			for i := range thicknesses {
				fn := filepath.Join(cmp.ResDir(thicknesses[i], diameters[j], "2d"), "derived_quantities.csv")
				tab, e := inp.ReadTable(fn)
				if e != nil {
					diff[j][i] = math.NaN()
					continue
				}
				top, e := tab.FluxSeries(cmp.TimeKey, cmp.FluxKey, inp.DiskArea(diameters[j]))
				if e != nil {
					diff[j][i] = math.NaN()
					continue
				}
				lat, e := tab.FluxSeries(cmp.TimeKey, cmp.LatKey, inp.WallArea(diameters[j], thicknesses[i]))
				if e != nil {
					diff[j][i] = math.NaN()
					continue
				}
				n := len(top.J)
				diff[j][i] = top.J[n-1] - lat.J[n-1]
			}
		}
		out.FluxDiffMap(thicknesses, diameters, diff, cmp.DirOut, fnkey+"_fluxdiff")
	}

	// per-point flux overlays: observed 1D, observed 2D and fitted curve
	if dofluxplots {
		for j := range diameters {
			for i := range thicknesses {
				if math.IsNaN(grid.Phi[j][i]) {
					continue
				}
				var fp out.FluxPlot
				fp.Title = io.Sf("1D vs. 2D at ℓ = %.2f mm, d = %.2f mm", thicknesses[i]*1000, diameters[j]*1000)
				for k, sub := range []string{"1d", "2d"} {
					fn := filepath.Join(cmp.ResDir(thicknesses[i], diameters[j], sub), "derived_quantities.csv")
					tab, e := inp.ReadTable(fn)
					if e != nil {
						continue
					}
					s, e := tab.FluxSeries(cmp.TimeKey, cmp.FluxKey, inp.DiskArea(diameters[j]))
					if e != nil {
						continue
					}
					fp.AddSeries(sub, s, nil)
					if k == 1 {
						mdl := ana.Permeation{Pup: cmp.Pup, L: thicknesses[i], Phi: grid.Phi[j][i], D: grid.D[j][i]}
						fp.AddModel("2D curve fit", &mdl, s.T, nil)
					}
				}
				fp.Save(cmp.DirOut, io.Sf("%s_flux_%d_%d", fnkey, i, j))
			}
		}
	}
}
