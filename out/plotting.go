// Copyright 2026 The Permfit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/tritiumtools/permfit/ana"
	"github.com/tritiumtools/permfit/fit"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/plt"
)

// curve holds one flux-versus-time line of an overlay
type curve struct {
	t, j []float64
	args *plt.A
}

// FluxPlot gathers observed and fitted permeation flux curves of one grid
// point into a single overlay
type FluxPlot struct {
	Title  string // title of figure
	curves []*curve
}

// AddSeries adds an observed flux series
func (o *FluxPlot) AddSeries(label string, s fit.Series, args *plt.A) {
	if args == nil {
		args = &plt.A{C: Color(len(o.curves)), M: Marker(len(o.curves))}
	}
	if args.L == "" {
		args.L = label
	}
	y, _ := s.AbsFlux()
	o.curves = append(o.curves, &curve{t: s.T, j: y, args: args})
}

// AddModel samples the analytical model at the given times and adds the
// resulting curve
func (o *FluxPlot) AddModel(label string, m *ana.Permeation, t []float64, args *plt.A) {
	if args == nil {
		args = &plt.A{C: Color(len(o.curves)), Ls: "--"}
	}
	if args.L == "" {
		args.L = label
	}
	j := make([]float64, len(t))
	for i, ti := range t {
		j[i] = m.Flux(ti)
	}
	o.curves = append(o.curves, &curve{t: t, j: j, args: args})
}

// Save draws the overlay and saves the figure
func (o *FluxPlot) Save(dirout, fnkey string) {
	if len(o.curves) == 0 {
		chk.Panic("flux plot %q has no curves", fnkey)
	}
	plt.Reset(false, nil)
	for _, c := range o.curves {
		plt.Plot(c.t, c.j, c.args)
	}
	if o.Title != "" {
		plt.Title(o.Title, nil)
	}
	plt.Gll("$t$ [s]", "$J$ [m$^{-2}$ s$^{-1}$]", nil)
	plt.SaveD(dirout, fnkey+".png")
}

// ContourMap renders one error quantity over the (thickness, diameter)
// sweep grid as a filled contour with line levels on top. Axes are in mm
type ContourMap struct {
	Title      string  // title of figure
	GuideRatio float64 // draw a d/ℓ guide line if positive; e.g. 10
}

// Save draws the map for matrix Z (indexed [diameter][thickness]) and saves
// the figure
func (o ContourMap) Save(thicknesses, diameters []float64, Z [][]float64, dirout, fnkey string) {
	nt, nd := len(thicknesses), len(diameters)
	if nd != len(Z) || nt != len(Z[0]) {
		chk.Panic("matrix Z is %d×%d; %d×%d is required", len(Z), len(Z[0]), nd, nt)
	}

	// grid coordinates in mm
	X := la.MatAlloc(nd, nt)
	Y := la.MatAlloc(nd, nt)
	for j := 0; j < nd; j++ {
		for i := 0; i < nt; i++ {
			X[j][i] = thicknesses[i] * 1000.0
			Y[j][i] = diameters[j] * 1000.0
		}
	}

	plt.Reset(false, nil)
	plt.ContourF(X, Y, Z, nil)
	plt.ContourL(X, Y, Z, &plt.A{Colors: []string{"white"}})

	// aspect-ratio guide line d = GuideRatio・ℓ
	if o.GuideRatio > 0 {
		xa, xb := thicknesses[0]*1000.0, thicknesses[nt-1]*1000.0
		ya, yb := o.GuideRatio*xa, o.GuideRatio*xb
		ymax := diameters[nd-1] * 1000.0
		if yb > ymax {
			yb = ymax
			xb = yb / o.GuideRatio
		}
		plt.Plot([]float64{xa, xb}, []float64{ya, yb}, &plt.A{C: "yellow", Ls: "--"})
		plt.Text(0.5*(xa+xb), 0.5*(ya+yb), io.Sf("$d/\\ell=%g$", o.GuideRatio), &plt.A{C: "yellow"})
	}

	if o.Title != "" {
		plt.Title(o.Title, nil)
	}
	plt.Gll("Thickness [mm]", "Diameter [mm]", nil)
	plt.SaveD(dirout, fnkey+".png")
}

// FluxDiffMap renders the difference between top and lateral steady fluxes
// over the sweep grid
func FluxDiffMap(thicknesses, diameters []float64, Z [][]float64, dirout, fnkey string) {
	m := ContourMap{Title: "Difference in top and lateral flux"}
	m.Save(thicknesses, diameters, Z, dirout, fnkey)
}
