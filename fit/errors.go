// Copyright 2026 The Permfit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

// InvalidInputError indicates non-physical geometry, pressure or temperature,
// or a degenerate observed flux series
type InvalidInputError struct {
	Msg string
}

// Error returns the error message
func (e *InvalidInputError) Error() string { return e.Msg }

// InsufficientDataError indicates an observed flux series with fewer points
// than free fit parameters
type InsufficientDataError struct {
	Npoints int // number of points given
	Nprms   int // number of free parameters
	Msg     string
}

// Error returns the error message
func (e *InsufficientDataError) Error() string { return e.Msg }

// ConvergenceError indicates that the least-squares solver could not reduce
// the residuals within its iteration budget
type ConvergenceError struct {
	It  int // iterations performed
	Msg string
}

// Error returns the error message
func (e *ConvergenceError) Error() string { return e.Msg }
