// Copyright 2026 The Permfit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements plotting of flux comparisons and error maps
package out

// marker and colour cycles for flux overlays
var (
	markers = []string{"o", "v", "^", "<", ">", "s", "8", "p"}
	colors  = []string{"b", "g", "r", "c", "m", "orange", "k"}
)

// Marker returns the i-th marker of the cycle
func Marker(i int) string {
	return markers[i%len(markers)]
}

// Color returns the i-th colour of the cycle
func Color(i int) string {
	return colors[i%len(colors)]
}
